// Package server exposes sessions over HTTP and websockets so a display
// can drive the chess core from another process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/session"
)

const shutdownTimeout = 5 * time.Second

// entry guards one session. The core is single-threaded, so every call
// into a session holds mu.
type entry struct {
	mu   sync.Mutex
	sess *session.Session
}

// Server routes API requests to sessions.
type Server struct {
	cfg      *config.Config
	router   *mux.Router
	upgrader websocket.Upgrader

	sessionsLock sync.RWMutex
	sessions     map[string]*entry
	nextID       atomic.Uint64
}

// New creates a server with no sessions.
func New(cfg *config.Config) *Server {
	srv := &Server{
		cfg:      cfg,
		router:   mux.NewRouter(),
		sessions: make(map[string]*entry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	srv.routes()
	return srv
}

func (srv *Server) routes() {
	api := srv.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", srv.handleAnalyze).Methods(http.MethodGet)
	api.HandleFunc("/sessions", srv.handleCreate).Methods(http.MethodPost)

	api.HandleFunc("/sessions/{id}", srv.withSession(srv.handleGet)).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", srv.handleDelete).Methods(http.MethodDelete)

	s := api.PathPrefix("/sessions/{id}").Subrouter()
	s.HandleFunc("/select", srv.withSession(srv.handleSelect)).Methods(http.MethodPost)
	s.HandleFunc("/move", srv.withSession(srv.handleMove)).Methods(http.MethodPost)
	s.HandleFunc("/{action:undo|redo|reset|flip}", srv.withSession(srv.handleAction)).Methods(http.MethodPost)
	s.HandleFunc("/helpers/{helper}", srv.withSession(srv.handleHelper)).Methods(http.MethodPut)
	s.HandleFunc("/fen", srv.withSession(srv.handleFEN)).Methods(http.MethodPut)
	s.HandleFunc("/ws", srv.handleWebsocket).Methods(http.MethodGet)

	srv.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
}

// Handler returns the router wrapped in request logging and, when origins
// are configured, CORS.
func (srv *Server) Handler() http.Handler {
	var h http.Handler = srv.router
	if origins := srv.cfg.Server.AllowedOrigins; len(origins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}
	if srv.cfg.Verbosity > 0 {
		h = handlers.LoggingHandler(srv.cfg.LogFile, h)
	}
	return h
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              srv.cfg.Server.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if srv.cfg.Verbosity > 0 {
			fmt.Fprintf(srv.cfg.LogFile, "listening on %s\n", hs.Addr)
		}
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NumSessions returns the number of live sessions.
func (srv *Server) NumSessions() int {
	srv.sessionsLock.RLock()
	defer srv.sessionsLock.RUnlock()
	return len(srv.sessions)
}

func (srv *Server) addSession(sess *session.Session) string {
	id := strconv.FormatUint(srv.nextID.Add(1), 10)
	srv.sessionsLock.Lock()
	srv.sessions[id] = &entry{sess: sess}
	srv.sessionsLock.Unlock()
	return id
}

func (srv *Server) lookup(id string) (*entry, bool) {
	srv.sessionsLock.RLock()
	defer srv.sessionsLock.RUnlock()
	e, ok := srv.sessions[id]
	return e, ok
}

func (srv *Server) removeSession(id string) bool {
	srv.sessionsLock.Lock()
	defer srv.sessionsLock.Unlock()
	if _, ok := srv.sessions[id]; !ok {
		return false
	}
	delete(srv.sessions, id)
	return true
}

// sessionHandler handles a request against a locked session.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves {id} and holds the session lock for the call.
func (srv *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := srv.lookup(mux.Vars(r)["id"])
		if !ok {
			notFoundHandler(w, r)
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		h(w, r, e.sess)
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}
