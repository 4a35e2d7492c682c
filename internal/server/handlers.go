package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/copperfishgh/testy/internal/chess"
	chesserrors "github.com/copperfishgh/testy/internal/errors"
	"github.com/copperfishgh/testy/internal/notation"
	"github.com/copperfishgh/testy/internal/output"
	"github.com/copperfishgh/testy/internal/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

type createRequest struct {
	FEN string `json:"fen,omitempty"`
}

type createResponse struct {
	ID     string         `json:"id"`
	Report *output.Report `json:"report"`
}

type selectRequest struct {
	Square string `json:"square"`
}

type selectResponse struct {
	Square       string   `json:"square,omitempty"`
	Destinations []string `json:"destinations"`
}

type moveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

type helperRequest struct {
	Enabled bool `json:"enabled"`
}

type fenRequest struct {
	FEN string `json:"fen"`
}

func (srv *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing fen parameter"})
		return
	}
	report, err := output.AnalyzeFEN(srv.cfg, fen)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (srv *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	sess := session.New(srv.cfg)
	if req.FEN != "" {
		if err := sess.LoadFEN(req.FEN); err != nil {
			writeError(w, err)
			return
		}
	}
	id := srv.addSession(sess)
	writeJSON(w, http.StatusCreated, createResponse{ID: id, Report: output.NewSessionReport(sess)})
}

func (srv *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !srv.removeSession(mux.Vars(r)["id"]) {
		notFoundHandler(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) handleGet(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, output.NewSessionReport(sess))
}

func (srv *Server) handleSelect(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req selectRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	sq, err := chess.ParseSquare(req.Square)
	if err != nil {
		writeError(w, err)
		return
	}
	dests, err := sess.Select(sq)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := selectResponse{Destinations: make([]string, 0, len(dests))}
	if selected, ok := sess.Selected(); ok {
		resp.Square = selected.String()
	}
	for _, d := range dests {
		resp.Destinations = append(resp.Destinations, d.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (srv *Server) handleMove(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	var promotion *chess.Kind
	if req.Promotion != "" {
		kind, err := notation.ParsePromotion(req.Promotion)
		if err != nil {
			writeError(w, err)
			return
		}
		promotion = &kind
	}

	if _, err := sess.AttemptMove(from, to, promotion); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewSessionReport(sess))
}

func (srv *Server) handleAction(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var err error
	switch mux.Vars(r)["action"] {
	case "undo":
		_, err = sess.Undo()
	case "redo":
		_, err = sess.Redo()
	case "reset":
		sess.Reset()
	case "flip":
		sess.FlipPerspective()
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewSessionReport(sess))
}

func (srv *Server) handleHelper(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req helperRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := sess.SetHelperEnabled(mux.Vars(r)["helper"], req.Enabled); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Helpers())
}

func (srv *Server) handleFEN(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req fenRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := sess.LoadFEN(req.FEN); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewSessionReport(sess))
}

// decodeBody reads a JSON request body into v. An empty body leaves v
// unchanged.
func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// statusFor maps core errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrNoHistory):
		return http.StatusConflict
	case errors.Is(err, chesserrors.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chesserrors.ErrUnknownHelper):
		return http.StatusNotFound
	case errors.Is(err, chesserrors.ErrInvalidSquare),
		errors.Is(err, chesserrors.ErrInvalidFEN):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
