package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/output"
)

// clientMessage is a message sent by the display.
type clientMessage struct {
	Type   string `json:"type"`
	Square string `json:"square"`
}

// serverMessage is a reply. Exactly one of Overlay and Error is set.
type serverMessage struct {
	Type    string              `json:"type"`
	Overlay *output.JSONOverlay `json:"overlay,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// handleWebsocket streams hover overlays for one session. Each hover
// message gets exactly one reply, in order.
func (srv *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	e, ok := srv.lookup(mux.Vars(r)["id"])
	if !ok {
		notFoundHandler(w, r)
		return
	}
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		return
	}
	defer conn.Close()

	if srv.cfg.Verbosity > 1 {
		fmt.Fprintf(srv.cfg.LogFile, "websocket connection from %s\n", conn.RemoteAddr())
	}

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && srv.cfg.Verbosity > 0 {
				fmt.Fprintf(srv.cfg.LogFile, "websocket read: %v\n", err)
			}
			return
		}
		if err := conn.WriteJSON(srv.reply(e, msg)); err != nil {
			return
		}
	}
}

func (srv *Server) reply(e *entry, msg clientMessage) serverMessage {
	if msg.Type != "hover" {
		return serverMessage{Type: "error", Error: fmt.Sprintf("unknown message type %q", msg.Type)}
	}
	sq, err := chess.ParseSquare(msg.Square)
	if err != nil {
		return serverMessage{Type: "error", Error: err.Error()}
	}

	e.mu.Lock()
	ov, err := e.sess.Hover(sq)
	e.mu.Unlock()
	if err != nil {
		return serverMessage{Type: "error", Error: err.Error()}
	}
	return serverMessage{Type: "overlay", Overlay: output.NewOverlay(ov)}
}
