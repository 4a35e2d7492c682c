// Package output renders positions, tactical overlays and move history
// as JSON reports or plain text.
package output

import (
	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/game"
	"github.com/copperfishgh/testy/internal/session"
	"github.com/copperfishgh/testy/internal/tactics"
)

// Report describes one position in JSON format.
type Report struct {
	FEN         string         `json:"fen"`
	SideToMove  string         `json:"sideToMove"`
	Status      string         `json:"status"`
	InCheck     bool           `json:"inCheck"`
	LegalMoves  []string       `json:"legalMoves"`
	Hanging     []JSONHanging  `json:"hanging,omitempty"`
	Exchanges   []JSONExchange `json:"exchanges,omitempty"`
	Forks       []string       `json:"forks,omitempty"`
	History     []JSONHistory  `json:"history,omitempty"`
	LastMove    *JSONMove      `json:"lastMove,omitempty"`
	Flipped     bool           `json:"flipped,omitempty"`
	Error       string         `json:"error,omitempty"`
	CanUndo     bool           `json:"canUndo,omitempty"`
	CanRedo     bool           `json:"canRedo,omitempty"`
	Interesting []string       `json:"interesting,omitempty"`
}

// JSONHanging is one hanging piece.
type JSONHanging struct {
	Square string `json:"square"`
	Owner  string `json:"owner"` // "white" or "black"
	Value  int    `json:"value"`
}

// JSONExchange lists the pieces bearing on one square, cheapest first.
type JSONExchange struct {
	Square    string   `json:"square"`
	Attackers []string `json:"attackers"`
	Defenders []string `json:"defenders"`
}

// JSONHistory is one entry of the move list.
type JSONHistory struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"`
	SAN        string `json:"san"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Color     string `json:"color"` // "white" or "black"
	SAN       string `json:"san"`
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Check     bool   `json:"check,omitempty"`
}

// JSONOverlay is the hover overlay in JSON format.
type JSONOverlay struct {
	Square       string        `json:"square"`
	Preview      bool          `json:"preview"`
	FEN          string        `json:"fen"`
	Hanging      []JSONHanging `json:"hanging,omitempty"`
	Exchange     *JSONExchange `json:"exchange,omitempty"`
	Interesting  []string      `json:"interesting,omitempty"`
	Forks        []string      `json:"forks,omitempty"`
	Destinations []string      `json:"destinations,omitempty"`
}

// NewReport describes the current position of s with every overlay.
func NewReport(s *game.State) *Report {
	b := s.Board()
	r := &Report{
		FEN:         s.FEN(),
		SideToMove:  colorName(b.ToMove),
		Status:      s.Status().String(),
		InCheck:     s.InCheck(),
		LegalMoves:  make([]string, 0, 40),
		Hanging:     hangingToJSON(s.Hanging()),
		Forks:       squareNames(s.ForkSquares(b.ToMove)),
		History:     historyToJSON(s.MoveList(), b),
		CanUndo:     s.UndoDepth() > 0,
		CanRedo:     s.RedoDepth() > 0,
		Interesting: squareNames(s.InterestingSquares()),
	}
	for _, m := range s.LegalMoves() {
		r.LegalMoves = append(r.LegalMoves, m.UCI())
	}
	for _, sq := range s.InterestingSquares() {
		if ex, err := s.Exchange(sq); err == nil {
			r.Exchanges = append(r.Exchanges, exchangeToJSON(sq, ex))
		}
	}
	if last, ok := s.LastMove(); ok {
		r.LastMove = MoveToJSON(last)
	}
	return r
}

// NewSessionReport is NewReport plus the session's display state.
func NewSessionReport(s *session.Session) *Report {
	r := NewReport(s.State())
	r.Flipped = s.Flipped()
	return r
}

// AnalyzeFEN reports on a single position outside any session.
func AnalyzeFEN(cfg *config.Config, fen string) (*Report, error) {
	s := game.New(cfg)
	if err := s.LoadFEN(fen); err != nil {
		return nil, err
	}
	return NewReport(s), nil
}

// NewOverlay converts a hover overlay to JSON format.
func NewOverlay(ov session.Overlay) *JSONOverlay {
	out := &JSONOverlay{
		Square:       ov.Square.String(),
		Preview:      ov.Preview,
		FEN:          ov.FEN,
		Hanging:      hangingToJSON(ov.Hanging),
		Interesting:  squareNames(ov.Interesting),
		Forks:        squareNames(ov.Forks),
		Destinations: squareNames(ov.Destinations),
	}
	if ov.Exchange != nil {
		ex := exchangeToJSON(ov.Square, *ov.Exchange)
		out.Exchange = &ex
	}
	return out
}

// MoveToJSON converts a played move to JSON format.
func MoveToJSON(m chess.Move) *JSONMove {
	jm := &JSONMove{
		Color:     colorName(m.Piece.Colour),
		SAN:       m.String(),
		UCI:       m.UCI(),
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     pieceTypeName(m.Piece.Kind),
		Captured:  pieceTypeName(m.Captured.Kind),
		EnPassant: m.EnPassant,
		Check:     m.GivesCheck,
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	if m.IsCastle() {
		jm.Castle = m.Castle.String()
	}
	return jm
}

// hangingToJSON lists hanging pieces in board order, a8 first.
func hangingToJSON(hanging map[chess.Square]tactics.Hanging) []JSONHanging {
	if len(hanging) == 0 {
		return nil
	}
	out := make([]JSONHanging, 0, len(hanging))
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareFromIndex(i)
		if h, ok := hanging[sq]; ok {
			out = append(out, JSONHanging{Square: sq.String(), Owner: colorName(h.Owner), Value: h.Value})
		}
	}
	return out
}

func exchangeToJSON(sq chess.Square, ex tactics.Exchange) JSONExchange {
	out := JSONExchange{
		Square:    sq.String(),
		Attackers: squareNames(ex.Attackers),
		Defenders: squareNames(ex.Defenders),
	}
	if out.Attackers == nil {
		out.Attackers = []string{}
	}
	if out.Defenders == nil {
		out.Defenders = []string{}
	}
	return out
}

// historyToJSON numbers the move list by walking back from the current
// position b, whose side to move did not play the last move.
func historyToJSON(moves []string, b *chess.Board) []JSONHistory {
	if len(moves) == 0 {
		return nil
	}
	out := make([]JSONHistory, len(moves))
	colour := b.ToMove.Opposite()
	moveNum := b.MoveNumber
	if colour == chess.Black {
		moveNum--
	}
	for i := len(moves) - 1; i >= 0; i-- {
		out[i] = JSONHistory{MoveNumber: moveNum, Color: colorName(colour), SAN: moves[i]}
		if colour == chess.White {
			moveNum--
		}
		colour = colour.Opposite()
	}
	return out
}

func squareNames(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.Kind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
