package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names used in error reports.
const (
	fieldPlacement = "piece placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

func fenError(field, value string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value}
}

// NewBoardFromFEN creates a board from a FEN string. All six fields are
// required and checked; any defect yields an error wrapping ErrInvalidFEN.
// King counts are not checked here.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &errors.FENError{
			Err:   fmt.Errorf("want 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN),
			Field: "fields",
			Value: fen,
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fieldPlacement, positions)
	}

	for row, rankText := range ranks {
		col := 0
		for i := 0; i < len(rankText); i++ {
			c := rankText[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
			} else {
				piece := chess.PieceFromLetter(c)
				if piece.IsEmpty() {
					return fenError(fieldPlacement, string(c))
				}
				board.Set(chess.Square{Row: row, Col: col}, piece)
				col++
			}
			if col > chess.BoardSize {
				return fenError(fieldPlacement, rankText)
			}
		}
		if col != chess.BoardSize {
			return fenError(fieldPlacement, rankText)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(fieldSide, side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}
	if field == "" {
		return fenError(fieldCastling, field)
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingSide
		case 'Q':
			right = chess.WhiteQueenSide
		case 'k':
			right = chess.BlackKingSide
		case 'q':
			right = chess.BlackQueenSide
		default:
			return fenError(fieldCastling, field)
		}
		if board.Castling.Has(right) {
			return fenError(fieldCastling, field)
		}
		board.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must sit behind a pawn of the side that just moved.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	board.EPSquare = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fieldEnPassant, field)
	}
	wantRank := byte('6')
	if board.ToMove == chess.Black {
		wantRank = '3'
	}
	if sq.Rank() != wantRank {
		return fenError(fieldEnPassant, field)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	n, err := strconv.Atoi(halfmove)
	if err != nil || n < 0 {
		return fenError(fieldHalfmove, halfmove)
	}
	board.HalfmoveClock = n

	n, err = strconv.Atoi(fullmove)
	if err != nil || n < 1 {
		return fenError(fieldFullmove, fullmove)
	}
	board.MoveNumber = n
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
