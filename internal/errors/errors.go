// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates coordinates outside the 8x8 grid.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoHistory indicates an undo or redo with an empty stack.
	ErrNoHistory = errors.New("no history")

	// ErrInvariantViolation indicates a corrupted position, e.g. two kings
	// of one colour. It is a programming error, not a game condition.
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownHelper indicates a helper overlay id that does not exist.
	ErrUnknownHelper = errors.New("unknown helper")
)

// MoveError wraps errors with move context. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports which FEN field failed to parse.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name, e.g. "castling"
	Value string // The offending text
}

// Error returns a formatted error message with field context.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
