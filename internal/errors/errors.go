// Package errors provides sentinel errors and error types for the chess
// module. It defines the common failure conditions and structured error types
// that preserve context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed or unrecognized algebraic
	// notation token.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrIllegalMove indicates a move that cannot be applied to the board.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPieceNotFound indicates a lookup of a piece or square that is
	// not present on the board.
	ErrPieceNotFound = errors.New("piece not found")
)

// NotationError wraps a notation failure with the offending token.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type NotationError struct {
	Err   error  // The underlying error
	Token string // The notation token that failed to parse
}

// Error returns a formatted error message including the offending token.
func (e *NotationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notation %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("notation %q: %v", e.Token, ErrInvalidNotation)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the NotationError wrapper.
func (e *NotationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidNotation
}

// MoveError wraps a move failure with the squares involved. The squares are
// recorded in algebraic form (e.g., "e2") so that this package does not
// depend on the board types.
type MoveError struct {
	Err         error  // The underlying error
	Origin      string // Origin square (empty if not applicable)
	Destination string // Destination square (empty if not applicable)
	Reason      string // Short description of what went wrong
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Origin != "" && e.Destination != "" {
		parts = append(parts, fmt.Sprintf("move %s to %s", e.Origin, e.Destination))
	} else if e.Origin != "" {
		parts = append(parts, fmt.Sprintf("move from %s", e.Origin))
	} else if e.Destination != "" {
		parts = append(parts, fmt.Sprintf("move to %s", e.Destination))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
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
