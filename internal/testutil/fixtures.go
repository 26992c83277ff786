package testutil

import (
	"testing"

	"github.com/gnudeb/chess/internal/chess"
)

// MustParsePosition parses an algebraic square such as "e2" and returns the
// Position. It calls t.Fatal if parsing fails. Use this in test setup where
// a malformed square should abort the test.
func MustParsePosition(t *testing.T, square string) chess.Position {
	t.Helper()
	position, err := chess.ParsePosition(square)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", square, err)
	}
	return position
}

// StandardBoard returns a board populated with the standard starting setup.
func StandardBoard() *chess.Board {
	return chess.NewBoard(chess.StandardSetup{})
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() *chess.Board {
	return chess.NewBoard(chess.EmptySetup{})
}
