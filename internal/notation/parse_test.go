package notation

import (
	"errors"
	"testing"

	"github.com/gnudeb/chess/internal/chess"
	chesserrors "github.com/gnudeb/chess/internal/errors"
	"github.com/gnudeb/chess/internal/testutil"
)

func TestParseMove_RegularMoves(t *testing.T) {
	tests := []struct {
		token string
		want  chess.RegularMove
	}{
		{
			token: "e4",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileE, Rank: 4},
			},
		},
		{
			token: "Nf3",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileF, Rank: 3},
				Kind:        chess.Knight,
			},
		},
		{
			token: "e2e4",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileE, Rank: 4},
				Origin:      &chess.Position{File: chess.FileE, Rank: 2},
			},
		},
		{
			token: "e2xd3",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileD, Rank: 3},
				Origin:      &chess.Position{File: chess.FileE, Rank: 2},
				Capture:     true,
			},
		},
		{
			token: "Qd1:d8",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileD, Rank: 8},
				Origin:      &chess.Position{File: chess.FileD, Rank: 1},
				Kind:        chess.Queen,
				Capture:     true,
			},
		},
		{
			token: "Kxe2",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileE, Rank: 2},
				Kind:        chess.King,
				Capture:     true,
			},
		},
		{
			token: "Rd8",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileD, Rank: 8},
				Kind:        chess.Rook,
			},
		},
		{
			// Trailing annotation characters are left unconsumed.
			token: "e4!?",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileE, Rank: 4},
			},
		},
		{
			token: "Nf3+",
			want: chess.RegularMove{
				Destination: chess.Position{File: chess.FileF, Rank: 3},
				Kind:        chess.Knight,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMove(tt.token)
			testutil.AssertNoError(t, err, "ParseMove(%q)", tt.token)
			testutil.AssertEqual(t, got, chess.Move(tt.want), "ParseMove(%q)", tt.token)
		})
	}
}

func TestParseMove_CastlingMoves(t *testing.T) {
	tests := []struct {
		token    string
		kingside bool
	}{
		{"O-O", true},
		{"0-0", true},
		{"O-O-O", false},
		{"0-0-0", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMove(tt.token)
			testutil.AssertNoError(t, err, "ParseMove(%q)", tt.token)
			testutil.AssertEqual(t, got, chess.Move(chess.CastlingMove{Kingside: tt.kingside}))
		})
	}
}

func TestParseMove_InvalidTokens(t *testing.T) {
	tokens := []string{
		"",
		"z9",
		"e9",
		"x",
		"Kx",
		"exd5", // bare file disambiguation is not part of the grammar
		"o-o",  // castling letters are O and 0 only
		"O-0",
		"O--O",
		"9",
	}

	for _, token := range tokens {
		t.Run("invalid "+token, func(t *testing.T) {
			_, err := ParseMove(token)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidNotation, "ParseMove(%q)", token)

			var notationErr *chesserrors.NotationError
			if !errors.As(err, &notationErr) {
				t.Fatalf("ParseMove(%q) error = %T; want *NotationError", token, err)
			}
			testutil.AssertEqual(t, notationErr.Token, token, "offending token")
		})
	}
}

func TestParseMove_VariantOrder(t *testing.T) {
	// The regular-move grammar is tried first; castling tokens must still
	// come out as castling moves because no square matches a dash pattern.
	move, err := ParseMove("O-O")
	testutil.AssertNoError(t, err)
	if _, ok := move.(chess.CastlingMove); !ok {
		t.Fatalf("ParseMove(\"O-O\") = %T; want CastlingMove", move)
	}
}

func TestParseMove_DrivesAGame(t *testing.T) {
	g := chess.NewGame()

	move, err := ParseMove("e2e4")
	testutil.AssertNoError(t, err, "ParseMove")

	testutil.AssertNoError(t, g.AttemptMove(move), "AttemptMove")
	testutil.AssertFalse(t, g.Board().HasPieceAt(testutil.MustParsePosition(t, "e2")))
	testutil.AssertTrue(t, g.Board().HasPieceAt(testutil.MustParsePosition(t, "e4")))
}

func TestParseMove_RejectedByGame(t *testing.T) {
	g := chess.NewGame()

	move, err := ParseMove("e7e5")
	testutil.AssertNoError(t, err, "ParseMove")

	testutil.AssertErrorIs(t, g.AttemptMove(move), chesserrors.ErrIllegalMove,
		"black move while White is to play")
	testutil.AssertTrue(t, g.Board().HasPieceAt(testutil.MustParsePosition(t, "e7")))
}
