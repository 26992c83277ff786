package chess

import (
	"fmt"

	"github.com/gnudeb/chess/internal/errors"
)

// Game holds a board and the colour whose turn it is. It gates move
// application with a minimal legality check: the origin square must hold a
// piece of the current player's colour. Movement shape, path obstruction and
// check detection are deliberately not validated here.
type Game struct {
	board  *Board
	toMove Colour
}

// NewGame creates a game with the standard starting setup, White to move.
func NewGame() *Game {
	return NewGameWithBoard(NewBoard(StandardSetup{}))
}

// NewGameWithBoard creates a game over a pre-populated board, White to move.
func NewGameWithBoard(board *Board) *Game {
	return &Game{board: board, toMove: White}
}

// Board returns the game's board.
func (g *Game) Board() *Board {
	return g.board
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() Colour {
	return g.toMove
}

// AttemptMove applies a move to the board after the legality checks pass.
// On any failure the board is left unchanged and an error wrapping
// ErrIllegalMove is returned.
//
// Two known limitations:
//   - the turn never advances after a successful move
//     (TODO: hand toMove to the opponent once move legality is complete);
//   - castling moves are accepted but not applied to the board
//     (TODO: execute castling once king and rook tracking exists).
func (g *Game) AttemptMove(move Move) error {
	switch m := move.(type) {
	case RegularMove:
		return g.attemptRegularMove(m)
	case CastlingMove:
		return nil
	default:
		return fmt.Errorf("unsupported move type %T: %w", move, errors.ErrIllegalMove)
	}
}

// attemptRegularMove checks the origin square and the moving piece's colour,
// then delegates to the board. The origin is required on this path: moves
// parsed without one are not disambiguated from destination and piece kind.
func (g *Game) attemptRegularMove(move RegularMove) error {
	if move.Origin == nil {
		return &errors.MoveError{
			Destination: move.Destination.String(),
			Reason:      "origin square is required",
			Err:         errors.ErrIllegalMove,
		}
	}

	piece, err := g.board.PieceAt(*move.Origin)
	if err != nil {
		return &errors.MoveError{
			Origin:      move.Origin.String(),
			Destination: move.Destination.String(),
			Reason:      "origin square is empty",
			Err:         errors.ErrIllegalMove,
		}
	}

	if piece.Colour != g.toMove {
		return &errors.MoveError{
			Origin:      move.Origin.String(),
			Destination: move.Destination.String(),
			Reason:      fmt.Sprintf("%v cannot move, %v to play", piece.Colour, g.toMove),
			Err:         errors.ErrIllegalMove,
		}
	}

	return g.board.MovePiece(*move.Origin, move.Destination)
}
