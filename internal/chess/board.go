package chess

import (
	"github.com/gnudeb/chess/internal/errors"
)

// Board holds a sparse mapping from positions to pieces. A position absent
// from the mapping is an empty square.
//
// The board hands out *Piece values and identifies pieces by that pointer,
// not by value: two pawns of the same colour are structurally equal but
// remain individually addressable through the handle the board returned for
// each. Reverse lookups with PositionOf only recognise handles obtained from
// this board.
//
// Board is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Board struct {
	pieces map[Position]*Piece
}

// NewBoard creates a board populated from the given setup source.
// Use EmptySetup for a bare board.
func NewBoard(setup SetupSource) *Board {
	b := &Board{pieces: make(map[Position]*Piece)}
	for _, placement := range setup.Placements() {
		b.PlacePiece(placement.Piece, placement.Position)
	}
	return b
}

// PieceAt returns the piece at the given position, or an error wrapping
// ErrPieceNotFound if the square is empty. Use HasPieceAt for a plain
// existence check.
func (b *Board) PieceAt(position Position) (*Piece, error) {
	piece, ok := b.pieces[position]
	if !ok {
		return nil, errors.Wrapf(errors.ErrPieceNotFound, "no piece at %v", position)
	}
	return piece, nil
}

// HasPieceAt reports whether a piece occupies the given position.
func (b *Board) HasPieceAt(position Position) bool {
	_, ok := b.pieces[position]
	return ok
}

// PlacePiece puts a piece on the given position, overwriting any previous
// occupant. It returns the board's handle for the placed piece; the handle
// keeps identifying that piece as it moves around this board.
func (b *Board) PlacePiece(piece Piece, position Position) *Piece {
	placed := &piece
	b.pieces[position] = placed
	return placed
}

// MovePiece moves the piece at origin to destination, overwriting any
// occupant of destination. If origin is empty the board is left unchanged
// and an error wrapping ErrIllegalMove is returned.
func (b *Board) MovePiece(origin, destination Position) error {
	piece, ok := b.pieces[origin]
	if !ok {
		return &errors.MoveError{
			Origin:      origin.String(),
			Destination: destination.String(),
			Reason:      "no piece at origin square",
			Err:         errors.ErrIllegalMove,
		}
	}
	delete(b.pieces, origin)
	b.pieces[destination] = piece
	return nil
}

// PositionOf returns the position of a piece previously obtained from this
// board. The lookup is by handle identity: a freshly constructed piece that
// is merely value-equal to one on the board is not found, and yields an
// error wrapping ErrPieceNotFound.
func (b *Board) PositionOf(piece *Piece) (Position, error) {
	for position, candidate := range b.pieces {
		if candidate == piece {
			return position, nil
		}
	}
	return Position{}, errors.Wrapf(errors.ErrPieceNotFound, "%v is not on this board", piece)
}

// Pieces returns the pieces currently on the board. The order follows map
// iteration and is not related to rank or file order.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.pieces))
	for _, piece := range b.pieces {
		pieces = append(pieces, piece)
	}
	return pieces
}
