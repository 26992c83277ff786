// Package chess provides the core chess types and board operations: files,
// ranks, positions, pieces, the sparse board, and the game state machine
// that gates move application.
package chess

import (
	"fmt"

	"github.com/gnudeb/chess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Colours lists both colours in a fixed order, for deterministic iteration.
func Colours() []Colour {
	return []Colour{Black, White}
}

// File represents a chess file (column), a to h.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// BoardSize is the number of files and ranks on a board.
const BoardSize = 8

// ParseFile converts a file letter ('a' to 'h', case-insensitive) to a File.
func ParseFile(letter byte) (File, error) {
	lower := letter | 0x20
	if lower < 'a' || lower > 'h' {
		return 0, &errors.NotationError{
			Token: string(letter),
			Err:   errors.Wrapf(errors.ErrInvalidNotation, "no such file: %c", letter),
		}
	}
	return File(lower - 'a'), nil
}

// String returns the lowercase file letter.
func (f File) String() string {
	return string(rune('a' + f))
}

// Files lists all eight files, a to h.
func Files() []File {
	files := make([]File, 0, BoardSize)
	for f := FileA; f <= FileH; f++ {
		files = append(files, f)
	}
	return files
}

// Rank represents a chess rank (row), 1 to 8.
type Rank int

const (
	FirstRank Rank = 1
	LastRank  Rank = 8
)

// ParseRank converts a rank digit ('1' to '8') to a Rank.
func ParseRank(digit byte) (Rank, error) {
	if digit < '0' || digit > '9' {
		return 0, &errors.NotationError{
			Token: string(digit),
			Err:   errors.Wrapf(errors.ErrInvalidNotation, "expected digit for rank, got %c", digit),
		}
	}
	rank := Rank(digit - '0')
	if rank < FirstRank || rank > LastRank {
		return 0, &errors.NotationError{
			Token: string(digit),
			Err:   errors.Wrapf(errors.ErrInvalidNotation, "rank %d is not in range 1 to 8", rank),
		}
	}
	return rank, nil
}

// String returns the rank digit.
func (r Rank) String() string {
	return fmt.Sprintf("%d", int(r))
}

// Ranks lists all eight ranks, 1 to 8.
func Ranks() []Rank {
	ranks := make([]Rank, 0, BoardSize)
	for r := FirstRank; r <= LastRank; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Position identifies one of the 64 squares of a board. It is a comparable
// value type and can be used as a map key.
type Position struct {
	File File
	Rank Rank
}

// ParsePosition converts a two-character algebraic square such as "e2" into
// a Position. Errors from the file and rank parsers are propagated.
func ParsePosition(square string) (Position, error) {
	if len(square) != 2 {
		return Position{}, &errors.NotationError{
			Token: square,
			Err:   errors.Wrap(errors.ErrInvalidNotation, "square must be a file letter and a rank digit"),
		}
	}
	file, err := ParseFile(square[0])
	if err != nil {
		return Position{}, err
	}
	rank, err := ParseRank(square[1])
	if err != nil {
		return Position{}, err
	}
	return Position{File: file, Rank: rank}, nil
}

// String returns the algebraic form of the position, e.g. "e2".
func (p Position) String() string {
	return p.File.String() + p.Rank.String()
}

// Index returns the row-major board index of the position,
// (rank-1)*8 + file, in the range [0, 63].
func (p Position) Index() int {
	return (int(p.Rank)-1)*BoardSize + int(p.File)
}

// AllPositions returns all 64 positions in a fixed enumeration order:
// rank 8 down to rank 1, and file a to h within a rank. This is the order a
// renderer needs to reconstruct a row-major board display, and it is part of
// the package contract.
func AllPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for rank := LastRank; rank >= FirstRank; rank-- {
		for _, file := range Files() {
			positions = append(positions, Position{File: file, Rank: rank})
		}
	}
	return positions
}

// PieceKind represents a chess piece type. The zero value is Pawn, so that
// notation with no piece letter defaults to a pawn move.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase notation letter of a piece kind.
// Pawns have no letter in algebraic notation, so Pawn yields "".
func (k PieceKind) Letter() string {
	letters := []string{"", "N", "B", "R", "Q", "K"}
	if int(k) < len(letters) {
		return letters[k]
	}
	return "?"
}

// PieceKindFromLetter converts a notation letter to a piece kind. An empty
// string means a pawn. The letter is case-insensitive.
func PieceKindFromLetter(letter string) (PieceKind, error) {
	if letter == "" {
		return Pawn, nil
	}
	if len(letter) == 1 {
		switch letter[0] &^ 0x20 {
		case 'K':
			return King, nil
		case 'Q':
			return Queen, nil
		case 'N':
			return Knight, nil
		case 'B':
			return Bishop, nil
		case 'R':
			return Rook, nil
		}
	}
	return 0, &errors.NotationError{
		Token: letter,
		Err:   errors.Wrapf(errors.ErrInvalidNotation, "no such piece kind: %s", letter),
	}
}

// Piece represents a coloured chess piece.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// String returns e.g. "White Pawn".
func (p Piece) String() string {
	return fmt.Sprintf("%v %v", p.Colour, p.Kind)
}
