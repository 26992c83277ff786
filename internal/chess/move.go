package chess

// Move is a structured move command produced by the notation parser.
// The set of variants is closed: RegularMove and CastlingMove.
type Move interface {
	isMove()
}

// RegularMove represents a piece moving to a destination square, optionally
// qualified with its origin square, its piece kind, and a capture marker.
type RegularMove struct {
	// The square the piece moves to.
	Destination Position

	// The square the piece moves from, if the notation spelled it out.
	Origin *Position

	// The kind of piece being moved. The zero value is Pawn, matching
	// notation with no piece letter.
	Kind PieceKind

	// Whether the notation carried a capture marker.
	Capture bool
}

func (RegularMove) isMove() {}

// CastlingMove represents a kingside or queenside castling move. It is a
// notation-level concept only: the game does not yet apply it to the board.
type CastlingMove struct {
	Kingside bool
}

func (CastlingMove) isMove() {}
