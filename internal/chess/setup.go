package chess

// Placement pairs a piece with the square it starts on.
type Placement struct {
	Piece    Piece
	Position Position
}

// SetupSource produces a finite sequence of placements used to populate a
// fresh board. The board applies placements in order without validation, so
// a duplicate position silently overwrites the earlier placement.
type SetupSource interface {
	Placements() []Placement
}

// backRankKinds maps each file to the piece kind that starts on it,
// per the standard FIDE setup.
var backRankKinds = map[File]PieceKind{
	FileA: Rook,
	FileB: Knight,
	FileC: Bishop,
	FileD: Queen,
	FileE: King,
	FileF: Bishop,
	FileG: Knight,
	FileH: Rook,
}

// StandardSetup is the standard piece setup according to FIDE: pawns on
// ranks 2 and 7, and the back-rank pieces on ranks 1 and 8.
type StandardSetup struct{}

// Placements returns the 32 standard placements in a deterministic order:
// all pawns first, then the back-rank pieces, each colour in Colours() order.
func (StandardSetup) Placements() []Placement {
	placements := make([]Placement, 0, 32)

	for _, colour := range Colours() {
		rank := pawnRank(colour)
		for _, file := range Files() {
			placements = append(placements, Placement{
				Piece:    Piece{Kind: Pawn, Colour: colour},
				Position: Position{File: file, Rank: rank},
			})
		}
	}

	for _, colour := range Colours() {
		rank := backRank(colour)
		for _, file := range Files() {
			placements = append(placements, Placement{
				Piece:    Piece{Kind: backRankKinds[file], Colour: colour},
				Position: Position{File: file, Rank: rank},
			})
		}
	}

	return placements
}

// EmptySetup produces no placements, yielding an empty board.
type EmptySetup struct{}

// Placements returns an empty placement list.
func (EmptySetup) Placements() []Placement {
	return nil
}

// pawnRank returns the rank a colour's pawns start on.
func pawnRank(colour Colour) Rank {
	if colour == White {
		return 2
	}
	return 7
}

// backRank returns the rank a colour's back-rank pieces start on.
func backRank(colour Colour) Rank {
	if colour == White {
		return 1
	}
	return 8
}
