package chess

import (
	"testing"
)

func TestPieceUnicode(t *testing.T) {
	tests := []struct {
		piece Piece
		want  rune
	}{
		{Piece{King, White}, '♔'},
		{Piece{Queen, White}, '♕'},
		{Piece{Pawn, White}, '♙'},
		{Piece{King, Black}, '♚'},
		{Piece{Knight, Black}, '♞'},
		{Piece{Pawn, Black}, '♟'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Unicode(); got != tt.want {
				t.Errorf("Unicode() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPieceUnicode_CoversAllPieces(t *testing.T) {
	kinds := []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

	seen := make(map[rune]Piece)
	for _, colour := range Colours() {
		for _, kind := range kinds {
			piece := Piece{Kind: kind, Colour: colour}
			glyph := piece.Unicode()
			if glyph == 0 {
				t.Errorf("%v has no glyph", piece)
				continue
			}
			if other, dup := seen[glyph]; dup {
				t.Errorf("%v and %v share glyph %q", piece, other, glyph)
			}
			seen[glyph] = piece
		}
	}
}
