package chess

// glyphs maps each of the 12 coloured pieces to its unicode chess symbol.
// A static table is all this needs: the domain is closed and tiny.
var glyphs = map[Piece]rune{
	{King, White}:   '♔',
	{Queen, White}:  '♕',
	{Rook, White}:   '♖',
	{Bishop, White}: '♗',
	{Knight, White}: '♘',
	{Pawn, White}:   '♙',
	{King, Black}:   '♚',
	{Queen, Black}:  '♛',
	{Rook, Black}:   '♜',
	{Bishop, Black}: '♝',
	{Knight, Black}: '♞',
	{Pawn, Black}:   '♟',
}

// Unicode returns the unicode chess symbol for the piece, e.g. '♔' for the
// white king. Renderers use this as the display key for an occupied square.
func (p Piece) Unicode() rune {
	return glyphs[p]
}
