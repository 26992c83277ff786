// Package notation converts algebraic move notation into structured
// chess.Move values.
package notation

import (
	"regexp"

	"github.com/gnudeb/chess/internal/chess"
	"github.com/gnudeb/chess/internal/errors"
)

// regularMoveRE matches a regular move at the start of a token: an optional
// piece letter, an optional origin square, an optional capture marker, and a
// mandatory destination square. Trailing characters (check marks,
// annotations) are tolerated and left unconsumed.
var regularMoveRE = regexp.MustCompile(`^([KQNBR])?([a-h][1-8])?([x:])?([a-h][1-8])`)

// Castling tokens are matched by exact string equality, with either the
// letter O or the digit 0.
var (
	kingsideTokens  = []string{"O-O", "0-0"}
	queensideTokens = []string{"O-O-O", "0-0-0"}
)

// ParseMove converts a notation token into a structured move. Variants are
// tried in a fixed order that is part of the contract: RegularMove first,
// then CastlingMove; the first grammar that accepts the token wins. A token
// accepted by neither fails with an error wrapping ErrInvalidNotation that
// carries the token.
func ParseMove(token string) (chess.Move, error) {
	if move, err := parseRegularMove(token); err == nil {
		return move, nil
	}
	if move, err := parseCastlingMove(token); err == nil {
		return move, nil
	}
	return nil, &errors.NotationError{Token: token, Err: errors.ErrInvalidNotation}
}

// parseRegularMove parses tokens such as "e4", "Nf3", "e2e4" and "e2xd3".
func parseRegularMove(token string) (chess.Move, error) {
	groups := regularMoveRE.FindStringSubmatch(token)
	if groups == nil {
		return nil, &errors.NotationError{Token: token, Err: errors.ErrInvalidNotation}
	}

	kind, err := chess.PieceKindFromLetter(groups[1])
	if err != nil {
		return nil, err
	}

	var origin *chess.Position
	if groups[2] != "" {
		parsed, err := chess.ParsePosition(groups[2])
		if err != nil {
			return nil, err
		}
		origin = &parsed
	}

	destination, err := chess.ParsePosition(groups[4])
	if err != nil {
		return nil, err
	}

	return chess.RegularMove{
		Destination: destination,
		Origin:      origin,
		Kind:        kind,
		Capture:     groups[3] != "",
	}, nil
}

// parseCastlingMove parses the four castling tokens.
func parseCastlingMove(token string) (chess.Move, error) {
	for _, kingside := range kingsideTokens {
		if token == kingside {
			return chess.CastlingMove{Kingside: true}, nil
		}
	}
	for _, queenside := range queensideTokens {
		if token == queenside {
			return chess.CastlingMove{Kingside: false}, nil
		}
	}
	return nil, &errors.NotationError{Token: token, Err: errors.ErrInvalidNotation}
}
