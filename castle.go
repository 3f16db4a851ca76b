// castle.go implements CastleRights: a four-bit mask tracking the right to
// castle on each side, with a single sentinel-square update rule that
// subsumes king moves, rook moves, and rook captures.

package zugzwang

// CastleRights is a 4-bit mask [WK, WQ, BK, BQ].
type CastleRights = int

const (
	CastleWK CastleRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ

	CastleNone CastleRights = 0
	CastleAll  CastleRights = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// castleClearMask maps each of the six sentinel squares (king home, rook
// homes, both colors) to the rights it clears when touched as either the
// source or destination of a move.
var castleClearMask = map[Square]CastleRights{
	E1: CastleWK | CastleWQ,
	A1: CastleWQ,
	H1: CastleWK,
	E8: CastleBK | CastleBQ,
	A8: CastleBQ,
	H8: CastleBK,
}

// UpdateCastleRights returns the new rights mask after a move from src to
// dest: any right whose precondition square was touched, as either square,
// is cleared. This single rule handles king moves, rook moves, and rook
// captures uniformly.
func UpdateCastleRights(rights CastleRights, src, dest Square) CastleRights {
	rights &^= castleClearMask[src]
	rights &^= castleClearMask[dest]
	return rights
}

// castleString renders rights in the standard KQkq/- alphabet.
func castleString(rights CastleRights) string {
	if rights == CastleNone {
		return "-"
	}
	s := make([]byte, 0, 4)
	if rights&CastleWK != 0 {
		s = append(s, 'K')
	}
	if rights&CastleWQ != 0 {
		s = append(s, 'Q')
	}
	if rights&CastleBK != 0 {
		s = append(s, 'k')
	}
	if rights&CastleBQ != 0 {
		s = append(s, 'q')
	}
	return string(s)
}

// parseCastleRights parses the KQkq/- alphabet. Any other character is a
// parse error.
func parseCastleRights(s string) (CastleRights, error) {
	if s == "-" {
		return CastleNone, nil
	}
	rights := CastleNone
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			rights |= CastleWK
		case 'Q':
			rights |= CastleWQ
		case 'k':
			rights |= CastleBK
		case 'q':
			rights |= CastleBQ
		default:
			return CastleNone, ErrInvalidFEN
		}
	}
	return rights, nil
}

// rookCastling holds the rook's (src, dest) pair for a given king
// destination square during castling.
type rookCastling struct{ src, dest Square }

// GetRookCastling returns the rook's (src, dest) pair for the king's
// castling destination square.
func GetRookCastling(kingDest Square) rookCastling {
	switch kingDest {
	case G1:
		return rookCastling{H1, F1}
	case C1:
		return rookCastling{A1, D1}
	case G8:
		return rookCastling{H8, F8}
	case C8:
		return rookCastling{A8, D8}
	}
	panic("zugzwang: GetRookCastling called with a non-castling destination square")
}
