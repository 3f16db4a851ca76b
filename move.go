// move.go implements the Move encoding: a packed (src, dest, move-type)
// triple with the accessor contract the board and move generator depend on.

package zugzwang

// MoveType closes over every distinct way a move can change the board.
// Unlike the source this is generalized from (which folds captures and
// quiet moves into one "Normal" tag), this enumeration keeps captures,
// promotions, and promotion-captures distinct so is_capture/is_promotion
// are simple range checks rather than auxiliary state.
type MoveType = int

const (
	Quiet MoveType = iota
	DoublePawn
	KingCastle
	QueenCastle
	EnPassant
	Capture
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	PromotionCaptureKnight
	PromotionCaptureBishop
	PromotionCaptureRook
	PromotionCaptureQueen
)

// promotionKind maps a promotion move type to its promoted piece type.
var promotionKind = map[MoveType]PieceType{
	PromotionKnight:        Knight,
	PromotionBishop:        Bishop,
	PromotionRook:          Rook,
	PromotionQueen:         Queen,
	PromotionCaptureKnight: Knight,
	PromotionCaptureBishop: Bishop,
	PromotionCaptureRook:   Rook,
	PromotionCaptureQueen:  Queen,
}

/*
Move represents a chess move, packed into a 16-bit unsigned integer:
  - bits 0-5:   src (origin) square index.
  - bits 6-11:  dest (destination) square index.
  - bits 12-15: move type, see [MoveType].
*/
type Move uint16

// NewMove packs a move from its origin, destination, and [MoveType],
// including the promotion types.
func NewMove(src, dest Square, kind MoveType) Move {
	return Move(src | dest<<6 | kind<<12)
}

// GetSrc returns the move's origin square.
func (m Move) GetSrc() Square { return int(m & 0x3F) }

// GetDest returns the move's destination square.
func (m Move) GetDest() Square { return int(m>>6) & 0x3F }

// GetType returns the move's [MoveType].
func (m Move) GetType() MoveType { return int(m>>12) & 0xF }

// IsCapture reports whether the move removes an enemy piece, including en
// passant and promotion-captures. Plain EnPassant is handled by its own
// dedicated branch in [Board.MakeMove] but is still, semantically, a capture.
func (m Move) IsCapture() bool {
	t := m.GetType()
	return t == Capture || t == EnPassant ||
		(t >= PromotionCaptureKnight && t <= PromotionCaptureQueen)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.GetType()
	return t >= PromotionKnight && t <= PromotionCaptureQueen
}

// GetProm returns the concrete promoted piece for the given side. Callers
// must only call this on a move for which [Move.IsPromotion] is true.
func (m Move) GetProm(side Color) Piece {
	kind, ok := promotionKind[m.GetType()]
	if !ok {
		panic("zugzwang: GetProm called on a non-promotion move")
	}
	return NewPiece(kind, side)
}

// UCI renders the move as a long algebraic notation string, e.g. "e2e4",
// "e1g1" (white short castling), "e7e8q" (queen promotion).
func (m Move) UCI() string {
	out := make([]byte, 0, 5)
	out = append(out, Square2String[m.GetSrc()]...)
	out = append(out, Square2String[m.GetDest()]...)
	switch m.GetType() {
	case PromotionKnight, PromotionCaptureKnight:
		out = append(out, 'n')
	case PromotionBishop, PromotionCaptureBishop:
		out = append(out, 'b')
	case PromotionRook, PromotionCaptureRook:
		out = append(out, 'r')
	case PromotionQueen, PromotionCaptureQueen:
		out = append(out, 'q')
	}
	return string(out)
}

/*
MoveList preallocates storage for the maximum possible number of moves in
a chess position (218) to avoid dynamic allocation during move generation.
See https://www.talkchess.com/forum/viewtopic.php?t=61792
*/
type MoveList struct {
	Moves [218]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of Moves.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }
