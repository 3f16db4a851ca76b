// board.go implements Board: the immutable chess position value this
// package is built around. Every mutator returns a new Board rather than
// modifying the receiver in place, so a Board can be freely shared, stored
// in a transposition table, or walked back over without defensive copies.

package zugzwang

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN record for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a complete, self-contained chess position: piece placement,
// side to move, castling rights, en passant target, the two move clocks,
// an incrementally maintained Zobrist hash, and the set of pieces giving
// check to the side to move.
type Board struct {
	pieces [12]BitBoard
	sides  [2]BitBoard
	squares [64]Piece

	side         Color
	castle       CastleRights
	epSquare     Square
	halfmove     int
	fullmove     int
	hash         Zobrist
	checkers     BitBoard
}

// NewBoard returns the standard chess starting position.
func NewBoard() Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("zugzwang: malformed built-in start FEN: %v", err))
	}
	return b
}

// Side returns the color to move.
func (b Board) Side() Color { return b.side }

// CastleRights returns the current castling-rights mask.
func (b Board) CastleRights() CastleRights { return b.castle }

// EnPassantSquare returns the current en passant target square, or
// [NoSquare] if none is available.
func (b Board) EnPassantSquare() Square { return b.epSquare }

// HalfmoveClock returns the count of plies since the last pawn move or
// capture, used for the fifty-move rule.
func (b Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the current full-move counter, incrementing after
// every Black move.
func (b Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the current Zobrist hash.
func (b Board) Hash() Zobrist { return b.hash }

// Checkers returns the set of enemy pieces currently attacking the side to
// move's king. An empty set means the side to move is not in check.
func (b Board) Checkers() BitBoard { return b.checkers }

// Occupancy returns the union of every occupied square.
func (b Board) Occupancy() BitBoard { return b.sides[ColorWhite] | b.sides[ColorBlack] }

// SideOccupancy returns the squares occupied by c's pieces.
func (b Board) SideOccupancy(c Color) BitBoard { return b.sides[c] }

// PieceBitboard returns the bitboard of every piece of kind p.
func (b Board) PieceBitboard(p Piece) BitBoard { return b.pieces[p] }

// PieceOn returns the piece occupying s, or [PieceNone] if s is empty.
func (b Board) PieceOn(s Square) Piece { return b.squares[s] }

// KingSquare returns the square of c's king.
func (b Board) KingSquare(c Color) Square { return b.pieces[NewPiece(King, c)].LSBSquare() }

// setPiece places p on the empty square s, updating every derived field in
// lockstep: the per-piece bitboard, the per-side occupancy bitboard, the
// square-indexed lookup table, and the Zobrist hash. This and removePiece
// are the only two places that ever touch pieces, sides, or squares.
func (b *Board) setPiece(p Piece, s Square) {
	b.pieces[p] = b.pieces[p].Set(s)
	b.sides[PieceColor(p)] = b.sides[PieceColor(p)].Set(s)
	b.squares[s] = p
	b.hash.hashPiece(p, s)
}

// removePiece removes whatever piece occupies s and returns it. Calling
// this on an empty square is a programmer error: the board has no
// well-defined "remove nothing" semantics, so it panics rather than
// silently doing nothing.
func (b *Board) removePiece(s Square) Piece {
	p := b.squares[s]
	if p == PieceNone {
		panic("zugzwang: removePiece called on an empty square")
	}
	b.pieces[p] = b.pieces[p].Clear(s)
	b.sides[PieceColor(p)] = b.sides[PieceColor(p)].Clear(s)
	b.squares[s] = PieceNone
	b.hash.hashPiece(p, s)
	return p
}

// computeCheckers performs a real attack computation: it finds side's king
// and asks, for each enemy piece kind, whether it attacks the king square.
// Sliding attacks are ray-cast against the current occupancy rather than
// looked up in a magic table.
func (b *Board) computeCheckers(side Color) BitBoard {
	king := b.KingSquare(side)
	enemy := Opposite(side)
	occ := b.Occupancy()

	var attackers BitBoard
	attackers |= pawnAttacks[side][king] & b.pieces[NewPiece(Pawn, enemy)]
	attackers |= knightAttacks[king] & b.pieces[NewPiece(Knight, enemy)]
	attackers |= kingAttacks[king] & b.pieces[NewPiece(King, enemy)]

	diagonal := b.pieces[NewPiece(Bishop, enemy)] | b.pieces[NewPiece(Queen, enemy)]
	attackers |= bishopRays(king, occ) & diagonal

	orthogonal := b.pieces[NewPiece(Rook, enemy)] | b.pieces[NewPiece(Queen, enemy)]
	attackers |= rookAttacksFrom(king, occ) & orthogonal

	return attackers
}

// IsAttacked reports whether square s is attacked by any piece of color by.
// Unlike [Board.Checkers], this is not restricted to a king square, so the
// move generator can use it to keep the king off attacked squares and to
// validate castling through-squares.
func (b *Board) IsAttacked(s Square, by Color) bool {
	occ := b.Occupancy()
	if pawnAttacks[Opposite(by)][s]&b.pieces[NewPiece(Pawn, by)] != 0 {
		return true
	}
	if knightAttacks[s]&b.pieces[NewPiece(Knight, by)] != 0 {
		return true
	}
	if kingAttacks[s]&b.pieces[NewPiece(King, by)] != 0 {
		return true
	}
	diagonal := b.pieces[NewPiece(Bishop, by)] | b.pieces[NewPiece(Queen, by)]
	if bishopRays(s, occ)&diagonal != 0 {
		return true
	}
	orthogonal := b.pieces[NewPiece(Rook, by)] | b.pieces[NewPiece(Queen, by)]
	if rookAttacksFrom(s, occ)&orthogonal != 0 {
		return true
	}
	return false
}

// MakeMove applies m to b and returns the resulting position. b itself is
// left untouched: Board is copied by value (every field is a fixed-size
// array or scalar), so nb starts as an independent snapshot that the
// method mutates freely.
func (b Board) MakeMove(m Move) Board {
	nb := b

	src, dest := m.GetSrc(), m.GetDest()
	if src == dest {
		panic("zugzwang: MakeMove called with src == dest")
	}

	moving := nb.removePiece(src)

	if PieceKind(moving) == Pawn || m.IsCapture() {
		nb.halfmove = 0
	} else {
		nb.halfmove++
	}

	switch m.GetType() {
	case EnPassant:
		capSq := FromFileRank(squareFile(dest), squareRank(src))
		nb.removePiece(capSq)
	case KingCastle, QueenCastle:
		rc := GetRookCastling(dest)
		rook := nb.removePiece(rc.src)
		nb.setPiece(rook, rc.dest)
	default:
		if m.IsCapture() {
			nb.removePiece(dest)
		}
	}

	arriving := moving
	if m.IsPromotion() {
		arriving = m.GetProm(nb.side)
	}
	nb.setPiece(arriving, dest)

	if nb.epSquare != NoSquare {
		nb.hash.hashEnpassant(nb.epSquare)
		nb.epSquare = NoSquare
	}
	if m.GetType() == DoublePawn {
		nb.epSquare = FromFileRank(squareFile(src), (squareRank(src)+squareRank(dest))/2)
		nb.hash.hashEnpassant(nb.epSquare)
	}

	newCastle := UpdateCastleRights(nb.castle, src, dest)
	if newCastle != nb.castle {
		nb.hash.hashCastle(nb.castle)
		nb.hash.hashCastle(newCastle)
		nb.castle = newCastle
	}

	if nb.side == ColorBlack {
		nb.fullmove++
	}
	nb.hash.hashSide()
	nb.side = Opposite(nb.side)

	nb.checkers = nb.computeCheckers(nb.side)
	return nb
}

// NullMove returns the position with the move unchanged but the side to
// move flipped, as used by null-move search pruning. The side to move
// must not currently be in check: passing while in check has no legal
// chess meaning, so this is a precondition violation, not a runtime
// condition to recover from.
func (b Board) NullMove() Board {
	if b.checkers != EmptyBB {
		panic("zugzwang: NullMove called while in check")
	}
	nb := b

	if nb.epSquare != NoSquare {
		nb.hash.hashEnpassant(nb.epSquare)
		nb.epSquare = NoSquare
	}
	if nb.side == ColorBlack {
		nb.fullmove++
	}
	nb.hash.hashSide()
	nb.side = Opposite(nb.side)
	nb.checkers = nb.computeCheckers(nb.side)
	return nb
}

// RepetitionKey returns the value used to detect repeated positions. It is
// exactly the Zobrist hash: two boards agreeing on every field the hash
// covers (placement, side, castling rights, en passant square) are the
// same position for repetition purposes.
func (b Board) RepetitionKey() uint64 { return uint64(b.hash) }

// MaterialSignature returns a compact, hash-independent summary of the
// pieces on the board: useful for detecting the insufficient-material
// draw condition or as a coarse transposition-table bucket key distinct
// from the full Zobrist hash.
func (b Board) MaterialSignature() [12]int {
	var sig [12]int
	for p := WhitePawn; p <= BlackKing; p++ {
		sig[p] = b.pieces[p].PopCount()
	}
	return sig
}

// FromFEN parses a Forsyth-Edwards Notation record into a Board. It
// returns [ErrInvalidFEN] or one of its companions for any field that
// fails to parse; it never panics on malformed input.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var b Board
	for p := WhitePawn; p <= BlackKing; p++ {
		b.pieces[p] = EmptyBB
	}
	for s := 0; s < 64; s++ {
		b.squares[s] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidPiecePlacement, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := PieceFromChar(byte(c))
			if !ok || file >= 8 {
				return Board{}, fmt.Errorf("%w: bad rank %q", ErrInvalidPiecePlacement, rankStr)
			}
			b.setPiece(piece, FromFileRank(file, rank))
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %q does not sum to 8 files", ErrInvalidPiecePlacement, rankStr)
		}
	}
	if b.pieces[WhiteKing] == EmptyBB || b.pieces[BlackKing] == EmptyBB {
		return Board{}, fmt.Errorf("%w: each side needs a king", ErrInvalidPiecePlacement)
	}

	switch fields[1] {
	case "w":
		b.side = ColorWhite
	case "b":
		b.side = ColorBlack
	default:
		return Board{}, fmt.Errorf("%w: %q", ErrInvalidActiveColor, fields[1])
	}

	castle, err := parseCastleRights(fields[2])
	if err != nil {
		return Board{}, err
	}
	b.castle = castle
	b.hash.hashCastle(b.castle)

	epSquare, ok := SquareFromString(fields[3])
	if !ok {
		return Board{}, fmt.Errorf("%w: %q", ErrInvalidEnPassant, fields[3])
	}
	if epSquare != NoSquare {
		rank := squareRank(epSquare)
		if rank != 2 && rank != 5 {
			return Board{}, fmt.Errorf("%w: %q is not on rank 3 or rank 6", ErrInvalidEnPassant, fields[3])
		}
		b.hash.hashEnpassant(epSquare)
	}
	b.epSquare = epSquare

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, fmt.Errorf("%w: %q", ErrInvalidMoveCounter, fields[4])
	}
	b.halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return Board{}, fmt.Errorf("%w: %q", ErrInvalidMoveCounter, fields[5])
	}
	b.fullmove = fullmove

	if b.side == ColorWhite {
		b.hash.hashSide()
	}

	b.checkers = b.computeCheckers(b.side)
	return b, nil
}

// ToFEN renders b back into Forsyth-Edwards Notation.
func (b Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[FromFileRank(file, rank)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(PieceChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.side == ColorWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castleString(b.castle))

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(Square2String[b.epSquare])
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}

// String renders b as an 8x8 grid of FEN piece letters, for debugging.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.squares[FromFileRank(file, rank)]
			if p == PieceNone {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(PieceChar(p))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
