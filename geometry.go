// geometry.go contains the packed integer encodings for squares, files,
// ranks, colors, and pieces that the rest of the package builds on.

package zugzwang

// Square is an integer in [0, 64), encoded as rank*8 + file (little-endian
// rank-file layout): bit i of a [BitBoard] corresponds to square i.
type Square = int

// NoSquare is the sentinel used wherever a square is optional (en passant
// target, off-board pawn capture squares) instead of carrying a separate
// boolean.
const NoSquare Square = -1

// Sentinel squares used by castling rules and rook castling destinations.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// Square2String maps every board square to its algebraic-notation string.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// squareFile returns the file in [0, 8) of the given square.
func squareFile(s Square) int { return s & 7 }

// squareRank returns the rank in [0, 8) of the given square.
func squareRank(s Square) int { return s >> 3 }

// FromFileRank packs a file and rank into a square index.
func FromFileRank(file, rank int) Square { return (rank<<3 | file) & 63 }

// SquareFromString parses an algebraic square ("e4") into a [Square], or
// [NoSquare] for "-". ok is false for any other string that is not a
// file letter a-h followed by a rank digit 1-8.
func SquareFromString(s string) (Square, bool) {
	if s == "-" {
		return NoSquare, true
	}
	if len(s) != 2 {
		return NoSquare, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return FromFileRank(file, rank), true
}

// Color distinguishes the two sides. White = 0, Black = 1, so `1 ^ side`
// flips it and `side` itself is usable as an array index (side_index).
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opposite returns the other color.
func Opposite(c Color) Color { return 1 ^ c }

// PieceType is one of the six chess piece kinds, indices 0..6.
type PieceType = int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a color and a piece type as color*6 + type, indices 0..12:
// the first six values are White's pieces, the last six Black's.
type Piece = int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	// PieceNone marks an empty square; never a valid bitboard/piece_map index.
	PieceNone = -1
)

// NewPiece packs a piece type and color into a [Piece].
func NewPiece(t PieceType, c Color) Piece { return c*6 + t }

// PieceColor returns the color of a packed piece.
func PieceColor(p Piece) Color {
	if p < 6 {
		return ColorWhite
	}
	return ColorBlack
}

// PieceKind returns the piece type of a packed piece.
func PieceKind(p Piece) PieceType { return p % 6 }

// pieceChars maps each packed piece to its FEN character: uppercase white,
// lowercase black, matching the closed WP,WN,WB,WR,WQ,WK,BP,BN,BB,BR,BQ,BK table.
var pieceChars = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// PieceChar returns the FEN character for a packed piece.
func PieceChar(p Piece) byte { return pieceChars[p] }

// PieceFromChar is the closed inverse of [PieceChar]. ok is false for any
// character that is not a recognized piece letter.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	}
	return PieceNone, false
}

// PromotionPieces maps [Color] and promotion choice (knight, bishop, rook,
// queen, in that order) to the concrete promoted piece.
var PromotionPieces = [2][4]Piece{
	{WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen},
	{BlackKnight, BlackBishop, BlackRook, BlackQueen},
}
