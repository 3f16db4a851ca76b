// bitboard.go implements the BitBoard primitive: a 64-bit set of squares
// with bitwise algebra, iteration, popcount, and vertical flip.

package zugzwang

import "math/bits"

// BitBoard is a nominal 64-bit set of squares, one bit per square under the
// little-endian rank-file layout. The newtype exists to stop accidental
// arithmetic mixing with square or piece indices.
type BitBoard uint64

// Predefined constants used throughout move generation and FEN formatting.
const (
	EmptyBB BitBoard = 0
	FullBB  BitBoard = 0xFFFFFFFFFFFFFFFF

	FileABB BitBoard = 0x0101010101010101
	FileBBB BitBoard = FileABB << 1
	FileCBB BitBoard = FileABB << 2
	FileDBB BitBoard = FileABB << 3
	FileEBB BitBoard = FileABB << 4
	FileFBB BitBoard = FileABB << 5
	FileGBB BitBoard = FileABB << 6
	FileHBB BitBoard = FileABB << 7

	Rank1BB BitBoard = 0xFF
	Rank2BB BitBoard = Rank1BB << (8 * 1)
	Rank3BB BitBoard = Rank1BB << (8 * 2)
	Rank4BB BitBoard = Rank1BB << (8 * 3)
	Rank5BB BitBoard = Rank1BB << (8 * 4)
	Rank6BB BitBoard = Rank1BB << (8 * 5)
	Rank7BB BitBoard = Rank1BB << (8 * 6)
	Rank8BB BitBoard = Rank1BB << (8 * 7)

	WhiteSideBB BitBoard = Rank1BB | Rank2BB | Rank3BB | Rank4BB
	BlackSideBB BitBoard = Rank5BB | Rank6BB | Rank7BB | Rank8BB

	LightSquaresBB BitBoard = 0x55AA55AA55AA55AA
	DarkSquaresBB  BitBoard = 0xAA55AA55AA55AA55

	notAFile BitBoard = ^FileABB
	notHFile BitBoard = ^FileHBB
	notAB    BitBoard = ^(FileABB | FileBBB)
	notGH    BitBoard = ^(FileGBB | FileHBB)
	not1st   BitBoard = ^Rank1BB
	not8th   BitBoard = ^Rank8BB
)

// squareBB returns the singleton bitboard containing only s.
func squareBB(s Square) BitBoard { return BitBoard(1) << uint(s) }

// Set returns b with square s added.
func (b BitBoard) Set(s Square) BitBoard { return b | squareBB(s) }

// Clear returns b with square s removed.
func (b BitBoard) Clear(s Square) BitBoard { return b &^ squareBB(s) }

// Test reports whether square s is a member of b.
func (b BitBoard) Test(s Square) bool { return b&squareBB(s) != 0 }

// IsEmpty reports whether b has no squares set.
func (b BitBoard) IsEmpty() bool { return b == EmptyBB }

// PopCount returns the number of squares set in b.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSBSquare returns the square of the least-significant set bit. Undefined
// (returns 64) when b is empty; callers that can receive an empty bitboard
// here have already violated a precondition.
func (b BitBoard) LSBSquare() Square { return bits.TrailingZeros64(uint64(b)) }

// PopLSB clears and returns the least-significant set square. Used by the
// standard iteration idiom `for bb != 0 { sq := bb.PopLSB() ... }`.
func (b *BitBoard) PopLSB() Square {
	s := b.LSBSquare()
	*b &= *b - 1
	return s
}

// Flip returns the vertical mirror of b: rank 1 swaps with rank 8, rank 2
// with rank 7, and so on. Implemented as a byte-swap because each rank
// occupies exactly one byte under LERF.
func (b BitBoard) Flip() BitBoard { return BitBoard(bits.ReverseBytes64(uint64(b))) }

// String renders b as an 8x8 grid, filled squares as '*' and empty as '.'.
func (b BitBoard) String() string {
	out := make([]byte, 0, 8*18)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Test(FromFileRank(file, rank)) {
				out = append(out, '*', ' ')
			} else {
				out = append(out, '.', ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
