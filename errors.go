// errors.go declares the sentinel errors returned by FEN parsing. Parse
// errors are ordinary values (band 1 of the error model): malformed input
// is expected to occur and callers are expected to handle it. Programmer
// errors (violating a function's preconditions, such as calling MakeMove
// with src == dest) panic instead, and are not declared here.

package zugzwang

import "errors"

var (
	// ErrInvalidFEN is returned for a FEN record that does not split into
	// exactly six space-separated fields, or whose castling-rights field
	// uses a character outside its alphabet.
	ErrInvalidFEN = errors.New("zugzwang: invalid FEN record")

	// ErrInvalidPiecePlacement is returned when the first FEN field does not
	// describe exactly 8 ranks of exactly 8 squares each, or when either
	// side has no king.
	ErrInvalidPiecePlacement = errors.New("zugzwang: invalid FEN piece placement field")

	// ErrInvalidActiveColor is returned when the second FEN field is not "w"
	// or "b".
	ErrInvalidActiveColor = errors.New("zugzwang: invalid FEN active color field")

	// ErrInvalidEnPassant is returned when the fourth FEN field is not "-" or
	// a well-formed algebraic square on rank 3 or rank 6.
	ErrInvalidEnPassant = errors.New("zugzwang: invalid FEN en passant field")

	// ErrInvalidMoveCounter is returned when the halfmove clock or fullmove
	// number field is not a non-negative base-10 integer.
	ErrInvalidMoveCounter = errors.New("zugzwang: invalid FEN move counter field")
)
