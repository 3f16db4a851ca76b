// movegen.go implements legal move generation by the copy-make pattern:
// generate every pseudo-legal move, apply it to a scratch copy of the
// board, and keep it only if the mover's own king is not left in check.
// This naturally handles pins and discovered checks without a separate
// pin-detection pass, at the cost of one extra checkers computation per
// candidate move.

package zugzwang

// GenMoves returns every legal move available to the side to move in b.
func GenMoves(b Board) MoveList {
	var pseudo MoveList
	genPseudoLegalMoves(b, &pseudo)

	var legal MoveList
	for _, m := range pseudo.Slice() {
		next := b.MakeMove(m)
		if !next.IsAttacked(next.KingSquare(b.side), next.side) {
			legal.Push(m)
		}
	}
	return legal
}

// genPseudoLegalMoves appends every pseudo-legal move for the side to move
// in b to list, without regard to whether it leaves the mover's king in
// check.
func genPseudoLegalMoves(b Board, list *MoveList) {
	side := b.side
	enemy := Opposite(side)
	own := b.SideOccupancy(side)
	occ := b.Occupancy()

	genPawnMoves(b, list)

	for _, kind := range [3]PieceType{Knight, Bishop, Rook} {
		bb := b.PieceBitboard(NewPiece(kind, side))
		for bb != EmptyBB {
			src := bb.PopLSB()
			genLeaperOrSlider(list, src, kind, occ, own, b)
		}
	}
	queens := b.PieceBitboard(NewPiece(Queen, side))
	for queens != EmptyBB {
		src := queens.PopLSB()
		targets := queenAttacksFrom(src, occ) &^ own
		emitQuietsAndCaptures(list, src, targets, b)
	}

	king := b.KingSquare(side)
	kingTargets := kingAttacks[king] &^ own
	emitQuietsAndCaptures(list, king, kingTargets, b)
	genCastleMoves(b, list, side, enemy)
}

// genLeaperOrSlider dispatches to the right attack generator for a knight,
// bishop, or rook standing on src and pushes its quiet moves and captures.
func genLeaperOrSlider(list *MoveList, src Square, kind PieceType, occ, own BitBoard, b Board) {
	var targets BitBoard
	switch kind {
	case Knight:
		targets = knightAttacks[src] &^ own
	case Bishop:
		targets = bishopRays(src, occ) &^ own
	case Rook:
		targets = rookAttacksFrom(src, occ) &^ own
	}
	emitQuietsAndCaptures(list, src, targets, b)
}

// emitQuietsAndCaptures pushes one move per destination in targets,
// tagging each as Capture or Quiet depending on whether dest is occupied.
func emitQuietsAndCaptures(list *MoveList, src Square, targets BitBoard, b Board) {
	for targets != EmptyBB {
		dest := targets.PopLSB()
		if b.PieceOn(dest) != PieceNone {
			list.Push(NewMove(src, dest, Capture))
		} else {
			list.Push(NewMove(src, dest, Quiet))
		}
	}
}

// genPawnMoves generates pawn pushes (single, double), captures (including
// en passant), and the four promotion/promotion-capture variants.
func genPawnMoves(b Board, list *MoveList) {
	side := b.side
	occ := b.Occupancy()
	enemyOcc := b.SideOccupancy(Opposite(side))

	pushDelta, startRank, promoRank := 8, 1, 7
	if side == ColorBlack {
		pushDelta, startRank, promoRank = -8, 6, 0
	}

	pawns := b.PieceBitboard(NewPiece(Pawn, side))
	for pawns != EmptyBB {
		src := pawns.PopLSB()
		rank := squareRank(src)
		oneStep := src + pushDelta

		if oneStep >= 0 && oneStep < 64 && !occ.Test(oneStep) {
			pushPawnMove(list, src, oneStep, squareRank(oneStep) == promoRank)
			if rank == startRank {
				twoStep := oneStep + pushDelta
				if !occ.Test(twoStep) {
					list.Push(NewMove(src, twoStep, DoublePawn))
				}
			}
		}

		for _, capDest := range pawnCaptureSquares(src, side) {
			if capDest == NoSquare {
				continue
			}
			if enemyOcc.Test(capDest) {
				pushPawnCapture(list, src, capDest, squareRank(capDest) == promoRank)
			} else if capDest == b.EnPassantSquare() {
				list.Push(NewMove(src, capDest, EnPassant))
			}
		}
	}
}

// pushPawnMove appends a quiet pawn push, expanding to all four promotion
// variants when promoting.
func pushPawnMove(list *MoveList, src, dest Square, promoting bool) {
	if !promoting {
		list.Push(NewMove(src, dest, Quiet))
		return
	}
	for _, t := range [4]MoveType{PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen} {
		list.Push(NewMove(src, dest, t))
	}
}

// pushPawnCapture appends a pawn capture, expanding to all four
// promotion-capture variants when promoting.
func pushPawnCapture(list *MoveList, src, dest Square, promoting bool) {
	if !promoting {
		list.Push(NewMove(src, dest, Capture))
		return
	}
	for _, t := range [4]MoveType{PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen} {
		list.Push(NewMove(src, dest, t))
	}
}

// pawnCaptureSquares returns the (up to two) squares a pawn of the given
// color standing on src could capture onto, or [NoSquare] where a capture
// would run off the board.
func pawnCaptureSquares(src Square, side Color) [2]Square {
	file := squareFile(src)
	delta := 8
	if side == ColorBlack {
		delta = -8
	}
	var out [2]Square
	out[0], out[1] = NoSquare, NoSquare
	if file > 0 {
		out[0] = src + delta - 1
	}
	if file < 7 {
		out[1] = src + delta + 1
	}
	return out
}

// genCastleMoves appends the side's available castling moves, honoring
// rights, the emptiness of the squares the king and rook pass over, and
// that the king does not start, pass through, or land on an attacked
// square.
func genCastleMoves(b Board, list *MoveList, side, enemy Color) {
	occ := b.Occupancy()

	if side == ColorWhite {
		if b.CastleRights()&CastleWK != 0 && !occ.Test(F1) && !occ.Test(G1) &&
			!b.IsAttacked(E1, enemy) && !b.IsAttacked(F1, enemy) && !b.IsAttacked(G1, enemy) {
			list.Push(NewMove(E1, G1, KingCastle))
		}
		if b.CastleRights()&CastleWQ != 0 && !occ.Test(D1) && !occ.Test(C1) && !occ.Test(A1+1) &&
			!b.IsAttacked(E1, enemy) && !b.IsAttacked(D1, enemy) && !b.IsAttacked(C1, enemy) {
			list.Push(NewMove(E1, C1, QueenCastle))
		}
		return
	}
	if b.CastleRights()&CastleBK != 0 && !occ.Test(F8) && !occ.Test(G8) &&
		!b.IsAttacked(E8, enemy) && !b.IsAttacked(F8, enemy) && !b.IsAttacked(G8, enemy) {
		list.Push(NewMove(E8, G8, KingCastle))
	}
	if b.CastleRights()&CastleBQ != 0 && !occ.Test(D8) && !occ.Test(C8) && !occ.Test(A8+1) &&
		!b.IsAttacked(E8, enemy) && !b.IsAttacked(D8, enemy) && !b.IsAttacked(C8, enemy) {
		list.Push(NewMove(E8, C8, QueenCastle))
	}
}
