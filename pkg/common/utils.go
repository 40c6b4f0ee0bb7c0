package common

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func ParsePiece(ch rune) Piece {
	var side = unicode.IsUpper(ch)
	var spiece = string(unicode.ToLower(ch))
	var i = strings.Index(pieceNames, spiece)
	if i < 0 {
		return PieceNone
	}
	return MakePiece(i+Pawn, side)
}
