package common

const (
	SideWhite = true
	SideBlack = false
)

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a colored piece. White pieces use slots 1..6, black pieces 9..14.
type Piece int

const (
	PieceNone Piece = 0
	blackFlag       = 8
	PieceNb         = 17
)

func MakePiece(pieceType int, side bool) Piece {
	if pieceType == Empty {
		return PieceNone
	}
	if side {
		return Piece(pieceType)
	}
	return Piece(pieceType | blackFlag)
}

func (p Piece) Type() int {
	return int(p) &^ blackFlag
}

func (p Piece) Side() bool {
	return int(p)&blackFlag == 0
}

const pieceNames = "pnbrqk"

func (p Piece) String() string {
	var pt = p.Type()
	if pt < Pawn || pt > King {
		return "-"
	}
	var ch = pieceNames[pt-Pawn]
	if p.Side() {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     int64
	MainLine []string
}

type UciScore struct {
	Centipawns int
	Mate       int
}
