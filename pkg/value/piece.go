package value

import "github.com/counterchess/valuecore/pkg/common"

// Changing these means retuning the piece-square tables and the game phase limits.
const (
	PawnValueMidgame   Value = 0x0C6
	PawnValueEndgame   Value = 0x102
	KnightValueMidgame Value = 0x331
	KnightValueEndgame Value = 0x34E
	BishopValueMidgame Value = 0x344
	BishopValueEndgame Value = 0x359
	RookValueMidgame   Value = 0x4F6
	RookValueEndgame   Value = 0x4FE
	QueenValueMidgame  Value = 0x9D9
	QueenValueEndgame  Value = 0x9FE
)

var pieceValueMidgame = [common.PieceNb]Value{
	0,
	PawnValueMidgame, KnightValueMidgame, BishopValueMidgame,
	RookValueMidgame, QueenValueMidgame,
	0, 0, 0,
	PawnValueMidgame, KnightValueMidgame, BishopValueMidgame,
	RookValueMidgame, QueenValueMidgame,
	0, 0, 0,
}

var pieceValueEndgame = [common.PieceNb]Value{
	0,
	PawnValueEndgame, KnightValueEndgame, BishopValueEndgame,
	RookValueEndgame, QueenValueEndgame,
	0, 0, 0,
	PawnValueEndgame, KnightValueEndgame, BishopValueEndgame,
	RookValueEndgame, QueenValueEndgame,
	0, 0, 0,
}

func PieceValueMidgame(p common.Piece) Value {
	return pieceValueMidgame[p]
}

func PieceValueEndgame(p common.Piece) Value {
	return pieceValueEndgame[p]
}

// Piece types index the white half of the tables.
func PieceTypeValueMidgame(pieceType int) Value {
	return pieceValueMidgame[pieceType]
}

func PieceTypeValueEndgame(pieceType int) Value {
	return pieceValueEndgame[pieceType]
}

func PieceScore(p common.Piece) Score {
	return Score{mg: pieceValueMidgame[p], eg: pieceValueEndgame[p]}
}
