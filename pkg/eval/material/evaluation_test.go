package eval

import (
	"testing"

	"github.com/counterchess/valuecore/pkg/common"
	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
)

func positionFromFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	var opt, err = chess.FEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return chess.NewGame(opt).Position()
}

func TestEvaluateStartPosition(t *testing.T) {
	var e = NewEvaluationService()
	var p = chess.StartingPosition()
	var score, phase = e.EvaluateScore(p)
	if score != (value.Score{}) || phase != MaxPhase {
		t.Error(score, phase)
	}
	if got := e.Evaluate(p); got != value.Tempo.Mg() {
		t.Error(got)
	}
	var black = positionFromFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if got := e.Evaluate(black); got != value.Tempo.Mg() {
		t.Error("black to move", got)
	}
}

func TestEvaluateEndgame(t *testing.T) {
	var e = NewEvaluationService()
	var tests = []struct {
		fen  string
		want value.Value
	}{
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", value.QueenValueEndgame + value.Tempo.Eg()},
		{"4k3/8/8/8/8/8/8/3QK3 b - - 0 1", -value.QueenValueEndgame + value.Tempo.Eg()},
		{"4k3/4p3/8/8/8/8/8/4K3 w - - 0 1", -value.PawnValueEndgame + value.Tempo.Eg()},
	}
	for _, test := range tests {
		if got := e.Evaluate(positionFromFEN(t, test.fen)); got != test.want {
			t.Error(test.fen, got, test.want)
		}
	}
}

func TestPhase(t *testing.T) {
	if Phase(0) != 0 || Phase(EndgameLimit) != 0 {
		t.Error("endgame")
	}
	if Phase(MidgameLimit) != MaxPhase || Phase(20000) != MaxPhase {
		t.Error("midgame")
	}
	var prev = 0
	for npm := value.Value(0); npm < 17000; npm += 100 {
		var phase = Phase(npm)
		if phase < prev {
			t.Error("phase not monotonic", npm)
		}
		prev = phase
	}
}

func TestPieceFromChess(t *testing.T) {
	if PieceFromChess(chess.WhitePawn) != common.MakePiece(common.Pawn, common.SideWhite) ||
		PieceFromChess(chess.BlackQueen) != common.MakePiece(common.Queen, common.SideBlack) ||
		PieceFromChess(chess.NoPiece) != common.PieceNone {
		t.Error("piece mapping")
	}
}

func TestTrace(t *testing.T) {
	var e = NewEvaluationService()
	var terms = e.Trace(positionFromFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"))
	if len(terms) != 3 {
		t.Fatal(terms)
	}
	if terms[0].Square != "d1" || terms[0].Piece.String() != "Q" ||
		terms[0].Score != value.MakeScore(value.QueenValueMidgame, value.QueenValueEndgame) {
		t.Error(terms[0])
	}
	if terms[2].Square != "e8" || terms[2].Piece.String() != "k" {
		t.Error(terms[2])
	}
}
