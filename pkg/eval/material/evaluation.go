package eval

import (
	"sort"

	"github.com/counterchess/valuecore/pkg/common"
	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
)

const (
	MidgameLimit = 15713
	EndgameLimit = 3915
	MaxPhase     = 128
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func PieceFromChess(piece chess.Piece) common.Piece {
	var pieceType int
	switch piece.Type() {
	case chess.Pawn:
		pieceType = common.Pawn
	case chess.Knight:
		pieceType = common.Knight
	case chess.Bishop:
		pieceType = common.Bishop
	case chess.Rook:
		pieceType = common.Rook
	case chess.Queen:
		pieceType = common.Queen
	case chess.King:
		pieceType = common.King
	default:
		return common.PieceNone
	}
	return common.MakePiece(pieceType, piece.Color() == chess.White)
}

// Phase maps non-pawn material to [0, MaxPhase], MaxPhase being the opening.
func Phase(nonPawnMaterial value.Value) int {
	var npm = common.Max(EndgameLimit, common.Min(MidgameLimit, int(nonPawnMaterial)))
	return (npm - EndgameLimit) * MaxPhase / (MidgameLimit - EndgameLimit)
}

// EvaluateScore returns the material balance from white's point of view and the game phase.
func (e *EvaluationService) EvaluateScore(p *chess.Position) (score value.Score, phase int) {
	var nonPawnMaterial value.Value
	for _, piece := range p.Board().SquareMap() {
		var cp = PieceFromChess(piece)
		if cp == common.PieceNone {
			continue
		}
		if cp.Side() {
			score.Add(value.PieceScore(cp))
		} else {
			score.Sub(value.PieceScore(cp))
		}
		if cp.Type() != common.Pawn {
			nonPawnMaterial += value.PieceValueMidgame(cp)
		}
	}
	return score, Phase(nonPawnMaterial)
}

// Evaluate returns the value for the side to move.
func (e *EvaluationService) Evaluate(p *chess.Position) value.Value {
	var score, phase = e.EvaluateScore(p)
	var white = p.Turn() == chess.White
	if white {
		score.Add(value.Tempo)
	} else {
		score.Sub(value.Tempo)
	}
	var eval = score.Interpolate(phase, MaxPhase)
	if !white {
		eval = -eval
	}
	return eval
}

type Term struct {
	Square string
	Piece  common.Piece
	Score  value.Score
}

// Trace lists the contribution of every piece, white positive, ordered by square.
func (e *EvaluationService) Trace(p *chess.Position) []Term {
	var squares = p.Board().SquareMap()
	var keys = make([]int, 0, len(squares))
	for sq := range squares {
		keys = append(keys, int(sq))
	}
	sort.Ints(keys)
	var result = make([]Term, 0, len(keys))
	for _, sq := range keys {
		var piece = PieceFromChess(squares[chess.Square(sq)])
		var score = value.PieceScore(piece)
		if !piece.Side() {
			score = score.Neg()
		}
		result = append(result, Term{
			Square: common.SquareName(sq),
			Piece:  piece,
			Score:  score,
		})
	}
	return result
}
