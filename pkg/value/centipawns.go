package value

import (
	"fmt"
	"strconv"

	"github.com/counterchess/valuecore/pkg/common"
)

// divRound divides rounding half away from zero; d > 0.
func divRound(n, d int) int {
	if n >= 0 {
		return (2*n + d) / (2 * d)
	}
	return -((-2*n + d) / (2 * d))
}

func ToCentipawns(v Value) int {
	return divRound(int(v)*100, int(PawnValueMidgame))
}

func FromCentipawns(cp int) Value {
	return Value(divRound(cp*int(PawnValueMidgame), 100))
}

func isSentinel(v Value) bool {
	return v > Mate || v < -Mate
}

// UciScore converts v for the uci "score" field. Mates are counted in moves,
// a node that is already mated reports mate -1 so Mate is never 0 for a mate.
func (b MateBand) UciScore(v Value) common.UciScore {
	if plies, ok := b.MateDistance(v); ok {
		if b.IsWin(v) {
			return common.UciScore{Mate: common.Max(1, (plies+1)/2)}
		}
		return common.UciScore{Mate: -common.Max(1, (1-plies)/2)}
	}
	return common.UciScore{Centipawns: ToCentipawns(v)}
}

// UciString renders v as "cp 34" or "mate -2". Sentinels print by name.
func (b MateBand) UciString(v Value) string {
	if isSentinel(v) {
		return v.String()
	}
	var score = b.UciScore(v)
	if score.Mate != 0 {
		return "mate " + strconv.Itoa(score.Mate)
	}
	return "cp " + strconv.Itoa(score.Centipawns)
}

// Format renders v for people: "+0.34", "-2.50", "mate in 3", "mated in 2".
func (b MateBand) Format(v Value) string {
	if isSentinel(v) {
		return v.String()
	}
	var score = b.UciScore(v)
	if score.Mate > 0 {
		return fmt.Sprintf("mate in %d", score.Mate)
	}
	if score.Mate < 0 {
		return fmt.Sprintf("mated in %d", -score.Mate)
	}
	var cp = score.Centipawns
	var sign = "+"
	if cp < 0 {
		sign = "-"
		cp = -cp
	} else if cp == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d.%02d", sign, cp/100, cp%100)
}
