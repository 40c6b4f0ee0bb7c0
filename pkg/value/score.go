package value

import "fmt"

// Score is a midgame/endgame pair. The zero Score is S(0, 0).
type Score struct {
	mg, eg Value
}

// Side to move bonus.
var Tempo = S(48, 22)

func S(middle, end int) Score {
	return Score{mg: Value(middle), eg: Value(end)}
}

func MakeScore(mg, eg Value) Score {
	return Score{mg: mg, eg: eg}
}

func (s Score) Mg() Value {
	return s.mg
}

func (s Score) Eg() Value {
	return s.eg
}

func (s *Score) Add(o Score) {
	s.mg += o.mg
	s.eg += o.eg
}

func (s *Score) Sub(o Score) {
	s.mg -= o.mg
	s.eg -= o.eg
}

func (s Score) Plus(o Score) Score {
	s.Add(o)
	return s
}

func (s Score) Minus(o Score) Score {
	s.Sub(o)
	return s
}

func (s Score) Neg() Score {
	return Score{mg: -s.mg, eg: -s.eg}
}

func (s Score) Mul(i int) Score {
	return Score{mg: s.mg * Value(i), eg: s.eg * Value(i)}
}

// Scale is i*s, the same as s.Mul(i).
func Scale(i int, s Score) Score {
	return s.Mul(i)
}

// Interpolate blends the two lanes: phase == maxPhase is pure midgame,
// phase == 0 pure endgame.
func (s Score) Interpolate(phase, maxPhase int) Value {
	return Value((int(s.mg)*phase + int(s.eg)*(maxPhase-phase)) / maxPhase)
}

func (s Score) String() string {
	return fmt.Sprintf("Score(%d, %d)", s.mg, s.eg)
}
