// Package value holds the units the search and evaluation talk in:
// bounded position values, midgame/endgame scores, cache bound flags
// and the conversions applied at cache and display boundaries.
//
// Nothing here checks ranges. Callers keep values inside the sentinels.
package value

import "strconv"

type Value int32

const (
	Draw     Value = 0
	KnownWin Value = 15000
	Mate     Value = 30000
	Infinite Value = 30001
	None     Value = 30002
)

// MateIn returns the value of giving mate ply half-moves from the current node.
func MateIn(ply int) Value {
	return Mate - Value(ply)
}

// MatedIn returns the value of being mated ply half-moves from the current node.
func MatedIn(ply int) Value {
	return -Mate + Value(ply)
}

func (v Value) Add(i int) Value {
	return v + Value(i)
}

func (v Value) Mul(i int) Value {
	return v * Value(i)
}

func (v Value) Div(i int) Value {
	return v / Value(i)
}

func (v Value) String() string {
	switch v {
	case None:
		return "none"
	case Infinite:
		return "inf"
	case -Infinite:
		return "-inf"
	}
	return strconv.Itoa(int(v))
}
