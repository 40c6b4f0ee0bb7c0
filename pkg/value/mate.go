package value

// MateBand knows how deep mate scores can reach. MaxPly comes from the
// search configuration: any value within MaxPly of ±Mate is a mate distance.
type MateBand struct {
	MaxPly int
}

func NewMateBand(maxPly int) MateBand {
	return MateBand{MaxPly: maxPly}
}

func (b MateBand) win() Value {
	return Mate - Value(b.MaxPly)
}

func (b MateBand) IsWin(v Value) bool {
	return v >= b.win()
}

func (b MateBand) IsLoss(v Value) bool {
	return v <= -b.win()
}

func (b MateBand) IsMate(v Value) bool {
	return b.IsWin(v) || b.IsLoss(v)
}

// ToCache re-bases a value computed ply half-moves below the root
// before it is stored in the position cache.
// A mate survives the trip only while ply plus its distance stays within MaxPly.
func (b MateBand) ToCache(v Value, ply int) Value {
	if b.IsWin(v) {
		return v - Value(ply)
	}
	if b.IsLoss(v) {
		return v + Value(ply)
	}
	return v
}

// FromCache undoes ToCache for a lookup made at ply.
func (b MateBand) FromCache(v Value, ply int) Value {
	if b.IsWin(v) {
		return v + Value(ply)
	}
	if b.IsLoss(v) {
		return v - Value(ply)
	}
	return v
}

// MateDistance returns the number of plies to mate, positive when the side
// to move mates, negative when it gets mated. Sentinels beyond ±Mate are not mates.
func (b MateBand) MateDistance(v Value) (int, bool) {
	if v > Mate || v < -Mate {
		return 0, false
	}
	if b.IsWin(v) {
		return int(Mate - v), true
	}
	if b.IsLoss(v) {
		return -int(Mate + v), true
	}
	return 0, false
}
