package value

// Bound tags a value stored in the position cache.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundUpper
	BoundLower
	BoundExact
	BoundEval
	BoundEvalUpper
	BoundEvalLower
)

func IsUpperBound(b Bound) bool {
	switch b {
	case BoundUpper, BoundExact, BoundEvalUpper:
		return true
	}
	return false
}

func IsLowerBound(b Bound) bool {
	switch b {
	case BoundLower, BoundExact, BoundEvalLower:
		return true
	}
	return false
}

// IsEval reports whether the entry also carries a static evaluation.
func IsEval(b Bound) bool {
	switch b {
	case BoundEval, BoundEvalUpper, BoundEvalLower:
		return true
	}
	return false
}

func (b Bound) IsUpper() bool { return IsUpperBound(b) }
func (b Bound) IsLower() bool { return IsLowerBound(b) }

// WithEval returns the evaluation-cache variant of b. Exact has none and is kept.
func (b Bound) WithEval() Bound {
	switch b {
	case BoundNone:
		return BoundEval
	case BoundUpper:
		return BoundEvalUpper
	case BoundLower:
		return BoundEvalLower
	}
	return b
}

// BoundFor tags a search result v obtained with window (alpha, beta).
func BoundFor(v, alpha, beta Value) Bound {
	if v <= alpha {
		return BoundUpper
	}
	if v >= beta {
		return BoundLower
	}
	return BoundExact
}

var boundNames = [...]string{"none", "upper", "lower", "exact", "eval", "eval-upper", "eval-lower"}

func (b Bound) String() string {
	if int(b) < len(boundNames) {
		return boundNames[b]
	}
	return "bound(?)"
}
