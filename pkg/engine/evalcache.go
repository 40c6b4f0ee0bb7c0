package engine

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
)

type EvaluateFunc func(p *chess.Position) value.Value

func PositionKey(p *chess.Position) uint64 {
	var hash = p.Hash()
	return binary.LittleEndian.Uint64(hash[:8])
}

func EvalCacheDecorator(evaluate EvaluateFunc) EvaluateFunc {
	const (
		Size     = 1 << 16
		SizeMask = Size - 1
		EvalMask = uint64(0xFFFF)
		KeyMask  = ^EvalMask
		EvalZero = 32768
	)
	var entries = make([]uint64, Size)
	return func(p *chess.Position) value.Value {
		var key = PositionKey(p)
		var entry = &entries[uint32(key)&SizeMask]
		var data = atomic.LoadUint64(entry)
		if data != 0 && data&KeyMask == key&KeyMask {
			return value.Value(int(data&EvalMask) - EvalZero)
		}
		var eval = evaluate(p)
		atomic.StoreUint64(entry, (key&KeyMask)|uint64(int(eval)+EvalZero))
		return eval
	}
}
