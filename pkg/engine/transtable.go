package engine

import (
	"sync/atomic"

	"github.com/counterchess/valuecore/pkg/value"
)

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

//16 bytes
type transEntry struct {
	gate  int32
	key32 uint32
	date  uint16
	value int16
	eval  int16
	depth int8
	bound value.Bound
}

// TransEntry is a copy of a cache slot with the value already re-based
// to the height it was read at.
type TransEntry struct {
	Depth int
	Value value.Value
	Eval  value.Value
	Bound value.Bound
}

// Cutoff reports whether the entry alone decides a node searched to depth with window (alpha, beta).
func (e TransEntry) Cutoff(depth int, alpha, beta value.Value) bool {
	if e.Depth < depth {
		return false
	}
	return e.Value >= beta && value.IsLowerBound(e.Bound) ||
		e.Value <= alpha && value.IsUpperBound(e.Bound)
}

type TransTable struct {
	megabytes int
	band      value.MateBand
	entries   []transEntry
	date      uint16
	mask      uint32
}

const evalDepth = -1

func NewTransTable(options Options) *TransTable {
	var size = roundPowerOfTwo(1024 * 1024 * options.Hash / 16)
	return &TransTable{
		megabytes: options.Hash,
		band:      options.MateBand(),
		entries:   make([]transEntry, size),
		mask:      uint32(size - 1),
	}
}

func (tt *TransTable) Size() int {
	return tt.megabytes
}

func (tt *TransTable) IncDate() {
	tt.date = (tt.date + 1) & 0x7ff
}

func (tt *TransTable) Clear() {
	tt.date = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

// Read looks key up for a node at height plies from the root.
func (tt *TransTable) Read(key uint64, height int) (result TransEntry, ok bool) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		if entry.key32 == uint32(key>>32) && entry.bound != value.BoundNone {
			entry.date = tt.date
			result = TransEntry{
				Depth: int(entry.depth),
				Value: value.None,
				Eval:  value.None,
				Bound: entry.bound,
			}
			if entry.bound != value.BoundEval {
				result.Value = tt.band.FromCache(value.Value(entry.value), height)
			}
			if value.IsEval(entry.bound) {
				result.Eval = value.Value(entry.eval)
			}
			ok = true
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
	return
}

// Update stores a search result v found at height plies from the root.
func (tt *TransTable) Update(key uint64, depth, height int, v value.Value, bound value.Bound) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		var sameKey = entry.key32 == uint32(key>>32)
		var replace bool
		if sameKey {
			replace = depth >= int(entry.depth)-3 || bound == value.BoundExact
		} else {
			replace = entry.date != tt.date ||
				depth >= int(entry.depth)
		}
		if replace {
			if sameKey && value.IsEval(entry.bound) {
				bound = bound.WithEval()
			} else {
				entry.eval = int16(value.None)
			}
			entry.key32 = uint32(key >> 32)
			entry.value = int16(tt.band.ToCache(v, height))
			entry.depth = int8(depth)
			entry.bound = bound
			entry.date = tt.date
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
}

// StoreEval keeps a static evaluation next to whatever search result the slot holds for key.
func (tt *TransTable) StoreEval(key uint64, eval value.Value) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		if entry.key32 == uint32(key>>32) && entry.bound != value.BoundNone {
			entry.bound = entry.bound.WithEval()
			entry.eval = int16(eval)
		} else if entry.bound == value.BoundNone || entry.date != tt.date ||
			entry.depth <= evalDepth {
			entry.key32 = uint32(key >> 32)
			entry.value = int16(value.None)
			entry.eval = int16(eval)
			entry.depth = evalDepth
			entry.bound = value.BoundEval
			entry.date = tt.date
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
}
