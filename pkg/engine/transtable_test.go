package engine

import (
	"sync"
	"testing"

	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
)

func newTestTable() *TransTable {
	var options = NewOptions()
	options.Hash = 1
	return NewTransTable(options)
}

func TestTransTableMateRebase(t *testing.T) {
	var tt = newTestTable()
	const key = uint64(0x1234567890abcdef)
	var v = value.MateIn(3)
	tt.Update(key, 6, 5, v, value.BoundExact)

	var entry, ok = tt.Read(key, 5)
	if !ok || entry.Value != v || entry.Bound != value.BoundExact || entry.Depth != 6 {
		t.Fatal(entry, ok)
	}
	entry, ok = tt.Read(key, 7)
	if !ok || entry.Value-v != 2 {
		t.Error("read at other height", entry.Value, v)
	}

	tt.Update(key, 8, 4, value.Value(123), value.BoundLower)
	entry, _ = tt.Read(key, 30)
	if entry.Value != 123 || entry.Bound != value.BoundLower {
		t.Error("plain value must not move", entry)
	}
}

func TestTransTableMiss(t *testing.T) {
	var tt = newTestTable()
	if _, ok := tt.Read(42, 0); ok {
		t.Error("empty table hit")
	}
	tt.Update(42, 3, 0, 10, value.BoundUpper)
	if _, ok := tt.Read(42|1<<40, 0); ok {
		t.Error("foreign key hit")
	}
	tt.Clear()
	if _, ok := tt.Read(42, 0); ok {
		t.Error("hit after clear")
	}
}

func TestTransTableEval(t *testing.T) {
	var tt = newTestTable()
	const key = uint64(77) << 32
	tt.StoreEval(key, 55)
	var entry, ok = tt.Read(key, 3)
	if !ok || entry.Bound != value.BoundEval || entry.Eval != 55 || entry.Value != value.None {
		t.Fatal(entry, ok)
	}
	if entry.Cutoff(evalDepth, -value.Infinite, value.Infinite) {
		t.Error("eval entry must not cut off")
	}

	tt.Update(key, 4, 3, 80, value.BoundLower)
	entry, _ = tt.Read(key, 3)
	if entry.Bound != value.BoundEvalLower || entry.Eval != 55 || entry.Value != 80 {
		t.Error("eval lost on update", entry)
	}

	tt.Update(key, 5, 3, 20, value.BoundUpper)
	entry, _ = tt.Read(key, 3)
	if entry.Bound != value.BoundEvalUpper || !entry.Bound.IsUpper() {
		t.Error(entry)
	}

	tt.Update(key+1, 2, 0, 0, value.BoundExact)
	tt.StoreEval(key+1, -12)
	entry, _ = tt.Read(key+1, 0)
	if entry.Bound != value.BoundExact || entry.Eval != value.None {
		t.Error("exact has no eval variant", entry)
	}
}

func TestTransEntryCutoff(t *testing.T) {
	var tests = []struct {
		entry       TransEntry
		alpha, beta value.Value
		want        bool
	}{
		{TransEntry{Depth: 5, Value: 100, Bound: value.BoundLower}, 0, 50, true},
		{TransEntry{Depth: 5, Value: 100, Bound: value.BoundUpper}, 0, 50, false},
		{TransEntry{Depth: 5, Value: -10, Bound: value.BoundEvalUpper}, 0, 50, true},
		{TransEntry{Depth: 5, Value: 20, Bound: value.BoundExact}, 0, 50, false},
		{TransEntry{Depth: 2, Value: 100, Bound: value.BoundExact}, 0, 50, false},
	}
	for i, test := range tests {
		if got := test.entry.Cutoff(4, test.alpha, test.beta); got != test.want {
			t.Error(i, got)
		}
	}
}

func TestTransTableConcurrent(t *testing.T) {
	var tt = newTestTable()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				var key = uint64(i*8+g) * 0x9E3779B97F4A7C15
				tt.Update(key, 3, i&15, value.MateIn(i&7), value.BoundExact)
				if entry, ok := tt.Read(key, i&15); ok && entry.Value != value.MateIn(i&7) {
					t.Error("torn entry", entry)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestEvalCacheDecorator(t *testing.T) {
	var calls int
	var evaluate = EvalCacheDecorator(func(p *chess.Position) value.Value {
		calls++
		return 321
	})
	var p = chess.StartingPosition()
	if evaluate(p) != 321 || evaluate(p) != 321 {
		t.Error("cached value")
	}
	if calls != 1 {
		t.Error("calls", calls)
	}
}

func TestTransTableReplacement(t *testing.T) {
	const (
		slot  = uint64(0x5a5a)
		own   = uint64(1)<<32 | slot
		rival = uint64(2)<<32 | slot
	)
	type store struct {
		key   uint64
		depth int
		v     value.Value
		bound value.Bound
	}
	var tests = []struct {
		name    string
		first   store
		incDate bool
		second  store
		wantKey uint64
		want    TransEntry
	}{
		{
			name:    "shallower foreign key keeps deeper entry of current date",
			first:   store{own, 8, 10, value.BoundLower},
			second:  store{rival, 4, 20, value.BoundExact},
			wantKey: own,
			want:    TransEntry{Depth: 8, Value: 10, Bound: value.BoundLower},
		},
		{
			name:    "entry of older date is replaced",
			first:   store{own, 8, 10, value.BoundLower},
			incDate: true,
			second:  store{rival, 4, 20, value.BoundUpper},
			wantKey: rival,
			want:    TransEntry{Depth: 4, Value: 20, Bound: value.BoundUpper},
		},
		{
			name:    "same key up to three plies shallower replaces",
			first:   store{own, 8, 10, value.BoundLower},
			second:  store{own, 5, 70, value.BoundUpper},
			wantKey: own,
			want:    TransEntry{Depth: 5, Value: 70, Bound: value.BoundUpper},
		},
		{
			name:    "same key more than three plies shallower is ignored",
			first:   store{own, 8, 10, value.BoundLower},
			second:  store{own, 4, 70, value.BoundUpper},
			wantKey: own,
			want:    TransEntry{Depth: 8, Value: 10, Bound: value.BoundLower},
		},
		{
			name:    "same key exact result always replaces",
			first:   store{own, 8, 10, value.BoundLower},
			second:  store{own, 1, 70, value.BoundExact},
			wantKey: own,
			want:    TransEntry{Depth: 1, Value: 70, Bound: value.BoundExact},
		},
	}
	for _, test := range tests {
		var tt = newTestTable()
		tt.Update(test.first.key, test.first.depth, 0, test.first.v, test.first.bound)
		if test.incDate {
			tt.IncDate()
		}
		tt.Update(test.second.key, test.second.depth, 0, test.second.v, test.second.bound)

		var entry, ok = tt.Read(test.wantKey, 0)
		test.want.Eval = value.None
		if !ok || entry != test.want {
			t.Error(test.name, entry, ok)
		}
		var other = own
		if test.wantKey == own {
			other = rival
		}
		if _, ok := tt.Read(other, 0); ok && test.first.key != test.second.key {
			t.Error(test.name, "evicted key still readable")
		}
	}
}
