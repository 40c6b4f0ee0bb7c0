package engine

import (
	"github.com/counterchess/valuecore/pkg/value"
)

const (
	stackSize = 128
	maxHeight = stackSize - 1
)

type Options struct {
	Hash      int
	Threads   int
	MaxHeight int
}

func NewOptions() Options {
	return Options{
		Hash:      16,
		Threads:   1,
		MaxHeight: maxHeight,
	}
}

func (o *Options) MateBand() value.MateBand {
	return value.NewMateBand(o.MaxHeight)
}
