package btree

import (
	"fmt"

	"github.com/npillmayer/sorted/order"
)

const (
	// DefaultMaxNodeSize is the branching factor used if none is configured.
	DefaultMaxNodeSize = 64
	// MinNodeSize is the lower bound a configured branching factor is clamped to.
	MinNodeSize = 4
	// MaxNodeSize is the upper bound a configured branching factor is clamped to.
	MaxNodeSize = 256
)

// Config configures a B+ tree.
type Config[K any] struct {
	// Compare orders the keys. If nil, order.Default is used.
	Compare order.Comparator[K]
	// MaxNodeSize is the maximum number of keys of a leaf and the maximum
	// number of children of an inner node. Zero selects DefaultMaxNodeSize,
	// other values are clamped to [MinNodeSize, MaxNodeSize].
	MaxNodeSize int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Compare == nil {
		cfg.Compare = order.Default[K]()
	}
	switch {
	case cfg.MaxNodeSize == 0:
		cfg.MaxNodeSize = DefaultMaxNodeSize
	case cfg.MaxNodeSize < MinNodeSize:
		cfg.MaxNodeSize = MinNodeSize
	case cfg.MaxNodeSize > MaxNodeSize:
		cfg.MaxNodeSize = MaxNodeSize
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.MaxNodeSize < 0 {
		return fmt.Errorf("%w: negative node size %d", ErrInvalidConfig, cfg.MaxNodeSize)
	}
	return nil
}
