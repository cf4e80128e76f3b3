package dict

import (
	"bytes"
	"fmt"
)

// Config configures a dict.
//
// The zero value is a valid configuration; missing functions are replaced by
// defaults.
type Config struct {
	// Compare orders keys. It defaults to bytes.Compare, i.e. byte-wise
	// lexicographic order.
	Compare func(a, b []byte) int
	// Alloc allocates buffers for duplicated keys and values. It must return
	// a buffer of exactly n bytes or an error.
	Alloc func(n int) ([]byte, error)
	// Release is called once for every buffer the dict is responsible for,
	// when its entry is removed or the dict is destroyed.
	Release func([]byte)
}

func defaultAlloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func defaultRelease([]byte) {}

func (cfg Config) normalized() Config {
	if cfg.Compare == nil {
		cfg.Compare = bytes.Compare
	}
	if cfg.Alloc == nil {
		cfg.Alloc = defaultAlloc
	}
	if cfg.Release == nil {
		cfg.Release = defaultRelease
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare(nil, nil) != 0 {
		return fmt.Errorf("%w: compare is not reflexive for empty keys", ErrInvalidConfig)
	}
	return nil
}
