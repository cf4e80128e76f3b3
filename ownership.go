package dict

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Ownership is a set of flags telling a dict how to treat the buffers of a
// key/value pair handed to Insert.
//
// DupKey and DupValue make the dict copy the caller's buffer at insertion time.
// FreeKey and FreeValue make the dict responsible for releasing the stored
// buffer when the entry is removed or the dict is destroyed. The flags are
// independent: a dict may borrow a buffer and still be told to release it,
// which amounts to the caller handing the buffer over.
type Ownership uint8

// Ownership flags. Any combination is legal.
const (
	DupKey Ownership = 1 << iota
	DupValue
	FreeKey
	FreeValue
)

// Common combinations of ownership flags.
const (
	OwnKey   = DupKey | FreeKey
	OwnValue = DupValue | FreeValue
	OwnAll   = OwnKey | OwnValue
)

func (o Ownership) String() string {
	if o == 0 {
		return "borrow"
	}
	s := ""
	for _, f := range [...]struct {
		flag Ownership
		name string
	}{{DupKey, "dup-key"}, {DupValue, "dup-value"}, {FreeKey, "free-key"}, {FreeValue, "free-value"}} {
		if o&f.flag != 0 {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

// Holding describes how a dict holds one buffer of an entry. It is decided
// once, when the entry is inserted, from a pair of Ownership flags.
type Holding uint8

const (
	// Borrowed buffers belong to the caller and are neither copied nor released.
	Borrowed Holding = iota
	// Copied buffers are private copies which are left to the garbage collector.
	Copied
	// Adopted buffers are the caller's buffers, handed over for release.
	Adopted
	// Owned buffers are private copies which the dict releases.
	Owned
)

func (h Holding) String() string {
	switch h {
	case Borrowed:
		return "borrowed"
	case Copied:
		return "copied"
	case Adopted:
		return "adopted"
	case Owned:
		return "owned"
	}
	return fmt.Sprintf("holding(%d)", uint8(h))
}

func holdingFor(dup, free bool) Holding {
	switch {
	case dup && free:
		return Owned
	case dup:
		return Copied
	case free:
		return Adopted
	}
	return Borrowed
}

func (h Holding) duplicates() bool {
	return h == Copied || h == Owned
}

func (h Holding) releases() bool {
	return h == Adopted || h == Owned
}

// buffer is one field of an entry, together with the way it is held.
type buffer struct {
	data []byte
	hold Holding
}

// entry is a key/value pair stored in a node.
type entry struct {
	key   buffer
	value buffer
}

// holdBuffer prepares a buffer for storage. Copies are allocated with alloc.
func holdBuffer(b []byte, h Holding, alloc func(int) ([]byte, error)) (buffer, error) {
	if !h.duplicates() || b == nil {
		return buffer{data: b, hold: h}, nil
	}
	cp, err := alloc(len(b))
	if err != nil {
		return buffer{}, err
	}
	if len(cp) != len(b) {
		return buffer{}, fmt.Errorf("allocator returned %d bytes, requested %d", len(cp), len(b))
	}
	copy(cp, b)
	return buffer{data: cp, hold: h}, nil
}

// release hands the buffer to rel if the dict is responsible for it, and
// forgets the bytes in any case.
func (b *buffer) release(rel func([]byte)) {
	if b.hold.releases() && b.data != nil {
		rel(b.data)
	}
	b.data = nil
	b.hold = Borrowed
}

// newEntry creates an entry for a key/value pair, allocating copies as
// requested by flags. Either both buffers are prepared or nothing is retained.
func newEntry(key, value []byte, flags Ownership, cfg Config) (entry, error) {
	var e entry
	var err error
	kh := holdingFor(flags&DupKey != 0, flags&FreeKey != 0)
	vh := holdingFor(flags&DupValue != 0, flags&FreeValue != 0)
	if e.key, err = holdBuffer(key, kh, cfg.Alloc); err != nil {
		return entry{}, fmt.Errorf("%w: key of %d bytes: %w", ErrAllocation, len(key), err)
	}
	if e.value, err = holdBuffer(value, vh, cfg.Alloc); err != nil {
		if kh == Owned {
			e.key.release(cfg.Release) // give back the key copy
		}
		return entry{}, fmt.Errorf("%w: value of %d bytes: %w", ErrAllocation, len(value), err)
	}
	return e, nil
}

// release releases key and value according to their holdings.
func (e *entry) release(rel func([]byte)) {
	e.key.release(rel)
	e.value.release(rel)
}
