package skiplist

import (
	"bytes"
	"cmp"
	"math"
)

// Comparator compares two keys, returning a negative number if a < b, zero
// if a == b, and a positive number if a > b.
type Comparator[K any] func(a, b K) int

// Mode selects duplicate-key behavior. SetMode keeps keys unique, with put
// overwriting the existing value. ListMode allows duplicate keys; writes
// accumulate right of any existing run and reads of a duplicated key refer
// to the rightmost occurrence.
type Mode int

const (
	SetMode Mode = iota
	ListMode
)

// New creates a skip list for key types with a natural cmp.Ordered order
// (integers, floats, strings). The sentinel key is derived automatically:
// the maximum representable value for integer types, positive infinity for
// floats, and the single byte 0xFF for strings.
//
// New panics if K's sentinel cannot be derived automatically; use
// NewWithComparator and WithSentinel for such types.
func New[K cmp.Ordered, V any](mode Mode, opts ...Option[K, V]) *SkipList[K, V] {
	sentinel, ok := defaultSentinel[K]()
	sl := newSkipList[K, V](cmp.Compare[K], mode, opts...)
	if !sl.sentinelSet {
		if !ok {
			panic("skiplist: no default sentinel for this key type; use WithSentinel")
		}
		sl.setSentinel(sentinel)
	}
	return sl
}

// NewWithComparator creates a skip list with a caller-supplied comparator.
// A sentinel key must be supplied via WithSentinel, since the engine cannot
// otherwise guess which value is "greater than every admissible key".
func NewWithComparator[K any, V any](compare Comparator[K], mode Mode, opts ...Option[K, V]) *SkipList[K, V] {
	if compare == nil {
		panic("skiplist: comparator cannot be nil")
	}
	sl := newSkipList[K, V](compare, mode, opts...)
	if !sl.sentinelSet {
		panic("skiplist: sentinel key required; pass WithSentinel")
	}
	return sl
}

// NewBytesKeyed creates a skip list keyed by lexicographically ordered byte
// strings. The sentinel key is the single byte 0xFF; no admissible key may
// begin with or equal a byte sequence that compares greater than or equal
// to it.
func NewBytesKeyed[V any](mode Mode, opts ...Option[[]byte, V]) *SkipList[[]byte, V] {
	sl := newSkipList[[]byte, V](bytes.Compare, mode, opts...)
	if !sl.sentinelSet {
		sl.setSentinel([]byte{0xFF})
	}
	return sl
}

// defaultSentinel returns the conventional sentinel value for the common
// cmp.Ordered key types this package ships automatic support for.
func defaultSentinel[K any]() (K, bool) {
	var zero K
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(K), true
	case int8:
		return any(int8(math.MaxInt8)).(K), true
	case int16:
		return any(int16(math.MaxInt16)).(K), true
	case int32:
		return any(int32(math.MaxInt32)).(K), true
	case int64:
		return any(int64(math.MaxInt64)).(K), true
	case uint:
		return any(uint(math.MaxUint)).(K), true
	case uint8:
		return any(uint8(math.MaxUint8)).(K), true
	case uint16:
		return any(uint16(math.MaxUint16)).(K), true
	case uint32:
		return any(uint32(math.MaxUint32)).(K), true
	case uint64:
		return any(uint64(math.MaxUint64)).(K), true
	case float32:
		return any(float32(math.Inf(1))).(K), true
	case float64:
		return any(math.Inf(1)).(K), true
	case string:
		return any(string([]byte{0xFF})).(K), true
	default:
		return zero, false
	}
}
