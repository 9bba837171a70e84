// Package skiplist implements a thread-safe, generic, indexable skip list.
//
// A skip list is a probabilistic multi-level linked structure giving
// O(log n) expected search, insertion, deletion and rank-addressed access.
// This implementation additionally tracks, on every express-lane link, the
// number of bottom-level items it spans ("width"), which makes
// positional/rank operations (get-by-index, remove-by-index, slicing) just
// as cheap as key-addressed ones.
//
// The list runs in one of two modes: SetMode keeps keys unique (a later put
// overwrites the value), ListMode allows duplicate keys and orders same-key
// writes by insertion order, with reads of a duplicated key resolving to
// the rightmost occurrence.
package skiplist

import (
	"math/rand/v2"
	"sync"
)

// MaxLevel bounds the number of express lanes a list may grow. 32 levels
// comfortably covers lists with billions of items at the default 1/7
// promotion probability.
const MaxLevel = 32

// promotionDenominator gives a per-level promotion probability of 1/7.
const promotionDenominator = 7

// SkipList is the indexable skip list described in the package doc.
// The zero value is not usable; construct one with New, NewWithComparator
// or NewBytesKeyed.
type SkipList[K any, V any] struct {
	mu sync.RWMutex

	compare Comparator[K]
	mode    Mode

	sentinel    K
	sentinelSet bool

	header  *node[K, V]
	trailer *node[K, V]
	height  int // 0-based index of the highest active level
	size    int

	cache *nodeCache[K, V]
	rng   *rand.Rand

	// pathNodes/pathWidths are reused scratch buffers accumulating the
	// per-level descent result ("search path") of the current call. Both
	// hold MaxLevel entries; each call that uses them overwrites entries
	// 0..sl.height during its own descent and reads only what it wrote.
	pathNodes  []*node[K, V]
	pathWidths []int
}

// Option configures a SkipList at construction time.
type Option[K any, V any] func(*SkipList[K, V])

// WithSentinel overrides the sentinel key — the value treated as strictly
// greater than every admissible user key. Required for NewWithComparator
// and for New when K is not one of the automatically recognized types.
func WithSentinel[K any, V any](sentinel K) Option[K, V] {
	return func(sl *SkipList[K, V]) {
		sl.setSentinel(sentinel)
	}
}

func (sl *SkipList[K, V]) setSentinel(sentinel K) {
	sl.sentinel = sentinel
	sl.sentinelSet = true
	sl.trailer.key = sentinel
}

// WithInitialChunkSize sets the node count of the node cache's first slab,
// letting a caller who knows roughly how many items they will insert avoid
// the early, smaller growth steps. The default is 128.
func WithInitialChunkSize[K any, V any](nodes int) Option[K, V] {
	return func(sl *SkipList[K, V]) {
		if nodes > 0 {
			sl.cache.initialChunk = nodes
		}
	}
}

// WithGrowthFactor sets the multiplier applied to the previous slab's size
// each time the node cache needs to grow. The default is 2.0.
func WithGrowthFactor[K any, V any](factor float64) Option[K, V] {
	return func(sl *SkipList[K, V]) {
		if factor > 1.0 {
			sl.cache.growthFactor = factor
		}
	}
}

func newSkipList[K any, V any](compare Comparator[K], mode Mode, opts ...Option[K, V]) *SkipList[K, V] {
	trailer := &node[K, V]{}
	header := &node[K, V]{
		forward: make([]*node[K, V], MaxLevel),
		width:   make([]int, MaxLevel),
	}
	for i := range header.forward {
		header.forward[i] = trailer
	}

	source := rand.NewPCG(rand.Uint64(), rand.Uint64())

	sl := &SkipList[K, V]{
		compare:    compare,
		mode:       mode,
		header:     header,
		trailer:    trailer,
		height:     0,
		cache:      newNodeCache[K, V](),
		rng:        rand.New(source),
		pathNodes:  make([]*node[K, V], MaxLevel),
		pathWidths: make([]int, MaxLevel),
	}
	for _, opt := range opts {
		opt(sl)
	}
	return sl
}

// randomLevel draws a promoted height using a Bernoulli process with
// promotion probability 1/7 per level, capped at MaxLevel.
func (sl *SkipList[K, V]) randomLevel() int {
	level := 1
	for level < MaxLevel && sl.rng.IntN(promotionDenominator) == 0 {
		level++
	}
	return level
}

func (sl *SkipList[K, V]) isTrailer(n *node[K, V]) bool {
	return n == sl.trailer
}

// Len reports the number of items currently stored.
func (sl *SkipList[K, V]) Len() int {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.size
}

// Mode reports the list's duplicate-key policy.
func (sl *SkipList[K, V]) Mode() Mode {
	return sl.mode
}

// Contains reports whether k is present.
func (sl *SkipList[K, V]) Contains(k K) bool {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	n := sl.seekFloor(k)
	return !sl.isTrailer(n) && n != sl.header && sl.compare(n.key, k) == 0
}

// Get returns the value stored at k in list mode the rightmost value. The
// second return is false if k is absent.
func (sl *SkipList[K, V]) Get(k K) (V, bool) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	n := sl.seekFloor(k)
	if sl.isTrailer(n) || n == sl.header || sl.compare(n.key, k) != 0 {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetItem is Get but returns the full Item.
func (sl *SkipList[K, V]) GetItem(k K) (Item[K, V], bool) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	n := sl.seekFloor(k)
	if sl.isTrailer(n) || n == sl.header || sl.compare(n.key, k) != 0 {
		return Item[K, V]{}, false
	}
	return n.item(), true
}

// seekFloor returns the rightmost node whose key is <= k, or the header if
// none. Caller must hold at least a shared lock.
func (sl *SkipList[K, V]) seekFloor(k K) *node[K, V] {
	cur := sl.header
	for i := sl.height; i >= 0; i-- {
		for !sl.isTrailer(cur.forward[i]) && sl.compare(cur.forward[i].key, k) <= 0 {
			cur = cur.forward[i]
		}
	}
	return cur
}

// groundLeft returns the leftmost real bottom node, or the trailer if empty.
func (sl *SkipList[K, V]) groundLeft() *node[K, V] {
	return sl.header.forward[0]
}

// groundRight descends to the rightmost real bottom node, or the header's
// projection (the trailer) if the list is empty.
func (sl *SkipList[K, V]) groundRight() *node[K, V] {
	cur := sl.header
	for i := sl.height; i >= 0; i-- {
		for !sl.isTrailer(cur.forward[i]) {
			cur = cur.forward[i]
		}
	}
	if cur == sl.header {
		return sl.trailer
	}
	return cur
}

// Min returns the smallest item.
func (sl *SkipList[K, V]) Min() (Item[K, V], bool) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.size == 0 {
		return Item[K, V]{}, false
	}
	return sl.header.forward[0].item(), true
}

// Max returns the largest item.
func (sl *SkipList[K, V]) Max() (Item[K, V], bool) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.size == 0 {
		return Item[K, V]{}, false
	}
	return sl.groundRight().item(), true
}

// Median returns the item at index floor(size/2).
func (sl *SkipList[K, V]) Median() (Item[K, V], bool) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.size == 0 {
		return Item[K, V]{}, false
	}
	n := sl.nodeByIndex(sl.size / 2)
	if n == nil {
		return Item[K, V]{}, false
	}
	return n.item(), true
}

// GetFirst is an alias of Min kept for the index-oriented reading style.
func (sl *SkipList[K, V]) GetFirst() (Item[K, V], bool) { return sl.Min() }

// GetLast is an alias of Max kept for the index-oriented reading style.
func (sl *SkipList[K, V]) GetLast() (Item[K, V], bool) { return sl.Max() }

// ClearRetainingCapacity empties the list but keeps the node cache's arena
// allocated for reuse.
func (sl *SkipList[K, V]) ClearRetainingCapacity() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.releaseAllLocked()
	sl.resetStructureLocked()
}

// ClearAndFree empties the list and returns its backing arena to the
// allocator.
func (sl *SkipList[K, V]) ClearAndFree() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.cache.destroyPool()
	sl.cache = newNodeCache[K, V]()
	sl.resetStructureLocked()
}

func (sl *SkipList[K, V]) releaseAllLocked() {
	cur := sl.header.forward[0]
	for !sl.isTrailer(cur) {
		next := cur.forward[0]
		sl.cache.release(cur)
		cur = next
	}
}

func (sl *SkipList[K, V]) resetStructureLocked() {
	for i := range sl.header.forward {
		sl.header.forward[i] = sl.trailer
		sl.header.width[i] = 0
	}
	sl.height = 0
	sl.size = 0
}

// getNodePtr returns a reference to the node holding k, valid only while
// the caller holds a shared or exclusive lock on sl. It does not lock.
func (sl *SkipList[K, V]) getNodePtr(k K) (*node[K, V], bool) {
	n := sl.seekFloor(k)
	if sl.isTrailer(n) || n == sl.header || sl.compare(n.key, k) != 0 {
		return nil, false
	}
	return n, true
}

// getNodePtrByIndex returns a reference to the node at index i, valid only
// while the caller holds a shared or exclusive lock on sl. It does not
// lock. Negative indices count from the end.
func (sl *SkipList[K, V]) getNodePtrByIndex(i int) (*node[K, V], bool) {
	n := sl.nodeByIndex(i)
	if n == nil {
		return nil, false
	}
	return n, true
}
