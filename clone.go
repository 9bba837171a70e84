package skiplist

// Clone returns a deep, independent copy: its own node cache, its own RNG,
// its own lock. The source is held under a shared lock for the duration of
// the copy; the new instance needs no lock at all since nothing else can
// see it yet.
func (sl *SkipList[K, V]) Clone() *SkipList[K, V] {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	dst := newSkipList[K, V](sl.compare, sl.mode)
	if sl.sentinelSet {
		dst.setSentinel(sl.sentinel)
	}

	cur := sl.header.forward[0]
	for !sl.isTrailer(cur) {
		// putLocked reshuffles levels with its own fresh coin flips; the
		// clone is an equivalent list, not a structurally identical one.
		if err := dst.putLocked(cur.key, cur.value); err != nil {
			panic(err)
		}
		cur = cur.forward[0]
	}
	return dst
}

// CloneWithAllocator is Clone but lets the caller size the new instance's
// node cache up front via opts, avoiding repeated grow() calls when the
// source is large.
func (sl *SkipList[K, V]) CloneWithAllocator(opts ...Option[K, V]) *SkipList[K, V] {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	dst := newSkipList[K, V](sl.compare, sl.mode, opts...)
	if sl.sentinelSet && !dst.sentinelSet {
		dst.setSentinel(sl.sentinel)
	}

	cur := sl.header.forward[0]
	for !sl.isTrailer(cur) {
		if err := dst.putLocked(cur.key, cur.value); err != nil {
			panic(err)
		}
		cur = cur.forward[0]
	}
	return dst
}
