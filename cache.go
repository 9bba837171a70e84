package skiplist

// nodeCache is a pooled allocator over a growing slab arena. Nodes come off
// a free list first; failing that, a fresh node is carved from the current
// chunk, growing the chunk set when the current chunk is exhausted by a new
// chunk growthFactor times the size of the last one (2.0 by default).
//
// The chunk growth strategy mirrors a chunked bump allocator, but the slab
// is a typed []node[K, V] rather than a raw []byte carved up with
// unsafe.Pointer: a node's forward/prev/freeNext fields are live Go
// pointers, and an untyped byte arena would hide them from the garbage
// collector's scanner.
type nodeCache[K any, V any] struct {
	chunks        [][]node[K, V]
	nextInChunk   int
	initialChunk  int
	growthFactor  float64
	free          *node[K, V]
	freeListCount int
	destroyed     bool
}

const (
	defaultInitialChunk = 128
	defaultGrowthFactor = 2.0
)

func newNodeCache[K any, V any]() *nodeCache[K, V] {
	return &nodeCache[K, V]{
		initialChunk: defaultInitialChunk,
		growthFactor: defaultGrowthFactor,
	}
}

// acquire returns a node ready for the engine to initialize. Its fields are
// not zeroed beyond what Go already guarantees for unused slab slots; the
// caller must fully populate key, value, forward, width and prev.
func (c *nodeCache[K, V]) acquire() (*node[K, V], error) {
	if c.destroyed {
		return nil, ErrAllocFailed
	}
	if c.free != nil {
		n := c.free
		c.free = n.freeNext
		n.freeNext = nil
		c.freeListCount--
		return n, nil
	}
	if len(c.chunks) == 0 || c.nextInChunk >= len(c.chunks[len(c.chunks)-1]) {
		if err := c.grow(); err != nil {
			return nil, err
		}
	}
	chunk := c.chunks[len(c.chunks)-1]
	n := &chunk[c.nextInChunk]
	c.nextInChunk++
	return n, nil
}

func (c *nodeCache[K, V]) grow() error {
	size := c.initialChunk
	if len(c.chunks) > 0 {
		last := len(c.chunks[len(c.chunks)-1])
		size = int(float64(last) * c.growthFactor)
		if size <= 0 {
			size = last
		}
	}
	if size <= 0 {
		return ErrAllocFailed
	}
	c.chunks = append(c.chunks, make([]node[K, V], size))
	c.nextInChunk = 0
	return nil
}

// release pushes n onto the head of the free list in constant time. It does
// not clear n's fields; the engine must not release a node still reachable
// from the header chain, and must not release the same node twice.
func (c *nodeCache[K, V]) release(n *node[K, V]) {
	n.freeNext = c.free
	c.free = n
	c.freeListCount++
}

// clearAll discards every node ever served, including the free list, and
// resets the arena to empty.
func (c *nodeCache[K, V]) clearAll() {
	c.chunks = nil
	c.nextInChunk = 0
	c.free = nil
	c.freeListCount = 0
}

// destroyPool tears down the arena. The cache is unusable afterward.
func (c *nodeCache[K, V]) destroyPool() {
	c.clearAll()
	c.destroyed = true
}

// freeCount reports the free list length. Diagnostic only.
func (c *nodeCache[K, V]) freeCount() int {
	return c.freeListCount
}
