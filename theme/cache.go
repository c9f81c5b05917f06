package theme

import "sync"

// Default capacity bounds. The cache may hold up to MaxSize+MaxOffset
// pipelines before an insertion evicts.
const (
	DefaultMaxSize   = 20
	DefaultMaxOffset = 5
)

// Config bounds a Cache.
type Config struct {
	// MaxSize is the nominal capacity in distinct pipelines.
	// Zero or negative selects DefaultMaxSize.
	MaxSize int

	// MaxOffset is the overshoot permitted beyond MaxSize before an
	// insertion evicts. The overshoot amortizes the full-registry scan an
	// eviction costs across several insertions. Zero or negative selects
	// DefaultMaxOffset.
	MaxOffset int
}

// Option configures optional Cache behavior.
type Option[V any] func(*options[V])

type options[V any] struct {
	onEvict func(seq []*Derivative, value V)
}

// WithOnEvict sets a callback invoked after a capacity eviction.
//
// The callback runs outside the cache lock, after the victim is removed.
// It receives the evicted pipeline and its value. It must not retain seq.
func WithOnEvict[V any](fn func(seq []*Derivative, value V)) Option[V] {
	return func(o *options[V]) {
		o.onEvict = fn
	}
}

// Cache is a hierarchical LRU keyed by derivation pipelines.
//
// Sequences index a trie one handle per level, so variable-length pipelines
// need no serializable flat key. Recency is a per-instance monotonic access
// counter stamped on leaves; eviction removes the leaf with the smallest
// stamp, scanning live pipelines in insertion order (first smallest wins).
//
// Safe for concurrent use. The zero value is not usable; construct with New.
type Cache[V any] struct {
	mu        sync.Mutex
	maxSize   int
	maxOffset int
	counter   uint64
	root      node[V]
	// keys is the registry of live pipelines in insertion order.
	// Invariant outside a call: len(keys) == reachable leaves in the trie.
	keys    [][]*Derivative
	onEvict func([]*Derivative, V)
}

// node holds children, a leaf, or both. Empty nodes are pruned immediately.
type node[V any] struct {
	children map[*Derivative]*node[V]
	leaf     *leaf[V]
}

type leaf[V any] struct {
	value V
	stamp uint64
}

// New creates a Cache with the given bounds. Zero Config fields select the
// defaults (20 nominal, 5 overshoot).
func New[V any](cfg Config, opts ...Option[V]) *Cache[V] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.MaxOffset <= 0 {
		cfg.MaxOffset = DefaultMaxOffset
	}

	o := &options[V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Cache[V]{
		maxSize:   cfg.MaxSize,
		maxOffset: cfg.MaxOffset,
		onEvict:   o.onEvict,
	}
}

// Has reports whether a value is stored under seq. Does not touch recency.
func (c *Cache[V]) Has(seq []*Derivative) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLeaf(seq) != nil
}

// Get returns the value stored under seq and stamps it as most recently
// used.
func (c *Cache[V]) Get(seq []*Derivative) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lf := c.findLeaf(seq)
	if lf == nil {
		return value, false
	}
	c.counter++
	lf.stamp = c.counter
	return lf.value, true
}

// Peek returns the value stored under seq without touching recency.
func (c *Cache[V]) Peek(seq []*Derivative) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lf := c.findLeaf(seq)
	if lf == nil {
		return value, false
	}
	return lf.value, true
}

// Set stores value under seq with a fresh recency stamp.
//
// A new pipeline first enforces capacity: if the distinct-pipeline count
// would exceed MaxSize+MaxOffset, the least recently stamped pipeline is
// evicted. Overwriting an existing pipeline changes neither the count nor
// the registry.
func (c *Cache[V]) Set(seq []*Derivative, value V) {
	c.mu.Lock()

	if lf := c.findLeaf(seq); lf != nil {
		c.counter++
		lf.value = value
		lf.stamp = c.counter
		c.mu.Unlock()
		return
	}

	var (
		victimSeq []*Derivative
		victimVal V
		evicted   bool
	)
	if len(c.keys)+1 > c.maxSize+c.maxOffset {
		victimSeq = c.coldest()
		victimVal, evicted = c.remove(victimSeq)
	}

	key := make([]*Derivative, len(seq))
	copy(key, seq)
	c.keys = append(c.keys, key)

	n := &c.root
	for _, d := range seq {
		if n.children == nil {
			n.children = make(map[*Derivative]*node[V])
		}
		child, ok := n.children[d]
		if !ok {
			child = &node[V]{}
			n.children[d] = child
		}
		n = child
	}
	c.counter++
	n.leaf = &leaf[V]{value: value, stamp: c.counter}

	c.mu.Unlock()

	if evicted && c.onEvict != nil {
		c.onEvict(victimSeq, victimVal)
	}
}

// Delete removes the value stored under seq, pruning intermediate nodes
// left with neither children nor a leaf. Returns the removed value.
func (c *Cache[V]) Delete(seq []*Derivative) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(seq)
}

// Size returns the number of distinct pipelines stored.
func (c *Cache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// findLeaf walks the trie along seq. Caller must hold mu.
func (c *Cache[V]) findLeaf(seq []*Derivative) *leaf[V] {
	n := &c.root
	for _, d := range seq {
		child, ok := n.children[d]
		if !ok {
			return nil
		}
		n = child
	}
	return n.leaf
}

// coldest returns the live pipeline with the smallest stamp, scanning the
// registry in insertion order so the first smallest wins ties. Caller must
// hold mu and guarantee the registry is non-empty.
func (c *Cache[V]) coldest() []*Derivative {
	victim := c.keys[0]
	best := c.findLeaf(victim).stamp
	for _, key := range c.keys[1:] {
		if stamp := c.findLeaf(key).stamp; stamp < best {
			victim = key
			best = stamp
		}
	}
	return victim
}

// remove deletes the leaf under seq, prunes empty nodes bottom-up, and
// drops seq from the registry. Caller must hold mu.
func (c *Cache[V]) remove(seq []*Derivative) (value V, ok bool) {
	value, ok = removePath(&c.root, seq)
	if !ok {
		return value, false
	}
	for i, key := range c.keys {
		if sequenceEqual(key, seq) {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return value, true
}

// removePath recurses to the leaf at the end of seq, removing it and
// pruning now-empty descendants on the way back up.
func removePath[V any](n *node[V], seq []*Derivative) (value V, ok bool) {
	if len(seq) == 0 {
		if n.leaf == nil {
			return value, false
		}
		value = n.leaf.value
		n.leaf = nil
		return value, true
	}

	child, found := n.children[seq[0]]
	if !found {
		return value, false
	}
	value, ok = removePath(child, seq[1:])
	if ok && child.leaf == nil && len(child.children) == 0 {
		delete(n.children, seq[0])
	}
	return value, ok
}
