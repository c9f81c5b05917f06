package scope

import (
	"time"

	"github.com/jonwraymond/styleops/artifact"
	"github.com/jonwraymond/styleops/observe"
)

// Factory constructs a payload. It runs synchronously while the store slot
// is locked, so the guarantee of at most one invocation per live key holds
// even under concurrent acquisition; it must not call back into the
// controller or store. A panic propagates to the caller and registers
// nothing.
type Factory[V any] func() V

// Dispose releases external resources tied to a payload. forced reports
// hot-reload invalidation rather than the last holder leaving. Dispose
// runs after the entry is removed from the store, outside any lock.
type Dispose[V any] func(payload V, forced bool)

// Option configures a Controller.
type Option[V any] func(*Controller[V])

// WithReloadSignal installs a development-time signal. When the signal
// reports true, an acquisition discards any payload already stored under
// its key and recreates it, disposing the stale payload with forced=true.
// The signal is consulted exactly once per acquisition cycle.
func WithReloadSignal[V any](fn func() bool) Option[V] {
	return func(c *Controller[V]) {
		c.reload = fn
	}
}

// WithMetrics installs a cache-event recorder. Defaults to no-op.
func WithMetrics[V any](m observe.Metrics) Option[V] {
	return func(c *Controller[V]) {
		if m != nil {
			c.metrics = m
		}
	}
}

// Controller shares reference-counted payloads across Bindings.
//
// Contract:
// - Concurrency: safe for concurrent use by many Bindings.
// - Sharing: concurrent holders of the same computed key receive the same
//   payload by identity, constructed at most once while any holder is live.
// - Errors: factory and dispose panics propagate synchronously; neither is
//   retried.
type Controller[V any] struct {
	store   *artifact.Store[V]
	reload  func() bool
	metrics observe.Metrics
}

// NewController creates a Controller over store. A nil store gets a fresh
// private one; pass a shared store to share payloads across controllers.
func NewController[V any](store *artifact.Store[V], opts ...Option[V]) *Controller[V] {
	if store == nil {
		store = artifact.NewStore[V]()
	}
	c := &Controller[V]{
		store:   store,
		metrics: observe.NewNoopMetrics(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Store returns the underlying artifact store.
func (c *Controller[V]) Store() *artifact.Store[V] {
	return c.store
}

// Bind creates a Binding for one calling context. dispose may be nil.
func (c *Controller[V]) Bind(prefix string, factory Factory[V], dispose Dispose[V]) *Binding[V] {
	return &Binding[V]{
		ctrl:    c,
		prefix:  prefix,
		factory: factory,
		dispose: dispose,
	}
}

func metaFor(key artifact.Key) observe.CacheMeta {
	meta := observe.CacheMeta{Component: "scope"}
	if len(key) > 0 {
		meta.Instance = key[0]
	}
	return meta
}

// acquire increments the refcount under key, constructing the payload on
// first need. With the reload signal asserted, any stored payload is
// replaced and disposed with forced=true.
func (c *Controller[V]) acquire(key artifact.Key, factory Factory[V], dispose Dispose[V]) V {
	meta := metaFor(key)

	if c.reload != nil && c.reload() {
		return c.recreate(key, meta, factory, dispose)
	}

	var (
		out        V
		hit        bool
		factoryDur time.Duration
	)
	c.store.Update(key, func(prev *artifact.Entry[V]) *artifact.Entry[V] {
		if prev != nil {
			hit = true
			out = prev.Value
			return &artifact.Entry[V]{Refs: prev.Refs + 1, Value: prev.Value}
		}
		start := time.Now()
		out = factory()
		factoryDur = time.Since(start)
		return &artifact.Entry[V]{Refs: 1, Value: out}
	})

	c.metrics.RecordLookup(meta, hit)
	if !hit {
		c.metrics.RecordFactory(meta, factoryDur)
	}
	return out
}

// recreate is the hot-reload acquisition path: the factory runs regardless
// of presence and any stale payload is disposed with forced=true after the
// slot is swapped.
func (c *Controller[V]) recreate(key artifact.Key, meta observe.CacheMeta, factory Factory[V], dispose Dispose[V]) V {
	var (
		fresh      V
		stale      *V
		factoryDur time.Duration
	)
	c.store.Update(key, func(prev *artifact.Entry[V]) *artifact.Entry[V] {
		refs := 1
		if prev != nil {
			refs = prev.Refs + 1
			v := prev.Value
			stale = &v
		}
		start := time.Now()
		fresh = factory()
		factoryDur = time.Since(start)
		return &artifact.Entry[V]{Refs: refs, Value: fresh}
	})

	c.metrics.RecordFactory(meta, factoryDur)
	if stale != nil {
		c.metrics.RecordDisposal(meta, true)
		if dispose != nil {
			dispose(*stale, true)
		}
	}
	return fresh
}

// release decrements the refcount under key. At zero the entry is removed
// first, then the payload disposed with forced=false.
func (c *Controller[V]) release(key artifact.Key, dispose Dispose[V]) {
	var disposed *V
	c.store.Update(key, func(prev *artifact.Entry[V]) *artifact.Entry[V] {
		if prev == nil {
			// Releasing a never-acquired key is a caller contract breach;
			// tolerated as a no-op.
			return nil
		}
		if prev.Refs <= 1 {
			v := prev.Value
			disposed = &v
			return nil
		}
		return &artifact.Entry[V]{Refs: prev.Refs - 1, Value: prev.Value}
	})

	if disposed != nil {
		c.metrics.RecordDisposal(metaFor(key), false)
		if dispose != nil {
			dispose(*disposed, false)
		}
	}
}
