package theme

import "sync"

// Factory is the theme entry point: it returns one canonical Theme per
// derivation pipeline, backed by a Cache so cold pipelines age out.
type Factory struct {
	mu    sync.Mutex
	cache *Cache[*Theme]
}

// NewFactory creates a Factory with the given cache bounds. An OnEvict
// callback passed here runs while the factory mutex is held and must not
// call back into the Factory.
func NewFactory(cfg Config, opts ...Option[*Theme]) *Factory {
	return &Factory{
		cache: New[*Theme](cfg, opts...),
	}
}

// Theme returns the canonical Theme for the given pipeline. Repeat calls
// with the identical sequence of handles return the same *Theme, at any
// call site, until the pipeline is evicted.
func (f *Factory) Theme(derivatives ...*Derivative) *Theme {
	f.mu.Lock()
	defer f.mu.Unlock()

	if th, ok := f.cache.Get(derivatives); ok {
		return th
	}
	th := NewTheme(derivatives...)
	f.cache.Set(derivatives, th)
	return th
}

// Size returns the number of live pipelines.
func (f *Factory) Size() int {
	return f.cache.Size()
}
