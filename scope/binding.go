package scope

import "github.com/jonwraymond/styleops/artifact"

// Binding gives one calling context a handle to a shared cache payload.
//
// The host must call Refresh whenever a dependency value changes and
// Release exactly once when the context's lifetime ends. A Binding belongs
// to a single calling context and is not itself safe for concurrent use;
// the Controller and Store underneath are.
type Binding[V any] struct {
	ctrl    *Controller[V]
	prefix  string
	factory Factory[V]
	dispose Dispose[V]

	held  bool
	key   artifact.Key
	value V
}

// Refresh recomputes the key from the current dependency values and
// returns the payload for it.
//
// An unchanged key returns the current payload with no refcount traffic.
// A changed key fully releases the previous key first — including disposal
// if this was its last holder — and then acquires the new one.
func (b *Binding[V]) Refresh(deps ...string) V {
	segments := make([]string, 0, len(deps)+1)
	segments = append(segments, b.prefix)
	segments = append(segments, deps...)
	next := artifact.KeyOf(segments...)

	if b.held && next.Equal(b.key) {
		return b.value
	}

	if b.held {
		b.held = false
		b.ctrl.release(b.key, b.dispose)
	}

	value := b.ctrl.acquire(next, b.factory, b.dispose)
	b.key = next
	b.value = value
	b.held = true
	return value
}

// Value returns the payload acquired by the last Refresh. Zero before the
// first Refresh and after Release.
func (b *Binding[V]) Value() V {
	return b.value
}

// Key returns the currently held key, or nil when nothing is held.
func (b *Binding[V]) Key() artifact.Key {
	if !b.held {
		return nil
	}
	return b.key
}

// Release drops this context's reference. If it was the last holder, the
// entry is removed and the payload disposed. Release after Release is a
// no-op; the host contract is exactly one Release per ended lifetime.
func (b *Binding[V]) Release() {
	if !b.held {
		return
	}
	b.held = false
	key := b.key
	var zero V
	b.value = zero
	b.ctrl.release(key, b.dispose)
}
