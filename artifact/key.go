package artifact

import "strings"

// Separator joins key segments into the canonical path form.
// Segments are not expected to contain it.
const Separator = "%"

// Key is an ordered sequence of string segments identifying one cache slot.
// Equality is structural: two keys with the same segments in the same order
// address the same slot.
type Key []string

// KeyOf normalizes one or more segments into a Key. A single segment and a
// pre-split sequence of segments are equivalent inputs; callers should
// normalize once at the boundary rather than per call.
func KeyOf(segments ...string) Key {
	k := make(Key, len(segments))
	copy(k, segments)
	return k
}

// Path returns the canonical joined form used as the storage key.
func (k Key) Path() string {
	return strings.Join(k, Separator)
}

// Equal reports whether k and other have identical segments.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i, s := range k {
		if other[i] != s {
			return false
		}
	}
	return true
}
