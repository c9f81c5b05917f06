package theme

import (
	"fmt"
	"testing"
)

// TestFactory_IdentityStable tests that identical pipelines yield the same
// *Theme at any call site.
func TestFactory_IdentityStable(t *testing.T) {
	a, b := passthrough("a"), passthrough("b")
	f := NewFactory(Config{})

	th1 := f.Theme(a, b)
	th2 := f.Theme(a, b)
	if th1 != th2 {
		t.Error("identical pipelines produced distinct themes")
	}

	th3 := f.Theme(b, a)
	if th3 == th1 {
		t.Error("reordered pipeline shares a theme")
	}
	if f.Size() != 2 {
		t.Errorf("Size() = %d, want 2", f.Size())
	}
}

// TestFactory_EvictionRecreates tests that an evicted pipeline yields a new
// theme identity on next request.
func TestFactory_EvictionRecreates(t *testing.T) {
	f := NewFactory(Config{MaxSize: 2, MaxOffset: 1})

	first := passthrough("first")
	old := f.Theme(first)

	// Push the first pipeline past the ceiling.
	for i := 0; i < 3; i++ {
		f.Theme(passthrough(fmt.Sprintf("filler-%d", i)))
	}

	if fresh := f.Theme(first); fresh == old {
		t.Error("evicted pipeline returned the stale theme")
	}
}

// TestFactory_RepeatUseRefreshesRecency tests that a frequently requested
// theme survives churn from newer pipelines.
func TestFactory_RepeatUseRefreshesRecency(t *testing.T) {
	f := NewFactory(Config{MaxSize: 2, MaxOffset: 1})

	hot := passthrough("hot")
	th := f.Theme(hot)

	for i := 0; i < 8; i++ {
		f.Theme(passthrough(fmt.Sprintf("churn-%d", i)))
		if got := f.Theme(hot); got != th {
			t.Fatalf("hot theme lost identity after churn %d", i)
		}
	}
}
