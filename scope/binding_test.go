package scope

import (
	"testing"

	"github.com/jonwraymond/styleops/artifact"
)

// TestBinding_ZeroBeforeRefresh tests the unbound state.
func TestBinding_ZeroBeforeRefresh(t *testing.T) {
	ctrl := NewController[*payload](nil)
	b := ctrl.Bind("css", (&countingFactory{}).fn, nil)

	if b.Value() != nil {
		t.Error("Value() non-zero before first Refresh")
	}
	if b.Key() != nil {
		t.Error("Key() non-nil before first Refresh")
	}
}

// TestBinding_KeyComposition tests prefix plus dependency values in order.
func TestBinding_KeyComposition(t *testing.T) {
	ctrl := NewController[*payload](nil)

	tests := []struct {
		name   string
		prefix string
		deps   []string
		want   string
	}{
		{"no deps", "token", nil, "token"},
		{"one dep", "token", []string{"dark"}, "token%dark"},
		{"ordered deps", "css", []string{"btn", "v5"}, "css%btn%v5"},
		{"empty dep preserved", "css", []string{"", "v5"}, "css%%v5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ctrl.Bind(tt.prefix, (&countingFactory{}).fn, nil)
			b.Refresh(tt.deps...)
			if got := b.Key().Path(); got != tt.want {
				t.Errorf("Key().Path() = %q, want %q", got, tt.want)
			}
			b.Release()
		})
	}
}

// TestBinding_ReleaseIdempotent tests that repeated Release decrements at
// most once.
func TestBinding_ReleaseIdempotent(t *testing.T) {
	ctrl := NewController[*payload](nil)
	rec := &disposeRecorder{}

	b1 := ctrl.Bind("css", (&countingFactory{}).fn, rec.fn)
	b2 := ctrl.Bind("css", (&countingFactory{}).fn, rec.fn)
	b1.Refresh("dark")
	b2.Refresh("dark")

	b1.Release()
	b1.Release() // must not touch b2's reference

	entry, ok := ctrl.Store().Get(artifact.KeyOf("css", "dark"))
	if !ok || entry.Refs != 1 {
		t.Errorf("Refs = %d, want 1", entry.Refs)
	}
	if rec.count() != 0 {
		t.Errorf("disposal ran %d times, want 0", rec.count())
	}
}

// TestBinding_ReleaseClearsValue tests that Release drops the payload
// reference.
func TestBinding_ReleaseClearsValue(t *testing.T) {
	ctrl := NewController[*payload](nil)
	b := ctrl.Bind("css", (&countingFactory{}).fn, nil)
	b.Refresh("dark")
	b.Release()

	if b.Value() != nil {
		t.Error("Value() non-zero after Release")
	}
	if b.Key() != nil {
		t.Error("Key() non-nil after Release")
	}
}

// TestBinding_ReacquireAfterRelease tests that a released binding can bind
// again, constructing a fresh payload.
func TestBinding_ReacquireAfterRelease(t *testing.T) {
	ctrl := NewController[*payload](nil)
	factory := &countingFactory{}
	b := ctrl.Bind("css", factory.fn, nil)

	first := b.Refresh("dark")
	b.Release()
	second := b.Refresh("dark")

	if first == second {
		t.Error("payload survived the gap with no holders")
	}
	if factory.count() != 2 {
		t.Errorf("factory ran %d times, want 2", factory.count())
	}
}
