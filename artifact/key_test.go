package artifact

import "testing"

// TestKeyOf_Normalization tests that single and multi segment inputs
// normalize to the same canonical type.
func TestKeyOf_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		wantPath string
	}{
		{"single segment", []string{"token"}, "token"},
		{"two segments", []string{"css", "btn"}, "css" + Separator + "btn"},
		{"empty", nil, ""},
		{"empty segment preserved", []string{"a", "", "b"}, "a" + Separator + Separator + "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := KeyOf(tt.segments...)
			if got := k.Path(); got != tt.wantPath {
				t.Errorf("Path() = %q, want %q", got, tt.wantPath)
			}
		})
	}
}

// TestKeyOf_Copies verifies the key does not alias the caller's slice.
func TestKeyOf_Copies(t *testing.T) {
	segs := []string{"a", "b"}
	k := KeyOf(segs...)
	segs[0] = "mutated"

	if k.Path() != "a"+Separator+"b" {
		t.Errorf("key aliased caller slice: %q", k.Path())
	}
}

func TestKey_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"identical", KeyOf("a", "b"), KeyOf("a", "b"), true},
		{"different order", KeyOf("a", "b"), KeyOf("b", "a"), false},
		{"different length", KeyOf("a"), KeyOf("a", "b"), false},
		{"both empty", KeyOf(), KeyOf(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
