package theme

// Token is a design-token set. Values are opaque to this package; nested
// Token or map[string]any values are flattened recursively when hashed.
type Token map[string]any

// DeriveFunc transforms a seed token set into a derivative token set.
// seed is the original input to the pipeline; base is the output of the
// previous derivation step, or nil for the first step.
type DeriveFunc func(seed, base Token) Token

// Derivative is a registered derivation function. The *Derivative pointer is
// the function's identity-stable handle: two handles are the same pipeline
// step iff they are the same pointer, regardless of the underlying function.
type Derivative struct {
	name string
	fn   DeriveFunc
}

// NewDerivative registers a derivation function under a diagnostic name and
// returns its handle. Register once per function; registering the same
// function twice yields two distinct identities.
func NewDerivative(name string, fn DeriveFunc) *Derivative {
	return &Derivative{name: name, fn: fn}
}

// Name returns the diagnostic name given at registration.
func (d *Derivative) Name() string {
	return d.name
}

// Theme is one derivation pipeline. Themes obtained from a Factory are
// identity-stable: the same sequence of derivatives yields the same *Theme.
type Theme struct {
	derivatives []*Derivative
}

// NewTheme builds an uncached Theme over the given pipeline. Most callers
// should use Factory.Theme, which deduplicates by pipeline identity.
func NewTheme(derivatives ...*Derivative) *Theme {
	ds := make([]*Derivative, len(derivatives))
	copy(ds, derivatives)
	return &Theme{derivatives: ds}
}

// Derive folds the pipeline over seed: each step receives the seed and the
// previous step's output. An empty pipeline returns seed unchanged.
func (t *Theme) Derive(seed Token) Token {
	if len(t.derivatives) == 0 {
		return seed
	}
	var base Token
	for _, d := range t.derivatives {
		base = d.fn(seed, base)
	}
	return base
}

// Derivatives returns a copy of the pipeline.
func (t *Theme) Derivatives() []*Derivative {
	ds := make([]*Derivative, len(t.derivatives))
	copy(ds, t.derivatives)
	return ds
}

// sequenceEqual reports element-wise identity equality.
func sequenceEqual(a, b []*Derivative) bool {
	if len(a) != len(b) {
		return false
	}
	for i, d := range a {
		if b[i] != d {
			return false
		}
	}
	return true
}
