// Package scope binds cache entries to calling-context lifetimes.
//
// A Controller shares one reference-counted artifact store across many
// Bindings. Each Binding derives its cache key from a prefix plus the
// current dependency values, acquires the shared payload for that key, and
// releases it when the dependencies change or the context ends. An optional
// hot-reload signal forces payload recreation during development.
package scope
