// Package artifact provides a reference-counted store for expensive style
// artifacts shared across independent features.
//
// It provides a canonical segmented Key type and a generic Store whose only
// mutation primitive is Update; all create/increment/decrement/destroy policy
// is expressed by callers.
package artifact
