// Package theme memoizes theme-derivation pipelines.
//
// A pipeline is an ordered sequence of registered derivation functions; the
// sequence's identity, not its contents, keys the cache. Cache is a
// hierarchical LRU bounding the number of live pipelines, Factory returns
// one canonical Theme per pipeline, and TokenCache memoizes computed
// derivative tokens by salted hash.
package theme
