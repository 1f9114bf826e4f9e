// Package hash computes hex digests of words under a fixed algorithm.
//
// The algorithm set is closed: MD5, SHA-1, SHA-256, and SHA-512. The
// algorithm is chosen once when an Engine is constructed and never
// changes for the Engine's lifetime, matching the store's contract
// that every persisted hash was produced by the same algorithm.
//
// Design decision: We use the standard library crypto packages rather
// than a third-party digest library because the supported set is fixed
// and all four algorithms ship with the standard library. There is no
// plugin mechanism; an unrecognized identifier fails at construction.
package hash
