package model

// Record is a single stored word/hash pair.
//
// The ID is assigned by the store, increases monotonically with
// insertion order, and is never reused. Word and Hash are each unique
// across all records; the Hash is always the digest of Word under the
// store's configured algorithm.
type Record struct {
	// ID is the store-assigned row identifier. The record with the
	// maximum ID is the most recently inserted one.
	ID int64 `json:"id"`

	// Word is the plaintext word. Never empty.
	Word string `json:"word"`

	// Hash is the lowercase hex digest of Word.
	Hash string `json:"hash"`
}
