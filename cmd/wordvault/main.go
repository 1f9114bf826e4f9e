// Package main provides the entry point for the wordvault CLI.
//
// wordvault is a persistent word/hash lookup store: it ingests
// plaintext words, computes a digest for each under a selectable hash
// algorithm, and persists the pair with bidirectional lookup.
//
// Usage:
//
//	wordvault add <word>...
//	wordvault ingest <file>...
//	wordvault search <word>
//
// See --help for all available commands.
package main

// main is the entry point for wordvault.
func main() {
	Execute()
}
