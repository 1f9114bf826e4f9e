// Package model defines the core data structures used throughout wordvault.
//
// Design decision: We keep the Record type in its own package to avoid
// circular dependencies. Both the store and the report writers need it,
// so centralizing it prevents import cycles.
//
// The models are designed to be serializable to JSON for export output.
package model
