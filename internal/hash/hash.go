package hash

import (
	"crypto/md5"  //nolint:gosec // MD5 is a supported lookup algorithm, not used for security
	"crypto/sha1" //nolint:gosec // SHA-1 is a supported lookup algorithm, not used for security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies one of the supported digest algorithms.
// Values are the lowercase identifiers accepted on the command line
// and in the configuration file.
type Algorithm string

// Supported digest algorithms. The set is fixed and closed.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// constructors maps each supported algorithm to its hash constructor.
// This map is the single source of truth for the supported set.
var constructors = map[Algorithm]func() hash.Hash{
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
}

// ParseAlgorithm converts a user-supplied identifier into an Algorithm.
// The identifier is case-insensitive and surrounding whitespace is
// ignored. An unrecognized identifier returns ErrUnsupportedAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := constructors[a]; !ok {
		return "", fmt.Errorf("%w: %q (supported: md5, sha1, sha256, sha512)", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}

// String returns the lowercase identifier of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// DisplayName returns the uppercase name used in human-facing output,
// such as the "MD5 Hash" column header of a CSV export.
func (a Algorithm) DisplayName() string {
	return strings.ToUpper(string(a))
}

// HexLength returns the length in characters of a hex digest produced
// under this algorithm. It returns 0 for an unsupported algorithm.
func (a Algorithm) HexLength() int {
	ctor, ok := constructors[a]
	if !ok {
		return 0
	}
	return hex.EncodedLen(ctor().Size())
}

// Engine computes hex digests under a fixed algorithm.
//
// Digest computation is deterministic and side-effect free: the same
// word always yields the same digest, and nothing is cached or logged.
type Engine struct {
	// algorithm is fixed at construction and never changes.
	algorithm Algorithm
}

// NewEngine creates an Engine for the given algorithm identifier.
// It returns ErrUnsupportedAlgorithm for identifiers outside the
// supported set.
func NewEngine(algorithm string) (*Engine, error) {
	a, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return &Engine{algorithm: a}, nil
}

// Algorithm returns the engine's fixed algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.algorithm
}

// Sum returns the lowercase hex digest of the word's UTF-8 bytes.
func (e *Engine) Sum(word string) string {
	h := constructors[e.algorithm]()
	h.Write([]byte(word)) //nolint:errcheck // hash.Hash.Write never returns an error
	return hex.EncodeToString(h.Sum(nil))
}
