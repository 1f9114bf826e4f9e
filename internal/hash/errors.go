package hash

import "errors"

// ErrUnsupportedAlgorithm is returned when an algorithm identifier does
// not name one of the supported digest algorithms. This is a
// construction-time error; the caller must choose md5, sha1, sha256,
// or sha512.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
