package hash

import (
	"errors"
	"strings"
	"testing"
)

// TestParseAlgorithm tests algorithm identifier parsing.
func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{name: "md5", input: "md5", want: MD5},
		{name: "sha1", input: "sha1", want: SHA1},
		{name: "sha256", input: "sha256", want: SHA256},
		{name: "sha512", input: "sha512", want: SHA512},
		{name: "uppercase is accepted", input: "SHA256", want: SHA256},
		{name: "surrounding whitespace is trimmed", input: "  md5 ", want: MD5},
		{name: "unknown identifier", input: "sha3", wantErr: true},
		{name: "empty identifier", input: "", wantErr: true},
		{name: "close but wrong", input: "sha-256", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedAlgorithm) {
					t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestNewEngine tests engine construction.
func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("valid algorithm", func(t *testing.T) {
		t.Parallel()

		e, err := NewEngine("sha256")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Algorithm() != SHA256 {
			t.Errorf("expected sha256, got %q", e.Algorithm())
		}
	})

	t.Run("unsupported algorithm fails closed", func(t *testing.T) {
		t.Parallel()

		if _, err := NewEngine("crc32"); !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
		}
	})
}

// TestEngineSum tests digest computation against known vectors.
func TestEngineSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm string
		word      string
		want      string
	}{
		{
			algorithm: "md5",
			word:      "hello",
			want:      "5d41402abc4b2a76b9719d911017c592",
		},
		{
			algorithm: "sha1",
			word:      "hello",
			want:      "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		},
		{
			algorithm: "sha256",
			word:      "hello",
			want:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			algorithm: "sha512",
			word:      "hello",
			want:      "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
		{
			algorithm: "md5",
			word:      "a",
			want:      "0cc175b9c0f1b6a831c399e269772661",
		},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.word, func(t *testing.T) {
			t.Parallel()

			e, err := NewEngine(tt.algorithm)
			if err != nil {
				t.Fatalf("failed to create engine: %v", err)
			}

			got := e.Sum(tt.word)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if got != strings.ToLower(got) {
				t.Error("digest must be lowercase hex")
			}
		})
	}
}

// TestEngineSumDeterministic tests that digests are stable across calls.
func TestEngineSumDeterministic(t *testing.T) {
	t.Parallel()

	e, err := NewEngine("sha256")
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	first := e.Sum("déjà vu")
	for range 10 {
		if got := e.Sum("déjà vu"); got != first {
			t.Fatalf("digest changed between calls: %s vs %s", first, got)
		}
	}
}

// TestAlgorithmHexLength tests digest lengths for each algorithm.
func TestAlgorithmHexLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm Algorithm
		want      int
	}{
		{MD5, 32},
		{SHA1, 40},
		{SHA256, 64},
		{SHA512, 128},
		{Algorithm("bogus"), 0},
	}

	for _, tt := range tests {
		if got := tt.algorithm.HexLength(); got != tt.want {
			t.Errorf("%s: expected hex length %d, got %d", tt.algorithm, tt.want, got)
		}
	}

	// Sanity check: an actual digest has the declared length.
	e, err := NewEngine("sha512")
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	if got := len(e.Sum("word")); got != SHA512.HexLength() {
		t.Errorf("sha512 digest length: expected %d, got %d", SHA512.HexLength(), got)
	}
}

// TestAlgorithmDisplayName tests the human-facing algorithm names.
func TestAlgorithmDisplayName(t *testing.T) {
	t.Parallel()

	if got := MD5.DisplayName(); got != "MD5" {
		t.Errorf("expected MD5, got %q", got)
	}
	if got := SHA256.DisplayName(); got != "SHA256" {
		t.Errorf("expected SHA256, got %q", got)
	}
}
