package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is the maximum number of files read simultaneously.
// Reading is I/O bound; a small limit keeps file handle usage bounded
// without serializing multi-file ingestion.
const defaultConcurrency = 4

// Words reads words from r, one per line. Surrounding whitespace is
// trimmed and blank lines are skipped.
func Words(r io.Reader) ([]string, error) {
	var words []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// Files reads all named word-list files and returns the words of each
// file in argument order. Files are read concurrently; the first
// failure cancels the remaining reads and is returned.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
func Files(ctx context.Context, paths []string) ([][]string, error) {
	results := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			f, err := os.Open(path) //nolint:gosec // User-provided word list path is intentional
			if err != nil {
				return fmt.Errorf("failed to open word list %s: %w", path, err)
			}
			defer f.Close()

			words, err := Words(f)
			if err != nil {
				return fmt.Errorf("failed to read word list %s: %w", path, err)
			}
			results[i] = words
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
