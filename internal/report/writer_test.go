package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pwdsec/wordvault/internal/model"
)

var testRecords = []model.Record{
	{ID: 1, Word: "a", Hash: "0cc175b9c0f1b6a831c399e269772661"},
	{ID: 2, Word: "b", Hash: "92eb5ffee6ae2fec3ad71c777531578f"},
}

// TestCSVWriter tests CSV export formatting.
func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("header names the algorithm and rows follow input order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf, "MD5").Write(testRecords)
		if err != nil {
			t.Fatalf("failed to write CSV: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		want := "Word,MD5 Hash\n" +
			"a,0cc175b9c0f1b6a831c399e269772661\n" +
			"b,92eb5ffee6ae2fec3ad71c777531578f\n"
		if got := buf.String(); got != want {
			t.Errorf("unexpected CSV output:\ngot:  %q\nwant: %q", got, want)
		}
	})

	t.Run("empty record set yields header only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf, "SHA256").Write(nil); err != nil {
			t.Fatalf("failed to write CSV: %v", err)
		}
		if got := buf.String(); got != "Word,SHA256 Hash\n" {
			t.Errorf("expected header only, got %q", got)
		}
	})

	t.Run("words containing commas are quoted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		records := []model.Record{{ID: 1, Word: "a,b", Hash: "ffff"}}
		if _, err := NewCSVWriter(&buf, "MD5").Write(records); err != nil {
			t.Fatalf("failed to write CSV: %v", err)
		}
		if !strings.Contains(buf.String(), `"a,b",ffff`) {
			t.Errorf("expected quoted word, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests Markdown export formatting.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf, "MD5").Write(testRecords); err != nil {
		t.Fatalf("failed to write markdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Word Hash Export",
		"Total records: 2",
		"MD5 Hash",
		"0cc175b9c0f1b6a831c399e269772661",
		"92eb5ffee6ae2fec3ad71c777531578f",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

// TestJSONWriter tests JSON export formatting.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("round trips records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testRecords); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}

		var got []model.Record
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if diff := cmp.Diff(testRecords, got); diff != "" {
			t.Errorf("unexpected records (-want +got):\n%s", diff)
		}
	})

	t.Run("nil records render as empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(nil); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != "[]" {
			t.Errorf("expected [], got %q", got)
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testRecords); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})
}
