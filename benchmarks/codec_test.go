package benchmarks

import (
	"bytes"
	"io"
	"testing"

	"github.com/randalmurphal/locktext/pkg/locktext/document"
	"github.com/randalmurphal/locktext/pkg/locktext/locked"
)

func encode(b *testing.B, doc document.Document) []byte {
	b.Helper()
	var buf bytes.Buffer
	if err := doc.Encode(&buf, "  "); err != nil {
		b.Fatal(err)
	}
	return buf.Bytes()
}

// BenchmarkParse_JSON decodes a 100-job JSON document.
func BenchmarkParse_JSON(b *testing.B) {
	data := encode(b, buildDocument(100, 10))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = document.Parse(data, document.FormatJSON)
	}
}

// BenchmarkEncode encodes a 100-job document.
func BenchmarkEncode(b *testing.B) {
	doc := buildDocument(100, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = doc.Encode(io.Discard, "  ")
	}
}

// BenchmarkDiff diffs a 20-job document against its expansion.
func BenchmarkDiff(b *testing.B) {
	doc := buildDocument(20, 6)
	out := quietExpander().Expand(doc)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = document.Diff(doc, out)
	}
}

// BenchmarkRegistryParse_YAML builds a registry from a 50-entry YAML table.
func BenchmarkRegistryParse_YAML(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 50; i++ {
		buf.WriteString("bench.")
		buf.WriteString(string(rune('a' + i%26)))
		buf.WriteString(string(rune('a' + i/26)))
		buf.WriteString(": Locked bullet text for benchmarking\n")
	}
	data := buf.Bytes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = locked.Parse(data, locked.FormatYAML)
	}
}

// BenchmarkRegistryGet looks up a builtin key.
func BenchmarkRegistryGet(b *testing.B) {
	reg := locked.Builtin()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Get("york.1")
	}
}
