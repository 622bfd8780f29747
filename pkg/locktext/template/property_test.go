package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/randalmurphal/locktext/pkg/locktext/document"
	"github.com/randalmurphal/locktext/pkg/locktext/locked"
)

// highlightGen draws a highlight value: a known placeholder, an unknown
// placeholder, free text, or a non-string value.
func highlightGen() *rapid.Generator[any] {
	known := locked.Builtin().Keys()
	return rapid.Custom(func(t *rapid.T) any {
		switch rapid.IntRange(0, 4).Draw(t, "kind") {
		case 0:
			return "{{" + rapid.SampledFrom(known).Draw(t, "known") + "}}"
		case 1:
			return "{{" + rapid.StringMatching(`zz[a-z]{1,6}\.[0-9]`).Draw(t, "unknown") + "}}"
		case 2:
			return rapid.String().Draw(t, "text")
		case 3:
			return rapid.IntRange(-100, 100).Draw(t, "number")
		default:
			return nil
		}
	})
}

// documentGen draws a document with zero or more jobs.
func documentGen() *rapid.Generator[document.Document] {
	return rapid.Custom(func(t *rapid.T) document.Document {
		doc := document.Document{}
		if rapid.Bool().Draw(t, "hasBasics") {
			doc["basics"] = map[string]any{"name": rapid.String().Draw(t, "name")}
		}
		if !rapid.Bool().Draw(t, "hasWork") {
			return doc
		}
		jobs := rapid.IntRange(0, 4).Draw(t, "jobs")
		work := make([]any, 0, jobs)
		for range jobs {
			j := map[string]any{}
			if rapid.Bool().Draw(t, "hasRef") {
				j["highlights_ref"] = rapid.SampledFrom([]string{"freefly", "lumenier", "york"}).Draw(t, "ref")
			}
			if rapid.Bool().Draw(t, "hasHighlights") {
				j["highlights"] = rapid.SliceOfN(highlightGen(), 0, 6).Draw(t, "highlights")
			}
			work = append(work, j)
		}
		doc["work"] = work
		return doc
	})
}

func TestProperty_Idempotent(t *testing.T) {
	exp := quietExpander()
	rapid.Check(t, func(t *rapid.T) {
		doc := documentGen().Draw(t, "doc")
		once := exp.Expand(doc)
		assert.Equal(t, once, exp.Expand(once))
	})
}

func TestProperty_InputUnchanged(t *testing.T) {
	exp := quietExpander()
	rapid.Check(t, func(t *rapid.T) {
		doc := documentGen().Draw(t, "doc")
		before := doc.Clone()
		exp.Expand(doc)
		exp.FindUnexpanded(doc)
		assert.Equal(t, before, doc)
	})
}

func TestProperty_ScannerAgreesWithExpansion(t *testing.T) {
	exp := quietExpander()
	rapid.Check(t, func(t *rapid.T) {
		doc := documentGen().Draw(t, "doc")
		out, stats := exp.ExpandContext(context.Background(), doc)

		// Unresolved keys survive expansion, in the same order.
		assert.Equal(t, stats.Unresolved, exp.FindUnexpanded(doc))
		assert.Equal(t, stats.Unresolved, exp.FindUnexpanded(out))

		// No highlights_ref survives.
		out.EachJob(func(_ int, j map[string]any) {
			assert.NotContains(t, j, "highlights_ref")
		})
	})
}

func TestProperty_StructurePreserved(t *testing.T) {
	exp := quietExpander()
	rapid.Check(t, func(t *rapid.T) {
		doc := documentGen().Draw(t, "doc")
		out := exp.Expand(doc)

		assert.Equal(t, doc["basics"], out["basics"])

		var inLens, outLens []int
		doc.EachJob(func(_ int, j map[string]any) {
			h, _ := j["highlights"].([]any)
			inLens = append(inLens, len(h))
		})
		out.EachJob(func(_ int, j map[string]any) {
			h, _ := j["highlights"].([]any)
			outLens = append(outLens, len(h))
		})
		assert.Equal(t, inLens, outLens)
	})
}
