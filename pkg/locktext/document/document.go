// Package document models resume documents as generic JSON-like values.
//
// A Document is the decoded top-level object of a resume. Only the work
// entries and their highlights carry meaning for template expansion; every
// other field is opaque and passes through untouched.
package document

// Field names inspected during expansion.
const (
	FieldWork          = "work"
	FieldHighlights    = "highlights"
	FieldHighlightsRef = "highlights_ref"
)

// Document is a decoded resume object.
type Document map[string]any

// Clone returns a deep, independent copy of d.
// A nil Document clones to nil.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

// EachJob calls fn for every object entry of the work sequence, in order.
// The index is the entry's position in work. Entries that are not objects are
// skipped, and a missing or non-sequence work field visits nothing.
func (d Document) EachJob(fn func(index int, job map[string]any)) {
	switch work := d[FieldWork].(type) {
	case []any:
		for i, entry := range work {
			switch job := entry.(type) {
			case map[string]any:
				fn(i, job)
			case Document:
				fn(i, job)
			}
		}
	case []map[string]any:
		for i, job := range work {
			if job != nil {
				fn(i, job)
			}
		}
	case []Document:
		for i, job := range work {
			if job != nil {
				fn(i, job)
			}
		}
	}
}

// Clone deep-copies a JSON-like value. Maps and slices are copied
// recursively; scalars are returned as-is.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case Document:
		return Document(cloneMap(val))
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	case []map[string]any:
		if val == nil {
			return val
		}
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneMap(item)
		}
		return out
	case []Document:
		if val == nil {
			return val
		}
		out := make([]Document, len(val))
		for i, item := range val {
			out[i] = item.Clone()
		}
		return out
	case []string:
		if val == nil {
			return val
		}
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}
