/*
Package template expands locked-content placeholders in resume documents.

# Overview

A content generator writes resumes whose highlight bullets may be
placeholders such as {{freefly.1}} instead of prose. template swaps each
placeholder for the locked text registered under its key, so those
sentences reach the rendered resume verbatim.

# Basic Usage

Expand a document with the builtin table:

	doc := document.Document{
	    "work": []any{
	        map[string]any{
	            "highlights_ref": "freefly",
	            "highlights":     []any{"{{freefly.1}}", "Led a team of 5 engineers"},
	        },
	    },
	}
	out := template.Expand(doc)
	// out["work"][0]["highlights"][0] is the locked freefly.1 text.
	// highlights_ref is removed; doc itself is unchanged.

# Placeholders

A highlight is a placeholder only when the entire string is {{key}}.
"See {{freefly.1}}" and "{{}}" are ordinary text and pass through.
Only work[].highlights[] is inspected; every other field is copied as-is.

# Unresolved Keys

A placeholder whose key is not registered stays in the output unchanged and
a warning is logged. Expansion never fails. Use FindUnexpanded or Validate
as the gate before rendering:

	if err := template.Validate(out); err != nil {
	    return err // *UnresolvedError listing the keys
	}

# Custom Expander

	r, _ := locked.FromFile("templates.yaml")
	exp := template.NewExpander(
	    template.WithRegistry(r),
	    template.WithLogger(logger),
	    template.WithMetrics(observability.NewMetricsRecorder()),
	)
	out, stats := exp.ExpandContext(ctx, doc)

# Thread Safety

Expander is safe for concurrent use after construction.
Package-level functions use a shared default expander.
*/
package template
