package document

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff between the indented JSON forms of before and
// after. Removed lines are prefixed with "-", added lines with "+"; unchanged
// lines are omitted. Equal documents yield an empty string.
func Diff(before, after Document) (string, error) {
	var a, b bytes.Buffer
	if err := before.Encode(&a, "  "); err != nil {
		return "", err
	}
	if err := after.Encode(&b, "  "); err != nil {
		return "", err
	}
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		return "", nil
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a.String(), b.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(strings.TrimSuffix(line, "\n"))
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}
