package locked

import (
	"fmt"
	"regexp"
	"strings"
)

// keyPattern matches <namespace>.<segment>, e.g. freefly.1 or freefly.ai_engineer.
var keyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*\.[A-Za-z0-9_-]+$`)

// SplitKey splits a template key into namespace and segment.
// ok is false when key has no dot.
func SplitKey(key string) (namespace, segment string, ok bool) {
	return strings.Cut(key, ".")
}

// Namespace returns the part of key before the first dot, or key itself
// when there is no dot.
func Namespace(key string) string {
	ns, _, _ := SplitKey(key)
	return ns
}

// ValidKey reports whether key has the two-segment template key form.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// InvalidEntryError reports a registry entry that cannot be accepted.
type InvalidEntryError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid template %q: %s", e.Key, e.Reason)
}

// validateEntry checks a single key/text pair.
func validateEntry(key string, value any) (string, error) {
	if !ValidKey(key) {
		return "", &InvalidEntryError{Key: key, Reason: "key must be <namespace>.<segment>"}
	}
	text, ok := value.(string)
	if !ok {
		return "", &InvalidEntryError{Key: key, Reason: fmt.Sprintf("text must be a string, got %T", value)}
	}
	if strings.TrimSpace(text) == "" {
		return "", &InvalidEntryError{Key: key, Reason: "text is empty"}
	}
	if strings.Contains(text, "{{") {
		return "", &InvalidEntryError{Key: key, Reason: "text contains a placeholder"}
	}
	return text, nil
}
