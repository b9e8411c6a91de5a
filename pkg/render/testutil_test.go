package render

import (
	"strings"
	"testing"
)

// rawAttr returns the still-escaped value of key in rendered markup.
// The serializer always quotes values with double quotes.
func rawAttr(t *testing.T, rendered, key string) string {
	t.Helper()

	needle := " " + key + `="`
	start := strings.Index(rendered, needle)
	if start == -1 {
		t.Fatalf("attribute %q not found in %q", key, rendered)
	}
	start += len(needle)

	end := strings.IndexByte(rendered[start:], '"')
	if end == -1 {
		t.Fatalf("unterminated attribute %q in %q", key, rendered)
	}
	return rendered[start : start+end]
}

// parsedAttr parses rendered markup back and returns the value of key on
// its root element.
func parsedAttr(t *testing.T, rendered, key string) string {
	t.Helper()

	node, err := UnsafeFromString(rendered)
	if err != nil {
		t.Fatalf("UnsafeFromString(%q) error: %v", rendered, err)
	}
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	t.Fatalf("attribute %q lost when parsing %q", key, rendered)
	return ""
}
