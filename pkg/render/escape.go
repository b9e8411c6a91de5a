package render

import "strings"

// textEscaper escapes text content per the HTML5 serialization algorithm.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// attrEscaper escapes double-quoted attribute values.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"\u00a0", "&nbsp;",
)

// escapeHTML escapes text for safe inclusion in HTML content.
// Single quotes are left alone; they are only special inside attributes,
// which are always double-quoted.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// validTagName reports whether name can be written as a start tag.
func validTagName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	for i := 1; i < len(name); i++ {
		switch name[i] {
		case ' ', '\t', '\n', '\f', '\r', '/', '>', '<', 0:
			return false
		}
	}
	return true
}

// validAttrName reports whether name can be written as an attribute name.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 || c == 0x7f {
			return false
		}
		switch c {
		case ' ', '"', '\'', '>', '<', '/', '=':
			return false
		}
	}
	return true
}
