package clean

import "golang.org/x/net/html"

// ChildKind discriminates the variants of Child.
type ChildKind uint8

const (
	ChildAbsent  ChildKind = iota // nil or a nil pointer; dropped from output
	ChildElement                  // an existing *html.Node, passed through
	ChildText                     // anything else, stringified
)

// String returns the string representation of the ChildKind.
func (k ChildKind) String() string {
	switch k {
	case ChildAbsent:
		return "Absent"
	case ChildElement:
		return "Element"
	case ChildText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Child is a resolved child value.
type Child struct {
	Kind ChildKind
	Node *html.Node // set for ChildElement
	Text string     // set for ChildText, unescaped
}

// ToChild resolves a single value into its Child variant.
func ToChild(v any) Child {
	switch x := v.(type) {
	case nil:
		return Child{Kind: ChildAbsent}
	case *html.Node:
		if x == nil {
			return Child{Kind: ChildAbsent}
		}
		return Child{Kind: ChildElement, Node: x}
	}
	if isNilPointer(v) {
		return Child{Kind: ChildAbsent}
	}
	return Child{Kind: ChildText, Text: Stringify(v)}
}

// SafeChildren resolves values into children, dropping absent ones.
// []any and []*html.Node values are flattened in place.
func SafeChildren(values []any) []Child {
	out := make([]Child, 0, len(values))
	for _, v := range values {
		out = appendChild(out, v)
	}
	return out
}

func appendChild(out []Child, v any) []Child {
	switch x := v.(type) {
	case []any:
		for _, item := range x {
			out = appendChild(out, item)
		}
		return out
	case []*html.Node:
		for _, n := range x {
			if n != nil {
				out = append(out, Child{Kind: ChildElement, Node: n})
			}
		}
		return out
	}

	c := ToChild(v)
	if c.Kind == ChildAbsent {
		return out
	}
	return append(out, c)
}
