package render

import "golang.org/x/net/html/atom"

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[atom.Lookup([]byte(tag))]
}

// rawTextElements have their text children written without escaping.
// Every other element, noscript and iframe included, gets escaped text.
var rawTextElements = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// leadingNewlineElements drop a single leading newline when parsed, so one
// is written back when the content starts with a newline.
var leadingNewlineElements = map[atom.Atom]bool{
	atom.Pre:      true,
	atom.Listing:  true,
	atom.Textarea: true,
}

// inlineElements are rendered on one line in pretty mode.
var inlineElements = map[atom.Atom]bool{
	atom.A:      true,
	atom.Abbr:   true,
	atom.B:      true,
	atom.Bdi:    true,
	atom.Bdo:    true,
	atom.Br:     true,
	atom.Cite:   true,
	atom.Code:   true,
	atom.Data:   true,
	atom.Dfn:    true,
	atom.Em:     true,
	atom.I:      true,
	atom.Kbd:    true,
	atom.Label:  true,
	atom.Mark:   true,
	atom.Q:      true,
	atom.S:      true,
	atom.Samp:   true,
	atom.Small:  true,
	atom.Span:   true,
	atom.Strong: true,
	atom.Sub:    true,
	atom.Sup:    true,
	atom.Time:   true,
	atom.U:      true,
	atom.Var:    true,
	atom.Wbr:    true,
}

// elementAtom returns the atom for an element, looking it up by name when
// the node was built without one.
func elementAtom(tag string, a atom.Atom) atom.Atom {
	if a != 0 {
		return a
	}
	return atom.Lookup([]byte(tag))
}
