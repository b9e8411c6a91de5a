// Package builder constructs HTML element trees from function calls.
//
// Elements are golang.org/x/net/html nodes. Build takes a tag name and a
// variadic list of arguments that mixes children and properties:
//
//	Build("label", "Email", Attr("html_for", "email"))
//	Build("input", Type("checkbox"), Checked(true))
//	Build("ul", Build("li", 1), Build("li", 2.5), nil)
//
// Arguments can be: nil, clean.Prop, clean.Props, []clean.Prop,
// map[string]any, *html.Node, []*html.Node, []any, or any other value,
// which is stringified into a text child.
//
// Builder is the stateless, shareable form of the same operation. Its Tag
// method is the explicit tag-name → constructor mapping used by the el
// package's per-tag accessors.
//
// Text is never escaped here; package render escapes it on output.
package builder
