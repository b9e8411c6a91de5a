// Package render serializes element trees to HTML5 text and parses trusted
// HTML back into element trees.
//
// Trees are golang.org/x/net/html nodes, usually built with package builder.
// The serializer follows the HTML5 fragment serialization rules, with two
// choices of its own:
//
//   - Void elements (input, br, img, ...) have no end tag and no "/>"
//   - Attributes with an empty value render bare: <input checked>
//
// # Basic Usage
//
//	html, err := render.Render(node)
//
// To stream HTML to a writer, or pretty-print:
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	err := r.RenderToWriter(w, node)
//
// # Security
//
// Rendering is the only place escaping happens. Text is escaped (&, <, >)
// and attribute values additionally have double quotes escaped. Text inside
// raw-text elements such as script and style is written verbatim, as HTML5
// requires, so it must not carry untrusted input.
//
// UnsafeFromString parses HTML without escaping anything. It must only be
// used with trusted strings; passing user input to it allows XSS.
package render
