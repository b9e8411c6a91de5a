// Package dashml builds HTML element trees from ordinary function calls and
// renders them to HTML5.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/dashml"
//
// Usage:
//
//	page := dashml.Build("input",
//	    dashml.Attr("type", "checkbox"),
//	    dashml.Attr("checked", true),
//	)
//	out, err := dashml.Render(page) // <input type="checkbox" checked>
//
// Per-tag constructors live in package el; normalization rules live in
// package clean.
package dashml

import (
	"io"

	"github.com/vango-dev/dashml/pkg/builder"
	"github.com/vango-dev/dashml/pkg/clean"
	"github.com/vango-dev/dashml/pkg/render"
	"golang.org/x/net/html"
)

// =============================================================================
// Element tree
// =============================================================================

// Node is an element tree node.
type Node = html.Node

// Prop is a single property passed to Build.
type Prop = clean.Prop

// Props is an ordered list of properties.
type Props = clean.Props

// Func builds an element of a fixed tag.
type Func = builder.Func

// B is the shared builder. It is stateless, so a fresh builder.Builder{}
// behaves identically.
var B builder.Builder

// Build creates an element with the given tag. args mixes children (nodes,
// strings, numbers, nil, slices) and properties (Prop, Props, map[string]any).
func Build(tag string, args ...any) *Node {
	return B.Build(tag, args...)
}

// Tag returns a constructor for elements of the given tag.
func Tag(name string) Func {
	return B.Tag(name)
}

// Attr creates a property. Keys follow the builder conventions: data_ and
// aria_ prefixes become hyphenated, class_name and html_for are aliases.
var Attr = clean.Attr

// =============================================================================
// Rendering
// =============================================================================

// RendererConfig configures pretty-printing.
type RendererConfig = render.RendererConfig

// Render renders an element tree to an HTML string.
func Render(n *Node) (string, error) {
	return render.Render(n)
}

// RenderToWriter renders an element tree to w.
func RenderToWriter(w io.Writer, n *Node) error {
	return render.RenderToWriter(w, n)
}

// NewRenderer creates a renderer with the given configuration.
var NewRenderer = render.NewRenderer

// UnsafeFromString parses trusted HTML into an element tree. Nothing is
// escaped; never pass untrusted input.
func UnsafeFromString(s string) (*Node, error) {
	return render.UnsafeFromString(s)
}

// TextContent returns the concatenated text of a subtree.
var TextContent = render.TextContent
