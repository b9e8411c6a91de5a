package render

import (
	"bytes"
	"io"
	"strings"

	dasherr "github.com/vango-dev/dashml/internal/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Errors returned by rendering and parsing. Compare with errors.Is.
var (
	ErrInvalidTagName  error = dasherr.New("E001")
	ErrInvalidAttrName error = dasherr.New("E002")
	ErrUnsupportedNode error = dasherr.New("E003")
	ErrVoidChildren    error = dasherr.New("E004")
	ErrEmptyDocument   error = dasherr.New("E010")
	ErrParse           error = dasherr.New("E011")
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Children are split onto their own lines only when all of them are
	// block-level elements; text and inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes element trees to HTML. A Renderer holds only its
// configuration and may be shared between goroutines.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// Render renders an element tree to an HTML string.
func Render(node *html.Node) (string, error) {
	return defaultRenderer.RenderToString(node)
}

// RenderToWriter renders an element tree to w.
func RenderToWriter(w io.Writer, node *html.Node) error {
	return defaultRenderer.RenderToWriter(w, node)
}

// RenderToString renders an element tree to an HTML string.
func (r *Renderer) RenderToString(node *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders an element tree to w. Nothing is written when the
// tree cannot be rendered.
func (r *Renderer) RenderToWriter(w io.Writer, node *html.Node) error {
	var buf bytes.Buffer
	if err := r.render(&buf, node); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) render(buf *bytes.Buffer, node *html.Node) error {
	if node == nil {
		return nil
	}
	return r.renderNode(buf, node, 0, r.config.Pretty)
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(buf *bytes.Buffer, node *html.Node, depth int, pretty bool) error {
	switch node.Type {
	case html.ElementNode:
		return r.renderElement(buf, node, depth, pretty)
	case html.TextNode:
		if p := node.Parent; p != nil && p.Type == html.ElementNode && rawTextElements[elementAtom(p.Data, p.DataAtom)] {
			buf.WriteString(node.Data)
		} else {
			buf.WriteString(escapeHTML(node.Data))
		}
		return nil
	case html.RawNode:
		buf.WriteString(node.Data)
		return nil
	case html.CommentNode:
		buf.WriteString("<!--")
		buf.WriteString(node.Data)
		buf.WriteString("-->")
		return nil
	case html.DoctypeNode:
		buf.WriteString("<!DOCTYPE ")
		buf.WriteString(node.Data)
		buf.WriteString(">")
		return nil
	case html.DocumentNode:
		return r.renderChildren(buf, node, depth-1, pretty)
	default:
		return dasherr.New("E003").WithDetailf("node type %d", node.Type)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(buf *bytes.Buffer, node *html.Node, depth int, pretty bool) error {
	tag := node.Data
	if !validTagName(tag) {
		return dasherr.New("E001").WithDetailf("%q", tag)
	}
	a := elementAtom(tag, node.DataAtom)

	buf.WriteByte('<')
	buf.WriteString(tag)
	if err := renderAttributes(buf, node.Attr); err != nil {
		return err
	}
	buf.WriteByte('>')

	if voidElements[a] {
		if node.FirstChild != nil {
			return dasherr.New("E004").WithDetailf("<%s>", tag)
		}
		return nil
	}

	if leadingNewlineElements[a] {
		if c := node.FirstChild; c != nil && c.Type == html.TextNode && strings.HasPrefix(c.Data, "\n") {
			buf.WriteByte('\n')
		}
	}

	childPretty := pretty && !inlineElements[a] && !rawTextElements[a] && !leadingNewlineElements[a]
	if err := r.renderChildren(buf, node, depth, childPretty); err != nil {
		return err
	}

	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
	return nil
}

// renderChildren renders the children of node. In pretty mode, children are
// put on their own indented lines when none of them is inline content.
func (r *Renderer) renderChildren(buf *bytes.Buffer, node *html.Node, depth int, pretty bool) error {
	block := pretty && node.FirstChild != nil && !hasInlineChild(node)
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if block {
			if depth >= 0 || c != node.FirstChild {
				buf.WriteByte('\n')
			}
			r.writeIndent(buf, depth+1)
		}
		if err := r.renderNode(buf, c, depth+1, block); err != nil {
			return err
		}
	}
	if block && depth >= 0 {
		buf.WriteByte('\n')
		r.writeIndent(buf, depth)
	}
	return nil
}

// renderAttributes renders attributes in order. Empty values render bare.
func renderAttributes(buf *bytes.Buffer, attrs []html.Attribute) error {
	for _, attr := range attrs {
		if !validAttrName(attr.Key) || (attr.Namespace != "" && !validAttrName(attr.Namespace)) {
			return dasherr.New("E002").WithDetailf("%q", attr.Key)
		}
		buf.WriteByte(' ')
		if attr.Namespace != "" {
			buf.WriteString(attr.Namespace)
			buf.WriteByte(':')
		}
		buf.WriteString(attr.Key)
		if attr.Val == "" {
			continue
		}
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(attr.Val))
		buf.WriteByte('"')
	}
	return nil
}

// hasInlineChild reports whether any direct child is text, raw HTML or an
// inline element.
func hasInlineChild(node *html.Node) bool {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode, html.RawNode:
			return true
		case html.ElementNode:
			if inlineElements[elementAtom(c.Data, c.DataAtom)] {
				return true
			}
		}
	}
	return false
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(r.config.Indent)
	}
}

// TextContent returns the concatenated text of node and its descendants.
func TextContent(node *html.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == html.TextNode {
		return node.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(node)
	return b.String()
}

// isElement reports whether node is an element with the given atom.
func isElement(node *html.Node, a atom.Atom) bool {
	return node != nil && node.Type == html.ElementNode && elementAtom(node.Data, node.DataAtom) == a
}
