package render

import (
	"strings"

	dasherr "github.com/vango-dev/dashml/internal/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// UnsafeFromString parses trusted HTML into an element tree.
//
// UNSAFE: nothing is escaped. Never pass untrusted input; doing so bypasses
// every escaping guarantee of the builder and allows XSS.
//
// A full document (starting with a doctype or <html>) yields its <html>
// element. A fragment with a single top-level element yields that element;
// anything else is wrapped in a <div>. The returned node has no parent.
func UnsafeFromString(unsafeString string) (*html.Node, error) {
	trimmed := strings.TrimSpace(unsafeString)
	if trimmed == "" {
		return nil, dasherr.New("E010")
	}

	if isDocument(trimmed) {
		return parseDocument(unsafeString)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(unsafeString), body)
	if err != nil {
		return nil, dasherr.New("E011").Wrap(err)
	}

	nodes = trimWhitespace(nodes)
	switch {
	case len(nodes) == 0:
		return nil, dasherr.New("E010")
	case len(nodes) == 1 && nodes[0].Type == html.ElementNode:
		return nodes[0], nil
	}

	wrapper := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		wrapper.AppendChild(n)
	}
	return wrapper, nil
}

func parseDocument(s string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, dasherr.New("E011").Wrap(err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Html) {
			doc.RemoveChild(c)
			return c, nil
		}
	}
	return nil, dasherr.New("E010")
}

// isDocument reports whether s looks like a full HTML document.
func isDocument(s string) bool {
	prefix := strings.ToLower(s[:min(len(s), len("<!doctype"))])
	return strings.HasPrefix(prefix, "<!doctype") || strings.HasPrefix(prefix, "<html")
}

// trimWhitespace drops whitespace-only text nodes around the top-level nodes.
func trimWhitespace(nodes []*html.Node) []*html.Node {
	blank := func(n *html.Node) bool {
		return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
	}
	for len(nodes) > 0 && blank(nodes[0]) {
		nodes = nodes[1:]
	}
	for len(nodes) > 0 && blank(nodes[len(nodes)-1]) {
		nodes = nodes[:len(nodes)-1]
	}
	return nodes
}
