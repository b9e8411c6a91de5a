package builder

import (
	"fmt"

	"golang.org/x/net/html"
)

// Text creates a text node. The content is escaped when rendered.
func Text(content string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *html.Node {
	return Text(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise.
// nil children are dropped by Build.
func If(condition bool, node *html.Node) *html.Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *html.Node) *html.Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps items to nodes. The result can be passed directly to Build.
func Range[T any](items []T, fn func(item T, index int) *html.Node) []*html.Node {
	nodes := make([]*html.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return nodes
}
