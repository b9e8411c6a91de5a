// Package query selects nodes from element trees with CSS selectors.
//
// It is mostly useful on trees returned by render.UnsafeFromString, where
// the structure is not known up front:
//
//	root, _ := render.UnsafeFromString(page)
//	scripts, err := query.Select(root, "script")
package query

import (
	"github.com/andybalholm/cascadia"
	dasherr "github.com/vango-dev/dashml/internal/errors"
	"golang.org/x/net/html"
)

// ErrInvalidSelector is returned for selectors that do not compile.
var ErrInvalidSelector error = dasherr.New("E020")

// Compile parses a selector for repeated use.
func Compile(selector string) (cascadia.Sel, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, dasherr.New("E020").WithDetailf("%q", selector).Wrap(err)
	}
	return sel, nil
}

// Select returns every node under root (root included) matching selector,
// in document order.
func Select(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	var out []*html.Node
	if sel.Match(root) {
		out = append(out, root)
	}
	return append(out, cascadia.QueryAll(root, sel)...), nil
}

// SelectFirst returns the first node (root included) matching selector,
// or nil.
func SelectFirst(root *html.Node, selector string) (*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	if sel.Match(root) {
		return root, nil
	}
	return cascadia.Query(root, sel), nil
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(node *html.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
