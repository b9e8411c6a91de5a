package builder

import (
	"sort"

	"github.com/vango-dev/dashml/pkg/clean"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Func builds an element of a fixed tag.
type Func func(args ...any) *html.Node

// Builder builds elements. It holds no state; the zero value is ready to
// use and may be shared between goroutines.
type Builder struct{}

// Build creates an element; see the package-level Build.
func (Builder) Build(tag string, args ...any) *html.Node {
	return Build(tag, args...)
}

// Tag returns a constructor for elements of the given tag.
func (Builder) Tag(name string) Func {
	return func(args ...any) *html.Node {
		return Build(name, args...)
	}
}

// Build creates an element node with the given tag, properties and children.
//
// Properties are normalized with clean.SafeProps and children with
// clean.SafeChildren. A child node that already has a parent is moved.
// The tag name is not validated; render rejects invalid names.
func Build(tag string, args ...any) *html.Node {
	var props clean.Props
	var children []any
	props, children = partition(args, props, children)

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     clean.SafeProps(props),
	}

	for _, c := range clean.SafeChildren(children) {
		switch c.Kind {
		case clean.ChildElement:
			if c.Node.Parent != nil {
				c.Node.Parent.RemoveChild(c.Node)
			}
			node.AppendChild(c.Node)
		case clean.ChildText:
			node.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
		}
	}

	return node
}

// partition splits builder arguments into properties and child values,
// keeping the relative order of each.
func partition(args []any, props clean.Props, children []any) (clean.Props, []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case clean.Prop:
			props = append(props, v)
		case clean.Props:
			props = append(props, v...)
		case []clean.Prop:
			props = append(props, v...)
		case map[string]any:
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				props = append(props, clean.Prop{Key: key, Value: v[key]})
			}
		case []any:
			props, children = partition(v, props, children)
		default:
			children = append(children, arg)
		}
	}
	return props, children
}
