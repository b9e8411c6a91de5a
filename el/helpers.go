// This file re-exports builder helper functions for the el package.
package el

import "github.com/vango-dev/dashml/pkg/builder"

func Text(content string) *Node {
	return builder.Text(content)
}
func Textf(format string, args ...any) *Node {
	return builder.Textf(format, args...)
}
func If(condition bool, node *Node) *Node {
	return builder.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	return builder.IfElse(condition, ifTrue, ifFalse)
}
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	return builder.Range(items, fn)
}
