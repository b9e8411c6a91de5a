// Package el provides the element DSL for dashml.
//
// It exposes one constructor per known HTML5 element plus the attribute and
// text helpers from package builder, so a page reads like markup:
//
//	import . "github.com/vango-dev/dashml/el"
//
//	Div(ClassName("card"),
//	    H1("Title"),
//	    P("Content", Data("id", 7)),
//	    Input(Type("checkbox"), Checked(true)),
//	)
//
// Each constructor is builder.Build with a fixed tag; use CustomElement for
// tags not listed here.
package el
