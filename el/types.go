package el

import (
	"github.com/vango-dev/dashml/pkg/builder"
	"github.com/vango-dev/dashml/pkg/clean"
	"golang.org/x/net/html"
)

// Type aliases for the primitives used by the DSL.
type Node = html.Node
type Prop = clean.Prop
type Props = clean.Props
type Func = builder.Func
