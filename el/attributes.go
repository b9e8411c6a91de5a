// This file re-exports builder attribute helpers for the el package.
package el

import "github.com/vango-dev/dashml/pkg/builder"

func Attr(key string, value any) Prop {
	return builder.Attr(key, value)
}
func ClassName(classes ...string) Prop {
	return builder.ClassName(classes...)
}
func HTMLFor(id string) Prop {
	return builder.HTMLFor(id)
}
func Data(name string, value any) Prop {
	return builder.Data(name, value)
}
func Aria(name string, value any) Prop {
	return builder.Aria(name, value)
}
func ID(id string) Prop {
	return builder.ID(id)
}
func Type(t string) Prop {
	return builder.Type(t)
}
func Name(name string) Prop {
	return builder.Name(name)
}
func Value(value any) Prop {
	return builder.Value(value)
}
func Href(url string) Prop {
	return builder.Href(url)
}
func Src(url string) Prop {
	return builder.Src(url)
}
func Rel(rel string) Prop {
	return builder.Rel(rel)
}
func Checked(on bool) Prop {
	return builder.Checked(on)
}
func Disabled(on bool) Prop {
	return builder.Disabled(on)
}
func Selected(on bool) Prop {
	return builder.Selected(on)
}
func Hidden(on bool) Prop {
	return builder.Hidden(on)
}
func Required(on bool) Prop {
	return builder.Required(on)
}
