package builder

import (
	"strings"

	"github.com/vango-dev/dashml/pkg/clean"
)

// Attr creates a property with the given builder key and value.
// The key is normalized when the element is built.
func Attr(key string, value any) clean.Prop { return clean.Attr(key, value) }

// ClassName sets the class attribute, joining multiple classes with spaces.
func ClassName(classes ...string) clean.Prop {
	return clean.Attr("class_name", strings.Join(classes, " "))
}

// HTMLFor sets the for attribute (for labels).
func HTMLFor(id string) clean.Prop { return clean.Attr("html_for", id) }

// Data creates a data-* attribute. Underscores in name become hyphens.
// Example: Data("user_id", 7) → data-user-id="7"
func Data(name string, value any) clean.Prop { return clean.Attr("data_"+name, value) }

// Aria creates an aria-* attribute.
// Example: Aria("label", "Close") → aria-label="Close"
func Aria(name string, value any) clean.Prop { return clean.Attr("aria_"+name, value) }

// ID sets the id attribute.
func ID(id string) clean.Prop { return clean.Attr("id", id) }

// Type sets the type attribute.
func Type(t string) clean.Prop { return clean.Attr("type", t) }

// Name sets the name attribute.
func Name(name string) clean.Prop { return clean.Attr("name", name) }

// Value sets the value attribute.
func Value(value any) clean.Prop { return clean.Attr("value", value) }

// Href sets the href attribute.
func Href(url string) clean.Prop { return clean.Attr("href", url) }

// Src sets the src attribute.
func Src(url string) clean.Prop { return clean.Attr("src", url) }

// Rel sets the rel attribute.
func Rel(rel string) clean.Prop { return clean.Attr("rel", rel) }

// Boolean attributes. false omits the attribute.

// Checked sets the checked attribute.
func Checked(on bool) clean.Prop { return clean.Attr("checked", on) }

// Disabled sets the disabled attribute.
func Disabled(on bool) clean.Prop { return clean.Attr("disabled", on) }

// Selected sets the selected attribute.
func Selected(on bool) clean.Prop { return clean.Attr("selected", on) }

// Hidden sets the hidden attribute.
func Hidden(on bool) clean.Prop { return clean.Attr("hidden", on) }

// Required sets the required attribute.
func Required(on bool) clean.Prop { return clean.Attr("required", on) }
