package clean

import (
	"strings"

	"golang.org/x/net/html"
)

// Prop is a single builder-facing property. Keys use the builder spelling
// (class_name, data_user_id); SafeProps turns them into wire attribute names.
type Prop struct {
	Key   string
	Value any
}

// Props is an ordered list of properties.
type Props []Prop

// Attr creates a Prop with the given key and value.
func Attr(key string, value any) Prop {
	return Prop{Key: key, Value: value}
}

// reservedPairs maps builder spellings that collide with Go or HTML
// conventions to their wire names, like className/htmlFor in React.
var reservedPairs = map[string]string{
	"class_name": "class",
	"html_for":   "for",
}

// AttrName returns the wire attribute name for a builder key.
func AttrName(key string) string {
	if strings.HasPrefix(key, "data_") || strings.HasPrefix(key, "aria_") {
		return strings.ReplaceAll(key, "_", "-")
	}
	if name, ok := reservedPairs[key]; ok {
		return name
	}
	return key
}

// SafeProps turns builder properties into element attributes.
//
// Boolean resolution runs before the key is rewritten, so data_active=true
// still collapses to a bare data-active attribute. When two props map to the
// same attribute the last one wins and the attribute keeps the position of
// the first; a later false or nil removes it.
// The input is never modified.
func SafeProps(props Props) []html.Attribute {
	if len(props) == 0 {
		return nil
	}

	attrs := make([]html.Attribute, 0, len(props))
	index := make(map[string]int, len(props))

	for _, p := range props {
		value, keep := resolveValue(p.Value)
		name := AttrName(p.Key)

		i, seen := index[name]
		switch {
		case !keep && seen:
			attrs = append(attrs[:i], attrs[i+1:]...)
			delete(index, name)
			for k, j := range index {
				if j > i {
					index[k] = j - 1
				}
			}
		case !keep:
		case seen:
			attrs[i].Val = value
		default:
			index[name] = len(attrs)
			attrs = append(attrs, html.Attribute{Key: name, Val: value})
		}
	}

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// resolveValue applies HTML5 boolean-attribute semantics and stringifies
// everything else. keep is false when the attribute must be omitted.
func resolveValue(v any) (value string, keep bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", x
	case *bool:
		if x == nil {
			return "", false
		}
		return "", *x
	}
	if isNilPointer(v) {
		return "", false
	}
	return Stringify(v), true
}
