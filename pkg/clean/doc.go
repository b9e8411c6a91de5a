// Package clean normalizes the children and properties handed to the
// element builder.
//
// Properties are rewritten before they are attached to an element:
//
//   - true becomes an empty value (rendered as a bare boolean attribute),
//     false and nil remove the attribute entirely
//   - data_* and aria_* keys have every underscore turned into a hyphen
//   - the reserved aliases class_name and html_for become class and for
//   - every other value is stringified
//
// Children are resolved once into a tagged Child: absent values are dropped,
// *html.Node values pass through, and everything else becomes text.
//
// Nothing in this package escapes HTML. Escaping happens once, in the
// serializer (package render).
package clean
