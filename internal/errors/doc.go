// Package errors provides structured, actionable error messages for dashml.
//
// Every failure surfaced by the library carries a stable code (e.g. "E001")
// that maps to a registered template:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
//   - render: serialization failures (invalid tag or attribute names)
//   - parse: trusted-HTML parsing failures
//   - query: selector failures
//   - config: dashml.json loading and validation
//   - server: page handler failures
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail(`tag "my tag" contains whitespace`).
//	    WithSuggestion("Use a tag name without spaces")
//
//	fmt.Println(err.Format())
//
// Errors compare by code, so a bare template works as a sentinel:
//
//	if errors.Is(err, errors.New("E001")) { ... }
package errors
