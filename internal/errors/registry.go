package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Invalid tag name",
		Detail:   "Tag names must start with an ASCII letter and must not contain whitespace, '/', '>' or NUL.",
		DocURL:   "https://dashml.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty and must not contain whitespace, quotes, '>', '/', '=' or control characters.",
		DocURL:   "https://dashml.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Unsupported node type",
		Detail:   "Only element, text, raw, comment, doctype and document nodes can be rendered.",
		DocURL:   "https://dashml.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryRender,
		Message:  "Void element has children",
		Detail:   "Void elements such as input, br and img have no end tag and cannot contain child nodes.",
		DocURL:   "https://dashml.dev/docs/errors/E004",
	},

	// ============================================
	// Parse Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryParse,
		Message:  "Document is empty",
		Detail:   "UnsafeFromString needs at least one node to return.",
		DocURL:   "https://dashml.dev/docs/errors/E010",
	},
	"E011": {
		Category: CategoryParse,
		Message:  "HTML parse failed",
		Detail:   "The HTML parser rejected the input.",
		DocURL:   "https://dashml.dev/docs/errors/E011",
	},

	// ============================================
	// Query Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryQuery,
		Message:  "Invalid selector",
		Detail:   "The CSS selector could not be compiled.",
		DocURL:   "https://dashml.dev/docs/errors/E020",
	},

	// ============================================
	// Config Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No dashml.json was found in the given directory.",
		DocURL:   "https://dashml.dev/docs/errors/E030",
	},
	"E031": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "dashml.json could not be read or is not valid JSON.",
		DocURL:   "https://dashml.dev/docs/errors/E031",
	},
	"E032": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in dashml.json is out of range.",
		DocURL:   "https://dashml.dev/docs/errors/E032",
	},

	// ============================================
	// Server Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryServer,
		Message:  "Page handler failed",
		Detail:   "The page function returned an error or its result could not be rendered.",
		DocURL:   "https://dashml.dev/docs/errors/E040",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
