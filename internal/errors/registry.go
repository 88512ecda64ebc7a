package errors

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
	// Render Errors (R001-R099)
	// ============================================

	"R001": {
		Category: CategoryRender,
		Message:  "Malformed element mapping",
		Detail:   "An element must be a mapping with exactly one key: the tag name. In tolerant mode this node renders as an empty string, which usually shows up as a blank region in the page.",
		DocURL:   "https://arbor.dev/docs/errors/R001",
	},
	"R002": {
		Category: CategoryRender,
		Message:  "Unsupported node type",
		Detail:   "The value is not one of the accepted tree shapes (nil, string, number, sequence, function, element, trusted content). It was stringified and escaped as a fallback.",
		DocURL:   "https://arbor.dev/docs/errors/R002",
	},
	"R003": {
		Category: CategoryRender,
		Message:  "Trusted content misuse",
		Detail:   "MarkTrusted bypasses all HTML escaping. Its payload must be developer-authored markup, never data derived from user input.",
		DocURL:   "https://arbor.dev/docs/errors/R003",
	},
	"R004": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node with a Kind value outside the defined set. This indicates a hand-built Node with an uninitialized or corrupted Kind field.",
		DocURL:   "https://arbor.dev/docs/errors/R004",
	},

	// ============================================
	// Scope Errors (S001-S099)
	// ============================================

	"S001": {
		Category: CategoryScope,
		Message:  "Stylesheet rewrite failed",
		Detail:   "The scoping pass could not tokenize the embedded stylesheet. The style text was left untouched, so its rules are not scoped to this render.",
		DocURL:   "https://arbor.dev/docs/errors/S001",
	},
	"S002": {
		Category: CategoryScope,
		Message:  "Token source exhausted",
		Detail:   "The configured token source returned an empty token. Scoped rendering requires a non-empty, unique token per call.",
		DocURL:   "https://arbor.dev/docs/errors/S002",
	},

	// ============================================
	// Validation Errors (V001-V099)
	// ============================================

	"V001": {
		Category: CategoryValidation,
		Message:  "Tree input is not valid JSON",
		Detail:   "Page description files must contain a single JSON value describing the tree.",
		DocURL:   "https://arbor.dev/docs/errors/V001",
	},

	// ============================================
	// Config Errors (C001-C099)
	// ============================================

	"C001": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No arbor.json was found in the current directory or any parent directory.",
		DocURL:   "https://arbor.dev/docs/errors/C001",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "arbor.json could not be parsed or contains invalid values.",
		DocURL:   "https://arbor.dev/docs/errors/C002",
	},

	// ============================================
	// CLI Errors (L001-L099)
	// ============================================

	"L001": {
		Category: CategoryCLI,
		Message:  "Tree file not found",
		Detail:   "The page description file passed to the command does not exist.",
		DocURL:   "https://arbor.dev/docs/errors/L001",
	},
	"L002": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		Detail:   "The rendered page could not be written to the configured publish store.",
		DocURL:   "https://arbor.dev/docs/errors/L002",
	},
}

// Register adds a custom error template. Intended for tests and embedding
// applications that extend the taxonomy.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
