// Package render converts Arbor node trees into HTML strings or streams.
//
// It handles all aspects of producing valid, secure HTML output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean and bare attribute handling (disabled, checked, scope stamps)
//   - className aliasing to class
//   - Deterministic attribute ordering
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.Config{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.Config{})
//	err := renderer.RenderToWriter(w, node)
//
// # Failure semantics
//
// Structurally malformed elements degrade to empty output by default, so
// one bad fragment cannot blank an entire page. Config{Strict: true} turns
// that silent fallback into a structured error naming the node's path.
// Errors raised inside Lazy node functions are never caught here: they
// propagate to the caller, who owns page-level fallback behavior.
//
// # Security
//
// All text content is escaped by default. Raw HTML can only enter the
// output through tree.MarkTrusted, which must never carry user input.
package render
