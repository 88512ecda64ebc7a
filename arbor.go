// Package arbor provides the public API for the Arbor SSR renderer.
//
// Arbor turns plain nested-object descriptions of DOM trees into escaped,
// well-formed HTML strings, with optional CSS scope encapsulation.
//
// This is the recommended import for most applications:
//
//	import "github.com/arbor-dev/arbor"
//
// Usage:
//
//	html, err := arbor.Render(map[string]any{
//	    "div": map[string]any{
//	        "class": "card",
//	        "children": []any{
//	            map[string]any{"h1": "Title"},
//	        },
//	    },
//	}, arbor.Scoped())
package arbor

import (
	"github.com/arbor-dev/arbor/pkg/render"
	"github.com/arbor-dev/arbor/pkg/scope"
	"github.com/arbor-dev/arbor/pkg/tree"
)

// =============================================================================
// Tree model (pkg/tree re-exports)
// =============================================================================

// Node is one node of a renderable tree.
type Node = tree.Node

// Props holds element attributes.
type Props = tree.Props

// Trusted marks pre-rendered HTML that bypasses escaping.
type Trusted = tree.Trusted

// Kind is the node type discriminator.
type Kind = tree.Kind

// Kind constants
const (
	KindText      = tree.KindText
	KindSeq       = tree.KindSeq
	KindLazy      = tree.KindLazy
	KindElement   = tree.KindElement
	KindTrusted   = tree.KindTrusted
	KindMalformed = tree.KindMalformed
)

// Text creates an escaped text node.
func Text(content string) *Node { return tree.Text(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node { return tree.Textf(format, args...) }

// Seq groups nodes into an ordered sequence without a wrapper element.
func Seq(children ...*Node) *Node { return tree.Seq(children...) }

// El creates an element node.
func El(tag string, props Props, children ...*Node) *Node {
	return tree.El(tag, props, children...)
}

// Lazy creates a deferred node resolved fresh on every render.
func Lazy(fn tree.LazyFunc) *Node { return tree.Lazy(fn) }

// FromAny converts a plain nested Go value into a Node.
func FromAny(v any) *Node { return tree.FromAny(v) }

// MarkTrusted wraps developer-authored HTML so it is emitted verbatim,
// bypassing all escaping.
//
// This is the only sanctioned escape hatch in the module. It exists for
// inline <script> and <style> bodies written by the application author;
// passing anything derived from user input through it is an XSS hole.
func MarkTrusted(html string) Trusted { return tree.MarkTrusted(html) }

// Escape is the renderer's HTML escaping primitive, also handed to Lazy
// node functions at render time.
var Escape = render.Escape

// =============================================================================
// Rendering
// =============================================================================

// Option configures a render call.
type Option func(*options)

type options struct {
	scoped bool
	strict bool
	tokens scope.TokenSource
}

// Scoped enables CSS scope encapsulation: a fresh token is generated,
// embedded stylesheets are rewritten and every element is stamped.
func Scoped() Option {
	return func(o *options) { o.scoped = true }
}

// Strict reports malformed element mappings as errors instead of the
// tolerant empty-string fallback.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithTokens injects a scope token source, replacing the process-wide
// counter. Useful for deterministic output in tests.
func WithTokens(tokens scope.TokenSource) Option {
	return func(o *options) { o.tokens = tokens }
}

// Render converts a tree description into an HTML string. The input may be
// typed nodes built with El/Text/Seq or plain nested Go values in the
// shape accepted by FromAny.
func Render(root any, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	node := tree.FromAny(root)
	renderer := render.NewRenderer(render.Config{Strict: o.strict})
	if o.scoped {
		return scope.New(renderer, o.tokens).RenderScoped(node)
	}
	return renderer.RenderToString(node)
}

// RenderScoped renders with CSS scope encapsulation, always generating a
// new token.
func RenderScoped(root any) (string, error) {
	return Render(root, Scoped())
}

// RenderUnsafe renders the tree directly with no scope transformation.
// The explicit opt-out for trusted, page-global styling.
func RenderUnsafe(root any) (string, error) {
	return Render(root)
}
