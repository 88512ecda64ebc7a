package scope

import (
	"github.com/arbor-dev/arbor/internal/errors"
	"github.com/arbor-dev/arbor/pkg/render"
	"github.com/arbor-dev/arbor/pkg/tree"
)

// Encapsulator renders trees with style encapsulation. It owns no mutable
// state beyond the injected token source and is safe for concurrent use.
type Encapsulator struct {
	renderer *render.Renderer
	tokens   TokenSource
}

// New creates an Encapsulator. A nil tokens argument selects the
// process-wide counter source.
func New(renderer *render.Renderer, tokens TokenSource) *Encapsulator {
	if renderer == nil {
		renderer = render.NewRenderer(render.Config{})
	}
	if tokens == nil {
		tokens = DefaultSource()
	}
	return &Encapsulator{renderer: renderer, tokens: tokens}
}

// RenderScoped renders the tree with a fresh scope token. The style
// rewrite pass runs strictly before the stamping pass so both see the
// same token, and neither pass mutates the input tree.
func (e *Encapsulator) RenderScoped(node *tree.Node) (string, error) {
	token := e.tokens.Next()
	if token == "" {
		return "", errors.New("S002")
	}

	scoped := stamp(rewriteStyles(node, token), token)
	return e.renderer.RenderToString(scoped)
}

// RenderUnsafe renders the tree directly with no token generation and no
// transformation. The explicit opt-out for trusted, page-global styling.
func (e *Encapsulator) RenderUnsafe(node *tree.Node) (string, error) {
	return e.renderer.RenderToString(node)
}

// rewriteStyles walks the tree and rewrites the text of every <style>
// element so its selectors are qualified by the scope token. All other
// nodes pass through with only their children recursed. Lazy nodes are
// opaque here: they are resolved by the renderer only, so content they
// produce is rendered unscoped.
func rewriteStyles(n *tree.Node, token string) *tree.Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case tree.KindSeq:
		out := n.Clone()
		for i, child := range n.Children {
			out.Children[i] = rewriteStyles(child, token)
		}
		return out
	case tree.KindElement:
		out := n.Clone()
		if n.Tag == "style" && n.Text != nil && n.Text.Kind == tree.KindText {
			out.Text = tree.Text(RewriteCSS(n.Text.Value, token))
		}
		for i, child := range n.Children {
			out.Children[i] = rewriteStyles(child, token)
		}
		return out
	default:
		return n
	}
}

// stamp adds the scope token as a bare attribute to every element in the
// tree. Text-shorthand elements have no attribute slot and stay unstamped,
// and <style> elements keep their own attributes untouched so the style
// carrier is not matched by its own rules.
func stamp(n *tree.Node, token string) *tree.Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case tree.KindSeq:
		out := n.Clone()
		for i, child := range n.Children {
			out.Children[i] = stamp(child, token)
		}
		return out
	case tree.KindElement:
		if n.IsShorthand() {
			return n
		}
		out := n.Clone()
		if n.Tag != "style" {
			// The empty string value renders as a bare attribute name.
			out.Props[token] = ""
		}
		for i, child := range n.Children {
			out.Children[i] = stamp(child, token)
		}
		return out
	default:
		return n
	}
}
