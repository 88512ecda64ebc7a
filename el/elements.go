package el

import "github.com/arbor-dev/arbor/pkg/tree"

// createElement creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string, Trusted,
// LazyFunc.
func createElement(tag string, args []any) *Node {
	node := &tree.Node{
		Kind:     tree.KindElement,
		Tag:      tag,
		Props:    make(tree.Props),
		Children: make([]*tree.Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					node.Props[attr.Key] = attr.Value
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, tree.Text(v))

		case Trusted:
			node.Children = append(node.Children, tree.Raw(v))

		case LazyFunc:
			node.Children = append(node.Children, tree.Lazy(v))

		case func(EscapeFunc) any:
			node.Children = append(node.Children, tree.Lazy(v))
		}
	}

	return node
}

// Text creates an escaped text node.
func Text(content string) *Node { return tree.Text(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node { return tree.Textf(format, args...) }

// Raw creates a trusted HTML node from a MarkTrusted payload.
func Raw(t Trusted) *Node { return tree.Raw(t) }

// MarkTrusted wraps developer-authored HTML so it is emitted verbatim.
func MarkTrusted(html string) Trusted { return tree.MarkTrusted(html) }

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node { return tree.Seq(children...) }

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Map renders a node for each item of a slice, preserving order.
func Map[T any](items []T, fn func(T) *Node) []*Node {
	nodes := make([]*Node, 0, len(items))
	for _, item := range items {
		if n := fn(item); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Document structure elements

func Html(args ...any) *Node  { return createElement("html", args) }
func Head(args ...any) *Node  { return createElement("head", args) }
func Body(args ...any) *Node  { return createElement("body", args) }
func Title(args ...any) *Node { return createElement("title", args) }
func Meta(args ...any) *Node  { return createElement("meta", args) }
func Link(args ...any) *Node  { return createElement("link", args) }

// Content sectioning elements

func Header(args ...any) *Node  { return createElement("header", args) }
func Footer(args ...any) *Node  { return createElement("footer", args) }
func Main(args ...any) *Node    { return createElement("main", args) }
func Nav(args ...any) *Node     { return createElement("nav", args) }
func Section(args ...any) *Node { return createElement("section", args) }
func Article(args ...any) *Node { return createElement("article", args) }
func Aside(args ...any) *Node   { return createElement("aside", args) }
func H1(args ...any) *Node      { return createElement("h1", args) }
func H2(args ...any) *Node      { return createElement("h2", args) }
func H3(args ...any) *Node      { return createElement("h3", args) }
func H4(args ...any) *Node      { return createElement("h4", args) }
func H5(args ...any) *Node      { return createElement("h5", args) }
func H6(args ...any) *Node      { return createElement("h6", args) }

// Text content elements

func Div(args ...any) *Node        { return createElement("div", args) }
func P(args ...any) *Node          { return createElement("p", args) }
func Span(args ...any) *Node       { return createElement("span", args) }
func Pre(args ...any) *Node        { return createElement("pre", args) }
func Blockquote(args ...any) *Node { return createElement("blockquote", args) }
func Ul(args ...any) *Node         { return createElement("ul", args) }
func Ol(args ...any) *Node         { return createElement("ol", args) }
func Li(args ...any) *Node         { return createElement("li", args) }
func Hr(args ...any) *Node         { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *Node      { return createElement("a", args) }
func Strong(args ...any) *Node { return createElement("strong", args) }
func Em(args ...any) *Node     { return createElement("em", args) }
func B(args ...any) *Node      { return createElement("b", args) }
func I(args ...any) *Node      { return createElement("i", args) }
func Small(args ...any) *Node  { return createElement("small", args) }
func Code(args ...any) *Node   { return createElement("code", args) }
func Br(args ...any) *Node     { return createElement("br", args) }

// Media elements

func Img(args ...any) *Node    { return createElement("img", args) }
func Video(args ...any) *Node  { return createElement("video", args) }
func Audio(args ...any) *Node  { return createElement("audio", args) }
func Source(args ...any) *Node { return createElement("source", args) }

// Form elements

func Form(args ...any) *Node     { return createElement("form", args) }
func Input(args ...any) *Node    { return createElement("input", args) }
func Button(args ...any) *Node   { return createElement("button", args) }
func Label(args ...any) *Node    { return createElement("label", args) }
func Select(args ...any) *Node   { return createElement("select", args) }
func OptionEl(args ...any) *Node { return createElement("option", args) }
func Textarea(args ...any) *Node { return createElement("textarea", args) }

// Table elements

func Table(args ...any) *Node { return createElement("table", args) }
func Thead(args ...any) *Node { return createElement("thead", args) }
func Tbody(args ...any) *Node { return createElement("tbody", args) }
func Tr(args ...any) *Node    { return createElement("tr", args) }
func Th(args ...any) *Node    { return createElement("th", args) }
func Td(args ...any) *Node    { return createElement("td", args) }

// Script and style carriers

// Script creates an inline script element. The body must come from
// MarkTrusted; plain strings would be entity-escaped and break the script.
func Script(args ...any) *Node { return createElement("script", args) }

// Style creates an inline stylesheet element. Plain-string bodies take
// part in scope encapsulation; see the scope package.
func Style(css string, args ...any) *Node {
	node := createElement("style", args)
	node.Text = tree.Text(css)
	return node
}
