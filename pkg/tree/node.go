package tree

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText      Kind = iota // Escaped text content
	KindSeq                   // Ordered sequence without a wrapper
	KindLazy                  // Deferred node, resolved at render time
	KindElement               // HTML element
	KindTrusted               // Raw HTML, emitted verbatim
	KindMalformed             // Element mapping that broke the one-key rule
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindSeq:
		return "Seq"
	case KindLazy:
		return "Lazy"
	case KindElement:
		return "Element"
	case KindTrusted:
		return "Trusted"
	case KindMalformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// EscapeFunc escapes text for safe inclusion in HTML. The renderer passes
// its escaping primitive to Lazy nodes so user functions can compose
// pre-escaped fragments.
type EscapeFunc func(string) string

// LazyFunc produces a node value when invoked at render time. The returned
// value may be any shape accepted by FromAny. It is called fresh on every
// render; results are never cached at this layer.
type LazyFunc func(escape EscapeFunc) any

// Props holds element attributes. The reserved keys "children" and "text"
// are split out during element construction and never appear here.
type Props map[string]any

// Node is one node of a renderable tree. A nil *Node is the empty variant.
type Node struct {
	Kind     Kind
	Tag      string   // KindElement: tag name
	Props    Props    // KindElement: attributes; nil for text-shorthand elements
	Children []*Node  // KindElement and KindSeq
	Text     *Node    // KindElement: content override, wins over Children
	Value    string   // KindText and KindTrusted payload
	Fn       LazyFunc // KindLazy
	BadKeys  []string // KindMalformed: the offending top-level keys
}

// Trusted marks pre-rendered HTML that bypasses escaping. The zero value
// carries no payload; the only way to attach one is MarkTrusted, which is
// the single sanctioned escape hatch in the module.
type Trusted struct {
	html string
}

// MarkTrusted wraps developer-authored HTML so the renderer emits it
// verbatim. This bypasses all escaping: the payload must never originate
// from user-supplied data. Intended for inline <script> and <style> bodies
// written by the application author.
func MarkTrusted(html string) Trusted {
	return Trusted{html: html}
}

// HTML returns the trusted payload.
func (t Trusted) HTML() string { return t.html }

// Text creates a text node. Its content is escaped when rendered.
func Text(content string) *Node {
	return &Node{Kind: KindText, Value: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a trusted HTML node from an already-marked payload.
func Raw(t Trusted) *Node {
	return &Node{Kind: KindTrusted, Value: t.html}
}

// Seq groups nodes into an ordered sequence without a wrapper element.
// Nil entries are dropped.
func Seq(children ...*Node) *Node {
	node := &Node{Kind: KindSeq, Children: make([]*Node, 0, len(children))}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// Lazy creates a deferred node. The function runs on every render with the
// renderer's escaping primitive and its result is converted via FromAny.
func Lazy(fn LazyFunc) *Node {
	return &Node{Kind: KindLazy, Fn: fn}
}

// El creates an element node. The reserved props keys "children" and "text"
// are resolved into node content; everything else is kept as an attribute.
// Additional children may be passed directly and are appended after any
// "children" prop.
func El(tag string, props Props, children ...*Node) *Node {
	node := &Node{Kind: KindElement, Tag: tag, Props: Props{}}
	for key, value := range props {
		switch key {
		case "children":
			node.Children = appendContent(node.Children, FromAny(value))
		case "text":
			node.Text = FromAny(value)
		default:
			node.Props[key] = value
		}
	}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// TextEl creates a text-shorthand element: a tag whose sole content is an
// escaped string and which carries no attribute slot.
func TextEl(tag, content string) *Node {
	return &Node{Kind: KindElement, Tag: tag, Text: Text(content)}
}

// Clone returns a shallow copy of the node with its own Props map and
// Children slice, leaving the receiver untouched. Used by transformation
// passes that must not mutate shared input.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := *n
	if n.Props != nil {
		out.Props = make(Props, len(n.Props)+1)
		for k, v := range n.Props {
			out.Props[k] = v
		}
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		copy(out.Children, n.Children)
	}
	return &out
}

// IsShorthand reports whether an element was built from the plain-string
// shorthand form and therefore has no attribute slot.
func (n *Node) IsShorthand() bool {
	return n != nil && n.Kind == KindElement && n.Props == nil
}

// appendContent flattens a converted "children" prop value into a child
// slice. A Seq spreads its entries; anything else is a single child.
func appendContent(children []*Node, node *Node) []*Node {
	if node == nil {
		return children
	}
	if node.Kind == KindSeq {
		return append(children, node.Children...)
	}
	return append(children, node)
}
