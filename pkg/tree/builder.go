package tree

import (
	"fmt"
	"sort"
	"strconv"
)

// FromAny converts a plain nested Go value into a Node. It accepts the
// duck-typed tree shape used by JSON page descriptions:
//
//   - nil: the empty node
//   - string and numeric values: text nodes
//   - []any and []*Node: sequences, document order preserved
//   - func() any and LazyFunc: deferred nodes
//   - map[string]any with exactly one key: an element
//   - Trusted: a raw HTML node
//   - *Node: passed through unchanged
//
// A map with zero or more than one top-level key is structurally invalid
// input. FromAny does not decide its fate: it produces a KindMalformed node
// recording the offending keys so the renderer can apply the configured
// tolerant or strict policy.
//
// Any other value is stringified and treated as text, so unexpected input
// degrades to escaped output instead of failing the whole render.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return nil
	case *Node:
		return x
	case Node:
		return &x
	case Trusted:
		return Raw(x)
	case string:
		return Text(x)
	case int:
		return Text(strconv.Itoa(x))
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Text(fmt.Sprint(x))
	case float32:
		return Text(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(x, 'g', -1, 64))
	case []*Node:
		return Seq(x...)
	case []any:
		node := &Node{Kind: KindSeq, Children: make([]*Node, 0, len(x))}
		for _, item := range x {
			if c := FromAny(item); c != nil {
				node.Children = append(node.Children, c)
			}
		}
		return node
	case LazyFunc:
		return Lazy(x)
	case func(EscapeFunc) any:
		return Lazy(x)
	case func() any:
		return Lazy(func(EscapeFunc) any { return x() })
	case map[string]any:
		return fromMap(x)
	default:
		return Text(fmt.Sprint(v))
	}
}

// fromMap converts a single-key mapping into an element node.
func fromMap(m map[string]any) *Node {
	if len(m) != 1 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return &Node{Kind: KindMalformed, BadKeys: keys}
	}

	var tag string
	var value any
	for k, v := range m {
		tag, value = k, v
	}

	switch pv := value.(type) {
	case map[string]any:
		return elementFromProps(tag, pv)
	case string:
		// Text shorthand: no attribute slot.
		return TextEl(tag, pv)
	case nil:
		return &Node{Kind: KindElement, Tag: tag}
	default:
		// Numbers, slices, functions and nodes become the element content,
		// still without an attribute slot.
		return &Node{Kind: KindElement, Tag: tag, Text: FromAny(pv)}
	}
}

// elementFromProps builds an element from an attribute/content mapping,
// splitting out the reserved "children" and "text" keys.
func elementFromProps(tag string, props map[string]any) *Node {
	node := &Node{Kind: KindElement, Tag: tag, Props: Props{}}
	for key, value := range props {
		switch key {
		case "children":
			node.Children = appendContent(node.Children, FromAny(value))
		case "text":
			node.Text = textContent(value)
		default:
			node.Props[key] = value
		}
	}
	return node
}

// textContent converts a "text" prop value. Trusted payloads stay raw;
// everything else goes through the regular conversion.
func textContent(v any) *Node {
	if t, ok := v.(Trusted); ok {
		return Raw(t)
	}
	return FromAny(v)
}
