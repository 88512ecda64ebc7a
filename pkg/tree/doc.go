// Package tree defines the node model consumed by the Arbor renderer.
//
// A tree is built from tagged-union Node values. Each Node is one of a
// small set of variants identified by its Kind:
//
//   - KindText: escaped text content (strings and numbers)
//   - KindSeq: an ordered sequence of child nodes
//   - KindLazy: a deferred node produced by a function at render time
//   - KindElement: one HTML tag plus attributes and content
//   - KindTrusted: pre-rendered HTML emitted verbatim
//   - KindMalformed: a structurally invalid element mapping
//
// A nil *Node is the empty variant and renders to nothing.
//
// # Typed construction
//
// Nodes are usually built with the typed constructors:
//
//	tree.El("div", tree.Props{"class": "card"},
//	    tree.El("h1", nil, tree.Text("Title")),
//	    tree.Text("Content"),
//	)
//
// # Dynamic construction
//
// FromAny accepts plain nested Go values (maps, slices, strings, numbers,
// functions) and converts them into nodes. A map with exactly one key is an
// element whose key is the tag name:
//
//	tree.FromAny(map[string]any{
//	    "div": map[string]any{
//	        "class":    "card",
//	        "children": []any{map[string]any{"h1": "Title"}},
//	    },
//	})
//
// This is the decode target for JSON page descriptions.
//
// # Immutability
//
// Transformation passes over a tree never mutate nodes in place; they build
// new nodes and share untouched subtrees. Callers may therefore render the
// same tree concurrently.
package tree
