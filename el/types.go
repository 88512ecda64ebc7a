package el

import "github.com/arbor-dev/arbor/pkg/tree"

// Type aliases for the tree primitives used by the DSL.
type Node = tree.Node
type Props = tree.Props
type Trusted = tree.Trusted
type LazyFunc = tree.LazyFunc
type EscapeFunc = tree.EscapeFunc

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
