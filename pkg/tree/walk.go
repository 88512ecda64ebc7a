package tree

// Walk visits the tree in document order, calling fn for every non-nil
// node. Returning false from fn skips the node's content. Lazy nodes are
// opaque: their functions are not invoked during a walk.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	if n.Kind == KindElement && n.Text != nil {
		Walk(n.Text, fn)
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the tree, lazy content excluded.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}
