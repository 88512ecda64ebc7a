// Package inspect renders node trees as indented text diagrams for the
// arbor inspect command and debugging sessions.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/arbor-dev/arbor/pkg/tree"
)

// Print returns a textual visualization of a node tree.
func Print(n *tree.Node) string {
	root := treeprint.NewWithRoot("tree")
	addNode(root, n)
	return root.String()
}

// addNode appends the node's representation to the branch.
func addNode(branch treeprint.Tree, n *tree.Node) {
	if n == nil {
		branch.AddNode("(empty)")
		return
	}

	switch n.Kind {
	case tree.KindText:
		branch.AddNode(fmt.Sprintf("%q", truncate(n.Value, 40)))
	case tree.KindTrusted:
		branch.AddNode(fmt.Sprintf("trusted html (%d bytes)", len(n.Value)))
	case tree.KindLazy:
		branch.AddNode("lazy()")
	case tree.KindMalformed:
		branch.AddNode("MALFORMED keys=[" + strings.Join(n.BadKeys, ", ") + "]")
	case tree.KindSeq:
		sub := branch.AddBranch(fmt.Sprintf("seq (%d)", len(n.Children)))
		for _, child := range n.Children {
			addNode(sub, child)
		}
	case tree.KindElement:
		sub := branch.AddBranch("<" + n.Tag + attrSummary(n.Props) + ">")
		if n.Text != nil {
			addNode(sub, n.Text)
			return
		}
		for _, child := range n.Children {
			addNode(sub, child)
		}
	default:
		branch.AddNode(fmt.Sprintf("unknown kind %d", n.Kind))
	}
}

// attrSummary renders a compact, sorted attribute preview.
func attrSummary(props tree.Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		if s, ok := props[k].(string); ok && s != "" {
			b.WriteString("=")
			b.WriteString(fmt.Sprintf("%q", truncate(s, 20)))
		}
	}
	return b.String()
}

// truncate shortens long values for single-line display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
