// Package markdown converts markdown source into renderable nodes.
//
// The conversion runs through goldmark and the resulting HTML is wrapped
// as trusted content, so it is emitted verbatim. Only use it with
// developer- or editor-authored markdown, never raw user input.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/arbor-dev/arbor/pkg/tree"
)

// Node converts markdown source into a trusted HTML node, wrapped in a
// div with the given class.
func Node(source, class string) (*tree.Node, error) {
	t, err := Convert(source)
	if err != nil {
		return nil, err
	}
	props := tree.Props{}
	if class != "" {
		props["class"] = class
	}
	return tree.El("div", props, tree.Raw(t)), nil
}

// Convert renders markdown source to trusted HTML.
func Convert(source string) (tree.Trusted, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return tree.Trusted{}, err
	}
	return tree.MarkTrusted(buf.String()), nil
}
