package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/arbor-dev/arbor/internal/errors"
	"github.com/arbor-dev/arbor/pkg/tree"
)

// Config configures the HTML renderer.
type Config struct {
	// Strict reports malformed element mappings as errors instead of
	// silently rendering them as empty strings. The tolerant default
	// favors availability: one bad fragment must not blank the page.
	Strict bool
}

// Renderer handles server-side rendering of node trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *tree.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *tree.Node) error {
	return r.renderNode(w, node, "")
}

// renderNode dispatches rendering based on node kind. The path parameter
// tracks the node's position in the tree for error reporting.
func (r *Renderer) renderNode(w io.Writer, node *tree.Node, path string) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case tree.KindText:
		return writeString(w, Escape(node.Value))
	case tree.KindTrusted:
		return writeString(w, node.Value)
	case tree.KindSeq:
		for i, child := range node.Children {
			if err := r.renderNode(w, child, indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case tree.KindLazy:
		// Invoked fresh on every render; no caching at this layer.
		// Errors and panics inside the function propagate to the caller.
		return r.renderNode(w, tree.FromAny(node.Fn(Escape)), path)
	case tree.KindElement:
		return r.renderElement(w, node, path)
	case tree.KindMalformed:
		if r.config.Strict {
			return errors.New("R001").
				WithPath(path).
				WithDetailf("mapping has %d top-level keys (%s); an element needs exactly one, the tag name",
					len(node.BadKeys), strings.Join(node.BadKeys, ", ")).
				WithSuggestion("wrap sibling elements in an array instead of one mapping")
		}
		return nil
	default:
		if r.config.Strict {
			return errors.New("R004").WithPath(path)
		}
		return nil
	}
}

// renderElement renders an HTML element with its attributes and content.
func (r *Renderer) renderElement(w io.Writer, node *tree.Node, path string) error {
	tag := node.Tag
	path = joinPath(path, tag)

	if err := writeString(w, "<"+tag); err != nil {
		return err
	}
	if err := writeAttributes(w, node.Props); err != nil {
		return err
	}

	// Void elements never receive content or a closing tag, regardless of
	// any supplied text or children.
	if isVoidElement(tag) {
		return writeString(w, " />")
	}

	if err := writeString(w, ">"); err != nil {
		return err
	}

	// The text content wins over children when both are present.
	if node.Text != nil {
		if err := r.renderNode(w, node.Text, path); err != nil {
			return err
		}
	} else {
		for i, child := range node.Children {
			if err := r.renderNode(w, child, indexPath(path, i)); err != nil {
				return err
			}
		}
	}

	return writeString(w, "</"+tag+">")
}

// writeAttributes serializes element attributes in sorted key order so
// identical trees always produce byte-identical output.
func writeAttributes(w io.Writer, props tree.Props) error {
	if len(props) == 0 {
		return nil
	}

	resolved := make(map[string]any, len(props))
	for key, value := range props {
		name := key
		if name == "className" {
			// Alias to class; an explicit class key wins over the alias.
			if _, exists := props["class"]; exists {
				continue
			}
			name = "class"
		}
		resolved[name] = resolveAttrValue(value)
	}

	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := resolved[name].(type) {
		case nil:
			// Suppressed entirely.
		case bool:
			if v {
				if err := writeString(w, " "+name); err != nil {
					return err
				}
			}
		case string:
			// An empty string still emits the bare attribute name. The
			// scope stamping pass depends on this to render its token.
			if v == "" {
				if err := writeString(w, " "+name); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, ` `+name+`="`+escapeAttr(v)+`"`); err != nil {
				return err
			}
		default:
			if err := writeString(w, ` `+name+`="`+escapeAttr(attrToString(v))+`"`); err != nil {
				return err
			}
		}
	}

	return nil
}

// resolveAttrValue invokes function-valued attributes so lazy and computed
// attributes are settled before serialization.
func resolveAttrValue(value any) any {
	switch fn := value.(type) {
	case func() any:
		return fn()
	case func() string:
		return fn()
	case func() bool:
		return fn()
	case func() int:
		return fn()
	default:
		return value
	}
}

// attrToString converts a non-string attribute value to its serialized form.
func attrToString(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeString writes s to w, propagating the writer error.
func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// joinPath appends a tag segment to a node path.
func joinPath(path, tag string) string {
	if path == "" {
		return tag
	}
	return path + " > " + tag
}

// indexPath appends a child index to a node path.
func indexPath(path string, i int) string {
	if path == "" {
		return "[" + strconv.Itoa(i) + "]"
	}
	return path + " > [" + strconv.Itoa(i) + "]"
}
