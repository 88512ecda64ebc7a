package render

import (
	"strings"
	"testing"

	"github.com/arbor-dev/arbor/pkg/tree"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(tree.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(tree.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderEmptyNode(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("empty node should render empty string, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", tree.Props{"class": "container"},
		tree.TextEl("h1", "Title"),
		tree.TextEl("p", "Content"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(Config{})

	tests := []struct {
		name string
		node *tree.Node
		want string
	}{
		{
			name: "br",
			node: tree.El("br", nil),
			want: `<br />`,
		},
		{
			name: "img with attributes",
			node: tree.El("img", tree.Props{"src": "/image.png", "alt": "test"}),
			want: `<img alt="test" src="/image.png" />`,
		},
		{
			name: "input",
			node: tree.El("input", tree.Props{"type": "text", "name": "email"}),
			want: `<input name="email" type="text" />`,
		},
		{
			name: "uppercase tag still void",
			node: tree.El("BR", nil),
			want: `<BR />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderVoidElementIgnoresContent(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("br", nil, tree.Text("ignored"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<br />" {
		t.Errorf("void element must drop content and closing tag, got %q", html)
	}
}

func TestRenderAttributeOrderDeterministic(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("a", tree.Props{"href": "/x", "id": "link", "class": "nav"})
	first, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != `<a class="nav" href="/x" id="link"></a>` {
		t.Errorf("attributes not sorted: %q", first)
	}
	for i := 0; i < 20; i++ {
		again, _ := renderer.RenderToString(node)
		if again != first {
			t.Fatalf("output not deterministic: %q vs %q", again, first)
		}
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", tree.Props{"title": `"quoted" & <tagged>`})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div title="&quot;quoted&quot; &amp; &lt;tagged&gt;"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("input", tree.Props{"disabled": true, "required": false, "type": "text"})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, " disabled") {
		t.Errorf("true attribute should render bare, got %q", html)
	}
	if strings.Contains(html, "required") {
		t.Errorf("false attribute should be suppressed, got %q", html)
	}
}

func TestRenderNilAttributeSuppressed(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", tree.Props{"id": nil, "class": "x"})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div class="x"></div>` {
		t.Errorf("nil attribute should vanish, got %q", html)
	}
}

func TestRenderClassNameAlias(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(tree.El("div", tree.Props{"className": "card"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div class="card"></div>` {
		t.Errorf("className should alias to class, got %q", html)
	}

	// An explicit class key wins over the alias.
	html, err = renderer.RenderToString(tree.El("div", tree.Props{
		"className": "loser",
		"class":     "winner",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div class="winner"></div>` {
		t.Errorf("explicit class should win, got %q", html)
	}
}

func TestRenderNumericAttribute(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(tree.El("td", tree.Props{"colspan": 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<td colspan="2"></td>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderFunctionAttribute(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", tree.Props{
		"data-count": func() any { return 7 },
		"hidden":     func() bool { return true },
	})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div data-count="7" hidden></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderTextWinsOverChildren(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", tree.Props{"text": "the text"},
		tree.TextEl("p", "a child"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div>the text</div>` {
		t.Errorf("text must win over children, got %q", html)
	}
}

func TestRenderSeqOrder(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.Seq(tree.Text("a"), tree.Text("b"), tree.Text("c"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "abc" {
		t.Errorf("sequence order lost: %q", html)
	}
}

func TestRenderTrustedBypassesEscaping(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", nil, tree.Raw(tree.MarkTrusted(`<b class="x">bold</b>`)))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div><b class="x">bold</b></div>` {
		t.Errorf("trusted content must pass through verbatim, got %q", html)
	}
}

func TestRenderLazyResolvedEachRender(t *testing.T) {
	renderer := NewRenderer(Config{})

	calls := 0
	node := tree.Lazy(func(escape tree.EscapeFunc) any {
		calls++
		return escape("<i>") + "tick"
	})

	for i := 0; i < 3; i++ {
		html, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, "tick") {
			t.Errorf("lazy content missing: %q", html)
		}
	}
	if calls != 3 {
		t.Errorf("lazy function should run once per render, ran %d times", calls)
	}
}

func TestRenderMalformedTolerant(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.El("div", nil,
		tree.Text("before"),
		tree.FromAny(map[string]any{"a": nil, "b": nil}),
		tree.Text("after"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("tolerant mode must not error: %v", err)
	}
	if html != "<div>beforeafter</div>" {
		t.Errorf("malformed node should vanish, got %q", html)
	}
}

func TestRenderMalformedStrict(t *testing.T) {
	renderer := NewRenderer(Config{Strict: true})

	node := tree.El("div", nil,
		tree.FromAny(map[string]any{"a": nil, "b": nil}),
	)
	_, err := renderer.RenderToString(node)
	if err == nil {
		t.Fatal("strict mode should report malformed elements")
	}
	if !strings.Contains(err.Error(), "R001") {
		t.Errorf("error should carry code R001, got %v", err)
	}
	if !strings.Contains(err.Error(), "div") {
		t.Errorf("error should carry the node path, got %v", err)
	}
}

func TestRenderToWriter(t *testing.T) {
	renderer := NewRenderer(Config{})

	var sb strings.Builder
	err := renderer.RenderToWriter(&sb, tree.TextEl("p", "streamed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "<p>streamed</p>" {
		t.Errorf("got %q", sb.String())
	}
}

func TestRenderFullPage(t *testing.T) {
	renderer := NewRenderer(Config{})

	node := tree.FromAny(map[string]any{
		"html": map[string]any{
			"lang": "en",
			"children": []any{
				map[string]any{"head": map[string]any{
					"children": []any{map[string]any{"title": "Demo"}},
				}},
				map[string]any{"body": map[string]any{
					"children": []any{
						map[string]any{"h1": "Hello & welcome"},
						map[string]any{"img": map[string]any{"src": "/logo.png"}},
					},
				}},
			},
		},
	})

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<html lang="en"><head><title>Demo</title></head><body><h1>Hello &amp; welcome</h1><img src="/logo.png" /></body></html>`
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}
