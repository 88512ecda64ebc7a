package tree

import (
	"reflect"
	"testing"
)

func TestFromAnyNil(t *testing.T) {
	if node := FromAny(nil); node != nil {
		t.Errorf("nil input should produce the empty node, got %+v", node)
	}
}

func TestFromAnyString(t *testing.T) {
	node := FromAny("hello")
	if node.Kind != KindText {
		t.Fatalf("got kind %v, want Text", node.Kind)
	}
	if node.Value != "hello" {
		t.Errorf("got %q, want %q", node.Value, "hello")
	}
}

func TestFromAnyNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(9000000000), "9000000000"},
		{"float", 3.14, "3.14"},
		{"float without fraction", 2.0, "2"},
		{"float32", float32(1.5), "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := FromAny(tt.in)
			if node.Kind != KindText {
				t.Fatalf("got kind %v, want Text", node.Kind)
			}
			if node.Value != tt.want {
				t.Errorf("got %q, want %q", node.Value, tt.want)
			}
		})
	}
}

func TestFromAnySlice(t *testing.T) {
	node := FromAny([]any{"a", nil, "b", 3})
	if node.Kind != KindSeq {
		t.Fatalf("got kind %v, want Seq", node.Kind)
	}
	// Nil entries are dropped, order is preserved.
	if len(node.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(node.Children))
	}
	got := []string{node.Children[0].Value, node.Children[1].Value, node.Children[2].Value}
	want := []string{"a", "b", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromAnyTextShorthand(t *testing.T) {
	node := FromAny(map[string]any{"p": "hello"})
	if node.Kind != KindElement || node.Tag != "p" {
		t.Fatalf("got %v/%q, want Element/p", node.Kind, node.Tag)
	}
	if node.Props != nil {
		t.Error("text shorthand must not carry an attribute slot")
	}
	if !node.IsShorthand() {
		t.Error("IsShorthand should report true")
	}
	if node.Text == nil || node.Text.Value != "hello" {
		t.Errorf("got text %+v, want hello", node.Text)
	}
}

func TestFromAnyElementWithProps(t *testing.T) {
	node := FromAny(map[string]any{
		"div": map[string]any{
			"class":    "card",
			"children": []any{map[string]any{"h1": "Title"}},
		},
	})
	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got %v/%q, want Element/div", node.Kind, node.Tag)
	}
	if node.IsShorthand() {
		t.Error("element with props must not be shorthand")
	}
	if node.Props["class"] != "card" {
		t.Errorf("got class %v, want card", node.Props["class"])
	}
	if _, ok := node.Props["children"]; ok {
		t.Error("reserved children key must not survive as an attribute")
	}
	if len(node.Children) != 1 || node.Children[0].Tag != "h1" {
		t.Errorf("got children %+v, want one h1", node.Children)
	}
}

func TestFromAnyChildrenSeqFlattened(t *testing.T) {
	node := FromAny(map[string]any{
		"ul": map[string]any{
			"children": []any{
				map[string]any{"li": "one"},
				map[string]any{"li": "two"},
			},
		},
	})
	if len(node.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(node.Children))
	}
	if node.Children[0].Text.Value != "one" || node.Children[1].Text.Value != "two" {
		t.Errorf("children out of order: %+v", node.Children)
	}
}

func TestFromAnyBareElement(t *testing.T) {
	node := FromAny(map[string]any{"br": nil})
	if node.Kind != KindElement || node.Tag != "br" {
		t.Fatalf("got %v/%q, want Element/br", node.Kind, node.Tag)
	}
	if node.Text != nil || len(node.Children) != 0 {
		t.Error("bare element must have no content")
	}
}

func TestFromAnyMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		keys []string
	}{
		{"empty map", map[string]any{}, []string{}},
		{"two keys", map[string]any{"div": nil, "span": nil}, []string{"div", "span"}},
		{"three keys", map[string]any{"c": 1, "a": 2, "b": 3}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := FromAny(tt.in)
			if node.Kind != KindMalformed {
				t.Fatalf("got kind %v, want Malformed", node.Kind)
			}
			if len(node.BadKeys) != len(tt.keys) {
				t.Fatalf("got keys %v, want %v", node.BadKeys, tt.keys)
			}
			for i, k := range tt.keys {
				if node.BadKeys[i] != k {
					t.Errorf("keys not sorted: got %v, want %v", node.BadKeys, tt.keys)
					break
				}
			}
		})
	}
}

func TestFromAnyTrusted(t *testing.T) {
	node := FromAny(MarkTrusted("<b>bold</b>"))
	if node.Kind != KindTrusted {
		t.Fatalf("got kind %v, want Trusted", node.Kind)
	}
	if node.Value != "<b>bold</b>" {
		t.Errorf("got %q, want raw payload", node.Value)
	}
}

func TestFromAnyFunc(t *testing.T) {
	node := FromAny(func() any { return "deferred" })
	if node.Kind != KindLazy {
		t.Fatalf("got kind %v, want Lazy", node.Kind)
	}
	resolved := FromAny(node.Fn(func(s string) string { return s }))
	if resolved.Value != "deferred" {
		t.Errorf("got %q, want deferred", resolved.Value)
	}
}

func TestFromAnyNodePassthrough(t *testing.T) {
	orig := El("div", nil)
	if node := FromAny(orig); node != orig {
		t.Error("typed nodes must pass through unchanged")
	}
}

func TestFromAnyFallbackStringifies(t *testing.T) {
	node := FromAny(struct{ X int }{X: 1})
	if node.Kind != KindText {
		t.Fatalf("got kind %v, want Text fallback", node.Kind)
	}
}

func TestFromAnyTrustedTextProp(t *testing.T) {
	node := FromAny(map[string]any{
		"script": map[string]any{
			"text": MarkTrusted("if (a < b) go();"),
		},
	})
	if node.Text == nil || node.Text.Kind != KindTrusted {
		t.Fatalf("trusted text prop should stay raw, got %+v", node.Text)
	}
}
