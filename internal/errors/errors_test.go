package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "render error",
			code:    "R001",
			wantMsg: "Malformed element mapping",
			wantCat: CategoryRender,
		},
		{
			name:    "scope error",
			code:    "S002",
			wantMsg: "Token source exhausted",
			wantCat: CategoryScope,
		},
		{
			name:    "config error",
			code:    "C001",
			wantMsg: "Configuration file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "Z999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryRender, "file %q not found", "page.json")
	if err.Message != `file "page.json" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryRender {
		t.Errorf("Category = %q, want %q", err.Category, CategoryRender)
	}
}

func TestArborError_Error(t *testing.T) {
	err := New("R001")
	want := "R001: Malformed element mapping"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	// Without code
	err2 := &ArborError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}

	// With a node path
	err3 := New("R001").WithPath("div > [0]")
	want3 := "R001: Malformed element mapping at div > [0]"
	if err3.Error() != want3 {
		t.Errorf("Error() = %q, want %q", err3.Error(), want3)
	}
}

func TestArborError_Builders(t *testing.T) {
	err := New("R001").
		WithPath("div > [1] > span").
		WithSuggestion("wrap siblings in an array").
		WithDetailf("mapping has %d keys", 2).
		WithExample(`{"div": {...}}`)

	if err.Path != "div > [1] > span" {
		t.Errorf("Path = %q", err.Path)
	}
	if err.Suggestion != "wrap siblings in an array" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
	if err.Detail != "mapping has 2 keys" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Example == "" {
		t.Error("Example should be set")
	}
}

func TestArborError_Unwrap(t *testing.T) {
	inner := stderrors.New("underlying")
	err := New("C001").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var ae *ArborError
	if !stderrors.As(err, &ae) {
		t.Error("errors.As should match ArborError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "R001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	ae := New("S001")
	if FromError(ae, "R001") != ae {
		t.Error("FromError should pass ArborError through unchanged")
	}

	wrapped := FromError(stderrors.New("boom"), "C002")
	if wrapped.Code != "C002" {
		t.Errorf("Code = %q, want C002", wrapped.Code)
	}
	if wrapped.Wrapped == nil {
		t.Error("Wrapped should be set")
	}
}

func TestRegister(t *testing.T) {
	Register("X001", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom extension error",
	})

	err := New("X001")
	if err.Message != "Custom extension error" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q", err.Category)
	}
}

func TestFormatIncludesPathAndSuggestion(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("R001").
		WithPath("div > [0]").
		WithSuggestion("use an array")

	out := err.Format()
	for _, part := range []string{"R001", "Malformed element mapping", "div > [0]", "use an array"} {
		if !strings.Contains(out, part) {
			t.Errorf("Format() missing %q:\n%s", part, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("S002").WithPath("div > style")
	out := err.FormatCompact()
	if !strings.Contains(out, "S002") || !strings.Contains(out, "div > style") {
		t.Errorf("FormatCompact() = %q", out)
	}
}
