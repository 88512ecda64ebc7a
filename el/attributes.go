package el

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute (label binding).
func For(id string) Attr { return attr("for", id) }

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(m string) Attr { return attr("method", m) }

// Boolean attributes. True renders the bare attribute name; false
// suppresses the attribute entirely.

// Disabled sets the disabled attribute.
func Disabled(disabled ...bool) Attr { return boolAttr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked ...bool) Attr { return boolAttr("checked", checked) }

// Required sets the required attribute.
func Required(required ...bool) Attr { return boolAttr("required", required) }

// Selected sets the selected attribute.
func Selected(selected ...bool) Attr { return boolAttr("selected", selected) }

// Hidden sets the hidden attribute.
func Hidden(hidden ...bool) Attr { return boolAttr("hidden", hidden) }

// boolAttr treats an omitted flag as true, so Disabled() == Disabled(true).
func boolAttr(key string, flag []bool) Attr {
	value := true
	if len(flag) > 0 {
		value = flag[0]
	}
	return attr(key, value)
}

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Document metadata attributes

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Computed creates an attribute whose value is resolved by invoking the
// function at render time.
func Computed(key string, fn func() any) Attr { return attr(key, fn) }
