package render

import "strings"

// voidElements are elements that cannot have children and have no closing
// tag. These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// isVoidElement returns true if the tag is a void element. Matching is
// case-insensitive.
func isVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}
