// Package el provides the element DSL for Arbor.
//
// It offers typed HTML element constructors and attribute helpers that
// build tree nodes without writing nested maps by hand:
//
//	import (
//	    "github.com/arbor-dev/arbor"
//	    . "github.com/arbor-dev/arbor/el"
//	)
//
//	page := Div(Class("card"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//	html, err := arbor.Render(page)
//
// Constructors accept attributes, child nodes, strings (text shorthand)
// and trusted content in any order.
package el
