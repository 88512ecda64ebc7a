// Package scope emulates style encapsulation without shadow DOM.
//
// A scoped render generates a fresh token, rewrites every selector inside
// the tree's <style> elements so it only matches elements carrying that
// token as an attribute, stamps the token onto every element of the tree,
// and then hands the transformed tree to the renderer:
//
//	enc := scope.New(render.NewRenderer(render.Config{}), nil)
//	html, err := enc.RenderScoped(node)
//
// Input:
//
//	<style>.card { color: red; } .card:hover { color: blue; }</style>
//	<div class="card">...</div>
//
// Output (for token arb-7):
//
//	<style>.card[arb-7] { color: red; } .card[arb-7]:hover { color: blue; }</style>
//	<div class="card" arb-7>...</div>
//
// Two renders of the same tree receive distinct tokens, so their styles
// never collide. Both transformation passes build new nodes and leave the
// input tree untouched, making scoped rendering safe to run concurrently
// over shared trees.
package scope
