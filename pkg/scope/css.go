package scope

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// cssToken is one lexed token of stylesheet source.
type cssToken struct {
	tt   css.TokenType
	text string
}

// parse context for a brace-delimited block.
type blockCtx uint8

const (
	ctxSelector    blockCtx = iota // expecting selector preludes (top level, @media body)
	ctxDeclaration                 // inside a ruleset body, copied verbatim
	ctxVerbatim                    // inside an unknown at-rule body, copied verbatim
)

// conditionalAtRules are at-rules whose blocks contain nested rulesets
// that must themselves be scoped.
var conditionalAtRules = map[string]bool{
	"@media":    true,
	"@supports": true,
	"@layer":    true,
	"@document": true,
}

// RewriteCSS qualifies every rule selector in src with an attribute
// selector for the scope token. For each comma-separated selector, the
// token is inserted immediately before the first top-level colon when the
// selector carries a pseudo-class or pseudo-element, otherwise appended to
// the end. Declaration bodies and at-rule preludes are copied verbatim;
// rulesets nested inside conditional at-rules (@media, @supports) are
// rewritten recursively.
//
// The pass is lexical: commas inside :not(...), attribute brackets and
// strings do not split selectors, but no selector semantics beyond that
// are interpreted.
func RewriteCSS(src, token string) string {
	l := css.NewLexer(parse.NewInputString(src))

	var out strings.Builder
	out.Grow(len(src) + 16*len(token))

	stack := []blockCtx{ctxSelector}
	var prelude []cssToken

	flushPrelude := func() {
		for _, t := range prelude {
			out.WriteString(t.text)
		}
		prelude = prelude[:0]
	}

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			flushPrelude()
			return out.String()
		}
		text := string(data)
		ctx := stack[len(stack)-1]

		if ctx != ctxSelector {
			out.WriteString(text)
			switch tt {
			case css.LeftBraceToken:
				stack = append(stack, ctxVerbatim)
			case css.RightBraceToken:
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			}
			continue
		}

		switch tt {
		case css.LeftBraceToken:
			if i := firstSignificant(prelude); i >= 0 && prelude[i].tt == css.AtKeywordToken {
				atName := strings.ToLower(prelude[i].text)
				flushPrelude()
				out.WriteString("{")
				if conditionalAtRules[atName] {
					stack = append(stack, ctxSelector)
				} else {
					stack = append(stack, ctxVerbatim)
				}
				continue
			}
			out.WriteString(rewriteSelectorGroup(prelude, token))
			out.WriteString("{")
			prelude = prelude[:0]
			stack = append(stack, ctxDeclaration)
		case css.RightBraceToken:
			flushPrelude()
			out.WriteString("}")
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case css.SemicolonToken:
			// Blockless at-rule such as @import or @charset.
			flushPrelude()
			out.WriteString(";")
		default:
			prelude = append(prelude, cssToken{tt: tt, text: text})
		}
	}
}

// firstSignificant returns the index of the first non-whitespace token,
// or -1. Inside at-rule bodies preludes start with a whitespace token.
func firstSignificant(toks []cssToken) int {
	for i, t := range toks {
		if t.tt != css.WhitespaceToken {
			return i
		}
	}
	return -1
}

// rewriteSelectorGroup splits a rule prelude on top-level commas, scopes
// each selector, and rejoins them. The trailing space keeps "sel {" shaped
// output.
func rewriteSelectorGroup(prelude []cssToken, token string) string {
	leading := ""
	if len(prelude) > 0 && prelude[0].tt == css.WhitespaceToken {
		leading = prelude[0].text
		prelude = prelude[1:]
	}

	var parts []string
	depth := 0
	start := 0
	for i, t := range prelude {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, rewriteSelector(prelude[start:i], token))
				start = i + 1
			}
		}
	}
	parts = append(parts, rewriteSelector(prelude[start:], token))

	return leading + strings.Join(parts, ", ") + " "
}

// rewriteSelector scopes a single selector: the token's attribute selector
// goes immediately before the first top-level colon if the selector has
// one, otherwise onto the end.
func rewriteSelector(toks []cssToken, token string) string {
	// Trim surrounding whitespace tokens.
	for len(toks) > 0 && toks[0].tt == css.WhitespaceToken {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return ""
	}

	attr := "[" + token + "]"

	depth := 0
	for i, t := range toks {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.ColonToken:
			if depth == 0 {
				return joinTokens(toks[:i]) + attr + joinTokens(toks[i:])
			}
		}
	}

	return joinTokens(toks) + attr
}

// joinTokens concatenates token texts.
func joinTokens(toks []cssToken) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}
	return b.String()
}
