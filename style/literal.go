package style

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CSS-wide keywords are valid for any property and never name a token.
var cssWideKeywords = map[string]bool{
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

// isPassThrough reports whether raw value must be used as is even on
// tokenized property. Only a lone number ("400", "-025") or a lone identifier
// ("bg-surface") may name a scale step, anything else (dimensions,
// percentages, functions, colors, strings, lists) is a literal.
func isPassThrough(raw string) bool {
	l := css.NewLexer(parse.NewInputString(raw))

	var (
		significant int
		first       css.TokenType
		firstData   string
	)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		significant++
		if significant == 1 {
			first, firstData = tt, string(data)
		}
	}
	if significant != 1 {
		return true
	}

	switch first {
	case css.NumberToken:
		return false
	case css.IdentToken:
		return cssWideKeywords[strings.ToLower(firstData)]
	default:
		return true
	}
}
