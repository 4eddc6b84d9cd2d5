package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules. Only plain rules and
// @media blocks are kept, everything else is skipped with a warning.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule != "@media" {
				p.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "skipped "+atRule+" block")
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				continue
			}
			mq := MediaQuery{Raw: joinPrelude(parser.Values())}
			rules := p.parseMediaBlockRules(parser)
			p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
			sheet.AddMediaBlock(MediaBlock{Query: mq, Rules: rules})

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "skipped "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			for _, rule := range p.parseRuleset(parser, data) {
				sheet.AddRule(rule)
			}
		}
	}
}

// parseRuleset reads declarations of the ruleset which has just been opened
// and produces one rule per grouped selector.
func (p *Parser) parseRuleset(parser *css.Parser, data []byte) []Rule {
	selectors := parseSelectors(data, parser.Values())
	decls := p.parseDeclarations(parser)

	rules := make([]Rule, 0, len(selectors))
	for _, sel := range selectors {
		rule := Rule{Selector: sel, Declarations: make([]Declaration, len(decls))}
		copy(rule.Declarations, decls)
		rules = append(rules, rule)
	}
	return rules
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) == 0 {
				continue
			}
			decls = append(decls, Declaration{Property: string(data), Value: joinTokens(values)})

		case css.CustomPropertyGrammar:
			// empty value is legal here - this is how space toggles are switched on
			decls = append(decls, Declaration{Property: string(data), Value: joinTokens(parser.Values())})
		}
	}
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser) []Rule {
	var rules []Rule

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginRulesetGrammar:
			rules = append(rules, p.parseRuleset(parser, data)...)

		case css.BeginAtRuleGrammar:
			// nested at-rules are not supported
			p.skipAtRuleBlock(parser)
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// joinPrelude is joinTokens for at-rule preludes. Parser drops whitespace
// following colons and commas there, it is put back so that query text reads
// as written: "(min-width: 48em)".
func joinPrelude(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		switch {
		case t.TokenType == css.WhitespaceToken:
			space = sb.Len() > 0
			continue
		case space && t.TokenType != css.RightParenthesisToken:
			sb.WriteByte(' ')
		}
		sb.Write(t.Data)
		space = t.TokenType == css.ColonToken || t.TokenType == css.CommaToken
	}
	return strings.TrimSpace(sb.String())
}

// joinTokens builds raw value string collapsing whitespace runs into single
// space.
func joinTokens(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}
