// Package css compiles inline style declarations ("color: red; text-align:
// center") into attribute mutations.
package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"textrun/attrs"
)

// Parser parses inline CSS declaration blocks.
type Parser struct {
	log      *zap.Logger
	fallback attrs.Font
}

// Option configures a Parser.
type Option func(*Parser)

// WithFallbackFont sets the font em lengths and font properties start from
// when the attributes carry no font. attrs.FallbackFont is used otherwise, a
// font without size is ignored.
func WithFallbackFont(f attrs.Font) Option {
	return func(p *Parser) {
		if f.Size > 0 {
			p.fallback = f
		}
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser"), fallback: attrs.FallbackFont}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses an inline declaration block. Parsing stops at the first
// syntax error; declarations read before it are returned together with the
// error. Later declarations of the same property are kept, they override
// earlier ones when compiled.
func (p *Parser) Parse(data []byte) (Declarations, error) {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, true)

	var decls Declarations
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return decls, fmt.Errorf("unable to parse style: %w", err)
			}
			return decls, nil

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) == 0 {
				p.log.Debug("Skipping declaration without value", zap.ByteString("property", data))
				continue
			}
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    p.parsePropertyValue(values),
			})

		case css.CustomPropertyGrammar:
			p.log.Debug("Skipping custom property", zap.ByteString("property", data))

		default:
			p.log.Debug("Skipping unexpected CSS construct", zap.Stringer("grammar", gt), zap.ByteString("data", data))
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	tokens, important := stripImportant(tokens)
	if len(tokens) == 0 {
		return Value{Important: important}
	}

	// grammar parser drops whitespace around commas, restore one space after
	var rawParts []string
	for _, t := range tokens {
		last := len(rawParts) - 1
		switch t.TokenType {
		case css.WhitespaceToken:
			if last >= 0 && rawParts[last] != " " && rawParts[last] != ", " {
				rawParts = append(rawParts, " ")
			}
		case css.CommaToken:
			if last >= 0 && rawParts[last] == " " {
				rawParts = rawParts[:last]
			}
			rawParts = append(rawParts, ", ")
		default:
			rawParts = append(rawParts, string(t.Data))
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw, Important: important}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
			if val.Unit == "" {
				// not a number after all
				val.Keyword = raw
			}
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		case css.URLToken:
			s := strings.TrimSuffix(strings.TrimPrefix(string(t.Data), "url("), ")")
			val.Keyword = unquote(s)
		default:
			val.Keyword = raw
		}
		return val
	}

	// functions and multi-value properties
	val.Keyword = raw
	return val
}

// stripImportant removes a trailing "!important" and surrounding whitespace.
func stripImportant(tokens []css.Token) ([]css.Token, bool) {
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	n := len(tokens)
	if n < 2 {
		return tokens, false
	}
	last, bang := tokens[n-1], tokens[n-2]
	if last.TokenType != css.IdentToken || !strings.EqualFold(string(last.Data), "important") {
		return tokens, false
	}
	if bang.TokenType != css.DelimToken || string(bang.Data) != "!" {
		return tokens, false
	}
	tokens = tokens[:n-2]
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, true
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, ""
	}
	return num, strings.ToLower(s[numEnd:])
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
