package jsxattr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrCustomPropertyCase is returned for custom properties that would not
// survive conversion back to a CSS name.
var ErrCustomPropertyCase = errors.New("custom property name must be lowercase")

// ParseInlineStyle parses the declaration list of a style attribute
// ("font-size: 12px; z-index: 2") into a StyleBag keyed by camelCase names.
// Values are kept as trimmed strings, so emitting the bag again reproduces them
// verbatim. Declarations without a value are dropped.
//
// Custom properties (--name) keep their name. They are case-sensitive while
// CSSPropertyName hyphenates every uppercase letter, so a custom property with
// uppercase letters is rejected with ErrCustomPropertyCase.
func ParseInlineStyle(declarations string) (*StyleBag, error) {
	style := NewBag()
	p := css.NewParser(parse.NewInputString(declarations), true)

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse inline style: %w", err)
			}
			return style, nil

		case css.DeclarationGrammar:
			if value := joinTokens(p.Values()); value != "" {
				style.Set(CamelPropertyName(string(data)), value)
			}

		case css.CustomPropertyGrammar:
			name := string(data)
			if strings.ToLower(name) != name {
				return nil, fmt.Errorf("parse inline style: %w: %s", ErrCustomPropertyCase, name)
			}
			if value := joinTokens(p.Values()); value != "" {
				style.Set(name, value)
			}
		}
	}
}

// joinTokens rebuilds a declaration value from its tokens, collapsing
// whitespace runs to a single space.
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// CamelPropertyName converts a CSS property name to the camelCase style key
// that CSSPropertyName maps back to it: font-size → fontSize,
// -webkit-transition → WebkitTransition. Custom properties are returned as is.
func CamelPropertyName(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && 'a' <= name[i+1] && name[i+1] <= 'z' {
			i++
			b.WriteByte(name[i] - ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
