package jsxattr

import (
	"iter"
	"strings"

	"github.com/spf13/cast"
)

// StyleSink receives one CSS declaration per style entry.
type StyleSink func(name, value string)

// unitlessProperties lists camelCase style properties whose numeric values are
// counts, ratios or indices and therefore never get a px suffix.
var unitlessProperties = map[string]struct{}{
	"animationIterationCount": {},
	"aspectRatio":             {},
	"borderImageOutset":       {},
	"borderImageSlice":        {},
	"borderImageWidth":        {},
	"columnCount":             {},
	"columns":                 {},
	"flex":                    {},
	"flexGrow":                {},
	"flexPositive":            {},
	"flexShrink":              {},
	"flexNegative":            {},
	"flexOrder":               {},
	"gridArea":                {},
	"gridRow":                 {},
	"gridRowEnd":              {},
	"gridRowSpan":             {},
	"gridRowStart":            {},
	"gridColumn":              {},
	"gridColumnEnd":           {},
	"gridColumnSpan":          {},
	"gridColumnStart":         {},
	"fontWeight":              {},
	"lineClamp":               {},
	"lineHeight":              {},
	"opacity":                 {},
	"order":                   {},
	"orphans":                 {},
	"scale":                   {},
	"tabSize":                 {},
	"widows":                  {},
	"zIndex":                  {},
	"zoom":                    {},

	// SVG
	"fillOpacity":      {},
	"floodOpacity":     {},
	"stopOpacity":      {},
	"strokeDasharray":  {},
	"strokeDashoffset": {},
	"strokeMiterlimit": {},
	"strokeOpacity":    {},
	"strokeWidth":      {},
}

// IsUnitless reports whether numeric values of the camelCase property are
// written without a unit.
func IsUnitless(property string) bool {
	_, ok := unitlessProperties[property]
	return ok
}

// CSSPropertyName converts a camelCase style key to its CSS name by putting a
// hyphen before every ASCII uppercase letter and lowercasing it:
// fontSize → font-size, WebkitTransition → -webkit-transition.
func CSSPropertyName(property string) string {
	upper := 0
	for i := 0; i < len(property); i++ {
		if isASCIIUpper(property[i]) {
			upper++
		}
	}
	if upper == 0 {
		return property
	}

	var b strings.Builder
	b.Grow(len(property) + upper)
	for i := 0; i < len(property); i++ {
		c := property[i]
		if isASCIIUpper(c) {
			b.WriteByte('-')
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isASCIIUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// FormatStyleValue renders a style value for property. Strings pass through
// verbatim. Numbers are written in decimal form with a px suffix unless the
// property is unitless. It returns false for a nil value, which is not emitted.
func FormatStyleValue(property string, value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	if isNumber(value) && !IsUnitless(property) {
		return s + "px", true
	}
	return s, true
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// StyleObjectForEach walks style in insertion order and calls sink with the
// CSS property name and formatted value of every entry. Entries holding nil
// are skipped; an empty style never calls sink.
func StyleObjectForEach(style *StyleBag, sink StyleSink) {
	style.Range(func(property string, value any) bool {
		if formatted, ok := FormatStyleValue(property, value); ok {
			sink(CSSPropertyName(property), formatted)
		}
		return true
	})
}

// StyleEntries is the iterator form of StyleObjectForEach.
func StyleEntries(style *StyleBag) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		style.Range(func(property string, value any) bool {
			formatted, ok := FormatStyleValue(property, value)
			if !ok {
				return true
			}
			return yield(CSSPropertyName(property), formatted)
		})
	}
}

// StyleString serializes style as the value of a style attribute,
// e.g. "font-size:12px;z-index:2". The result is not HTML-escaped.
func StyleString(style *StyleBag) string {
	var b strings.Builder
	StyleObjectForEach(style, func(name, value string) {
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
	})
	return b.String()
}
