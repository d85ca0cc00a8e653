package jsxattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIntrinsicElementProps(t *testing.T) {
	tests := []struct {
		name     string
		props    *PropertyBag
		wantKeys []string
		want     map[string]any
	}{
		{
			name:     "className to class",
			props:    BagOf("className", "test-class", "id", "test-id"),
			wantKeys: []string{"id", "class"},
			want:     map[string]any{"class": "test-class", "id": "test-id"},
		},
		{
			name:     "htmlFor to for",
			props:    BagOf("htmlFor", "test-for", "name", "test-name"),
			wantKeys: []string{"name", "for"},
			want:     map[string]any{"for": "test-for", "name": "test-name"},
		},
		{
			name:     "multiple aliases",
			props:    BagOf("className", "test-class", "htmlFor", "test-for", "type", "text"),
			wantKeys: []string{"type", "class", "for"},
			want:     map[string]any{"class": "test-class", "for": "test-for", "type": "text"},
		},
		{
			name:     "no aliases",
			props:    BagOf("id", "test-id", "name", "test-name"),
			wantKeys: []string{"id", "name"},
			want:     map[string]any{"id": "test-id", "name": "test-name"},
		},
		{
			name:     "empty",
			props:    NewBag(),
			wantKeys: []string{},
			want:     map[string]any{},
		},
		{
			name:     "alias wins over canonical key",
			props:    BagOf("class", "old", "className", "new", "id", "x"),
			wantKeys: []string{"class", "id"},
			want:     map[string]any{"class": "new", "id": "x"},
		},
		{
			name:     "non-string values pass through",
			props:    BagOf("className", 42, "htmlFor", nil),
			wantKeys: []string{"class", "for"},
			want:     map[string]any{"class": 42, "for": nil},
		},
		{
			name:     "case-sensitive match",
			props:    BagOf("classname", "a", "HtmlFor", "b"),
			wantKeys: []string{"classname", "HtmlFor"},
			want:     map[string]any{"classname": "a", "HtmlFor": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NormalizeIntrinsicElementProps(tt.props)
			assert.Equal(t, tt.wantKeys, tt.props.Keys())
			assert.Equal(t, tt.want, toMap(tt.props))
		})
	}
}

func TestNormalizeIntrinsicElementProps_Idempotent(t *testing.T) {
	props := BagOf("className", "c", "htmlFor", "f", "type", "t")
	NormalizeIntrinsicElementProps(props)
	once := props.Clone()

	NormalizeIntrinsicElementProps(props)
	assert.Equal(t, once.Keys(), props.Keys())
	assert.Equal(t, toMap(once), toMap(props))
}

func TestNormalizeIntrinsicElementProps_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		NormalizeIntrinsicElementProps(nil)
	})
}

func TestCanonicalAttributeName(t *testing.T) {
	assert.Equal(t, "class", CanonicalAttributeName("className"))
	assert.Equal(t, "for", CanonicalAttributeName("htmlFor"))
	assert.Equal(t, "id", CanonicalAttributeName("id"))
	assert.Equal(t, "ClassName", CanonicalAttributeName("ClassName"))
}

func toMap(b *Bag) map[string]any {
	m := make(map[string]any, b.Len())
	for k, v := range b.All() {
		m[k] = v
	}
	return m
}
