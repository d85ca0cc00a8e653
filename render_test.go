package jsxattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderString(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "aliases renamed",
			el:   &Element{Tag: "div", Props: BagOf("className", "c", "id", "i")},
			want: `<div id="i" class="c"></div>`,
		},
		{
			name: "label for",
			el: &Element{
				Tag:      "label",
				Props:    BagOf("htmlFor", "email"),
				Children: []Node{TextNode("Email")},
			},
			want: `<label for="email">Email</label>`,
		},
		{
			name: "boolean attributes",
			el:   &Element{Tag: "input", Props: BagOf("type", "checkbox", "disabled", true, "hidden", false)},
			want: `<input type="checkbox" disabled=""/>`,
		},
		{
			name: "style object",
			el:   &Element{Tag: "div", Props: BagOf("style", BagOf("fontSize", 14, "opacity", 0.5, "color", "red"))},
			want: `<div style="font-size:14px;opacity:0.5;color:red"></div>`,
		},
		{
			name: "style string passthrough",
			el:   &Element{Tag: "div", Props: BagOf("style", "color: red")},
			want: `<div style="color: red"></div>`,
		},
		{
			name: "escaping",
			el: &Element{
				Tag:      "p",
				Props:    BagOf("title", `a "b" <c>`),
				Children: []Node{TextNode("x < y & z")},
			},
			want: `<p title="a &#34;b&#34; &lt;c&gt;">x &lt; y &amp; z</p>`,
		},
		{
			name: "dropped values",
			el:   &Element{Tag: "button", Props: BagOf("onClick", func() {}, "title", nil, "tabIndex", 2)},
			want: `<button tabIndex="2"></button>`,
		},
		{
			name: "children prop",
			el:   &Element{Tag: "span", Props: BagOf("className", "badge", "children", 3)},
			want: `<span class="badge">3</span>`,
		},
		{
			name: "nested elements",
			el: &Element{
				Tag: "ul",
				Children: []Node{
					ElementNode(&Element{Tag: "li", Props: BagOf("className", "a"), Children: []Node{TextNode("one")}}),
					ElementNode(&Element{Tag: "li", Children: []Node{TextNode("two")}}),
				},
			},
			want: `<ul><li class="a">one</li><li>two</li></ul>`,
		},
		{
			name: "svg attributes",
			el:   &Element{Tag: "svg", Props: BagOf("viewBox", "0 0 10 10", "className", "icon")},
			want: `<svg viewBox="0 0 10 10" class="icon"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderString(tt.el)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		el      *Element
		wantErr string
	}{
		{
			name:    "missing tag",
			el:      &Element{},
			wantErr: "element has no tag",
		},
		{
			name:    "nested missing tag",
			el:      &Element{Tag: "div", Children: []Node{ElementNode(&Element{})}},
			wantErr: "element has no tag",
		},
		{
			name:    "object on non-style attribute",
			el:      &Element{Tag: "div", Props: BagOf("data", BagOf("x", 1))},
			wantErr: `attribute "data"`,
		},
		{
			name:    "void element with children",
			el:      &Element{Tag: "br", Children: []Node{TextNode("x")}},
			wantErr: "render <br>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderString(tt.el)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderElement_NormalizesInPlace(t *testing.T) {
	el := &Element{Tag: "label", Props: BagOf("htmlFor", "x")}
	_, err := RenderString(el)
	require.NoError(t, err)
	assert.Equal(t, []string{"for"}, el.Props.Keys())
}

func TestElement_UnmarshalYAML(t *testing.T) {
	input := `
tag: form
props:
  className: login
children:
  - tag: label
    props:
      htmlFor: user
    children: [User]
  - tag: input
    props:
      id: user
      style: {width: 120, flexGrow: 1}
  - plain text
`
	var el Element
	require.NoError(t, yaml.Unmarshal([]byte(input), &el))
	require.Len(t, el.Children, 3)
	assert.Equal(t, "plain text", el.Children[2].Text)

	got, err := RenderString(&el)
	require.NoError(t, err)
	assert.Equal(t,
		`<form class="login"><label for="user">User</label><input id="user" style="width:120px;flex-grow:1"/>plain text</form>`,
		got)
}

func TestNode_UnmarshalYAML_Invalid(t *testing.T) {
	var el Element
	err := yaml.Unmarshal([]byte("tag: div\nchildren:\n  - [nested, list]\n"), &el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "child must be text or an element")
}

func TestElement_UnmarshalYAML_DropsNullChildren(t *testing.T) {
	var el Element
	require.NoError(t, yaml.Unmarshal([]byte("tag: p\nchildren: [one, ~, null, {tag: br}, two]\n"), &el))
	require.Len(t, el.Children, 3)

	got, err := RenderString(&el)
	require.NoError(t, err)
	assert.Equal(t, "<p>one<br/>two</p>", got)
}
