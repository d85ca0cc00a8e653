package jsxattr

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

// Element describes an intrinsic element as authored in JSX:
// a tag, its property bag and its children.
type Element struct {
	Tag      string       `yaml:"tag"`
	Props    *PropertyBag `yaml:"props,omitempty"`
	Children []Node       `yaml:"children,omitempty"`
}

// Node is a child of an Element: either text or a nested element.
type Node struct {
	Text    string
	Element *Element

	null bool
}

// TextNode returns a text child.
func TextNode(text string) Node {
	return Node{Text: text}
}

// ElementNode returns an element child.
func ElementNode(el *Element) Node {
	return Node{Element: el}
}

// UnmarshalYAML decodes an element mapping; null children are dropped.
func (el *Element) UnmarshalYAML(node *yaml.Node) error {
	type plain Element
	if err := node.Decode((*plain)(el)); err != nil {
		return err
	}
	el.Children = slices.DeleteFunc(el.Children, func(n Node) bool { return n.null })
	return nil
}

// UnmarshalYAML accepts a scalar (text) or a mapping (element).
// A null scalar (~ or null) decodes to a node its parent element discards.
func (n *Node) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			n.null = true
			return nil
		}
		n.Text = node.Value
		return nil
	case yaml.MappingNode:
		n.Element = &Element{}
		return node.Decode(n.Element)
	default:
		return fmt.Errorf("line %d: child must be text or an element, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML mirrors UnmarshalYAML.
func (n Node) MarshalYAML() (any, error) {
	if n.Element != nil {
		return n.Element, nil
	}
	return n.Text, nil
}

// ErrMissingTag is returned when an element has no tag name.
var ErrMissingTag = errors.New("element has no tag")

// RenderElement writes el as HTML. The element's props are normalized in place
// before rendering; attribute values and text are escaped by the HTML writer.
func RenderElement(w io.Writer, el *Element) error {
	node, err := el.htmlNode()
	if err != nil {
		return err
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("render <%s>: %w", el.Tag, err)
	}
	return nil
}

// RenderString renders el and returns the HTML.
func RenderString(el *Element) (string, error) {
	var b strings.Builder
	if err := RenderElement(&b, el); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (el *Element) htmlNode() (*html.Node, error) {
	if el == nil || el.Tag == "" {
		return nil, ErrMissingTag
	}

	NormalizeIntrinsicElementProps(el.Props)

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag,
		DataAtom: atom.Lookup([]byte(el.Tag)),
	}

	var err error
	el.Props.Range(func(key string, value any) bool {
		if key == "children" {
			return true
		}
		var (
			val string
			ok  bool
		)
		if val, ok, err = attributeValue(key, value); err != nil {
			err = fmt.Errorf("<%s> attribute %q: %w", el.Tag, key, err)
			return false
		}
		if ok {
			node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	children := el.Children
	if len(children) == 0 {
		if text, ok := el.Props.Get("children"); ok && text != nil {
			s, err := cast.ToStringE(text)
			if err != nil {
				return nil, fmt.Errorf("<%s> children: %w", el.Tag, err)
			}
			children = []Node{TextNode(s)}
		}
	}

	for _, child := range children {
		if child.Element == nil {
			node.AppendChild(&html.Node{Type: html.TextNode, Data: child.Text})
			continue
		}
		childNode, err := child.Element.htmlNode()
		if err != nil {
			return nil, err
		}
		node.AppendChild(childNode)
	}
	return node, nil
}

// attributeValue converts a property value to its attribute string.
// It returns false for values that produce no attribute: nil, false and functions.
func attributeValue(key string, value any) (string, bool, error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case bool:
		return "", v, nil
	case string:
		return v, true, nil
	case *StyleBag:
		if key != "style" {
			return "", false, errors.New("object values are only supported for style")
		}
		return StyleString(v), true, nil
	}

	if reflect.ValueOf(value).Kind() == reflect.Func {
		return "", false, nil
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}
