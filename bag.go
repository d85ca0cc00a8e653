package jsxattr

import (
	"fmt"
	"iter"

	"github.com/elliotchance/orderedmap/v3"
	"gopkg.in/yaml.v3"
)

// Bag is an ordered mapping from string keys to arbitrary values.
// Iteration follows insertion order; setting an existing key keeps its position.
// The zero value is an empty bag ready to use.
type Bag struct {
	m *orderedmap.OrderedMap[string, any]
}

// PropertyBag holds the non-children properties of one element.
type PropertyBag = Bag

// StyleBag maps camelCase CSS property names to numbers or strings.
type StyleBag = Bag

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{m: orderedmap.NewOrderedMap[string, any]()}
}

// BagOf builds a bag from alternating key/value arguments:
//
//	BagOf("className", "btn", "id", "save")
//
// It panics on an odd argument count or a non-string key.
func BagOf(kv ...any) *Bag {
	if len(kv)%2 != 0 {
		panic("jsxattr: BagOf requires key/value pairs")
	}
	b := NewBag()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("jsxattr: BagOf key %v is not a string", kv[i]))
		}
		b.Set(key, kv[i+1])
	}
	return b
}

func (b *Bag) lazyInit() {
	if b.m == nil {
		b.m = orderedmap.NewOrderedMap[string, any]()
	}
}

// Get returns the value stored under key.
func (b *Bag) Get(key string) (any, bool) {
	if b == nil || b.m == nil {
		return nil, false
	}
	return b.m.Get(key)
}

// Set stores value under key.
func (b *Bag) Set(key string, value any) {
	b.lazyInit()
	b.m.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (b *Bag) Delete(key string) bool {
	if b == nil || b.m == nil {
		return false
	}
	return b.m.Delete(key)
}

// Has reports whether key is present.
func (b *Bag) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Len returns the number of entries.
func (b *Bag) Len() int {
	if b == nil || b.m == nil {
		return 0
	}
	return b.m.Len()
}

// Keys returns the keys in iteration order.
func (b *Bag) Keys() []string {
	keys := make([]string, 0, b.Len())
	b.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for every entry in order until fn returns false.
func (b *Bag) Range(fn func(key string, value any) bool) {
	if b == nil || b.m == nil {
		return
	}
	for el := b.m.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// All returns an iterator over the entries in order.
func (b *Bag) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		b.Range(yield)
	}
}

// Clone returns a shallow copy; nested bags are cloned as well.
func (b *Bag) Clone() *Bag {
	out := NewBag()
	b.Range(func(key string, value any) bool {
		if nested, ok := value.(*Bag); ok {
			value = nested.Clone()
		}
		out.Set(key, value)
		return true
	})
	return out
}

// UnmarshalYAML decodes a mapping node keeping the document key order.
// JSON documents decode the same way since yaml.v3 accepts JSON input.
func (b *Bag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	b.m = orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
		}
		value, err := decodeNode(valueNode)
		if err != nil {
			return fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		b.m.Set(keyNode.Value, value)
	}
	return nil
}

// MarshalYAML encodes the bag as an ordered mapping.
func (b *Bag) MarshalYAML() (any, error) {
	return b.toNode()
}

func (b *Bag) toNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	b.Range(func(key string, value any) bool {
		var valueNode *yaml.Node
		if valueNode, err = encodeValue(value); err != nil {
			err = fmt.Errorf("key %q: %w", key, err)
			return false
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.MappingNode:
		nested := &Bag{}
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

func encodeValue(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Bag:
		return v.toNode()
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			itemNode, err := encodeValue(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, itemNode)
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
