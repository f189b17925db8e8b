package tidy

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders v as a YAML node tree with record keys in order.
// Undefined entries are omitted from records.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: ToString(v)}
	case KindNumber:
		return yamlNumber(v.n)
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindRecord:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.rec.Entries() {
			if e.Value.kind == KindUndefined {
				continue
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
				e.Value.yamlNode(),
			)
		}
		return n
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elems() {
			n.Content = append(n.Content, e.yamlNode())
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func yamlNumber(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	}
	if _, ok := integral(f); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: FormatNumber(f)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatNumber(f)}
}

// UnmarshalYAML decodes a YAML node tree into v, keeping mapping keys in
// document order.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeYAML(node)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeYAML(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return decodeYAML(node.Content[0])
	case yaml.AliasNode:
		return decodeYAML(node.Alias)
	case yaml.MappingNode:
		r := NewRecord()
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Tag == "!!merge" {
				if err := mergeYAML(r, node.Content[i+1]); err != nil {
					return Value{}, err
				}
				continue
			}
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return Value{}, fmt.Errorf("line %d: mapping key: %w", node.Content[i].Line, err)
			}
			child, err := decodeYAML(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			r.Set(key, child)
		}
		return RecordValue(r), nil
	case yaml.SequenceNode:
		elems := make([]Value, len(node.Content))
		for i, c := range node.Content {
			child, err := decodeYAML(c)
			if err != nil {
				return Value{}, err
			}
			elems[i] = child
		}
		return Sequence(elems...), nil
	case yaml.ScalarNode:
		var x any
		if err := node.Decode(&x); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return ValueOf(x)
	}
	return Value{}, fmt.Errorf("%w: yaml node kind %d", ErrUnsupportedType, node.Kind)
}

// mergeYAML applies a "<<" merge key. Keys already present win.
func mergeYAML(r *Record, node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		for _, c := range node.Content {
			if err := mergeYAML(r, c); err != nil {
				return err
			}
		}
		return nil
	}
	v, err := decodeYAML(node)
	if err != nil {
		return err
	}
	src, ok := v.AsRecord()
	if !ok {
		return fmt.Errorf("line %d: merge value is %s, want mapping", node.Line, v.Kind())
	}
	for _, e := range src.Entries() {
		if !r.Has(e.Key) {
			r.Set(e.Key, e.Value)
		}
	}
	return nil
}

// integral reports whether f is a whole number representable as int64.
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
