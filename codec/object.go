package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

var errObjectCycle = errors.New("object contains itself")

// Object is a mapping which remembers the order in which its keys have first
// been assigned. It encodes its entries in this order. Decoding an Object
// keeps the order of the text; nested mappings decode to *Object as well.
//
// The zero value is an empty object ready to use.
type Object struct {
	keys     []string
	values   map[string]any
	encoding bool
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{}
}

// Set assigns a value to key. Re-assigning a key does not change its position.
func (o *Object) Set(key string, value any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value for key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in assignment order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON is part of interface json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o.encoding {
		return nil, errObjectCycle
	}
	o.encoding = true
	defer func() { o.encoding = false }()
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalJSON(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // null leaves o untouched
		return nil
	}
	if tok != json.Delim('{') {
		return &json.UnmarshalTypeError{
			Value: fmt.Sprintf("%v", tok),
			Type:  reflect.TypeOf(o).Elem(),
		}
	}
	*o = Object{}
	return o.decodeEntries(dec)
}

func (o *Object) decodeEntries(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string) // object keys are always strings
		v, err := decodeJSONValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, v)
	}
	_, err := dec.Token() // closing '}'
	return err
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		o := NewObject()
		if err := o.decodeEntries(dec); err != nil {
			return nil, err
		}
		return o, nil
	case json.Delim('['):
		list := []any{}
		for dec.More() {
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		_, err := dec.Token() // closing ']'
		return list, err
	}
	return tok, nil
}

// MarshalYAML is part of interface yaml.Marshaler.
func (o *Object) MarshalYAML() (interface{}, error) {
	if o.encoding {
		return nil, errObjectCycle
	}
	o.encoding = true
	defer func() { o.encoding = false }()
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.keys {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		val := &yaml.Node{}
		if err := val.Encode(o.values[k]); err != nil {
			return nil, err
		}
		m.Content = append(m.Content, key, val)
	}
	return m, nil
}

// UnmarshalYAML is part of interface yaml.Unmarshaler.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{
			fmt.Sprintf("line %d: cannot unmarshal %s into codec.Object", node.Line, node.Tag),
		}}
	}
	*o = Object{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return err
		}
		o.Set(node.Content[i].Value, v)
	}
	return nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		o := NewObject()
		if err := o.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return o, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := decodeYAMLValue(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	}
	var v any
	err := node.Decode(&v)
	return v, err
}
