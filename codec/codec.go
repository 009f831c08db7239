package codec

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Format is a textual interchange format.
type Format int8

// Supported formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	}
	return "unknown format"
}

// Encode returns the JSON text for v.
func Encode(v any) (string, error) {
	return JSON.Encode(v)
}

// DecodeStructure parses JSON text into plain data:
// map[string]any, []any, float64, string, bool or nil.
func DecodeStructure(text string) (any, error) {
	return JSON.DecodeStructure(text)
}

// Decode parses JSON text into a value of type T.
func Decode[T any](text string) (T, error) {
	return DecodeFormat[T](JSON, text)
}

// Encode returns the text for v in format f. If v is not representable,
// a *SerializationError is returned.
func (f Format) Encode(v any) (string, error) {
	data, err := marshalJSON(v)
	if err != nil {
		return "", &SerializationError{Format: f, Err: err}
	}
	if f == YAML {
		if data, err = jsonToYAML(data); err != nil {
			return "", &SerializationError{Format: f, Err: err}
		}
	}
	tracer().Debugf("codec: encoded %T as %d bytes of %s", v, len(data), f)
	return string(data), nil
}

// DecodeStructure parses text in format f into plain data.
// Malformed text results in a *ParseError.
func (f Format) DecodeStructure(text string) (any, error) {
	var v any
	if err := f.unmarshal(text, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeFormat parses text in format f into a value of type T.
// Malformed text results in a *ParseError. Parts of the text not fitting the
// shape of T are skipped silently.
func DecodeFormat[T any](f Format, text string) (T, error) {
	var v T
	if err := f.unmarshal(text, &v); err != nil {
		var zero T
		return zero, err
	}
	tracer().Debugf("codec: decoded %s into %T", f, v)
	return v, nil
}

func (f Format) unmarshal(text string, v any) error {
	if f == YAML {
		err := yaml.Unmarshal([]byte(text), v)
		var typeErr *yaml.TypeError
		if err == nil || errors.As(err, &typeErr) {
			return nil
		}
		return &ParseError{Format: f, Offset: -1, Err: err}
	}
	err := json.Unmarshal([]byte(text), v)
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case err == nil, errors.As(err, &typeErr):
		return nil
	case errors.As(err, &syntaxErr):
		return &ParseError{Format: f, Offset: syntaxErr.Offset, Err: err}
	}
	return &ParseError{Format: f, Offset: -1, Err: err}
}

// marshalJSON is json.Marshal without HTML escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// jsonToYAML re-encodes JSON text as block-style YAML. JSON being a subset
// of YAML, the node tree keeps the key order of the JSON text.
func jsonToYAML(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	plain(&doc)
	return yaml.Marshal(&doc)
}

// plain drops flow and quoting styles inherited from JSON syntax.
// The YAML encoder re-quotes strings where needed.
func plain(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plain(c)
	}
}
