package maps

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the map in key order. Keys with a text form (string and
// integer kinds, encoding.TextMarshaler) produce a JSON object; any other key
// type produces an array of {"key": ..., "value": ...} objects.
func (m *RedBlackTreeMap[K, V]) MarshalJSON() ([]byte, error) {
	if first, ok := m.First().Get(); ok && !isTextKey(first.Key) {
		return encodeJSON(m.pairs())
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	index := 0

	for key, value := range m.Seq() {
		text, err := keyText(key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", key, err)
		}

		name, err := encodeJSON(text)
		if err != nil {
			return nil, err
		}

		body, err := encodeJSON(value)
		if err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", text, err)
		}

		if index > 0 {
			buf.WriteByte(',')
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)

		index++
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeJSON leaves HTML escaping to the outer encoder, which applies its
// own setting to whatever MarshalJSON returns.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type jsonPair[K any, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

func (m *RedBlackTreeMap[K, V]) pairs() []jsonPair[K, V] {
	out := make([]jsonPair[K, V], 0, m.Size())
	for key, value := range m.Seq() {
		out = append(out, jsonPair[K, V]{Key: key, Value: value})
	}

	return out
}

// ErrKeyNotText is returned when a key has no JSON object-key form.
var ErrKeyNotText = errors.New("map key has no text form")

func isTextKey(key any) bool {
	if _, ok := key.(encoding.TextMarshaler); ok {
		return true
	}

	switch reflect.ValueOf(key).Kind() { //nolint:exhaustive
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// keyText follows encoding/json: a TextMarshaler wins over the underlying kind.
func keyText(key any) (string, error) {
	if marshaler, ok := key.(encoding.TextMarshaler); ok {
		text, err := marshaler.MarshalText()
		if err != nil {
			return "", err
		}

		return string(text), nil
	}

	rv := reflect.ValueOf(key)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrKeyNotText, key)
	}
}

// MarshalYAML encodes the map as a YAML mapping in key order.
func (m *RedBlackTreeMap[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, value := range m.Seq() {
		var keyNode, valueNode yaml.Node

		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", key, err)
		}

		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("encoding value for key %v: %w", key, err)
		}

		node.Content = append(node.Content, &keyNode, &valueNode)
	}

	return node, nil
}
