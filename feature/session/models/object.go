package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Object is a JSON object decoded with its key order preserved.
// Lua based exporters write empty tables as [] and sequential tables as
// arrays, so arrays are accepted too and keyed by their 1-based position.
type Object[T any] struct {
	keys   []string
	values map[string]T
}

// Len returns the number of distinct keys.
func (o *Object[T]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Each calls fn for every entry in source order and stops at the first error.
func (o *Object[T]) Each(fn func(key string, val T) error) error {
	if o == nil {
		return nil
	}
	for _, k := range o.keys {
		if err := fn(k, o.values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Set stores val under key. A repeated key keeps its first position.
func (o *Object[T]) Set(key string, val T) {
	if o.values == nil {
		o.values = make(map[string]T)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object[T]) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = make(map[string]T)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch tok {
	case nil:
		return nil
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("unexpected object key %v", keyTok)
			}
			var val T
			if err := dec.Decode(&val); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			o.Set(key, val)
		}
	case json.Delim('['):
		for i := 1; dec.More(); i++ {
			var val T
			if err := dec.Decode(&val); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			o.Set(strconv.Itoa(i), val)
		}
	default:
		return fmt.Errorf("expected object, got %v", tok)
	}

	_, err = dec.Token()
	return err
}
