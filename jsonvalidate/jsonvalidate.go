// Package jsonvalidate checks the shape of a raw JSON request body before
// it is bound to a struct.
package jsonvalidate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

var ErrNotObject = errors.New("JSON body must be an object")

// JsonRootLevelKeyCount counts the keys of the top-level object.
func JsonRootLevelKeyCount(body string) (int, error) {
	keys, err := RootKeys([]byte(body))
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// CheckJSONOrder requires the top-level keys to appear exactly in the
// expected order.
func CheckJSONOrder(body []byte, expectedKeys []string) error {
	keys, err := RootKeys(body)
	if err != nil {
		return err
	}
	if len(keys) != len(expectedKeys) {
		return fmt.Errorf("Invalid input format, expected keys %s", strings.Join(expectedKeys, ", "))
	}
	for i, key := range keys {
		if key != expectedKeys[i] {
			return fmt.Errorf("Invalid input format, key %q found where %q was expected", key, expectedKeys[i])
		}
	}
	return nil
}

// RootKeys returns the top-level keys in document order.
func RootKeys(body []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, ErrNotObject
		}
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
