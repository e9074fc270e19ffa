package locales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// Messages is a key -> translation map that remembers the order in which keys
// were first added. Setting an existing key replaces the value but keeps its
// original position.
type Messages struct {
	keys   []string
	values map[string]string
}

func NewMessages() *Messages {
	return &Messages{
		keys:   []string{},
		values: map[string]string{},
	}
}

func (m *Messages) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

func (m *Messages) Get(key string) (string, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (m *Messages) Keys() []string {
	return append([]string{}, m.keys...)
}

func (m *Messages) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the messages as a 2-space indented JSON object in the same
// form as JSON.stringify(messages, null, 2): integer-like keys first in numeric
// order, then the remaining keys in insertion order. HTML characters and the
// U+2028/U+2029 line separators are not escaped and there is no trailing
// newline.
func (m *Messages) MarshalJSON() ([]byte, error) {
	if len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var b bytes.Buffer
	keys := m.ordered()

	b.WriteString("{\n")
	for i, k := range keys {
		key, err := quote(k)
		if err != nil {
			return nil, err
		}

		value, err := quote(m.values[k])
		if err != nil {
			return nil, err
		}

		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)

		if i < len(keys)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}
	b.WriteString("}")

	return b.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of string values, preserving the key
// order of the document. Nested objects, arrays and numbers are rejected.
func (m *Messages) UnmarshalJSON(data []byte) error {
	decoded := NewMessages()
	dec := json.NewDecoder(bytes.NewReader(data))

	t, err := dec.Token()
	if err != nil {
		return err
	} else if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("Expected JSON object, got %v", t)
	}

	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("Expected string key, got %T", kt)
		}

		vt, err := dec.Token()
		if err != nil {
			return err
		}

		switch v := vt.(type) {
		case string:
			decoded.Set(key, v)

		case nil:
			decoded.Set(key, "")

		default:
			return fmt.Errorf("Expected string value for key '%s', got %T", key, vt)
		}
	}

	if t, err := dec.Token(); err != nil {
		return err
	} else if delim, ok := t.(json.Delim); !ok || delim != '}' {
		return fmt.Errorf("Expected end of JSON object, got %v", t)
	}

	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("Unexpected data after JSON object")
	}

	*m = *decoded

	return nil
}

func quote(s string) ([]byte, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return unescapeSeparators(bytes.TrimSuffix(b.Bytes(), []byte("\n"))), nil
}

// ordered returns the keys in JavaScript property order: array index keys
// ascending, followed by every other key in insertion order.
func (m *Messages) ordered() []string {
	indices := []string{}
	others := []string{}

	for _, k := range m.keys {
		if _, ok := arrayIndex(k); ok {
			indices = append(indices, k)
		} else {
			others = append(others, k)
		}
	}

	sort.SliceStable(indices, func(i, j int) bool {
		p, _ := arrayIndex(indices[i])
		q, _ := arrayIndex(indices[j])

		return p < q
	})

	return append(indices, others...)
}

// arrayIndex is true for the canonical decimal form of an integer in the range
// 0 to 2^32-2, i.e. no sign and no leading zeros.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || len(key) > 10 || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}

	v, err := strconv.ParseUint(key, 10, 64)
	if err != nil || v > math.MaxUint32-1 {
		return 0, false
	}

	return v, true
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes written by the
// encoder with the raw characters. Escaped backslashes are skipped as a pair so
// that a literal '\\u2028' in a value is left alone.
func unescapeSeparators(quoted []byte) []byte {
	if !bytes.Contains(quoted, []byte(`\u202`)) {
		return quoted
	}

	var b bytes.Buffer
	for i := 0; i < len(quoted); i++ {
		c := quoted[i]
		if c != '\\' || i+1 >= len(quoted) {
			b.WriteByte(c)
			continue
		}

		if rest := quoted[i+1:]; bytes.HasPrefix(rest, []byte("u2028")) {
			b.WriteRune('\u2028')
			i += 5
		} else if bytes.HasPrefix(rest, []byte("u2029")) {
			b.WriteRune('\u2029')
			i += 5
		} else {
			b.WriteByte(c)
			b.WriteByte(quoted[i+1])
			i++
		}
	}

	return b.Bytes()
}
