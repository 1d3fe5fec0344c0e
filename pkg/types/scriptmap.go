package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScriptMap is a string-to-string map that remembers insertion order. The
// manifest's script declaration order determines the order in which changed
// scripts are reported, so it has to survive the baseline JSON round-trip —
// a plain map would lose it.
type ScriptMap struct {
	keys   []string
	values map[string]string
}

// NewScriptMap returns an empty ScriptMap.
func NewScriptMap() ScriptMap {
	return ScriptMap{values: map[string]string{}}
}

// Set stores the command for a script name, appending the name to the
// declaration order on first insert.
func (m *ScriptMap) Set(name, command string) {
	if m.values == nil {
		m.values = map[string]string{}
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = command
}

// Get returns the command for a script name and whether it exists.
func (m ScriptMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Keys returns the script names in declaration order.
func (m ScriptMap) Keys() []string {
	return append([]string{}, m.keys...)
}

// Len returns the number of scripts.
func (m ScriptMap) Len() int {
	return len(m.keys)
}

// Clone creates a copy of the map preserving order.
func (m ScriptMap) Clone() ScriptMap {
	clone := NewScriptMap()
	for _, k := range m.keys {
		clone.Set(k, m.values[k])
	}
	return clone
}

// MarshalJSON encodes the map as a JSON object in declaration order.
func (m ScriptMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
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

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
func (m *ScriptMap) UnmarshalJSON(data []byte) error {
	*m = NewScriptMap()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("scripts: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("scripts: expected string key, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("scripts: value for %q: %w", key, err)
		}
		m.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
