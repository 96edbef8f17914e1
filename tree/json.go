package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the mapping as a JSON object with keys in insertion
// order. Non-string keys are formatted with fmt.Sprint, since JSON object
// keys must be strings.
func (m *Ordered[K]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(keyString(e.key))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
