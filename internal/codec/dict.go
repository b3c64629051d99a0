package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToMap encodes v and returns its JSON object form. Numbers are kept as
// json.Number so integers above 2^53 survive.
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}

	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("encoding %T: not a JSON object: %w", v, err)
	}
	return m, nil
}

// FromMap decodes the JSON object m into dst through dst's own decoder.
func FromMap(m map[string]any, dst any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("re-encoding object: %w", err)
	}
	return json.Unmarshal(data, dst)
}
