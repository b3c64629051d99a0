package secadvisor

import (
	"encoding/json"

	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Encode returns the JSON object form of a model. Absent optional fields
// are omitted.
func Encode(v any) (map[string]any, error) {
	return codec.ToMap(v)
}

// Decode builds a model of type T from its JSON object form. It fails with a
// *DecodeError on unknown keys or missing required fields.
func Decode[T any](m map[string]any) (*T, error) {
	var v T
	if err := codec.FromMap(m, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeCardElement decodes a card element, choosing the variant by kind.
func DecodeCardElement(m map[string]any) (CardElement, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return decodeCardElement(data)
}

// DecodeValueType decodes a value type, choosing the variant by kind.
func DecodeValueType(m map[string]any) (ValueType, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return decodeValueType(data)
}
