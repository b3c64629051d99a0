// Package codec implements strict JSON object decoding for API models.
//
// Models decode through an Object: the object's keys are checked against the
// model's declared field set, required fields must be present and non-null,
// and nested decode failures are reported with their field path.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DecodeError reports a JSON object that does not match a model's shape.
type DecodeError struct {
	// Model is the name of the model being decoded.
	Model string
	// Path is the dotted field path from the outermost model, if nested.
	Path string
	// Unrecognized lists keys outside the model's declared field set.
	Unrecognized []string
	// Missing names a required field that was absent.
	Missing string
	// Err is the underlying failure for malformed values.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("secadvisor: decoding ")
	b.WriteString(e.Model)
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	switch {
	case len(e.Unrecognized) > 0:
		b.WriteString("unrecognized keys: ")
		b.WriteString(strings.Join(e.Unrecognized, ", "))
	case e.Missing != "":
		fmt.Fprintf(&b, "required property %q not present", e.Missing)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("invalid value")
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Object is a JSON object being decoded into a model. The first failure is
// kept and later calls become no-ops, so decoders can be written as a flat
// list of field reads followed by a single Err check.
type Object struct {
	model  string
	fields map[string]json.RawMessage
	err    error
}

// Parse decodes data as a JSON object for model and rejects any key not in keys.
func Parse(model string, data []byte, keys ...string) *Object {
	o := ParseLenient(model, data)
	if o.err != nil {
		return o
	}

	var unknown []string
	for k := range o.fields {
		if !slices.Contains(keys, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		o.err = &DecodeError{Model: model, Unrecognized: unknown}
	}
	return o
}

// ParseLenient decodes data as a JSON object for model without checking keys.
// Polymorphic families use it for their fallback shape.
func ParseLenient(model string, data []byte) *Object {
	o := &Object{model: model}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.err = &DecodeError{Model: model, Err: fmt.Errorf("expected object, got null")}
		return o
	}
	if err := json.Unmarshal(data, &o.fields); err != nil {
		o.err = &DecodeError{Model: model, Err: err}
	}
	return o
}

// Model returns the model name the object decodes into.
func (o *Object) Model() string {
	return o.model
}

// Keys returns the object's keys in sorted order.
func (o *Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.fields))
}

// Raw returns the raw value of key and whether it is present and non-null.
func (o *Object) Raw(key string) (json.RawMessage, bool) {
	raw, ok := o.fields[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// Required decodes key into dst, failing if the key is absent or null.
func (o *Object) Required(key string, dst any) {
	o.RequiredFunc(key, func(raw json.RawMessage) error {
		return json.Unmarshal(raw, dst)
	})
}

// Optional decodes key into dst when present. An absent or null key leaves dst untouched.
func (o *Object) Optional(key string, dst any) {
	o.OptionalFunc(key, func(raw json.RawMessage) error {
		return json.Unmarshal(raw, dst)
	})
}

// RequiredFunc runs fn on the raw value of key, failing if the key is absent or null.
func (o *Object) RequiredFunc(key string, fn func(json.RawMessage) error) {
	if o.err != nil {
		return
	}
	raw, ok := o.Raw(key)
	if !ok {
		o.err = &DecodeError{Model: o.model, Missing: key}
		return
	}
	o.decode(key, raw, fn)
}

// OptionalFunc runs fn on the raw value of key when present.
func (o *Object) OptionalFunc(key string, fn func(json.RawMessage) error) {
	if o.err != nil {
		return
	}
	raw, ok := o.Raw(key)
	if !ok {
		return
	}
	o.decode(key, raw, fn)
}

// Err returns the first decode failure.
func (o *Object) Err() error {
	return o.err
}

func (o *Object) decode(key string, raw json.RawMessage, fn func(json.RawMessage) error) {
	if err := fn(raw); err != nil {
		o.err = wrap(o.model, key, err)
	}
}

// wrap attaches the field path to a nested failure. A nested DecodeError keeps
// its own model name and gains the field as a path prefix.
func wrap(model, key string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		nested := *de
		nested.Path = joinPath(key, nested.Path)
		return &nested
	}
	return &DecodeError{Model: model, Path: key, Err: err}
}

func joinPath(key, path string) string {
	switch {
	case path == "":
		return key
	case strings.HasPrefix(path, "["):
		return key + path
	default:
		return key + "." + path
	}
}

// Slice decodes a JSON array, calling fn on each element in order.
func Slice[T any](raw json.RawMessage, fn func(json.RawMessage) (T, error)) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				nested := *de
				nested.Path = joinPath(fmt.Sprintf("[%d]", i), nested.Path)
				return nil, &nested
			}
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Discriminator returns the string value of key, used to select a variant decoder.
func Discriminator(model string, data []byte, key string) (string, error) {
	o := ParseLenient(model, data)
	var kind string
	o.RequiredFunc(key, func(raw json.RawMessage) error {
		return json.Unmarshal(raw, &kind)
	})
	if err := o.Err(); err != nil {
		return "", err
	}
	return kind, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
