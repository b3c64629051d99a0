package secadvisor

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Card is a dashboard card defined by a CARD note.
type Card struct {
	Section               string        `json:"section"`
	Title                 string        `json:"title"`
	Subtitle              string        `json:"subtitle"`
	Order                 *int64        `json:"order,omitempty"`
	FindingNoteNames      []string      `json:"finding_note_names,omitzero"`
	RequiresConfiguration *bool         `json:"requires_configuration,omitempty"`
	BadgeText             *string       `json:"badge_text,omitempty"`
	BadgeImage            *string       `json:"badge_image,omitempty"`
	Elements              []CardElement `json:"elements,omitzero"`
}

var cardKeys = []string{
	"section", "title", "subtitle", "order", "finding_note_names",
	"requires_configuration", "badge_text", "badge_image", "elements",
}

// UnmarshalJSON decodes a card strictly. Elements are resolved by kind.
func (c *Card) UnmarshalJSON(data []byte) error {
	var v Card
	o := codec.Parse("Card", data, cardKeys...)
	o.Required("section", &v.Section)
	o.Required("title", &v.Title)
	o.Required("subtitle", &v.Subtitle)
	o.Optional("order", &v.Order)
	o.Required("finding_note_names", &v.FindingNoteNames)
	o.Optional("requires_configuration", &v.RequiresConfiguration)
	o.Optional("badge_text", &v.BadgeText)
	o.Optional("badge_image", &v.BadgeImage)
	o.RequiredFunc("elements", func(raw json.RawMessage) (err error) {
		v.Elements, err = codec.Slice(raw, decodeCardElement)
		return err
	})
	if err := o.Err(); err != nil {
		return err
	}
	*c = v
	return nil
}

// Equal reports whether c and other hold the same field values.
func (c *Card) Equal(other *Card) bool {
	type plain Card
	return cmp.Equal((*plain)(c), (*plain)(other))
}

func (c *Card) validate(prefix string) error {
	switch {
	case c.FindingNoteNames == nil:
		return &InvalidArgumentError{Param: prefix + ".finding_note_names"}
	case c.Elements == nil:
		return &InvalidArgumentError{Param: prefix + ".elements"}
	}
	for i, e := range c.Elements {
		param := fmt.Sprintf("%s.elements[%d]", prefix, i)
		switch e := e.(type) {
		case nil:
			return &InvalidArgumentError{Param: param}
		case *NumericCardElement:
			if e.ValueType == nil {
				return &InvalidArgumentError{Param: param + ".value_type"}
			}
		case *BreakdownCardElement:
			if e.ValueTypes == nil {
				return &InvalidArgumentError{Param: param + ".value_types"}
			}
		case *TimeSeriesCardElement:
			if e.ValueTypes == nil {
				return &InvalidArgumentError{Param: param + ".value_types"}
			}
		}
	}
	return nil
}

// CardElement is one element of a Card. The concrete type is selected by the
// element's kind: NUMERIC, BREAKDOWN and TIME_SERIES have their own variants,
// and any other kind decodes as a GenericCardElement.
type CardElement interface {
	ElementKind() CardElementKind
	cardElement()
}

// GenericCardElement holds the fields common to every card element. It is
// what an element of an unrecognized kind decodes to.
type GenericCardElement struct {
	Kind             CardElementKind `json:"kind"`
	DefaultTimeRange *string         `json:"default_time_range,omitempty"`
}

// ElementKind returns the element's kind.
func (e *GenericCardElement) ElementKind() CardElementKind { return e.Kind }
func (*GenericCardElement) cardElement()                   {}

// UnmarshalJSON decodes the common card element shape strictly.
func (e *GenericCardElement) UnmarshalJSON(data []byte) error {
	return e.decode(codec.Parse("CardElement", data, "kind", "default_time_range"))
}

func (e *GenericCardElement) decode(o *codec.Object) error {
	var v GenericCardElement
	o.Required("kind", &v.Kind)
	o.Optional("default_time_range", &v.DefaultTimeRange)
	if err := o.Err(); err != nil {
		return err
	}
	*e = v
	return nil
}

// NumericCardElement shows a single numeric value.
type NumericCardElement struct {
	Kind             CardElementKind `json:"kind"`
	DefaultTimeRange *string         `json:"default_time_range,omitempty"`
	Text             string          `json:"text"`
	ValueType        ValueType       `json:"value_type,omitempty"`
}

// ElementKind returns the element's kind.
func (e *NumericCardElement) ElementKind() CardElementKind { return e.Kind }
func (*NumericCardElement) cardElement()                   {}

// UnmarshalJSON decodes a numeric card element strictly.
func (e *NumericCardElement) UnmarshalJSON(data []byte) error {
	var v NumericCardElement
	o := codec.Parse("NumericCardElement", data, "kind", "default_time_range", "text", "value_type")
	o.Required("kind", &v.Kind)
	o.Optional("default_time_range", &v.DefaultTimeRange)
	o.Required("text", &v.Text)
	o.RequiredFunc("value_type", func(raw json.RawMessage) (err error) {
		v.ValueType, err = decodeValueType(raw)
		return err
	})
	if err := o.Err(); err != nil {
		return err
	}
	*e = v
	return nil
}

// BreakdownCardElement shows a breakdown of numeric values.
type BreakdownCardElement struct {
	Kind             CardElementKind `json:"kind"`
	DefaultTimeRange *string         `json:"default_time_range,omitempty"`
	Text             string          `json:"text"`
	ValueTypes       []ValueType     `json:"value_types,omitzero"`
}

// ElementKind returns the element's kind.
func (e *BreakdownCardElement) ElementKind() CardElementKind { return e.Kind }
func (*BreakdownCardElement) cardElement()                   {}

// UnmarshalJSON decodes a breakdown card element strictly.
func (e *BreakdownCardElement) UnmarshalJSON(data []byte) error {
	var v BreakdownCardElement
	o := codec.Parse("BreakdownCardElement", data, "kind", "default_time_range", "text", "value_types")
	o.Required("kind", &v.Kind)
	o.Optional("default_time_range", &v.DefaultTimeRange)
	o.Required("text", &v.Text)
	o.RequiredFunc("value_types", func(raw json.RawMessage) (err error) {
		v.ValueTypes, err = codec.Slice(raw, decodeValueType)
		return err
	})
	if err := o.Err(); err != nil {
		return err
	}
	*e = v
	return nil
}

// TimeSeriesCardElement shows finding counts over time.
type TimeSeriesCardElement struct {
	Kind             CardElementKind         `json:"kind"`
	DefaultTimeRange *string                 `json:"default_time_range,omitempty"`
	DefaultInterval  *string                 `json:"default_interval,omitempty"`
	Text             string                  `json:"text"`
	ValueTypes       []FindingCountValueType `json:"value_types,omitzero"`
}

// ElementKind returns the element's kind.
func (e *TimeSeriesCardElement) ElementKind() CardElementKind { return e.Kind }
func (*TimeSeriesCardElement) cardElement()                   {}

// UnmarshalJSON decodes a time series card element strictly.
func (e *TimeSeriesCardElement) UnmarshalJSON(data []byte) error {
	var v TimeSeriesCardElement
	o := codec.Parse("TimeSeriesCardElement", data,
		"kind", "default_time_range", "default_interval", "text", "value_types")
	o.Required("kind", &v.Kind)
	o.Optional("default_time_range", &v.DefaultTimeRange)
	o.Optional("default_interval", &v.DefaultInterval)
	o.Required("text", &v.Text)
	o.Required("value_types", &v.ValueTypes)
	if err := o.Err(); err != nil {
		return err
	}
	*e = v
	return nil
}

// decodeCardElement selects the variant for the element's kind. Unknown
// kinds keep only the common fields; their other keys are dropped.
func decodeCardElement(data json.RawMessage) (CardElement, error) {
	kind, err := codec.Discriminator("CardElement", data, "kind")
	if err != nil {
		return nil, err
	}

	var e interface {
		CardElement
		json.Unmarshaler
	}
	switch CardElementKind(kind) {
	case CardElementNumeric:
		e = new(NumericCardElement)
	case CardElementBreakdown:
		e = new(BreakdownCardElement)
	case CardElementTimeSeries:
		e = new(TimeSeriesCardElement)
	default:
		g := new(GenericCardElement)
		if err := g.decode(codec.ParseLenient("CardElement", data)); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

// ValueType describes where a card element's value comes from. KPI and
// FINDING_COUNT have their own variants; any other kind decodes as a
// GenericValueType.
type ValueType interface {
	ValueKind() ValueTypeKind
	valueType()
}

// GenericValueType holds the fields common to every value type.
type GenericValueType struct {
	Kind ValueTypeKind `json:"kind"`
	Text string        `json:"text"`
}

// ValueKind returns the value type's kind.
func (t *GenericValueType) ValueKind() ValueTypeKind { return t.Kind }
func (*GenericValueType) valueType()                 {}

// UnmarshalJSON decodes the common value type shape strictly.
func (t *GenericValueType) UnmarshalJSON(data []byte) error {
	return t.decode(codec.Parse("ValueType", data, "kind", "text"))
}

func (t *GenericValueType) decode(o *codec.Object) error {
	var v GenericValueType
	o.Required("kind", &v.Kind)
	o.Required("text", &v.Text)
	if err := o.Err(); err != nil {
		return err
	}
	*t = v
	return nil
}

// KpiValueType takes its value from a KPI occurrence.
type KpiValueType struct {
	Kind        ValueTypeKind `json:"kind"`
	KpiNoteName string        `json:"kpi_note_name"`
	Text        string        `json:"text"`
}

// ValueKind returns the value type's kind.
func (t *KpiValueType) ValueKind() ValueTypeKind { return t.Kind }
func (*KpiValueType) valueType()                 {}

// UnmarshalJSON decodes a KPI value type strictly.
func (t *KpiValueType) UnmarshalJSON(data []byte) error {
	var v KpiValueType
	o := codec.Parse("KpiValueType", data, "kind", "kpi_note_name", "text")
	o.Required("kind", &v.Kind)
	o.Required("kpi_note_name", &v.KpiNoteName)
	o.Required("text", &v.Text)
	if err := o.Err(); err != nil {
		return err
	}
	*t = v
	return nil
}

// FindingCountValueType counts occurrences of the named finding notes.
type FindingCountValueType struct {
	Kind             ValueTypeKind `json:"kind"`
	FindingNoteNames []string      `json:"finding_note_names,omitzero"`
	Text             string        `json:"text"`
}

// ValueKind returns the value type's kind.
func (t *FindingCountValueType) ValueKind() ValueTypeKind { return t.Kind }
func (*FindingCountValueType) valueType()                 {}

// UnmarshalJSON decodes a finding count value type strictly.
func (t *FindingCountValueType) UnmarshalJSON(data []byte) error {
	var v FindingCountValueType
	o := codec.Parse("FindingCountValueType", data, "kind", "finding_note_names", "text")
	o.Required("kind", &v.Kind)
	o.Required("finding_note_names", &v.FindingNoteNames)
	o.Required("text", &v.Text)
	if err := o.Err(); err != nil {
		return err
	}
	*t = v
	return nil
}

func decodeValueType(data json.RawMessage) (ValueType, error) {
	kind, err := codec.Discriminator("ValueType", data, "kind")
	if err != nil {
		return nil, err
	}

	var t interface {
		ValueType
		json.Unmarshaler
	}
	switch ValueTypeKind(kind) {
	case ValueTypeKPI:
		t = new(KpiValueType)
	case ValueTypeFindingCount:
		t = new(FindingCountValueType)
	default:
		g := new(GenericValueType)
		if err := g.decode(codec.ParseLenient("ValueType", data)); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return t, nil
}
