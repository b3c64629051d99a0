package secadvisor

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/go-cmp/cmp"

	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Note is a provider-registered definition of a finding, KPI, card or section.
// Occurrences reference a note by name.
type Note struct {
	ShortDescription string           `json:"short_description"`
	LongDescription  string           `json:"long_description"`
	Kind             NoteKind         `json:"kind"`
	RelatedURL       []RelatedURL     `json:"related_url,omitzero"`
	ExpirationTime   *strfmt.DateTime `json:"expiration_time,omitempty"`
	CreateTime       *strfmt.DateTime `json:"create_time,omitempty"`
	UpdateTime       *strfmt.DateTime `json:"update_time,omitempty"`
	ID               string           `json:"id"`
	Shared           *bool            `json:"shared,omitempty"`
	ReportedBy       *Reporter        `json:"reported_by,omitempty"`

	// Exactly one of the following is set, matching Kind.
	Finding *FindingType `json:"finding,omitempty"`
	Kpi     *KpiType     `json:"kpi,omitempty"`
	Card    *Card        `json:"card,omitempty"`
	Section *Section     `json:"section,omitempty"`
}

var noteKeys = []string{
	"short_description", "long_description", "kind", "related_url",
	"expiration_time", "create_time", "update_time", "id", "shared",
	"reported_by", "finding", "kpi", "card", "section",
}

// UnmarshalJSON decodes a note, rejecting unknown keys and missing required fields.
func (n *Note) UnmarshalJSON(data []byte) error {
	var v Note
	o := codec.Parse("Note", data, noteKeys...)
	o.Required("short_description", &v.ShortDescription)
	o.Required("long_description", &v.LongDescription)
	o.Required("kind", &v.Kind)
	o.Optional("related_url", &v.RelatedURL)
	o.OptionalFunc("expiration_time", decodeTimestamp(&v.ExpirationTime))
	o.OptionalFunc("create_time", decodeTimestamp(&v.CreateTime))
	o.OptionalFunc("update_time", decodeTimestamp(&v.UpdateTime))
	o.Required("id", &v.ID)
	o.Optional("shared", &v.Shared)
	o.Required("reported_by", &v.ReportedBy)
	o.Optional("finding", &v.Finding)
	o.Optional("kpi", &v.Kpi)
	o.Optional("card", &v.Card)
	o.Optional("section", &v.Section)
	if err := o.Err(); err != nil {
		return err
	}
	*n = v
	return nil
}

// Equal reports whether n and other hold the same field values.
func (n *Note) Equal(other *Note) bool {
	type plain Note
	return cmp.Equal((*plain)(n), (*plain)(other))
}

func (n *Note) validate() error {
	switch {
	case n == nil:
		return &InvalidArgumentError{Param: "note"}
	case n.ShortDescription == "":
		return &InvalidArgumentError{Param: "note.short_description"}
	case n.LongDescription == "":
		return &InvalidArgumentError{Param: "note.long_description"}
	case n.Kind == "":
		return &InvalidArgumentError{Param: "note.kind"}
	case n.ID == "":
		return &InvalidArgumentError{Param: "note.id"}
	case n.ReportedBy == nil:
		return &InvalidArgumentError{Param: "note.reported_by"}
	case n.Card != nil:
		return n.Card.validate("note.card")
	}
	return nil
}

// Reporter identifies who reported a note.
type Reporter struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	URL   *string `json:"url,omitempty"`
}

// UnmarshalJSON decodes a reporter strictly.
func (r *Reporter) UnmarshalJSON(data []byte) error {
	var v Reporter
	o := codec.Parse("Reporter", data, "id", "title", "url")
	o.Required("id", &v.ID)
	o.Required("title", &v.Title)
	o.Optional("url", &v.URL)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// RelatedURL is a link attached to a note.
type RelatedURL struct {
	Label *string `json:"label,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// UnmarshalJSON decodes a related URL strictly.
func (r *RelatedURL) UnmarshalJSON(data []byte) error {
	var v RelatedURL
	o := codec.Parse("RelatedURL", data, "label", "url")
	o.Optional("label", &v.Label)
	o.Optional("url", &v.URL)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// RemediationStep is one step towards resolving a finding.
type RemediationStep struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// UnmarshalJSON decodes a remediation step strictly.
func (r *RemediationStep) UnmarshalJSON(data []byte) error {
	var v RemediationStep
	o := codec.Parse("RemediationStep", data, "title", "url")
	o.Optional("title", &v.Title)
	o.Optional("url", &v.URL)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// FindingType describes the finding a FINDING note defines.
type FindingType struct {
	Severity  Severity          `json:"severity"`
	NextSteps []RemediationStep `json:"next_steps,omitzero"`
}

// UnmarshalJSON decodes a finding type strictly.
func (f *FindingType) UnmarshalJSON(data []byte) error {
	var v FindingType
	o := codec.Parse("FindingType", data, "severity", "next_steps")
	o.Required("severity", &v.Severity)
	o.Optional("next_steps", &v.NextSteps)
	if err := o.Err(); err != nil {
		return err
	}
	*f = v
	return nil
}

// KpiType describes the KPI a KPI note defines.
type KpiType struct {
	AggregationType AggregationType `json:"aggregation_type"`
}

// UnmarshalJSON decodes a KPI type strictly.
func (k *KpiType) UnmarshalJSON(data []byte) error {
	var v KpiType
	o := codec.Parse("KpiType", data, "aggregation_type")
	o.Required("aggregation_type", &v.AggregationType)
	if err := o.Err(); err != nil {
		return err
	}
	*k = v
	return nil
}

// Section groups cards on the dashboard.
type Section struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// UnmarshalJSON decodes a section strictly.
func (s *Section) UnmarshalJSON(data []byte) error {
	var v Section
	o := codec.Parse("Section", data, "title", "image")
	o.Required("title", &v.Title)
	o.Required("image", &v.Image)
	if err := o.Err(); err != nil {
		return err
	}
	*s = v
	return nil
}
