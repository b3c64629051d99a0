package secadvisor

import "github.com/tphakala/go-secadvisor/internal/codec"

// Provider is a namespace that owns notes and occurrences.
type Provider struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// UnmarshalJSON decodes a provider strictly.
func (p *Provider) UnmarshalJSON(data []byte) error {
	var v Provider
	o := codec.Parse("Provider", data, "name", "id")
	o.Required("name", &v.Name)
	o.Required("id", &v.ID)
	if err := o.Err(); err != nil {
		return err
	}
	*p = v
	return nil
}

// Equal reports whether p and other hold the same field values.
func (p *Provider) Equal(other *Provider) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// ListNotesResponse is one page of notes.
type ListNotesResponse struct {
	Notes         []Note  `json:"notes,omitzero"`
	NextPageToken *string `json:"next_page_token,omitempty"`
}

// UnmarshalJSON decodes a notes page strictly.
func (r *ListNotesResponse) UnmarshalJSON(data []byte) error {
	var v ListNotesResponse
	o := codec.Parse("ListNotesResponse", data, "notes", "next_page_token")
	o.Optional("notes", &v.Notes)
	o.Optional("next_page_token", &v.NextPageToken)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// ListOccurrencesResponse is one page of occurrences.
type ListOccurrencesResponse struct {
	Occurrences   []Occurrence `json:"occurrences,omitzero"`
	NextPageToken *string      `json:"next_page_token,omitempty"`
}

// UnmarshalJSON decodes an occurrences page strictly.
func (r *ListOccurrencesResponse) UnmarshalJSON(data []byte) error {
	var v ListOccurrencesResponse
	o := codec.Parse("ListOccurrencesResponse", data, "occurrences", "next_page_token")
	o.Optional("occurrences", &v.Occurrences)
	o.Optional("next_page_token", &v.NextPageToken)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// ListNoteOccurrencesResponse is one page of the occurrences of a single note.
type ListNoteOccurrencesResponse struct {
	Occurrences   []Occurrence `json:"occurrences,omitzero"`
	NextPageToken *string      `json:"next_page_token,omitempty"`
}

// UnmarshalJSON decodes a note occurrences page strictly.
func (r *ListNoteOccurrencesResponse) UnmarshalJSON(data []byte) error {
	var v ListNoteOccurrencesResponse
	o := codec.Parse("ListNoteOccurrencesResponse", data, "occurrences", "next_page_token")
	o.Optional("occurrences", &v.Occurrences)
	o.Optional("next_page_token", &v.NextPageToken)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// ListProvidersResponse lists the providers of an account.
type ListProvidersResponse struct {
	Providers []Provider `json:"providers,omitzero"`
}

// UnmarshalJSON decodes a provider list strictly.
func (r *ListProvidersResponse) UnmarshalJSON(data []byte) error {
	var v ListProvidersResponse
	o := codec.Parse("ListProvidersResponse", data, "providers")
	o.Optional("providers", &v.Providers)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}
