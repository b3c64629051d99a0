package secadvisor

import (
	"github.com/google/go-cmp/cmp"

	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Channel is a notification destination as returned by the service.
type Channel struct {
	ChannelID   *string          `json:"channel_id,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Type        *ChannelType     `json:"type,omitempty"`
	Severity    *ChannelSeverity `json:"severity,omitempty"`
	Endpoint    *string          `json:"endpoint,omitempty"`
	Enabled     *bool            `json:"enabled,omitempty"`
	AlertSource []AlertSource    `json:"alert_source,omitzero"`
	Frequency   *string          `json:"frequency,omitempty"`
}

var channelKeys = []string{
	"channel_id", "name", "description", "type", "severity",
	"endpoint", "enabled", "alert_source", "frequency",
}

// UnmarshalJSON decodes a channel strictly.
func (c *Channel) UnmarshalJSON(data []byte) error {
	var v Channel
	o := codec.Parse("Channel", data, channelKeys...)
	o.Optional("channel_id", &v.ChannelID)
	o.Optional("name", &v.Name)
	o.Optional("description", &v.Description)
	o.Optional("type", &v.Type)
	o.Optional("severity", &v.Severity)
	o.Optional("endpoint", &v.Endpoint)
	o.Optional("enabled", &v.Enabled)
	o.Optional("alert_source", &v.AlertSource)
	o.Optional("frequency", &v.Frequency)
	if err := o.Err(); err != nil {
		return err
	}
	*c = v
	return nil
}

// Equal reports whether c and other hold the same field values.
func (c *Channel) Equal(other *Channel) bool {
	type plain Channel
	return cmp.Equal((*plain)(c), (*plain)(other))
}

// ChannelSeverity is the severity filter of a channel.
type ChannelSeverity struct {
	High   *bool `json:"high,omitempty"`
	Medium *bool `json:"medium,omitempty"`
	Low    *bool `json:"low,omitempty"`
}

// UnmarshalJSON decodes a severity filter strictly.
func (s *ChannelSeverity) UnmarshalJSON(data []byte) error {
	var v ChannelSeverity
	o := codec.Parse("ChannelSeverity", data, "high", "medium", "low")
	o.Optional("high", &v.High)
	o.Optional("medium", &v.Medium)
	o.Optional("low", &v.Low)
	if err := o.Err(); err != nil {
		return err
	}
	*s = v
	return nil
}

// AlertSource selects the findings of one provider that a channel receives.
type AlertSource struct {
	ProviderName string   `json:"provider_name"`
	FindingTypes []string `json:"finding_types,omitzero"`
}

// UnmarshalJSON decodes an alert source strictly.
func (a *AlertSource) UnmarshalJSON(data []byte) error {
	var v AlertSource
	o := codec.Parse("AlertSource", data, "provider_name", "finding_types")
	o.Required("provider_name", &v.ProviderName)
	o.Optional("finding_types", &v.FindingTypes)
	if err := o.Err(); err != nil {
		return err
	}
	*a = v
	return nil
}

// Channel severity levels used in ChannelRequest.Severity.
const (
	SeverityLevelHigh   = "high"
	SeverityLevelMedium = "medium"
	SeverityLevelLow    = "low"
)

// ChannelRequest is the body of a channel create or update.
type ChannelRequest struct {
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Type        ChannelType   `json:"type"`
	Severity    []string      `json:"severity,omitzero"`
	Endpoint    string        `json:"endpoint"`
	Enabled     *bool         `json:"enabled,omitempty"`
	AlertSource []AlertSource `json:"alert_source,omitzero"`
}

// UnmarshalJSON decodes a channel request strictly.
func (r *ChannelRequest) UnmarshalJSON(data []byte) error {
	var v ChannelRequest
	o := codec.Parse("ChannelRequest", data,
		"name", "description", "type", "severity", "endpoint", "enabled", "alert_source")
	o.Required("name", &v.Name)
	o.Optional("description", &v.Description)
	o.Required("type", &v.Type)
	o.Optional("severity", &v.Severity)
	o.Required("endpoint", &v.Endpoint)
	o.Optional("enabled", &v.Enabled)
	o.Optional("alert_source", &v.AlertSource)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

func (r *ChannelRequest) validate() error {
	switch {
	case r == nil:
		return &InvalidArgumentError{Param: "channel"}
	case r.Name == "":
		return &InvalidArgumentError{Param: "channel.name"}
	case r.Type == "":
		return &InvalidArgumentError{Param: "channel.type"}
	case r.Endpoint == "":
		return &InvalidArgumentError{Param: "channel.endpoint"}
	}
	return nil
}

// CreateChannelResponse is returned by CreateChannel.
type CreateChannelResponse struct {
	ChannelID  *string `json:"channel_id,omitempty"`
	StatusCode *int64  `json:"statusCode,omitempty"`
}

// UnmarshalJSON decodes a create response strictly.
func (r *CreateChannelResponse) UnmarshalJSON(data []byte) error {
	var v CreateChannelResponse
	o := codec.Parse("CreateChannelResponse", data, "channel_id", "statusCode")
	o.Optional("channel_id", &v.ChannelID)
	o.Optional("statusCode", &v.StatusCode)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// UpdateChannelResponse is returned by UpdateChannel.
type UpdateChannelResponse struct {
	ChannelID  *string `json:"channel_id,omitempty"`
	StatusCode *int64  `json:"statusCode,omitempty"`
}

// UnmarshalJSON decodes an update response strictly.
func (r *UpdateChannelResponse) UnmarshalJSON(data []byte) error {
	var v UpdateChannelResponse
	o := codec.Parse("UpdateChannelResponse", data, "channel_id", "statusCode")
	o.Optional("channel_id", &v.ChannelID)
	o.Optional("statusCode", &v.StatusCode)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// DeleteChannelResponse is returned by DeleteChannel.
type DeleteChannelResponse struct {
	ChannelID *string `json:"channel_id,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// UnmarshalJSON decodes a delete response strictly.
func (r *DeleteChannelResponse) UnmarshalJSON(data []byte) error {
	var v DeleteChannelResponse
	o := codec.Parse("DeleteChannelResponse", data, "channel_id", "message")
	o.Optional("channel_id", &v.ChannelID)
	o.Optional("message", &v.Message)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// DeleteChannelsResponse is returned by DeleteChannels.
type DeleteChannelsResponse struct {
	Message *string `json:"message,omitempty"`
}

// UnmarshalJSON decodes a bulk delete response strictly.
func (r *DeleteChannelsResponse) UnmarshalJSON(data []byte) error {
	var v DeleteChannelsResponse
	o := codec.Parse("DeleteChannelsResponse", data, "message")
	o.Optional("message", &v.Message)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// GetChannelResponse wraps a single channel.
type GetChannelResponse struct {
	Channel *Channel `json:"channel,omitempty"`
}

// UnmarshalJSON decodes a get response strictly.
func (r *GetChannelResponse) UnmarshalJSON(data []byte) error {
	var v GetChannelResponse
	o := codec.Parse("GetChannelResponse", data, "channel")
	o.Optional("channel", &v.Channel)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// ListChannelsResponse is one page of channels.
type ListChannelsResponse struct {
	Channels []Channel `json:"channels,omitzero"`
}

// UnmarshalJSON decodes a channel list strictly.
func (r *ListChannelsResponse) UnmarshalJSON(data []byte) error {
	var v ListChannelsResponse
	o := codec.Parse("ListChannelsResponse", data, "channels")
	o.Optional("channels", &v.Channels)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// TestChannelResponse reports the result of a test notification.
type TestChannelResponse struct {
	Test *string `json:"test,omitempty"`
}

// UnmarshalJSON decodes a test response strictly.
func (r *TestChannelResponse) UnmarshalJSON(data []byte) error {
	var v TestChannelResponse
	o := codec.Parse("TestChannelResponse", data, "test")
	o.Optional("test", &v.Test)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}

// PublicKeyResponse carries the key that signs notification payloads.
type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

// UnmarshalJSON decodes a public key response strictly.
func (r *PublicKeyResponse) UnmarshalJSON(data []byte) error {
	var v PublicKeyResponse
	o := codec.Parse("PublicKeyResponse", data, "publicKey")
	o.Required("publicKey", &v.PublicKey)
	if err := o.Err(); err != nil {
		return err
	}
	*r = v
	return nil
}
