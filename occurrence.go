package secadvisor

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/go-cmp/cmp"

	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Occurrence is an instance of a Note found against a specific resource.
type Occurrence struct {
	ResourceURL *string          `json:"resource_url,omitempty"`
	NoteName    string           `json:"note_name"`
	Kind        NoteKind         `json:"kind"`
	Remediation *string          `json:"remediation,omitempty"`
	CreateTime  *strfmt.DateTime `json:"create_time,omitempty"`
	UpdateTime  *strfmt.DateTime `json:"update_time,omitempty"`
	ID          string           `json:"id"`
	Context     *Context         `json:"context,omitempty"`
	Finding     *Finding         `json:"finding,omitempty"`
	Kpi         *Kpi             `json:"kpi,omitempty"`
}

var occurrenceKeys = []string{
	"resource_url", "note_name", "kind", "remediation", "create_time",
	"update_time", "id", "context", "finding", "kpi",
}

// UnmarshalJSON decodes an occurrence, rejecting unknown keys and missing required fields.
func (oc *Occurrence) UnmarshalJSON(data []byte) error {
	var v Occurrence
	o := codec.Parse("Occurrence", data, occurrenceKeys...)
	o.Optional("resource_url", &v.ResourceURL)
	o.Required("note_name", &v.NoteName)
	o.Required("kind", &v.Kind)
	o.Optional("remediation", &v.Remediation)
	o.OptionalFunc("create_time", decodeTimestamp(&v.CreateTime))
	o.OptionalFunc("update_time", decodeTimestamp(&v.UpdateTime))
	o.Required("id", &v.ID)
	o.Optional("context", &v.Context)
	o.Optional("finding", &v.Finding)
	o.Optional("kpi", &v.Kpi)
	if err := o.Err(); err != nil {
		return err
	}
	*oc = v
	return nil
}

// Equal reports whether oc and other hold the same field values.
func (oc *Occurrence) Equal(other *Occurrence) bool {
	type plain Occurrence
	return cmp.Equal((*plain)(oc), (*plain)(other))
}

func (oc *Occurrence) validate() error {
	switch {
	case oc == nil:
		return &InvalidArgumentError{Param: "occurrence"}
	case oc.NoteName == "":
		return &InvalidArgumentError{Param: "occurrence.note_name"}
	case oc.Kind == "":
		return &InvalidArgumentError{Param: "occurrence.kind"}
	case oc.ID == "":
		return &InvalidArgumentError{Param: "occurrence.id"}
	}
	return nil
}

// Context describes the resource an occurrence was found on.
type Context struct {
	Region          *string `json:"region,omitempty"`
	ResourceCRN     *string `json:"resource_crn,omitempty"`
	ResourceID      *string `json:"resource_id,omitempty"`
	ResourceName    *string `json:"resource_name,omitempty"`
	ResourceType    *string `json:"resource_type,omitempty"`
	ServiceCRN      *string `json:"service_crn,omitempty"`
	ServiceName     *string `json:"service_name,omitempty"`
	EnvironmentName *string `json:"environment_name,omitempty"`
	ComponentName   *string `json:"component_name,omitempty"`
	ToolchainID     *string `json:"toolchain_id,omitempty"`
}

// UnmarshalJSON decodes a context strictly.
func (c *Context) UnmarshalJSON(data []byte) error {
	var v Context
	fields := []struct {
		key string
		dst **string
	}{
		{"region", &v.Region},
		{"resource_crn", &v.ResourceCRN},
		{"resource_id", &v.ResourceID},
		{"resource_name", &v.ResourceName},
		{"resource_type", &v.ResourceType},
		{"service_crn", &v.ServiceCRN},
		{"service_name", &v.ServiceName},
		{"environment_name", &v.EnvironmentName},
		{"component_name", &v.ComponentName},
		{"toolchain_id", &v.ToolchainID},
	}

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}

	o := codec.Parse("Context", data, keys...)
	for _, f := range fields {
		o.Optional(f.key, f.dst)
	}
	if err := o.Err(); err != nil {
		return err
	}
	*c = v
	return nil
}

// Finding holds the details of a FINDING occurrence.
type Finding struct {
	Severity          *Severity          `json:"severity,omitempty"`
	Certainty         *Certainty         `json:"certainty,omitempty"`
	NextSteps         []RemediationStep  `json:"next_steps,omitzero"`
	NetworkConnection *NetworkConnection `json:"network_connection,omitempty"`
	DataTransferred   *DataTransferred   `json:"data_transferred,omitempty"`
}

// UnmarshalJSON decodes a finding strictly.
func (f *Finding) UnmarshalJSON(data []byte) error {
	var v Finding
	o := codec.Parse("Finding", data,
		"severity", "certainty", "next_steps", "network_connection", "data_transferred")
	o.Optional("severity", &v.Severity)
	o.Optional("certainty", &v.Certainty)
	o.Optional("next_steps", &v.NextSteps)
	o.Optional("network_connection", &v.NetworkConnection)
	o.Optional("data_transferred", &v.DataTransferred)
	if err := o.Err(); err != nil {
		return err
	}
	*f = v
	return nil
}

// NetworkConnection describes the connection a finding was observed on.
type NetworkConnection struct {
	Direction *string        `json:"direction,omitempty"`
	Protocol  *string        `json:"protocol,omitempty"`
	Client    *SocketAddress `json:"client,omitempty"`
	Server    *SocketAddress `json:"server,omitempty"`
}

// UnmarshalJSON decodes a network connection strictly.
func (n *NetworkConnection) UnmarshalJSON(data []byte) error {
	var v NetworkConnection
	o := codec.Parse("NetworkConnection", data, "direction", "protocol", "client", "server")
	o.Optional("direction", &v.Direction)
	o.Optional("protocol", &v.Protocol)
	o.Optional("client", &v.Client)
	o.Optional("server", &v.Server)
	if err := o.Err(); err != nil {
		return err
	}
	*n = v
	return nil
}

// SocketAddress is one end of a network connection.
type SocketAddress struct {
	Address string `json:"address"`
	Port    *int64 `json:"port,omitempty"`
}

// UnmarshalJSON decodes a socket address strictly.
func (s *SocketAddress) UnmarshalJSON(data []byte) error {
	var v SocketAddress
	o := codec.Parse("SocketAddress", data, "address", "port")
	o.Required("address", &v.Address)
	o.Optional("port", &v.Port)
	if err := o.Err(); err != nil {
		return err
	}
	*s = v
	return nil
}

// DataTransferred counts traffic on a network connection.
type DataTransferred struct {
	ClientBytes   *int64 `json:"client_bytes,omitempty"`
	ServerBytes   *int64 `json:"server_bytes,omitempty"`
	ClientPackets *int64 `json:"client_packets,omitempty"`
	ServerPackets *int64 `json:"server_packets,omitempty"`
}

// UnmarshalJSON decodes transfer counters strictly.
func (d *DataTransferred) UnmarshalJSON(data []byte) error {
	var v DataTransferred
	o := codec.Parse("DataTransferred", data,
		"client_bytes", "server_bytes", "client_packets", "server_packets")
	o.Optional("client_bytes", &v.ClientBytes)
	o.Optional("server_bytes", &v.ServerBytes)
	o.Optional("client_packets", &v.ClientPackets)
	o.Optional("server_packets", &v.ServerPackets)
	if err := o.Err(); err != nil {
		return err
	}
	*d = v
	return nil
}

// Kpi holds the value of a KPI occurrence.
type Kpi struct {
	Value float64  `json:"value"`
	Total *float64 `json:"total,omitempty"`
}

// UnmarshalJSON decodes a KPI strictly.
func (k *Kpi) UnmarshalJSON(data []byte) error {
	var v Kpi
	o := codec.Parse("Kpi", data, "value", "total")
	o.Required("value", &v.Value)
	o.Optional("total", &v.Total)
	if err := o.Err(); err != nil {
		return err
	}
	*k = v
	return nil
}
