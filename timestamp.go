package secadvisor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// TimestampFormat is the wire format of every timestamp field.
const TimestampFormat = strfmt.RFC3339Millis

// Timestamp returns t as a field value for create, update and expiration times.
func Timestamp(t time.Time) *strfmt.DateTime {
	dt := strfmt.DateTime(t)
	return &dt
}

// decodeTimestamp parses a timestamp field, accepting only TimestampFormat.
func decodeTimestamp(dst **strfmt.DateTime) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		t, err := time.Parse(TimestampFormat, s)
		if err != nil {
			return fmt.Errorf("timestamp %q is not in %s format", s, TimestampFormat)
		}
		*dst = Timestamp(t)
		return nil
	}
}
