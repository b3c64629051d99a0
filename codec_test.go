package secadvisor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-secadvisor"
)

// roundTrip decodes m as a T, encodes the result, and checks that the
// object form is unchanged.
func roundTrip[T any](t *testing.T, m map[string]any) *T {
	t.Helper()
	v, err := secadvisor.Decode[T](m)
	require.NoError(t, err)

	encoded, err := secadvisor.Encode(v)
	require.NoError(t, err)

	want, err := json.Marshal(m)
	require.NoError(t, err)
	got, err := json.Marshal(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
	return v
}

func decodeErr[T any](t *testing.T, m map[string]any) *secadvisor.DecodeError {
	t.Helper()
	v, err := secadvisor.Decode[T](m)
	assert.Nil(t, v)

	var decodeErr *secadvisor.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	return decodeErr
}

func TestDecode_UnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		decode func(map[string]any) error
		valid  map[string]any
	}{
		{"Note", decodeAs[secadvisor.Note], noteJSON("n1")},
		{"Occurrence", decodeAs[secadvisor.Occurrence], occurrenceJSON("o1")},
		{"Provider", decodeAs[secadvisor.Provider], map[string]any{"id": "p", "name": "p"}},
		{"Reporter", decodeAs[secadvisor.Reporter], map[string]any{"id": "r", "title": "R"}},
		{"RelatedURL", decodeAs[secadvisor.RelatedURL], map[string]any{"label": "docs"}},
		{"RemediationStep", decodeAs[secadvisor.RemediationStep], map[string]any{"title": "patch"}},
		{"FindingType", decodeAs[secadvisor.FindingType], map[string]any{"severity": "LOW"}},
		{"KpiType", decodeAs[secadvisor.KpiType], map[string]any{"aggregation_type": "SUM"}},
		{"Section", decodeAs[secadvisor.Section], map[string]any{"title": "s", "image": "i.svg"}},
		{"Card", decodeAs[secadvisor.Card], cardJSON()},
		{"Context", decodeAs[secadvisor.Context], map[string]any{"region": "us-south"}},
		{"Finding", decodeAs[secadvisor.Finding], map[string]any{"severity": "HIGH"}},
		{"NetworkConnection", decodeAs[secadvisor.NetworkConnection], map[string]any{"protocol": "tcp"}},
		{"SocketAddress", decodeAs[secadvisor.SocketAddress], map[string]any{"address": "10.0.0.1"}},
		{"DataTransferred", decodeAs[secadvisor.DataTransferred], map[string]any{"client_bytes": 1}},
		{"Kpi", decodeAs[secadvisor.Kpi], map[string]any{"value": 1}},
		{"NumericCardElement", decodeAs[secadvisor.NumericCardElement], numericElementJSON()},
		{"KpiValueType", decodeAs[secadvisor.KpiValueType], map[string]any{"kind": "KPI", "kpi_note_name": "k", "text": "t"}},
		{"Channel", decodeAs[secadvisor.Channel], map[string]any{"channel_id": "c1"}},
		{"ChannelSeverity", decodeAs[secadvisor.ChannelSeverity], map[string]any{"high": true}},
		{"AlertSource", decodeAs[secadvisor.AlertSource], map[string]any{"provider_name": "VA"}},
		{"ChannelRequest", decodeAs[secadvisor.ChannelRequest], map[string]any{"name": "n", "type": "Webhook", "endpoint": "https://e"}},
		{"ListNotesResponse", decodeAs[secadvisor.ListNotesResponse], map[string]any{}},
		{"ListProvidersResponse", decodeAs[secadvisor.ListProvidersResponse], map[string]any{}},
		{"PublicKeyResponse", decodeAs[secadvisor.PublicKeyResponse], map[string]any{"publicKey": "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.decode(tt.valid))

			bad := make(map[string]any, len(tt.valid)+1)
			for k, v := range tt.valid {
				bad[k] = v
			}
			bad["unexpected"] = "x"

			var decodeErr *secadvisor.DecodeError
			require.ErrorAs(t, tt.decode(bad), &decodeErr)
			assert.Equal(t, []string{"unexpected"}, decodeErr.Unrecognized)
			assert.Contains(t, decodeErr.Error(), "unrecognized keys: unexpected")
		})
	}
}

func decodeAs[T any](m map[string]any) error {
	_, err := secadvisor.Decode[T](m)
	return err
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := secadvisor.DecodeCardElement(nil)
	var decodeErr *secadvisor.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "CardElement", decodeErr.Model)
}

func TestEncode(t *testing.T) {
	t.Run("omits absent optional fields", func(t *testing.T) {
		m, err := secadvisor.Encode(&secadvisor.Provider{ID: "p", Name: "Provider"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "p", "name": "Provider"}, m)

		m, err = secadvisor.Encode(&secadvisor.Reporter{ID: "r", Title: "R"})
		require.NoError(t, err)
		assert.NotContains(t, m, "url")
	})

	t.Run("keeps integers above 2^53 exact", func(t *testing.T) {
		const big int64 = 1<<53 + 1
		in := &secadvisor.DataTransferred{ClientBytes: secadvisor.Ptr(big)}

		m, err := secadvisor.Encode(in)
		require.NoError(t, err)
		assert.Equal(t, json.Number("9007199254740993"), m["client_bytes"])

		out, err := secadvisor.Decode[secadvisor.DataTransferred](m)
		require.NoError(t, err)
		assert.Equal(t, big, *out.ClientBytes)
	})

	t.Run("rejects non-object values", func(t *testing.T) {
		_, err := secadvisor.Encode([]string{"a"})
		assert.Error(t, err)
	})
}
