package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Address string `json:"address"`
	Port    *int64 `json:"port,omitempty"`
}

func (a *address) UnmarshalJSON(data []byte) error {
	o := Parse("SocketAddress", data, "address", "port")
	var out address
	o.Required("address", &out.Address)
	o.Optional("port", &out.Port)
	if err := o.Err(); err != nil {
		return err
	}
	*a = out
	return nil
}

type connection struct {
	Client *address  `json:"client,omitempty"`
	Peers  []address `json:"peers,omitempty"`
}

func (c *connection) UnmarshalJSON(data []byte) error {
	o := Parse("NetworkConnection", data, "client", "peers")
	var out connection
	o.Optional("client", &out.Client)
	o.OptionalFunc("peers", func(raw json.RawMessage) error {
		peers, err := Slice(raw, func(item json.RawMessage) (address, error) {
			var a address
			err := json.Unmarshal(item, &a)
			return a, err
		})
		out.Peers = peers
		return err
	})
	if err := o.Err(); err != nil {
		return err
	}
	*c = out
	return nil
}

func TestParse(t *testing.T) {
	t.Run("accepts declared keys", func(t *testing.T) {
		var a address
		require.NoError(t, json.Unmarshal([]byte(`{"address":"10.0.0.1","port":443}`), &a))
		assert.Equal(t, "10.0.0.1", a.Address)
		require.NotNil(t, a.Port)
		assert.Equal(t, int64(443), *a.Port)
	})

	t.Run("rejects unrecognized keys", func(t *testing.T) {
		var a address
		err := json.Unmarshal([]byte(`{"address":"x","zeta":1,"alpha":2}`), &a)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "SocketAddress", de.Model)
		assert.Equal(t, []string{"alpha", "zeta"}, de.Unrecognized)
		assert.Contains(t, err.Error(), "unrecognized keys: alpha, zeta")
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		var a address
		err := json.Unmarshal([]byte(`{"port":1}`), &a)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "address", de.Missing)
	})

	t.Run("null required field counts as missing", func(t *testing.T) {
		var a address
		err := json.Unmarshal([]byte(`{"address":null}`), &a)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "address", de.Missing)
	})

	t.Run("null optional field stays absent", func(t *testing.T) {
		var a address
		require.NoError(t, json.Unmarshal([]byte(`{"address":"x","port":null}`), &a))
		assert.Nil(t, a.Port)
	})

	t.Run("rejects non-object input", func(t *testing.T) {
		var a address
		err := json.Unmarshal([]byte(`["x"]`), &a)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Error(t, de.Err)
	})

	t.Run("wrong value type is a decode error with path", func(t *testing.T) {
		var a address
		err := json.Unmarshal([]byte(`{"address":"x","port":"443"}`), &a)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "port", de.Path)
	})
}

func TestNestedPaths(t *testing.T) {
	t.Run("nested model keeps its name", func(t *testing.T) {
		var c connection
		err := json.Unmarshal([]byte(`{"client":{"port":1}}`), &c)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "SocketAddress", de.Model)
		assert.Equal(t, "client", de.Path)
		assert.Equal(t, "address", de.Missing)
	})

	t.Run("slice element index in path", func(t *testing.T) {
		var c connection
		err := json.Unmarshal([]byte(`{"peers":[{"address":"a"},{"address":"b","bad":true}]}`), &c)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "peers[1]", de.Path)
		assert.Equal(t, []string{"bad"}, de.Unrecognized)
	})

	t.Run("slice preserves order", func(t *testing.T) {
		var c connection
		require.NoError(t, json.Unmarshal([]byte(`{"peers":[{"address":"a"},{"address":"b"}]}`), &c))
		require.Len(t, c.Peers, 2)
		assert.Equal(t, "a", c.Peers[0].Address)
		assert.Equal(t, "b", c.Peers[1].Address)
	})
}

func TestDiscriminator(t *testing.T) {
	kind, err := Discriminator("CardElement", []byte(`{"kind":"NUMERIC","text":"x"}`), "kind")
	require.NoError(t, err)
	assert.Equal(t, "NUMERIC", kind)

	_, err = Discriminator("CardElement", []byte(`{"text":"x"}`), "kind")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "kind", de.Missing)
}

func TestParseLenient(t *testing.T) {
	o := ParseLenient("CardElement", []byte(`{"kind":"X","extra":1}`))
	require.NoError(t, o.Err())
	assert.Equal(t, []string{"extra", "kind"}, o.Keys())
	assert.Equal(t, "CardElement", o.Model())
}

func TestDict(t *testing.T) {
	port := int64(22)
	m, err := ToMap(&address{Address: "h", Port: &port})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"address": "h", "port": float64(22)}, m)

	var a address
	require.NoError(t, FromMap(m, &a))
	assert.Equal(t, "h", a.Address)

	err = FromMap(map[string]any{"unexpected_key": 1, "address": "h"}, &a)
	var de *DecodeError
	assert.True(t, errors.As(err, &de))
}
