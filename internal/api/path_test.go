package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
	}{
		{
			name:     "plain segments",
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
			params:   map[string]string{"account_id": "acc", "provider_id": "p", "note_id": "n"},
			want:     "/v1/acc/providers/p/notes/n",
		},
		{
			name:     "slash stays inside one segment",
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
			params:   map[string]string{"account_id": "a/b", "provider_id": "p", "note_id": "n"},
			want:     "/v1/a%2Fb/providers/p/notes/n",
		},
		{
			name:     "reserved characters",
			template: "/v1/{account_id}/graph",
			params:   map[string]string{"account_id": "a?b#c d"},
			want:     "/v1/a%3Fb%23c%20d/graph",
		},
		{
			name:     "dot segments",
			template: "/v1/{account_id}/providers/{provider_id}",
			params:   map[string]string{"account_id": "..", "provider_id": "."},
			want:     "/v1/%2E%2E/providers/%2E",
		},
		{
			name:     "no placeholders",
			template: "/v1/health",
			want:     "/v1/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.template, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPathErrors(t *testing.T) {
	t.Run("missing param", func(t *testing.T) {
		_, err := ExpandPath("/v1/{account_id}", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account_id")
	})

	t.Run("empty param", func(t *testing.T) {
		_, err := ExpandPath("/v1/{account_id}", map[string]string{"account_id": ""})
		require.Error(t, err)
	})

	t.Run("unterminated placeholder", func(t *testing.T) {
		_, err := ExpandPath("/v1/{account_id", map[string]string{"account_id": "a"})
		require.Error(t, err)
	})
}
