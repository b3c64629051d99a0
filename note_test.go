package secadvisor_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-secadvisor"
)

func fullNoteJSON() map[string]any {
	return map[string]any{
		"id":                "vuln-image",
		"short_description": "Image with vulnerabilities",
		"long_description":  "The container image has known vulnerabilities.",
		"kind":              "FINDING",
		"related_url": []any{
			map[string]any{"label": "Docs", "url": "https://cloud.ibm.com/docs"},
		},
		"expiration_time": "2025-01-01T00:00:00.000Z",
		"create_time":     "2024-03-01T10:00:00.123Z",
		"update_time":     "2024-03-02T11:30:00.000Z",
		"shared":          true,
		"reported_by": map[string]any{
			"id":    "va",
			"title": "Vulnerability Advisor",
			"url":   "https://cloud.ibm.com/va",
		},
		"finding": map[string]any{
			"severity": "HIGH",
			"next_steps": []any{
				map[string]any{"title": "Rebuild the image", "url": "https://example.com/fix"},
			},
		},
	}
}

func TestNote_RoundTrip(t *testing.T) {
	t.Run("finding note", func(t *testing.T) {
		note := roundTrip[secadvisor.Note](t, fullNoteJSON())
		assert.Equal(t, secadvisor.NoteKindFinding, note.Kind)
		assert.Equal(t, secadvisor.SeverityHigh, note.Finding.Severity)
		assert.Equal(t, "https://cloud.ibm.com/va", *note.ReportedBy.URL)
	})

	t.Run("kpi note", func(t *testing.T) {
		m := noteJSON("k1")
		delete(m, "finding")
		m["kind"] = "KPI"
		m["kpi"] = map[string]any{"aggregation_type": "SUM"}

		note := roundTrip[secadvisor.Note](t, m)
		assert.Equal(t, secadvisor.AggregationSum, note.Kpi.AggregationType)
	})

	t.Run("section note", func(t *testing.T) {
		m := noteJSON("s1")
		delete(m, "finding")
		m["kind"] = "SECTION"
		m["section"] = map[string]any{"title": "Network", "image": "network.svg"}

		note := roundTrip[secadvisor.Note](t, m)
		assert.Equal(t, "Network", note.Section.Title)
	})

	t.Run("empty list is kept", func(t *testing.T) {
		m := noteJSON("n1")
		m["related_url"] = []any{}

		note := roundTrip[secadvisor.Note](t, m)
		assert.NotNil(t, note.RelatedURL)
		assert.Empty(t, note.RelatedURL)
	})
}

func TestNote_Decode(t *testing.T) {
	t.Run("missing required field", func(t *testing.T) {
		m := noteJSON("n1")
		delete(m, "long_description")

		err := decodeErr[secadvisor.Note](t, m)
		assert.Equal(t, "Note", err.Model)
		assert.Equal(t, "long_description", err.Missing)
		assert.Contains(t, err.Error(), `required property "long_description" not present`)
	})

	t.Run("null required field counts as missing", func(t *testing.T) {
		m := noteJSON("n1")
		m["reported_by"] = nil

		err := decodeErr[secadvisor.Note](t, m)
		assert.Equal(t, "reported_by", err.Missing)
	})

	t.Run("null optional field counts as absent", func(t *testing.T) {
		m := noteJSON("n1")
		m["shared"] = nil

		note, err := secadvisor.Decode[secadvisor.Note](m)
		require.NoError(t, err)
		assert.Nil(t, note.Shared)
	})

	t.Run("nested failure carries its path", func(t *testing.T) {
		m := noteJSON("n1")
		m["reported_by"] = map[string]any{"id": "va"}

		err := decodeErr[secadvisor.Note](t, m)
		assert.Equal(t, "Reporter", err.Model)
		assert.Equal(t, "reported_by", err.Path)
		assert.Equal(t, "title", err.Missing)
		assert.Equal(t, `secadvisor: decoding Reporter at reported_by: required property "title" not present`, err.Error())
	})

	t.Run("unknown key in nested list", func(t *testing.T) {
		m := noteJSON("n1")
		m["finding"] = map[string]any{
			"severity":   "LOW",
			"next_steps": []any{map[string]any{"title": "a"}, map[string]any{"title": "b", "extra": 1}},
		}

		err := decodeErr[secadvisor.Note](t, m)
		assert.Equal(t, "RemediationStep", err.Model)
		assert.Equal(t, "finding.next_steps", err.Path)
		assert.Equal(t, []string{"extra"}, err.Unrecognized)
	})

	t.Run("wrong value type", func(t *testing.T) {
		m := noteJSON("n1")
		m["shared"] = "yes"

		err := decodeErr[secadvisor.Note](t, m)
		assert.Equal(t, "shared", err.Path)
		assert.Error(t, err.Unwrap())
	})
}

func TestNote_Timestamps(t *testing.T) {
	t.Run("encodes in millisecond format", func(t *testing.T) {
		note := testNote()
		note.CreateTime = secadvisor.Timestamp(time.Date(2024, 3, 1, 10, 0, 0, 500*int(time.Millisecond), time.UTC))

		m, err := secadvisor.Encode(note)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T10:00:00.500Z", m["create_time"])
	})

	t.Run("decodes to the same instant", func(t *testing.T) {
		m := noteJSON("n1")
		m["update_time"] = "2024-03-01T10:00:00.500Z"

		note, err := secadvisor.Decode[secadvisor.Note](m)
		require.NoError(t, err)
		want := time.Date(2024, 3, 1, 10, 0, 0, 500*int(time.Millisecond), time.UTC)
		assert.True(t, want.Equal(time.Time(*note.UpdateTime)))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, ts := range []string{
			"2024-03-01T10:00:00Z",
			"2024-03-01T10:00:00.123456Z",
			"2024-03-01 10:00:00.000Z",
			"yesterday",
		} {
			m := noteJSON("n1")
			m["create_time"] = ts

			err := decodeErr[secadvisor.Note](t, m)
			assert.Equal(t, "create_time", err.Path, ts)
			assert.Contains(t, err.Error(), ts)
		}
	})
}

func TestNote_Encode(t *testing.T) {
	t.Run("absent optional fields are omitted", func(t *testing.T) {
		m, err := secadvisor.Encode(testNote())
		require.NoError(t, err)

		for _, key := range []string{"shared", "related_url", "create_time", "update_time", "expiration_time", "kpi", "card", "section"} {
			assert.NotContains(t, m, key)
		}
		assert.Contains(t, m, "reported_by")
	})

	t.Run("explicit false is kept", func(t *testing.T) {
		note := testNote()
		note.Shared = secadvisor.Ptr(false)

		data, err := json.Marshal(note)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"shared":false`)
	})
}

func TestNote_EncodeIncompleteCard(t *testing.T) {
	note := incompleteCardNote(&secadvisor.Card{Section: "s", Title: "t", Subtitle: "st"})

	m, err := secadvisor.Encode(note)
	require.NoError(t, err)

	card, ok := m["card"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"section": "s", "title": "t", "subtitle": "st"}, card)

	data, err := json.Marshal(note)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestNote_Equal(t *testing.T) {
	a, err := secadvisor.Decode[secadvisor.Note](fullNoteJSON())
	require.NoError(t, err)
	b, err := secadvisor.Decode[secadvisor.Note](fullNoteJSON())
	require.NoError(t, err)

	assert.True(t, a.Equal(b))

	b.Finding.NextSteps[0].Title = secadvisor.Ptr("something else")
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(nil))
	var nilNote *secadvisor.Note
	assert.True(t, nilNote.Equal(nil))
}
