package secadvisor_test

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-secadvisor"
)

func makeSeq[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

func makeSeqWithError[T any](items []T, errAt int, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i, item := range items {
			if i == errAt {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func TestCollect(t *testing.T) {
	t.Run("collects all items", func(t *testing.T) {
		result, err := secadvisor.Collect(makeSeq([]int{1, 2, 3}))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, result)
	})

	t.Run("stops on error", func(t *testing.T) {
		testErr := errors.New("test error")
		result, err := secadvisor.Collect(makeSeqWithError([]int{1, 2, 3, 4}, 2, testErr))
		require.ErrorIs(t, err, testErr)
		assert.Equal(t, []int{1, 2}, result)
	})

	t.Run("handles empty sequence", func(t *testing.T) {
		result, err := secadvisor.Collect(makeSeq([]int{}))
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestCollectN(t *testing.T) {
	result, err := secadvisor.CollectN(makeSeq([]int{1, 2, 3, 4, 5}), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result)

	result, err = secadvisor.CollectN(makeSeq([]int{1, 2}), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)
}

func TestFirst(t *testing.T) {
	t.Run("returns first item", func(t *testing.T) {
		result, err := secadvisor.First(makeSeq([]string{"a", "b"}))
		require.NoError(t, err)
		assert.Equal(t, "a", result)
	})

	t.Run("empty iterator", func(t *testing.T) {
		_, err := secadvisor.First(makeSeq([]string{}))
		assert.ErrorIs(t, err, secadvisor.ErrEmptyIterator)
	})

	t.Run("first item errors", func(t *testing.T) {
		testErr := errors.New("test error")
		_, err := secadvisor.First(makeSeqWithError([]string{"a"}, 0, testErr))
		require.ErrorIs(t, err, testErr)
	})
}

func TestIteratorComposition(t *testing.T) {
	seq := makeSeq([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	result, err := secadvisor.Collect(
		secadvisor.Take(
			secadvisor.Map(
				secadvisor.Filter(seq, func(n int) bool { return n%2 == 0 }),
				func(n int) int { return n * 2 },
			),
			3,
		),
	)

	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 12}, result)
}

func TestIteratorErrorPropagation(t *testing.T) {
	testErr := errors.New("test error")

	_, err := secadvisor.Collect(secadvisor.Filter(makeSeqWithError([]int{1, 2, 3}, 1, testErr), func(int) bool { return true }))
	require.ErrorIs(t, err, testErr)

	_, err = secadvisor.Collect(secadvisor.Map(makeSeqWithError([]int{1, 2, 3}, 1, testErr), func(n int) int { return n }))
	require.ErrorIs(t, err, testErr)

	_, err = secadvisor.Collect(secadvisor.Take(makeSeqWithError([]int{1, 2, 3}, 1, testErr), 5))
	require.ErrorIs(t, err, testErr)
}

func TestAllNotes(t *testing.T) {
	t.Run("follows continuation tokens", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/findings/v1/acc/providers/p/notes", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page_size"))

			var body map[string]any
			switch r.URL.Query().Get("page_token") {
			case "":
				body = map[string]any{
					"notes":           []any{noteJSON("n1"), noteJSON("n2")},
					"next_page_token": "tok2",
				}
			case "tok2":
				body = map[string]any{"notes": []any{noteJSON("n3")}}
			default:
				t.Errorf("unexpected page token %q", r.URL.Query().Get("page_token"))
			}
			writeJSON(t, w, body)
		})

		notes, err := secadvisor.Collect(secadvisor.AllNotes(context.Background(), client.Findings, "acc", "p", 2))
		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, "n1", notes[0].ID)
		assert.Equal(t, "n3", notes[2].ID)
	})

	t.Run("stops fetching when consumer breaks", func(t *testing.T) {
		var calls atomic.Int32
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(t, w, map[string]any{
				"notes":           []any{noteJSON("n1"), noteJSON("n2")},
				"next_page_token": "more",
			})
		})

		first, err := secadvisor.First(secadvisor.AllNotes(context.Background(), client.Findings, "acc", "p", 0))
		require.NoError(t, err)
		assert.Equal(t, "n1", first.ID)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("repeated token ends iteration", func(t *testing.T) {
		var calls atomic.Int32
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(t, w, map[string]any{
				"notes":           []any{noteJSON("n1")},
				"next_page_token": "same",
			})
		})

		notes, err := secadvisor.Collect(secadvisor.AllNotes(context.Background(), client.Findings, "acc", "p", 0))
		require.NoError(t, err)
		assert.Len(t, notes, 2)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("propagates errors", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"boom"}`))
		})

		_, err := secadvisor.Collect(secadvisor.AllNotes(context.Background(), client.Findings, "acc", "p", 0))
		var serverErr *secadvisor.ServerError
		require.ErrorAs(t, err, &serverErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{"notes": []any{noteJSON("n1"), noteJSON("n2")}})
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var seen int
		var lastErr error
		for _, err := range secadvisor.AllNotes(ctx, client.Findings, "acc", "p", 0) {
			if err != nil {
				lastErr = err
				break
			}
			seen++
			cancel()
		}
		assert.Equal(t, 1, seen)
		assert.ErrorIs(t, lastErr, context.Canceled)
	})
}

func TestAllOccurrences(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/findings/v1/acc/providers/p/occurrences":
			writeJSON(t, w, map[string]any{"occurrences": []any{occurrenceJSON("o1")}})
		case "/findings/v1/acc/providers/p/notes/n1/occurrences":
			writeJSON(t, w, map[string]any{"occurrences": []any{occurrenceJSON("o2"), occurrenceJSON("o3")}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	all, err := secadvisor.Collect(secadvisor.AllOccurrences(ctx, client.Findings, "acc", "p", 0))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "o1", all[0].ID)

	byNote, err := secadvisor.Collect(secadvisor.AllNoteOccurrences(ctx, client.Findings, "acc", "p", "n1", 0))
	require.NoError(t, err)
	require.Len(t, byNote, 2)
	assert.Equal(t, "o3", byNote[1].ID)
}

func TestAllProviders(t *testing.T) {
	var skips []string
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		skips = append(skips, r.URL.Query().Get("skip"))

		providers := []any{
			map[string]any{"id": "p1", "name": "one"},
			map[string]any{"id": "p2", "name": "two"},
		}
		if r.URL.Query().Get("skip") == "2" {
			providers = []any{map[string]any{"id": "p3", "name": "three"}}
		}
		writeJSON(t, w, map[string]any{"providers": providers})
	})

	providers, err := secadvisor.Collect(secadvisor.AllProviders(context.Background(), client.Findings, "acc", 2))
	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, "p3", providers[2].ID)
	assert.Equal(t, []string{"", "2"}, skips)
}

func TestAllChannels(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/v1/acc/notifications/channels", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		writeJSON(t, w, map[string]any{"channels": []any{map[string]any{"channel_id": "c1"}}})
	})

	channels, err := secadvisor.Collect(secadvisor.AllChannels(context.Background(), client.Notifications, "acc", 0))
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "c1", *channels[0].ChannelID)
}

func writeJSON(t *testing.T, w http.ResponseWriter, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}
