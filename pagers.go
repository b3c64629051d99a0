package secadvisor

import (
	"context"
	"errors"
	"iter"
)

const defaultPageSize = 100

// ErrEmptyIterator is returned by First when the iterator yields no items.
var ErrEmptyIterator = errors.New("secadvisor: iterator is empty")

// AllNotes iterates over every note of a provider, requesting pages of
// pageSize (server default when zero) until the continuation token runs out.
func AllNotes(ctx context.Context, svc FindingsService, accountID, providerID string, pageSize int64, opts ...RequestOption) iter.Seq2[*Note, error] {
	return tokenPages(ctx, func(token string) ([]Note, *string, error) {
		page, _, err := svc.ListNotes(ctx, accountID, providerID, &PageOptions{PageSize: pageSize, PageToken: token}, opts...)
		if err != nil {
			return nil, nil, err
		}
		return page.Notes, page.NextPageToken, nil
	})
}

// AllOccurrences iterates over every occurrence of a provider.
func AllOccurrences(ctx context.Context, svc FindingsService, accountID, providerID string, pageSize int64, opts ...RequestOption) iter.Seq2[*Occurrence, error] {
	return tokenPages(ctx, func(token string) ([]Occurrence, *string, error) {
		page, _, err := svc.ListOccurrences(ctx, accountID, providerID, &PageOptions{PageSize: pageSize, PageToken: token}, opts...)
		if err != nil {
			return nil, nil, err
		}
		return page.Occurrences, page.NextPageToken, nil
	})
}

// AllNoteOccurrences iterates over every occurrence of one note.
func AllNoteOccurrences(ctx context.Context, svc FindingsService, accountID, providerID, noteID string, pageSize int64, opts ...RequestOption) iter.Seq2[*Occurrence, error] {
	return tokenPages(ctx, func(token string) ([]Occurrence, *string, error) {
		page, _, err := svc.ListNoteOccurrences(ctx, accountID, providerID, noteID, &PageOptions{PageSize: pageSize, PageToken: token}, opts...)
		if err != nil {
			return nil, nil, err
		}
		return page.Occurrences, page.NextPageToken, nil
	})
}

// AllProviders iterates over every provider of an account using limit/skip paging.
func AllProviders(ctx context.Context, svc FindingsService, accountID string, pageSize int64, opts ...RequestOption) iter.Seq2[*Provider, error] {
	return offsetPages(ctx, pageSize, func(limit, skip int64) ([]Provider, error) {
		page, _, err := svc.ListProviders(ctx, accountID, &ListProvidersOptions{Limit: limit, Skip: skip}, opts...)
		if err != nil {
			return nil, err
		}
		return page.Providers, nil
	})
}

// AllChannels iterates over every notification channel of an account.
func AllChannels(ctx context.Context, svc NotificationService, accountID string, pageSize int64, opts ...RequestOption) iter.Seq2[*Channel, error] {
	return offsetPages(ctx, pageSize, func(limit, skip int64) ([]Channel, error) {
		page, _, err := svc.ListChannels(ctx, accountID, &ListChannelsOptions{Limit: limit, Skip: skip}, opts...)
		if err != nil {
			return nil, err
		}
		return page.Channels, nil
	})
}

// tokenPages follows continuation tokens until a page has none, or the
// server hands back the token it was given.
func tokenPages[T any](ctx context.Context, fetch func(token string) ([]T, *string, error)) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		token := ""
		for {
			items, next, err := fetch(token)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yieldItems(ctx, items, yield) {
				return
			}
			if next == nil || *next == "" || *next == token {
				return
			}
			token = *next
		}
	}
}

// offsetPages requests pages of pageSize until a short page is returned.
func offsetPages[T any](ctx context.Context, pageSize int64, fetch func(limit, skip int64) ([]T, error)) iter.Seq2[*T, error] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return func(yield func(*T, error) bool) {
		var skip int64
		for {
			items, err := fetch(pageSize, skip)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yieldItems(ctx, items, yield) {
				return
			}
			if int64(len(items)) < pageSize {
				return
			}
			skip += int64(len(items))
		}
	}
}

// yieldItems yields each item of a page. It returns false when iteration
// should stop because the context is done or the consumer broke out.
func yieldItems[T any](ctx context.Context, items []T, yield func(*T, error) bool) bool {
	for i := range items {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return false
		}
		if !yield(&items[i], nil) {
			return false
		}
	}
	return true
}

// Collect gathers all items from an iterator into a slice. On error it
// returns the items collected so far along with the error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	result := make([]T, 0)
	for item, err := range seq {
		if err != nil {
			return result, err
		}
		result = append(result, item)
	}
	return result, nil
}

// CollectN gathers up to n items from an iterator.
func CollectN[T any](seq iter.Seq2[T, error], n int) ([]T, error) {
	return Collect(Take(seq, n))
}

// First returns the first item from an iterator, or ErrEmptyIterator.
func First[T any](seq iter.Seq2[T, error]) (T, error) {
	for item, err := range seq {
		return item, err
	}
	var zero T
	return zero, ErrEmptyIterator
}

// Take returns an iterator that yields at most n items from seq.
func Take[T any](seq iter.Seq2[T, error], n int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for item, err := range seq {
			if !yield(item, err) || err != nil {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Filter returns an iterator that yields only items matching pred.
func Filter[T any](seq iter.Seq2[T, error], pred func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item, err := range seq {
			if err != nil {
				yield(item, err)
				return
			}
			if pred(item) && !yield(item, nil) {
				return
			}
		}
	}
}

// Map transforms each item of seq with fn.
func Map[T, U any](seq iter.Seq2[T, error], fn func(T) U) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for item, err := range seq {
			if err != nil {
				var zero U
				yield(zero, err)
				return
			}
			if !yield(fn(item), nil) {
				return
			}
		}
	}
}
