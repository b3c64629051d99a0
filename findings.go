package secadvisor

import (
	"cmp"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tphakala/go-secadvisor/internal/api"
)

const findingsServiceName = "findings_api"

// PageOptions selects a page of a token-paged list.
type PageOptions struct {
	// PageSize is the maximum number of items to return.
	PageSize int64 `url:"page_size,omitempty"`
	// PageToken is the NextPageToken of the previous page.
	PageToken string `url:"page_token,omitempty"`
}

// ListProvidersOptions filters and pages ListProviders.
type ListProvidersOptions struct {
	Limit           int64  `url:"limit,omitempty"`
	Skip            int64  `url:"skip,omitempty"`
	StartProviderID string `url:"start_provider_id,omitempty"`
	EndProviderID   string `url:"end_provider_id,omitempty"`
}

// CreateOccurrenceOptions holds the optional parameters of CreateOccurrence.
type CreateOccurrenceOptions struct {
	// ReplaceIfExists overwrites an existing occurrence with the same id.
	ReplaceIfExists *bool
}

// GraphQuery is the body of a findings graph query.
type GraphQuery struct {
	// Query is a GraphQL document, or a JSON request when ContentType is
	// GraphContentTypeJSON.
	Query string
	// ContentType defaults to GraphContentTypeGraphQL.
	ContentType GraphContentType
}

// FindingsService provides operations on notes, occurrences and providers.
//
//go:generate mockgen -destination=internal/mocks/mock_findings_service.go -package=mocks github.com/tphakala/go-secadvisor FindingsService
type FindingsService interface {
	// PostGraph runs a graph query over the account's findings and returns
	// the raw result.
	PostGraph(ctx context.Context, accountID string, q *GraphQuery, opts ...RequestOption) (json.RawMessage, *Response, error)

	// CreateNote registers a new note for a provider.
	CreateNote(ctx context.Context, accountID, providerID string, note *Note, opts ...RequestOption) (*Note, *Response, error)

	// ListNotes returns one page of a provider's notes.
	ListNotes(ctx context.Context, accountID, providerID string, page *PageOptions, opts ...RequestOption) (*ListNotesResponse, *Response, error)

	// GetNote retrieves a note.
	GetNote(ctx context.Context, accountID, providerID, noteID string, opts ...RequestOption) (*Note, *Response, error)

	// UpdateNote replaces a note.
	UpdateNote(ctx context.Context, accountID, providerID, noteID string, note *Note, opts ...RequestOption) (*Note, *Response, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, accountID, providerID, noteID string, opts ...RequestOption) (*Response, error)

	// GetOccurrenceNote retrieves the note an occurrence belongs to.
	GetOccurrenceNote(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Note, *Response, error)

	// CreateOccurrence records a new occurrence of a note.
	CreateOccurrence(ctx context.Context, accountID, providerID string, occurrence *Occurrence, create *CreateOccurrenceOptions, opts ...RequestOption) (*Occurrence, *Response, error)

	// ListOccurrences returns one page of a provider's occurrences.
	ListOccurrences(ctx context.Context, accountID, providerID string, page *PageOptions, opts ...RequestOption) (*ListOccurrencesResponse, *Response, error)

	// ListNoteOccurrences returns one page of the occurrences of a note.
	ListNoteOccurrences(ctx context.Context, accountID, providerID, noteID string, page *PageOptions, opts ...RequestOption) (*ListNoteOccurrencesResponse, *Response, error)

	// GetOccurrence retrieves an occurrence.
	GetOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Occurrence, *Response, error)

	// UpdateOccurrence replaces an occurrence.
	UpdateOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, occurrence *Occurrence, opts ...RequestOption) (*Occurrence, *Response, error)

	// DeleteOccurrence removes an occurrence.
	DeleteOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Response, error)

	// ListProviders lists the providers of an account.
	ListProviders(ctx context.Context, accountID string, list *ListProvidersOptions, opts ...RequestOption) (*ListProvidersResponse, *Response, error)
}

// findingsService implements FindingsService.
type findingsService struct {
	transport *api.Transport
}

func newFindingsService(transport *api.Transport) *findingsService {
	return &findingsService{transport: transport}
}

// PostGraph runs a graph query.
func (s *findingsService) PostGraph(ctx context.Context, accountID string, q *GraphQuery, opts ...RequestOption) (json.RawMessage, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}
	if q == nil || q.Query == "" {
		return nil, nil, &InvalidArgumentError{Param: "body"}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)
	headers := reqCfg.headersFor(findingsServiceName, "post_graph")
	headers.Set("Content-Type", string(cmp.Or(q.ContentType, GraphContentTypeGraphQL)))

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:     http.MethodPost,
		Path:       "/v1/{account_id}/graph",
		PathParams: params,
		Headers:    headers,
		Body:       q.Query,
	})
	if err != nil {
		return nil, nil, err
	}

	return json.RawMessage(resp.Body), resp, nil
}

// CreateNote registers a new note.
func (s *findingsService) CreateNote(ctx context.Context, accountID, providerID string, note *Note, opts ...RequestOption) (*Note, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
	)
	if err != nil {
		return nil, nil, err
	}
	if err := note.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Note](ctx, s.transport, &api.Request{
		Method:     http.MethodPost,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "create_note"),
		Body:       note,
	})
}

// ListNotes returns one page of notes.
func (s *findingsService) ListNotes(ctx context.Context, accountID, providerID string, page *PageOptions, opts ...RequestOption) (*ListNotesResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
	)
	if err != nil {
		return nil, nil, err
	}
	q, err := encodeQuery(page)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[ListNotesResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes",
		PathParams: params,
		Query:      q,
		Headers:    reqCfg.headersFor(findingsServiceName, "list_notes"),
	})
}

// GetNote retrieves a note.
func (s *findingsService) GetNote(ctx context.Context, accountID, providerID, noteID string, opts ...RequestOption) (*Note, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"note_id", noteID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Note](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "get_note"),
		Resource:   api.Resource{Type: "note", ID: noteID},
	})
}

// UpdateNote replaces a note.
func (s *findingsService) UpdateNote(ctx context.Context, accountID, providerID, noteID string, note *Note, opts ...RequestOption) (*Note, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"note_id", noteID},
	)
	if err != nil {
		return nil, nil, err
	}
	if err := note.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Note](ctx, s.transport, &api.Request{
		Method:     http.MethodPut,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "update_note"),
		Body:       note,
		Resource:   api.Resource{Type: "note", ID: noteID},
	})
}

// DeleteNote removes a note.
func (s *findingsService) DeleteNote(ctx context.Context, accountID, providerID, noteID string, opts ...RequestOption) (*Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"note_id", noteID},
	)
	if err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return s.transport.Do(ctx, &api.Request{
		Method:     http.MethodDelete,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "delete_note"),
		Resource:   api.Resource{Type: "note", ID: noteID},
	})
}

// GetOccurrenceNote retrieves the note of an occurrence.
func (s *findingsService) GetOccurrenceNote(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Note, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"occurrence_id", occurrenceID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Note](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}/note",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "get_occurrence_note"),
		Resource:   api.Resource{Type: "occurrence", ID: occurrenceID},
	})
}

// CreateOccurrence records a new occurrence.
func (s *findingsService) CreateOccurrence(ctx context.Context, accountID, providerID string, occurrence *Occurrence, create *CreateOccurrenceOptions, opts ...RequestOption) (*Occurrence, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
	)
	if err != nil {
		return nil, nil, err
	}
	if err := occurrence.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)
	headers := reqCfg.headersFor(findingsServiceName, "create_occurrence")
	if create != nil && create.ReplaceIfExists != nil {
		headers.Set("Replace-If-Exists", strconv.FormatBool(*create.ReplaceIfExists))
	}

	return doJSON[Occurrence](ctx, s.transport, &api.Request{
		Method:     http.MethodPost,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences",
		PathParams: params,
		Headers:    headers,
		Body:       occurrence,
	})
}

// ListOccurrences returns one page of occurrences.
func (s *findingsService) ListOccurrences(ctx context.Context, accountID, providerID string, page *PageOptions, opts ...RequestOption) (*ListOccurrencesResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
	)
	if err != nil {
		return nil, nil, err
	}
	q, err := encodeQuery(page)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[ListOccurrencesResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences",
		PathParams: params,
		Query:      q,
		Headers:    reqCfg.headersFor(findingsServiceName, "list_occurrences"),
	})
}

// ListNoteOccurrences returns one page of a note's occurrences.
func (s *findingsService) ListNoteOccurrences(ctx context.Context, accountID, providerID, noteID string, page *PageOptions, opts ...RequestOption) (*ListNoteOccurrencesResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"note_id", noteID},
	)
	if err != nil {
		return nil, nil, err
	}
	q, err := encodeQuery(page)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[ListNoteOccurrencesResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/notes/{note_id}/occurrences",
		PathParams: params,
		Query:      q,
		Headers:    reqCfg.headersFor(findingsServiceName, "list_note_occurrences"),
		Resource:   api.Resource{Type: "note", ID: noteID},
	})
}

// GetOccurrence retrieves an occurrence.
func (s *findingsService) GetOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Occurrence, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"occurrence_id", occurrenceID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Occurrence](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "get_occurrence"),
		Resource:   api.Resource{Type: "occurrence", ID: occurrenceID},
	})
}

// UpdateOccurrence replaces an occurrence.
func (s *findingsService) UpdateOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, occurrence *Occurrence, opts ...RequestOption) (*Occurrence, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"occurrence_id", occurrenceID},
	)
	if err != nil {
		return nil, nil, err
	}
	if err := occurrence.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[Occurrence](ctx, s.transport, &api.Request{
		Method:     http.MethodPut,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "update_occurrence"),
		Body:       occurrence,
		Resource:   api.Resource{Type: "occurrence", ID: occurrenceID},
	})
}

// DeleteOccurrence removes an occurrence.
func (s *findingsService) DeleteOccurrence(ctx context.Context, accountID, providerID, occurrenceID string, opts ...RequestOption) (*Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"provider_id", providerID},
		param{"occurrence_id", occurrenceID},
	)
	if err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return s.transport.Do(ctx, &api.Request{
		Method:     http.MethodDelete,
		Path:       "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(findingsServiceName, "delete_occurrence"),
		Resource:   api.Resource{Type: "occurrence", ID: occurrenceID},
	})
}

// ListProviders lists the providers of an account.
func (s *findingsService) ListProviders(ctx context.Context, accountID string, list *ListProvidersOptions, opts ...RequestOption) (*ListProvidersResponse, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}
	q, err := encodeQuery(list)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[ListProvidersResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/providers",
		PathParams: params,
		Query:      q,
		Headers:    reqCfg.headersFor(findingsServiceName, "list_providers"),
	})
}
