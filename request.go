package secadvisor

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/tphakala/go-secadvisor/internal/api"
)

// Response is the HTTP response of a successful call: status code, headers
// and raw body.
type Response = api.Response

// param is a named path parameter. Order matters: the first empty one is
// reported.
type param struct {
	name  string
	value string
}

func pathParams(params ...param) (map[string]string, error) {
	m := make(map[string]string, len(params))
	for _, p := range params {
		if p.value == "" {
			return nil, &InvalidArgumentError{Param: p.name}
		}
		m[p.name] = p.value
	}
	return m, nil
}

// encodeQuery turns an options struct with url tags into query parameters.
// A nil options pointer yields no parameters.
func encodeQuery(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}
	return v, nil
}

// doJSON sends req and decodes the response body into a new T.
func doJSON[T any](ctx context.Context, t *api.Transport, req *api.Request) (*T, *Response, error) {
	var result T
	resp, err := t.DoJSON(ctx, req, &result)
	if err != nil {
		return nil, nil, err
	}
	return &result, resp, nil
}
