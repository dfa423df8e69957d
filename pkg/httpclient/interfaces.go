package httpclient

import (
	"context"
	"net/http"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	Header() http.Header
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// body may be nil for methods that carry no payload.
type Client interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (Response, error)
}
