// Package shopify is a minimal client for the Shopify admin REST API: it
// builds one authenticated request, executes it, and decomposes the response
// into headers and a decoded body.
package shopify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/storekeeper-hq/shopify-rest/pkg/httpclient"
)

const (
	// DefaultLimit is the effective page size when the caller passes zero or
	// a negative limit.
	DefaultLimit = 50
	// MaxLimit is the largest page size the vendor accepts.
	MaxLimit = 250

	// DefaultTimeout applies when no transport is injected.
	DefaultTimeout = 20 * time.Second

	accessTokenHeader = "X-Shopify-Access-Token"
)

// Credentials selects the authentication mode for a client. A non-empty
// APIToken wins and is sent via the vendor access-token header; otherwise
// APIKey and APISecret are combined into an HTTP basic Authorization header.
// All fields are optional and default to empty; nothing is validated here.
type Credentials struct {
	APIKey    string
	APISecret string
	APIToken  string
}

// Client issues single synchronous calls against one shop. It holds no
// mutable state between calls, so a single instance is safe to share.
type Client struct {
	shopAddress string
	authName    string
	authValue   string
	http        httpclient.Client
}

// New builds a client for the given shop base address. The endpoint passed to
// each call is appended to shopAddress verbatim. A nil transport selects the
// default resty transport with DefaultTimeout.
func New(shopAddress string, creds Credentials, transport httpclient.Client) *Client {
	if transport == nil {
		transport = httpclient.NewRestyClient(DefaultTimeout)
	}
	c := &Client{shopAddress: shopAddress, http: transport}
	if creds.APIToken != "" {
		c.authName = accessTokenHeader
		c.authValue = creds.APIToken
	} else {
		c.authName = "Authorization"
		c.authValue = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.APIKey+":"+creds.APISecret))
	}
	return c
}

// MakeRequest performs one call against the shop.
//
// method must be GET, POST, PUT, or DELETE (case-insensitive); anything else
// returns an UnsupportedMethodError before any transport activity. params are
// sent as a percent-encoded query string for GET/DELETE and as a JSON body for
// POST/PUT. A non-empty pageToken switches the call into pagination mode: the
// vendor rejects paginated requests carrying filters, so every param except
// fields is dropped and page_info carries the cursor. limit is clamped to
// [DefaultLimit when <= 0, MaxLimit] and always sent.
func (c *Client) MakeRequest(ctx context.Context, endpoint, method string, params map[string]any, pageToken string, limit int) (*ParsedResponse, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}

	final := buildParams(params, pageToken, limit)
	headers := map[string]string{c.authName: c.authValue}
	target := c.shopAddress + endpoint

	var body []byte
	if method == http.MethodPost || method == http.MethodPut {
		encoded, err := json.Marshal(final)
		if err != nil {
			return nil, fmt.Errorf("encode request params: %w", err)
		}
		body = encoded
		headers["Content-Type"] = "application/json"
		headers["Content-Length"] = strconv.Itoa(len(encoded))
	} else if qs := encodeQuery(final); qs != "" {
		target += "?" + qs
	}

	resp, err := c.http.Do(ctx, method, target, headers, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return decompose(resp.Header(), resp.Body()), nil
}

// Get issues a GET with no pagination cursor and the default limit.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any) (*ParsedResponse, error) {
	return c.MakeRequest(ctx, endpoint, http.MethodGet, params, "", DefaultLimit)
}

// Delete issues a DELETE with no pagination cursor and the default limit.
func (c *Client) Delete(ctx context.Context, endpoint string, params map[string]any) (*ParsedResponse, error) {
	return c.MakeRequest(ctx, endpoint, http.MethodDelete, params, "", DefaultLimit)
}

// Post issues a POST with params as the JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, params map[string]any) (*ParsedResponse, error) {
	return c.MakeRequest(ctx, endpoint, http.MethodPost, params, "", DefaultLimit)
}

// Put issues a PUT with params as the JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, params map[string]any) (*ParsedResponse, error) {
	return c.MakeRequest(ctx, endpoint, http.MethodPut, params, "", DefaultLimit)
}

// buildParams assembles the outgoing parameter set. The caller's map is
// copied, never mutated, so params can be reused across calls.
func buildParams(params map[string]any, pageToken string, limit int) map[string]any {
	out := make(map[string]any, len(params)+2)
	if pageToken != "" {
		if fields, ok := params["fields"]; ok {
			out["fields"] = fields
		}
		out["page_info"] = pageToken
	} else {
		for k, v := range params {
			out[k] = v
		}
	}
	out["limit"] = clampLimit(limit)
	return out
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// encodeQuery renders params as a percent-encoded query string. url.Values
// sorts keys, so outgoing URLs are deterministic.
func encodeQuery(params map[string]any) string {
	vals := make(url.Values, len(params))
	for k, v := range params {
		vals.Set(k, fmt.Sprint(v))
	}
	return vals.Encode()
}
