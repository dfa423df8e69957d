package shopify

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ParsedResponse is the decomposed result of one call: headers keyed by
// lower-cased name (last occurrence wins) and the decoded JSON body. A body
// that is not valid JSON is kept as its raw string; an empty body is nil.
type ParsedResponse struct {
	Headers map[string]string
	Body    any
}

// decompose builds a ParsedResponse from structured transport output.
func decompose(header http.Header, body []byte) *ParsedResponse {
	headers := make(map[string]string, len(header))
	for name, vals := range header {
		if len(vals) == 0 {
			continue
		}
		headers[strings.ToLower(name)] = vals[len(vals)-1]
	}
	return &ParsedResponse{Headers: headers, Body: decodeBody(string(body))}
}

// ParseRawResponse splits a raw wire capture, header block(s) and body
// concatenated with blank-line separators, into headers and a decoded body.
// Transports that follow redirects emit one block per hop; only the final
// header block and body are kept. Input with no separator is treated as a
// bare body with no headers.
func ParseRawResponse(raw string) *ParsedResponse {
	segments := strings.Split(raw, "\r\n\r\n")
	if len(segments) < 2 {
		return &ParsedResponse{Headers: map[string]string{}, Body: decodeBody(raw)}
	}
	headerBlock := segments[len(segments)-2]
	body := segments[len(segments)-1]
	return &ParsedResponse{Headers: parseHeaderBlock(headerBlock), Body: decodeBody(body)}
}

// parseHeaderBlock splits CRLF-separated header lines into a lower-cased map.
// Lines without a ": " separator, such as the status line, are skipped.
func parseHeaderBlock(block string) map[string]string {
	headers := make(map[string]string)
	for _, line := range strings.Split(block, "\r\n") {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		headers[strings.ToLower(name)] = value
	}
	return headers
}

func decodeBody(body string) any {
	if body == "" {
		return nil
	}
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return body
	}
	return decoded
}
