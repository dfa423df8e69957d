package shopify

import "fmt"

// UnsupportedMethodError reports a verb outside GET/POST/PUT/DELETE. It is
// returned before any transport call is attempted.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported http method %q", e.Method)
}

// TransportError wraps a low-level transport failure (DNS, connect, timeout,
// TLS). The cause is available through errors.Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
