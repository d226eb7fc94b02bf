package client

import "net/url"

// Request describes one API call: method, endpoint path relative to the
// base URL (no leading slash), optional query parameters, and an optional
// body that will be JSON-encoded. Resource-client methods build one
// Request per call and hand it to the transport; it is never reused or
// mutated after that.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}
