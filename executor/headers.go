package executor

import "net/http"

// AcceptAny is the accept header sent with every synthesized request.
const AcceptAny = "*/*"

// APIKey sends a fixed key in a named header (e.g. X-API-KEY).
type APIKey struct {
	Header string
	Key    string
}

// Headers returns the fixed header set for a request: accept first, then the
// API key when one is configured.
func (a APIKey) Headers() []Header {
	headers := []Header{{Name: "accept", Value: AcceptAny}}
	if a.Header != "" {
		headers = append(headers, Header{Name: a.Header, Value: a.Key})
	}
	return headers
}

func applyHeaders(req *http.Request, headers []Header) {
	for _, h := range headers {
		req.Header.Set(h.Name, h.Value)
	}
}
