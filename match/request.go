package match

import "strings"

// SynthesizedRequest is a request ready to be executed.
type SynthesizedRequest struct {
	Method string
	URL    string
}

// Build appends the resolved path and its query string to baseURL.
//
// Names and values go into the query string verbatim, without
// percent-encoding, so "New York" stays "New York". A blank query string is
// left off entirely.
func Build(baseURL string, r ResolvedEndpoint) SynthesizedRequest {
	pairs := make([]string, 0, r.Params.Len())
	for _, p := range r.Params.List() {
		pairs = append(pairs, p.Name+"="+p.Value)
	}
	query := strings.Join(pairs, "&")

	url := baseURL + r.Path
	if strings.TrimSpace(query) != "" {
		url += "?" + query
	}
	return SynthesizedRequest{
		Method: strings.ToUpper(r.Method),
		URL:    url,
	}
}
