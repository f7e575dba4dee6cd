package models

import "strings"

// RawRequest describes an arbitrary API call issued through the raw command.
type RawRequest struct {
	Method   string
	Endpoint string
	Data     string
}

// NormalizedEndpoint returns the endpoint with a guaranteed leading slash.
func (r RawRequest) NormalizedEndpoint() string {
	if strings.HasPrefix(r.Endpoint, "/") {
		return r.Endpoint
	}
	return "/" + r.Endpoint
}

// RawResponse is the outcome of a raw API call: the HTTP status and the
// unparsed response body.
type RawResponse struct {
	Status int
	Body   []byte
}
