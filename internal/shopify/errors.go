// internal/shopify/errors.go
package shopify

import (
	"fmt"
	"strings"
)

// TransportError covers network failures and non-2xx upstream responses.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shopify: transport failure: %v", e.Err)
	}
	return fmt.Sprintf("shopify: unexpected status %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the upstream body was not the JSON we expected.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shopify: malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UpstreamError carries the messages of a top-level GraphQL errors array.
type UpstreamError struct {
	Messages []string
}

func (e *UpstreamError) Error() string {
	return "shopify: upstream errors: " + strings.Join(e.Messages, "; ")
}
