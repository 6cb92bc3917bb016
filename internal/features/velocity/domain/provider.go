package domain

import (
	"context"
	"net/http"
	"net/url"
)

// TokenProvider defines the interface for obtaining bearer tokens
type TokenProvider interface {
	// GetToken returns a valid token, issuing a new one if the cached
	// token is absent or expired
	GetToken(ctx context.Context) (Token, error)

	// Invalidate discards the cached token so the next GetToken
	// forces re-issuance
	Invalidate()
}

// RequestProvider defines the interface for executing authorized API calls
type RequestProvider interface {
	// Execute performs the call with a valid bearer token attached and
	// returns the decoded response body unchanged
	Execute(ctx context.Context, req Request) (interface{}, error)
}

// HTTPClientInterface defines the contract for HTTP clients
type HTTPClientInterface interface {
	// Request makes an HTTP request with the specified method, URL, body,
	// query parameters and headers
	Request(ctx context.Context, method, url string, body []byte, params map[string]string, headers map[string]string) (*http.Response, error)

	// PostForm makes a form-encoded POST request
	PostForm(ctx context.Context, url string, form url.Values) (*http.Response, error)

	// ReadResponseBody reads and closes the response body
	ReadResponseBody(resp *http.Response) ([]byte, error)

	// Close releases the client's connection resources
	Close()
}
