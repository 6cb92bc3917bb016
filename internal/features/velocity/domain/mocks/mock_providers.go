package mocks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"

	"velocity-proxy/internal/features/velocity/domain"
)

// MockHTTPClient is a mock implementation of domain.HTTPClientInterface
type MockHTTPClient struct {
	mock.Mock
}

// Request mocks the Request method
func (m *MockHTTPClient) Request(ctx context.Context, method, url string, body []byte, params map[string]string, headers map[string]string) (*http.Response, error) {
	args := m.Called(ctx, method, url, body, params, headers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// PostForm mocks the PostForm method
func (m *MockHTTPClient) PostForm(ctx context.Context, url string, form url.Values) (*http.Response, error) {
	args := m.Called(ctx, url, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// ReadResponseBody mocks the ReadResponseBody method
func (m *MockHTTPClient) ReadResponseBody(resp *http.Response) ([]byte, error) {
	args := m.Called(resp)
	return args.Get(0).([]byte), args.Error(1)
}

// Close mocks the Close method
func (m *MockHTTPClient) Close() {
	m.Called()
}

// MockTokenProvider is a mock implementation of domain.TokenProvider
type MockTokenProvider struct {
	mock.Mock
}

// GetToken mocks the GetToken method
func (m *MockTokenProvider) GetToken(ctx context.Context) (domain.Token, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Token), args.Error(1)
}

// Invalidate mocks the Invalidate method
func (m *MockTokenProvider) Invalidate() {
	m.Called()
}

// MockRequestProvider is a mock implementation of domain.RequestProvider
type MockRequestProvider struct {
	mock.Mock
}

// Execute mocks the Execute method
func (m *MockRequestProvider) Execute(ctx context.Context, req domain.Request) (interface{}, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}
