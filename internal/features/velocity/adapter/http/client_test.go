package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper implements the http.RoundTripper interface for testing
type mockRoundTripper struct {
	response *http.Response
	err      error
	lastReq  *http.Request
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func TestDefaultClientConfig(t *testing.T) {
	config := DefaultClientConfig()

	assert.Equal(t, 30*time.Second, config.Timeout, "Default timeout should be 30 seconds")
	assert.False(t, config.InsecureSkipVerify, "InsecureSkipVerify should be false by default")
	assert.True(t, config.EnableHTTP2, "EnableHTTP2 should be true by default")
}

func TestNewClient(t *testing.T) {
	// Test with default config
	config := DefaultClientConfig()
	client, err := NewClient(config)

	require.NoError(t, err, "Creating client with default config should not fail")
	assert.NotNil(t, client, "Client should not be nil")
	assert.NotNil(t, client.client, "HTTP client should not be nil")

	// Test with custom config
	customConfig := ClientConfig{
		Timeout:            5 * time.Second,
		InsecureSkipVerify: true,
		EnableHTTP2:        false,
	}
	customClient, err := NewClient(customConfig)

	require.NoError(t, err, "Creating client with custom config should not fail")
	assert.NotNil(t, customClient, "Client should not be nil")
	assert.Equal(t, customConfig, customClient.config, "Client should store the provided config")
}

func TestRequest(t *testing.T) {
	// Create a mock response
	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(`{"status":"success"}`)),
	}

	transport := &mockRoundTripper{response: mockResp, err: nil}
	client := &Client{
		client: &http.Client{Transport: transport},
		config: DefaultClientConfig(),
	}

	// Test successful request with headers and query parameters
	resp, err := client.Request(
		context.Background(),
		http.MethodGet,
		"https://example.com/api",
		[]byte(`{"key":"value"}`),
		map[string]string{"locale": "en_US"},
		map[string]string{"Authorization": "Bearer test-token"},
	)

	require.NoError(t, err, "Request should not return an error")
	assert.Equal(t, mockResp, resp, "Response should match mock response")
	assert.Equal(t, "Bearer test-token", transport.lastReq.Header.Get("Authorization"))
	assert.Equal(t, "en_US", transport.lastReq.URL.Query().Get("locale"))

	// Test with default Content-Type
	_, err = client.Request(
		context.Background(),
		http.MethodPost,
		"https://example.com/api",
		[]byte(`{"key":"value"}`),
		nil,
		map[string]string{},
	)

	require.NoError(t, err, "Request with default Content-Type should not fail")
	assert.Equal(t, "application/json", transport.lastReq.Header.Get("Content-Type"))
}

func TestPostForm(t *testing.T) {
	var gotContentType string
	var gotForm url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = r.ParseForm()
		gotForm = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer client.Close()

	form := url.Values{
		"username": {"test-user"},
		"f":        {"json"},
	}

	resp, err := client.PostForm(context.Background(), server.URL+"/token", form)
	require.NoError(t, err, "PostForm should not return an error")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "test-user", gotForm.Get("username"))
	assert.Equal(t, "json", gotForm.Get("f"))
}

func TestReadResponseBody(t *testing.T) {
	// Create a response with a body
	expectedBody := `{"status":"success"}`
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(expectedBody)),
	}

	client := &Client{
		client: &http.Client{},
		config: DefaultClientConfig(),
	}

	// Test reading response body
	body, err := client.ReadResponseBody(resp)

	require.NoError(t, err, "ReadResponseBody should not return an error")
	assert.Equal(t, []byte(expectedBody), body, "Body should match expected content")

	// Test with nil response
	_, err = client.ReadResponseBody(nil)
	assert.Error(t, err, "ReadResponseBody should return an error for nil response")
}
