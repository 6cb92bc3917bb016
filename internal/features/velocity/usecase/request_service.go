package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/velocity/domain"
	"velocity-proxy/internal/features/velocity/metrics"
)

// RequestService implements domain.RequestProvider. It is the only
// component allowed to mutate the token cache: it writes through
// issuance and clears it on a 401.
type RequestService struct {
	baseURL       string
	tokenProvider domain.TokenProvider
	httpClient    domain.HTTPClientInterface
	collector     *metrics.Collector
}

// NewRequestService creates a new request service
func NewRequestService(
	baseURL string,
	tokenProvider domain.TokenProvider,
	httpClient domain.HTTPClientInterface,
	collector *metrics.Collector,
) *RequestService {
	if tokenProvider == nil {
		panic("token provider cannot be nil")
	}
	if httpClient == nil {
		panic("HTTP client cannot be nil")
	}
	if collector == nil {
		panic("metrics collector cannot be nil")
	}

	return &RequestService{
		baseURL:       baseURL,
		tokenProvider: tokenProvider,
		httpClient:    httpClient,
		collector:     collector,
	}
}

// Execute performs an authorized API call. A 401 on the first attempt
// invalidates the cached token and the call is repeated exactly once
// with a freshly issued token; a 401 on the retried call is terminal.
func (s *RequestService) Execute(ctx context.Context, req domain.Request) (interface{}, error) {
	if req.Method == "" {
		return nil, common.InvalidInputError("request method cannot be empty")
	}
	if req.Path == "" {
		return nil, common.InvalidInputError("request path cannot be empty")
	}

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestURL := s.baseURL + req.Path

	// The retry bound is the loop bound: at most one re-issuance per
	// logical call, never more.
	for attempt := 0; attempt < 2; attempt++ {
		token, err := s.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, err
		}

		headers := map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + token.Value,
		}

		resp, err := s.httpClient.Request(ctx, req.Method, requestURL, bodyBytes, req.Params, headers)
		if err != nil {
			s.collector.RecordRequest("error")
			return nil, common.WrapError(err, "velocity request failed")
		}

		body, err := s.httpClient.ReadResponseBody(resp)
		if err != nil {
			s.collector.RecordRequest("error")
			return nil, common.WrapError(err, "failed to read response body")
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if attempt == 0 {
				slog.Warn("received 401, invalidating token and retrying once",
					"method", req.Method, "path", req.Path)
				s.tokenProvider.Invalidate()
				s.collector.RecordAuthRetry()
				continue
			}
			s.collector.RecordRequest("unauthorized")
			return nil, common.NewRequestError(resp.StatusCode, string(body))
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			s.collector.RecordRequest("failure")
			return nil, common.NewRequestError(resp.StatusCode, string(body))
		}

		if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
			s.collector.RecordRequest("success")
			return domain.SuccessResponse(), nil
		}

		var result interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			s.collector.RecordRequest("failure")
			return nil, common.NewRequestError(resp.StatusCode,
				fmt.Sprintf("malformed response body: %v", err))
		}

		s.collector.RecordRequest("success")
		return result, nil
	}

	// Unreachable: both attempts return above.
	return nil, common.NewRequestError(http.StatusUnauthorized, "retry budget exhausted")
}
