package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/velocity/domain"
	"velocity-proxy/internal/features/velocity/metrics"
)

// Token lifecycle constants. The portal is asked for a 60-minute token;
// a 5-minute margin is deducted from whatever expiry it reports so the
// cached token is treated as expired before the portal would reject it.
// When the portal reports no expiry the token is assumed valid for 55
// minutes from issuance, matching the margin on the requested lifetime.
const (
	RequestedExpiryMinutes = 60
	ExpiryMargin           = 5 * time.Minute
	DefaultTokenTTL        = 55 * time.Minute

	generateTokenPath = "/sharing/rest/generateToken"
)

// TokenService implements domain.TokenProvider. It owns the single
// cached token and guards it so that concurrent callers observing an
// expired token cannot trigger duplicate issuance.
type TokenService struct {
	credentials domain.Credentials
	httpClient  domain.HTTPClientInterface
	collector   *metrics.Collector
	token       domain.Token
	mutex       sync.RWMutex
}

// NewTokenService creates a new token service
func NewTokenService(
	credentials domain.Credentials,
	httpClient domain.HTTPClientInterface,
	collector *metrics.Collector,
) *TokenService {
	if httpClient == nil {
		panic("HTTP client cannot be nil")
	}
	if collector == nil {
		panic("metrics collector cannot be nil")
	}

	return &TokenService{
		credentials: credentials,
		httpClient:  httpClient,
		collector:   collector,
	}
}

// GetToken returns a valid bearer token, issuing a new one if necessary
func (s *TokenService) GetToken(ctx context.Context) (domain.Token, error) {
	s.mutex.RLock()
	token := s.token
	s.mutex.RUnlock()

	if token.IsValid(time.Now()) {
		return token, nil
	}

	return s.refresh(ctx)
}

// Invalidate discards the cached token so the next GetToken forces re-issuance
func (s *TokenService) Invalidate() {
	s.mutex.Lock()
	s.token = domain.Token{}
	s.mutex.Unlock()
}

// refresh issues a new token and stores it. The write lock is held for
// the duration of issuance; a caller that lost the race re-checks the
// cache instead of issuing a second time.
func (s *TokenService) refresh(ctx context.Context) (domain.Token, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.token.IsValid(time.Now()) {
		return s.token, nil
	}

	token, err := s.issue(ctx)
	if err != nil {
		return domain.Token{}, err
	}

	s.token = token
	slog.Info("issued new bearer token", "validUntil", token.ValidUntil)
	return token, nil
}

// issue performs the generateToken handshake against the portal.
// It has no retry logic of its own; failures become AuthError.
func (s *TokenService) issue(ctx context.Context) (domain.Token, error) {
	form := url.Values{
		"username":   {s.credentials.Username},
		"password":   {s.credentials.Password},
		"referer":    {s.credentials.BaseURL},
		"f":          {"json"},
		"expiration": {strconv.Itoa(RequestedExpiryMinutes)},
	}

	tokenURL := s.credentials.PortalURL + generateTokenPath
	resp, err := s.httpClient.PostForm(ctx, tokenURL, form)
	if err != nil {
		return domain.Token{}, common.NewAuthError("portal unreachable", err)
	}

	body, err := s.httpClient.ReadResponseBody(resp)
	if err != nil {
		return domain.Token{}, common.NewAuthError("failed to read portal response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.Token{}, common.NewAuthError(
			"portal returned status "+strconv.Itoa(resp.StatusCode)+": "+string(body), nil)
	}

	var tokenResp domain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return domain.Token{}, common.NewAuthError("malformed portal response", err)
	}

	if tokenResp.Token == "" {
		message := "unknown error generating token"
		if tokenResp.Error != nil && tokenResp.Error.Message != "" {
			message = tokenResp.Error.Message
		}
		return domain.Token{}, common.NewAuthError(message, nil)
	}

	token := domain.Token{
		Value:      tokenResp.Token,
		ValidUntil: computeValidUntil(tokenResp.Expires, time.Now()),
	}

	s.collector.RecordTokenIssuance()
	return token, nil
}

// computeValidUntil applies the safety margin to the reported expiry,
// or falls back to the default TTL when the portal reports none.
func computeValidUntil(expiresMs int64, now time.Time) time.Time {
	if expiresMs > 0 {
		return time.UnixMilli(expiresMs).Add(-ExpiryMargin)
	}
	return now.Add(DefaultTokenTTL)
}
