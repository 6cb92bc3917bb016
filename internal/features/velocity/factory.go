package velocity

import (
	"fmt"
	"time"

	"velocity-proxy/internal/common"
	adapterhttp "velocity-proxy/internal/features/velocity/adapter/http"
	"velocity-proxy/internal/features/velocity/domain"
	"velocity-proxy/internal/features/velocity/metrics"
	"velocity-proxy/internal/features/velocity/usecase"
)

// Config holds the configuration for the velocity package
type Config struct {
	Credentials        domain.Credentials
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Services contains all the services provided by the velocity package
type Services struct {
	Tokens   domain.TokenProvider
	Requests domain.RequestProvider
	API      *usecase.API
	Metrics  *metrics.Collector

	httpClient domain.HTTPClientInterface
}

// NewServices creates and initializes all velocity services
func NewServices(config Config) (*Services, error) {
	if err := validateCredentials(config.Credentials); err != nil {
		return nil, err
	}

	httpClientConfig := adapterhttp.DefaultClientConfig()
	if config.Timeout > 0 {
		httpClientConfig.Timeout = config.Timeout
	}
	httpClientConfig.InsecureSkipVerify = config.InsecureSkipVerify

	httpClient, err := adapterhttp.NewClient(httpClientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	collector := metrics.NewCollector()
	tokenService := usecase.NewTokenService(config.Credentials, httpClient, collector)
	requestService := usecase.NewRequestService(config.Credentials.BaseURL, tokenService, httpClient, collector)

	return &Services{
		Tokens:     tokenService,
		Requests:   requestService,
		API:        usecase.NewAPI(requestService),
		Metrics:    collector,
		httpClient: httpClient,
	}, nil
}

// Close releases the underlying connection resources
func (s *Services) Close() {
	s.httpClient.Close()
}

// validateCredentials enforces the four required credential fields
func validateCredentials(creds domain.Credentials) error {
	if creds.BaseURL == "" {
		return common.NewConfigError("velocity.base_url", "value is required")
	}
	if creds.Username == "" {
		return common.NewConfigError("velocity.username", "value is required")
	}
	if creds.Password == "" {
		return common.NewConfigError("velocity.password", "value is required")
	}
	if creds.PortalURL == "" {
		return common.NewConfigError("velocity.portal_url", "value is required")
	}
	return nil
}
