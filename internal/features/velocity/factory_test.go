package velocity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/velocity/domain"
)

func validConfig() Config {
	return Config{
		Credentials: domain.Credentials{
			BaseURL:   "https://velocity.example.com/abcd1234",
			Username:  "test-user",
			Password:  "test-password",
			PortalURL: "https://portal.example.com",
		},
		Timeout: 30 * time.Second,
	}
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(validConfig())
	require.NoError(t, err, "NewServices should succeed with complete credentials")
	defer services.Close()

	assert.NotNil(t, services.Tokens, "Token service should be wired")
	assert.NotNil(t, services.Requests, "Request service should be wired")
	assert.NotNil(t, services.API, "Operation facade should be wired")
	assert.NotNil(t, services.Metrics, "Metrics collector should be wired")
}

func TestNewServicesMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base URL", func(c *Config) { c.Credentials.BaseURL = "" }},
		{"missing username", func(c *Config) { c.Credentials.Username = "" }},
		{"missing password", func(c *Config) { c.Credentials.Password = "" }},
		{"missing portal URL", func(c *Config) { c.Credentials.PortalURL = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			services, err := NewServices(cfg)
			require.Error(t, err, "Missing credential field should be rejected")
			assert.True(t, common.IsConfigError(err), "Should be a config error")
			assert.Nil(t, services)
		})
	}
}
