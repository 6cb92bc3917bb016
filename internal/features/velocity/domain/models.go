package domain

import "time"

// Credentials holds the credential set for one Velocity instance.
// All four fields are required and never mutated after construction.
type Credentials struct {
	BaseURL   string
	Username  string
	Password  string
	PortalURL string
}

// Token contains an issued bearer token and its effective expiry.
// ValidUntil already includes the safety margin, so a token is treated
// as expired slightly before the portal would reject it.
type Token struct {
	Value      string
	ValidUntil time.Time
}

// IsValid reports whether the token can still be attached at the given instant
func (t Token) IsValid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ValidUntil)
}

// Request describes a single outbound Velocity API call
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE)
	Method string

	// Path is the API path under the instance base URL
	Path string

	// Params holds optional query parameters
	Params map[string]string

	// Body is an optional structured request body
	Body interface{}
}

// TokenResponse represents the portal's generateToken response
type TokenResponse struct {
	Token   string       `json:"token"`
	Expires int64        `json:"expires"` // milliseconds since epoch
	Error   *PortalError `json:"error,omitempty"`
}

// PortalError is the error payload the portal embeds in a 200 response
type PortalError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SuccessResponse returns the sentinel value for calls that produce no content
func SuccessResponse() map[string]interface{} {
	return map[string]interface{}{"success": true}
}
