package domain

import "context"

// ArgSpec declares one named argument of a tool
type ArgSpec struct {
	// Name is the argument name as supplied by the caller
	Name string `json:"name"`

	// Type is the expected JSON type (string, object, number, integer, boolean)
	Type string `json:"type"`

	// Description explains the argument
	Description string `json:"description"`

	// Required marks arguments that must be present
	Required bool `json:"required"`
}

// Definition describes one named operation and its declared arguments
type Definition struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Args        []ArgSpec `json:"args,omitempty"`
}

// Handler executes a tool against the remote API
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Tool pairs a definition with its handler
type Tool struct {
	Definition Definition
	Handler    Handler
}
