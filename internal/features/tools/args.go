package tools

import (
	"velocity-proxy/internal/common"
)

// stringArg extracts a required string argument
func stringArg(args map[string]interface{}, name string) (string, error) {
	value, exists := args[name]
	if !exists {
		return "", common.InvalidInputError("missing required argument '%s'", name)
	}
	s, ok := value.(string)
	if !ok {
		return "", common.InvalidInputError("argument '%s' must be a string", name)
	}
	return s, nil
}

// optionalString extracts an optional string argument, empty when absent
func optionalString(args map[string]interface{}, name string) string {
	if value, exists := args[name]; exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// objectArg extracts a required structured argument
func objectArg(args map[string]interface{}, name string) (interface{}, error) {
	value, exists := args[name]
	if !exists {
		return nil, common.InvalidInputError("missing required argument '%s'", name)
	}
	return value, nil
}

// numberArg extracts a required numeric argument. JSON numbers decode
// as float64, so that is the only accepted representation.
func numberArg(args map[string]interface{}, name string) (float64, error) {
	value, exists := args[name]
	if !exists {
		return 0, common.InvalidInputError("missing required argument '%s'", name)
	}
	f, ok := value.(float64)
	if !ok {
		return 0, common.InvalidInputError("argument '%s' must be a number", name)
	}
	return f, nil
}

// intArg extracts a required integer argument
func intArg(args map[string]interface{}, name string) (int, error) {
	f, err := numberArg(args, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
