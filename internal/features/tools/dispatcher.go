package tools

import (
	"context"
	"fmt"
	"log/slog"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/tools/domain"
)

// Dispatcher resolves named operations and invokes them with validated arguments
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry
func NewDispatcher(registry *Registry) *Dispatcher {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &Dispatcher{registry: registry}
}

// List returns the definitions of all registered operations
func (d *Dispatcher) List() []domain.Definition {
	return d.registry.List()
}

// Dispatch invokes the named operation with the given arguments
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) (result interface{}, err error) {
	tool, exists := d.registry.Get(name)
	if !exists {
		return nil, common.NotFoundError("unknown tool '%s'", name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	if err := validateArgs(tool.Definition, args); err != nil {
		return nil, err
	}

	// Handler panics must not take down the server
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tool handler panicked", "tool", name, "panic", r)
			result = nil
			err = fmt.Errorf("tool '%s' failed: %v", name, r)
		}
	}()

	return tool.Handler(ctx, args)
}

func validateArgs(def domain.Definition, args map[string]interface{}) error {
	for _, spec := range def.Args {
		if !spec.Required {
			continue
		}
		if _, present := args[spec.Name]; !present {
			return common.InvalidInputError("missing required argument '%s' for tool '%s'", spec.Name, def.Name)
		}
	}
	return nil
}
