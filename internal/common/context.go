package common

import (
	"context"
	"errors"
	"fmt"
)

// HandleContextError checks for context cancellation and wraps the error with a message
func HandleContextError(ctx context.Context, operation string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s canceled: %w", operation, ctx.Err())
	}
	return nil
}

// IsContextCanceled checks if an error is due to context cancellation
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// WrapError wraps an error with a message and preserves context cancellation
func WrapError(err error, message string) error {
	if IsContextCanceled(err) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return fmt.Errorf("%s: %v", message, err)
}
