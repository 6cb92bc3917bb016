package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	v1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/scanner/domain"
)

// logFetcher implements the domain.LogFetcher interface.
type logFetcher struct {
	client kubernetes.Interface
}

// FetchLogs retrieves the log window for a pod with retry on transient failures.
func (f *logFetcher) FetchLogs(ctx context.Context, namespace, podName string, sinceSeconds int64) (string, error) {
	var logs string

	operation := func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		req := f.client.CoreV1().Pods(namespace).GetLogs(podName, &v1.PodLogOptions{
			SinceSeconds: &sinceSeconds,
			Timestamps:   true,
		})

		stream, err := req.Stream(ctx)
		if err != nil {
			return fmt.Errorf("failed to open log stream for pod %s: %w", podName, err)
		}
		defer stream.Close()

		data, err := io.ReadAll(stream)
		if err != nil {
			return fmt.Errorf("failed to read logs for pod %s: %w", podName, err)
		}

		logs = string(data)
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = 30 * time.Second

	err := backoff.RetryNotify(
		operation,
		expBackoff,
		func(err error, duration time.Duration) {
			if common.IsContextCanceled(err) {
				return
			}
			slog.Warn("log fetch failed, retrying",
				"pod", podName,
				"error", err,
				"retry_in", duration)
		},
	)
	if err != nil {
		return "", err
	}

	return logs, nil
}

// newLogFetcher creates a new log fetcher.
func newLogFetcher(client kubernetes.Interface) domain.LogFetcher {
	return &logFetcher{client: client}
}
