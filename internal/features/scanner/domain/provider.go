package domain

import (
	"context"
	"io"

	v1 "k8s.io/api/core/v1"
)

// PodFetcher lists pods in a namespace
type PodFetcher interface {
	FetchPods(ctx context.Context, namespace string) ([]v1.Pod, error)
}

// LogFetcher retrieves container logs for a pod
type LogFetcher interface {
	FetchLogs(ctx context.Context, namespace, podName string, sinceSeconds int64) (string, error)
}

// Scanner runs a full diagnostic pass over the Velocity workload pods
type Scanner interface {
	Scan(ctx context.Context) (*Report, error)
	WriteReport(w io.Writer, report *Report) error
}
