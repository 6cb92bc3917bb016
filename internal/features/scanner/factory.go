package scanner

import (
	"k8s.io/client-go/kubernetes"

	"velocity-proxy/internal/features/scanner/domain"
	"velocity-proxy/internal/features/scanner/service"
)

// Config carries the scanner settings.
type Config struct {
	Namespace string
	HoursBack int
}

// NewScanner wires a scanner over the given Kubernetes client.
func NewScanner(client kubernetes.Interface, cfg Config) domain.Scanner {
	if client == nil {
		panic("kubernetes client cannot be nil")
	}
	return service.NewService(client, cfg.Namespace, cfg.HoursBack)
}
