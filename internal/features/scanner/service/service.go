package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"k8s.io/client-go/kubernetes"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/scanner/domain"
)

// NewService builds a scanner with the default Kubernetes fetchers.
func NewService(client kubernetes.Interface, namespace string, hoursBack int) domain.Scanner {
	return NewScanService(newPodFetcher(client), newLogFetcher(client), namespace, hoursBack)
}

// scanService implements the domain.Scanner interface.
type scanService struct {
	podFetcher domain.PodFetcher
	logFetcher domain.LogFetcher
	namespace  string
	hoursBack  int
}

// NewScanService creates a scanner over the given fetchers.
func NewScanService(podFetcher domain.PodFetcher, logFetcher domain.LogFetcher, namespace string, hoursBack int) domain.Scanner {
	if podFetcher == nil {
		panic("pod fetcher cannot be nil")
	}
	if logFetcher == nil {
		panic("log fetcher cannot be nil")
	}
	if hoursBack <= 0 {
		hoursBack = 2
	}
	return &scanService{
		podFetcher: podFetcher,
		logFetcher: logFetcher,
		namespace:  namespace,
		hoursBack:  hoursBack,
	}
}

// Scan lists the workload pods, pulls their recent logs and tallies errors.
func (s *scanService) Scan(ctx context.Context) (*domain.Report, error) {
	pods, err := s.podFetcher.FetchPods(ctx, s.namespace)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	matched := filterLatestDrivers(matchPods(pods))
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	slog.Info("scanning pod logs",
		"namespace", s.namespace,
		"matched_pods", len(matched),
		"hours_back", s.hoursBack)

	sinceSeconds := int64(s.hoursBack) * 3600
	report := &domain.Report{
		Namespace:   s.namespace,
		GeneratedAt: time.Now(),
		HoursBack:   s.hoursBack,
		PodsScanned: len(matched),
	}

	for _, pod := range matched {
		if err := common.HandleContextError(ctx, "pod log scan"); err != nil {
			return nil, err
		}

		logs, err := s.logFetcher.FetchLogs(ctx, s.namespace, pod.Name, sinceSeconds)
		if err != nil {
			slog.Warn("skipping pod, log fetch failed", "pod", pod.Name, "error", err)
			continue
		}

		findings := analyzeLogs(pod, logs)
		if findings.ErrorCount > 0 {
			slog.Info("errors found in pod logs",
				"pod", pod.Name,
				"category", pod.Category,
				"errors", findings.ErrorCount)
		}
		report.Pods = append(report.Pods, findings)
	}

	return report, nil
}

// WriteReport renders a report in a readable text form.
func (s *scanService) WriteReport(w io.Writer, report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	fmt.Fprintf(w, "Pod log scan for namespace %q (last %dh, generated %s)\n",
		report.Namespace, report.HoursBack, report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Pods scanned: %d, total errors: %d\n\n", report.PodsScanned, report.TotalErrors())

	for _, f := range report.Pods {
		fmt.Fprintf(w, "%s [%s]", f.PodName, f.Category)
		if f.ItemID != "" {
			fmt.Fprintf(w, " item=%s", f.ItemID)
		}
		fmt.Fprintf(w, ": %d/%d lines with errors\n", f.ErrorCount, f.TotalLines)

		if len(f.ErrorTypes) > 0 {
			labels := make([]string, 0, len(f.ErrorTypes))
			for label := range f.ErrorTypes {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Fprintf(w, "  %s: %d\n", label, f.ErrorTypes[label])
			}
		}
		for _, sample := range f.Samples {
			fmt.Fprintf(w, "    %s\n", sample)
		}
		fmt.Fprintln(w)
	}

	return nil
}
