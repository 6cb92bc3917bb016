package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"velocity-proxy/internal/features/scanner/domain"
)

// stubPodFetcher returns a fixed pod list.
type stubPodFetcher struct {
	pods []v1.Pod
	err  error
}

func (s *stubPodFetcher) FetchPods(ctx context.Context, namespace string) ([]v1.Pod, error) {
	return s.pods, s.err
}

// stubLogFetcher returns canned logs per pod name.
type stubLogFetcher struct {
	logs map[string]string
	errs map[string]error
}

func (s *stubLogFetcher) FetchLogs(ctx context.Context, namespace, podName string, sinceSeconds int64) (string, error) {
	if err, exists := s.errs[podName]; exists {
		return "", err
	}
	return s.logs[podName], nil
}

func testPod(name string, started time.Time) v1.Pod {
	startTime := metav1.NewTime(started)
	return v1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "velocity"},
		Status:     v1.PodStatus{StartTime: &startTime},
	}
}

func TestNewScanService(t *testing.T) {
	podFetcher := &stubPodFetcher{}
	logFetcher := &stubLogFetcher{}

	assert.NotNil(t, NewScanService(podFetcher, logFetcher, "velocity", 2))

	assert.Panics(t, func() {
		NewScanService(nil, logFetcher, "velocity", 2)
	}, "Should panic when pod fetcher is nil")

	assert.Panics(t, func() {
		NewScanService(podFetcher, nil, "velocity", 2)
	}, "Should panic when log fetcher is nil")
}

func TestScan(t *testing.T) {
	now := time.Now()
	podFetcher := &stubPodFetcher{pods: []v1.Pod{
		testPod("feeds-1a2b3c4d-abc12-def34", now),
		testPod("rats-deadbeef-0", now),
		testPod("cbaabbcc-1-driver", now.Add(-time.Hour)),
		testPod("cbaabbcc-2-driver", now),
		testPod("coredns-7db6d8ff4d-x2vmk", now),
	}}
	logFetcher := &stubLogFetcher{logs: map[string]string{
		"feeds-1a2b3c4d-abc12-def34": "[ERROR] connection lost\nall good\n",
		"rats-deadbeef-0":            "all good\n",
		"cbaabbcc-2-driver":          "java.lang.OutOfMemoryError\n[ERROR] executor lost\n",
	}}

	scanner := NewScanService(podFetcher, logFetcher, "velocity", 2)
	report, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "velocity", report.Namespace)
	assert.Equal(t, 2, report.HoursBack)
	assert.Equal(t, 3, report.PodsScanned, "Unrelated and stale driver pods are excluded")
	assert.Len(t, report.Pods, 3)
	assert.Equal(t, 2, report.TotalErrors())

	byName := make(map[string]domain.Findings)
	for _, f := range report.Pods {
		byName[f.PodName] = f
	}
	assert.Equal(t, 1, byName["feeds-1a2b3c4d-abc12-def34"].ErrorCount)
	assert.Equal(t, 0, byName["rats-deadbeef-0"].ErrorCount)
	assert.Contains(t, byName, "cbaabbcc-2-driver")
	assert.NotContains(t, byName, "cbaabbcc-1-driver")
}

func TestScanPodListFailure(t *testing.T) {
	podFetcher := &stubPodFetcher{err: fmt.Errorf("connection refused")}
	scanner := NewScanService(podFetcher, &stubLogFetcher{}, "velocity", 2)

	_, err := scanner.Scan(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan failed")
}

func TestScanSkipsUnfetchablePods(t *testing.T) {
	now := time.Now()
	podFetcher := &stubPodFetcher{pods: []v1.Pod{
		testPod("feeds-1a2b3c4d-abc12-def34", now),
		testPod("rats-deadbeef-0", now),
	}}
	logFetcher := &stubLogFetcher{
		logs: map[string]string{"rats-deadbeef-0": "all good\n"},
		errs: map[string]error{"feeds-1a2b3c4d-abc12-def34": fmt.Errorf("container not ready")},
	}

	scanner := NewScanService(podFetcher, logFetcher, "velocity", 2)
	report, err := scanner.Scan(context.Background())
	require.NoError(t, err, "One unreadable pod must not fail the whole scan")

	assert.Equal(t, 2, report.PodsScanned)
	assert.Len(t, report.Pods, 1, "The unreadable pod is skipped")
	assert.Equal(t, "rats-deadbeef-0", report.Pods[0].PodName)
}

func TestWriteReport(t *testing.T) {
	scanner := NewScanService(&stubPodFetcher{}, &stubLogFetcher{}, "velocity", 2)

	report := &domain.Report{
		Namespace:   "velocity",
		GeneratedAt: time.Now(),
		HoursBack:   2,
		PodsScanned: 1,
		Pods: []domain.Findings{{
			PodName:    "feeds-1a2b3c4d-abc12-def34",
			Category:   domain.CategoryFeeds,
			ItemID:     "1a2b3c4d",
			TotalLines: 10,
			ErrorCount: 2,
			ErrorTypes: map[string]int{"error_tag": 2},
			Samples:    []string{"[ERROR] connection lost"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, scanner.WriteReport(&buf, report))

	output := buf.String()
	assert.Contains(t, output, "feeds-1a2b3c4d-abc12-def34")
	assert.Contains(t, output, "item=1a2b3c4d")
	assert.Contains(t, output, "error_tag: 2")
	assert.Contains(t, output, "[ERROR] connection lost")

	assert.Error(t, scanner.WriteReport(&buf, nil))
}

func TestPodFetcherWithFakeClientset(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&v1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "rats-deadbeef-0", Namespace: "velocity"}},
		&v1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "other-pod", Namespace: "other"}},
	)

	fetcher := newPodFetcher(clientset)
	pods, err := fetcher.FetchPods(context.Background(), "velocity")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "rats-deadbeef-0", pods[0].Name)
}
