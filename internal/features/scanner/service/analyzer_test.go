package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"velocity-proxy/internal/features/scanner/domain"
)

func TestClassifyPod(t *testing.T) {
	tests := []struct {
		name     string
		podName  string
		category domain.PodCategory
		itemID   string
		matched  bool
	}{
		{"feed pod", "feeds-1a2b3c4d-abc12-def34", domain.CategoryFeeds, "1a2b3c4d", true},
		{"realtime pod", "rats-deadbeef-0", domain.CategoryRealtime, "deadbeef", true},
		{"bigdata driver", "cbdeadbeef-1-driver", domain.CategoryBigData, "deadbeef", true},
		{"bigdata executor ignored", "cbdeadbeef-1-exec-1", "", "", false},
		{"unrelated pod", "coredns-7db6d8ff4d-x2vmk", "", "", false},
		{"uppercase not matched", "FEEDS-1a2b3c4d-abc12-def34", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, itemID, matched := classifyPod(tc.podName)
			assert.Equal(t, tc.matched, matched)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.itemID, itemID)
		})
	}
}

func TestMatchPods(t *testing.T) {
	started := metav1.NewTime(time.Now())
	pods := []v1.Pod{
		{ObjectMeta: metav1.ObjectMeta{Name: "feeds-1a2b3c4d-abc12-def34"}, Status: v1.PodStatus{StartTime: &started}},
		{ObjectMeta: metav1.ObjectMeta{Name: "coredns-7db6d8ff4d-x2vmk"}},
		{ObjectMeta: metav1.ObjectMeta{Name: "rats-deadbeef-0"}},
	}

	matched := matchPods(pods)
	assert.Len(t, matched, 2)
	assert.Equal(t, "feeds-1a2b3c4d-abc12-def34", matched[0].Name)
	assert.Equal(t, started.Time, matched[0].StartTime)
	assert.Equal(t, domain.CategoryRealtime, matched[1].Category)
}

func TestFilterLatestDrivers(t *testing.T) {
	now := time.Now()
	pods := []domain.PodInfo{
		{Name: "rats-deadbeef-0", Category: domain.CategoryRealtime, ItemID: "deadbeef"},
		{Name: "cbaabbcc-1-driver", Category: domain.CategoryBigData, ItemID: "aabbcc", StartTime: now.Add(-time.Hour)},
		{Name: "cbaabbcc-2-driver", Category: domain.CategoryBigData, ItemID: "aabbcc", StartTime: now},
		{Name: "cbddeeff-1-driver", Category: domain.CategoryBigData, ItemID: "ddeeff", StartTime: now.Add(-time.Minute)},
	}

	filtered := filterLatestDrivers(pods)
	assert.Len(t, filtered, 3, "Only the newest driver per item survives")

	names := make(map[string]bool)
	for _, pod := range filtered {
		names[pod.Name] = true
	}
	assert.True(t, names["rats-deadbeef-0"], "Non-driver pods pass through untouched")
	assert.True(t, names["cbaabbcc-2-driver"], "Newest driver is kept")
	assert.False(t, names["cbaabbcc-1-driver"], "Stale driver is dropped")
	assert.True(t, names["cbddeeff-1-driver"])
}

func TestAnalyzeLogs(t *testing.T) {
	pod := domain.PodInfo{Name: "feeds-1a2b3c4d-abc12-def34", Category: domain.CategoryFeeds, ItemID: "1a2b3c4d"}

	logs := "2026-08-31T10:00:00Z starting up\n" +
		"2026-08-31T10:00:01Z [ERROR] connection lost\n" +
		"2026-08-31T10:00:02Z java.lang.NullPointerException at Foo.bar\n" +
		"2026-08-31T10:00:03Z processing batch 12\n" +
		"2026-08-31T10:00:04Z [FATAL] out of memory\n" +
		"2026-08-31T10:00:05Z request Failed after 3 attempts\n"

	findings := analyzeLogs(pod, logs)

	assert.Equal(t, "feeds-1a2b3c4d-abc12-def34", findings.PodName)
	assert.Equal(t, 6, findings.TotalLines)
	assert.Equal(t, 4, findings.ErrorCount)
	assert.Equal(t, 1, findings.ErrorTypes["error_tag"])
	assert.Equal(t, 1, findings.ErrorTypes["java_exception"])
	assert.Equal(t, 1, findings.ErrorTypes["fatal"])
	assert.Equal(t, 1, findings.ErrorTypes["failed"])
	assert.Len(t, findings.Samples, 4)
}

func TestAnalyzeLogsFirstMatchWins(t *testing.T) {
	pod := domain.PodInfo{Name: "rats-deadbeef-0", Category: domain.CategoryRealtime}

	// One line that matches several patterns counts once, under the
	// highest-priority label
	findings := analyzeLogs(pod, "[FATAL] java.lang.RuntimeException: request Failed\n")

	assert.Equal(t, 1, findings.ErrorCount)
	assert.Equal(t, map[string]int{"fatal": 1}, findings.ErrorTypes)
}

func TestAnalyzeLogsEmpty(t *testing.T) {
	pod := domain.PodInfo{Name: "rats-deadbeef-0", Category: domain.CategoryRealtime}

	findings := analyzeLogs(pod, "")
	assert.Equal(t, 0, findings.TotalLines)
	assert.Equal(t, 0, findings.ErrorCount)
	assert.Empty(t, findings.Samples)
}

func TestAnalyzeLogsSampleCap(t *testing.T) {
	pod := domain.PodInfo{Name: "rats-deadbeef-0", Category: domain.CategoryRealtime}

	var logs string
	for i := 0; i < maxSampleLines+5; i++ {
		logs += "[ERROR] repeated failure\n"
	}

	findings := analyzeLogs(pod, logs)
	assert.Equal(t, maxSampleLines+5, findings.ErrorCount)
	assert.Len(t, findings.Samples, maxSampleLines, "Samples are capped")
}
