package domain

import "time"

// PodCategory identifies which Velocity workload class a pod belongs to
type PodCategory string

const (
	// CategoryFeeds covers feed ingestion pods
	CategoryFeeds PodCategory = "feeds"
	// CategoryRealtime covers real-time analytic pods
	CategoryRealtime PodCategory = "rats"
	// CategoryBigData covers big data analytic driver pods
	CategoryBigData PodCategory = "bats"
)

// PodInfo describes a matched pod before its logs are scanned
type PodInfo struct {
	Name      string
	Category  PodCategory
	ItemID    string
	StartTime time.Time
}

// Findings summarizes the errors detected in one pod's logs
type Findings struct {
	PodName    string         `json:"podName"`
	Category   PodCategory    `json:"category"`
	ItemID     string         `json:"itemId,omitempty"`
	TotalLines int            `json:"totalLines"`
	ErrorCount int            `json:"errorCount"`
	ErrorTypes map[string]int `json:"errorTypes,omitempty"`
	Samples    []string       `json:"samples,omitempty"`
}

// Report is the aggregate result of a scan across all matched pods
type Report struct {
	Namespace   string     `json:"namespace"`
	GeneratedAt time.Time  `json:"generatedAt"`
	HoursBack   int        `json:"hoursBack"`
	PodsScanned int        `json:"podsScanned"`
	Pods        []Findings `json:"pods"`
}

// TotalErrors returns the sum of error counts across all scanned pods
func (r *Report) TotalErrors() int {
	total := 0
	for _, f := range r.Pods {
		total += f.ErrorCount
	}
	return total
}
