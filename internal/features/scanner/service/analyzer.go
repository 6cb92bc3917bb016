package service

import (
	"regexp"
	"strings"

	v1 "k8s.io/api/core/v1"

	"velocity-proxy/internal/features/scanner/domain"
)

// Pod name shapes for the three Velocity workload classes. Feed and
// real-time analytic pods embed the portal item ID directly; big data
// analytic drivers use a "cb" prefix followed by the item ID.
var (
	feedsPodPattern    = regexp.MustCompile(`^feeds-([a-f0-9]+)-[a-z0-9]+-[a-z0-9]+$`)
	realtimePodPattern = regexp.MustCompile(`^rats-([a-f0-9]+)-[0-9]+$`)
	bigDataPodPattern  = regexp.MustCompile(`^cb([a-f0-9]+)-[0-9]+-driver$`)
)

// errorPatterns are checked in order; the first match classifies the line.
var errorPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"fatal", regexp.MustCompile(`(?i)\[FATAL\]`)},
	{"error_tag", regexp.MustCompile(`(?i)\[ERROR\]`)},
	{"java_exception", regexp.MustCompile(`java\.lang\.\w*Exception`)},
	{"traceback", regexp.MustCompile(`Traceback \(most recent call last\)`)},
	{"exception", regexp.MustCompile(`(?i)Exception`)},
	{"error_prefix", regexp.MustCompile(`(?i)Error:`)},
	{"failed", regexp.MustCompile(`(?i)Failed`)},
}

const maxSampleLines = 10

// classifyPod matches a pod name against the workload patterns and
// extracts the embedded item ID.
func classifyPod(name string) (domain.PodCategory, string, bool) {
	if m := feedsPodPattern.FindStringSubmatch(name); m != nil {
		return domain.CategoryFeeds, m[1], true
	}
	if m := realtimePodPattern.FindStringSubmatch(name); m != nil {
		return domain.CategoryRealtime, m[1], true
	}
	if m := bigDataPodPattern.FindStringSubmatch(name); m != nil {
		return domain.CategoryBigData, m[1], true
	}
	return "", "", false
}

// matchPods filters the pod list down to Velocity workload pods.
func matchPods(pods []v1.Pod) []domain.PodInfo {
	var matched []domain.PodInfo
	for i := range pods {
		pod := &pods[i]
		category, itemID, ok := classifyPod(pod.Name)
		if !ok {
			continue
		}
		info := domain.PodInfo{
			Name:     pod.Name,
			Category: category,
			ItemID:   itemID,
		}
		if pod.Status.StartTime != nil {
			info.StartTime = pod.Status.StartTime.Time
		}
		matched = append(matched, info)
	}
	return matched
}

// filterLatestDrivers keeps only the newest big data driver pod per item.
// Spark restarts leave older driver pods behind whose logs would double
// count errors from earlier runs.
func filterLatestDrivers(pods []domain.PodInfo) []domain.PodInfo {
	latest := make(map[string]domain.PodInfo)
	var result []domain.PodInfo

	for _, pod := range pods {
		if pod.Category != domain.CategoryBigData {
			result = append(result, pod)
			continue
		}
		current, exists := latest[pod.ItemID]
		if !exists || pod.StartTime.After(current.StartTime) {
			latest[pod.ItemID] = pod
		}
	}

	for _, pod := range latest {
		result = append(result, pod)
	}
	return result
}

// analyzeLogs scans a pod's log window and tallies error lines.
func analyzeLogs(pod domain.PodInfo, logs string) domain.Findings {
	findings := domain.Findings{
		PodName:    pod.Name,
		Category:   pod.Category,
		ItemID:     pod.ItemID,
		ErrorTypes: make(map[string]int),
	}

	if logs == "" {
		return findings
	}

	lines := strings.Split(logs, "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		findings.TotalLines++

		for _, ep := range errorPatterns {
			if ep.pattern.MatchString(line) {
				findings.ErrorCount++
				findings.ErrorTypes[ep.label]++
				if len(findings.Samples) < maxSampleLines {
					findings.Samples = append(findings.Samples, strings.TrimSpace(line))
				}
				break
			}
		}
	}

	return findings
}
