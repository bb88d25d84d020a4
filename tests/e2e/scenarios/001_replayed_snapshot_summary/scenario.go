package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic snapshot generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	jobsLast7Days  = 40
	jobsLast30Days = 120
)

var (
	// Every fourth job is still running and must never be counted.
	states = []string{"COMPLETED", "FAILED", "TIMEOUT", "RUNNING"}
	// CPU efficiency of job i is cpuShares[i%4] percent.
	cpuShares = []int{10, 30, 60, 90}
)

// ### End - fixed configs

type expectation struct {
	filter         string
	last7Days      int
	last30Days     int
	cpuBucketTotal int
}

type summaryResponse struct {
	Success bool `json:"success"`
	Data    struct {
		StateFilter string `json:"state_filter"`
		Last7Days   struct {
			JobsConsidered int `json:"jobs_considered"`
			CPU            struct {
				Count   int            `json:"count"`
				Buckets map[string]int `json:"buckets"`
			} `json:"cpu"`
		} `json:"last_7_days"`
		Last30Days struct {
			JobsConsidered int `json:"jobs_considered"`
		} `json:"last_30_days"`
	} `json:"data"`
}

// main runs the e2e scenario: 001_replayed_snapshot_summary
//
// The server must run with the file source and the same storage root and user, e.g.
//
//	JOBEFF_ACCOUNTING_SOURCE=file JOBEFF_ACCOUNTING_USER=e2e \
//	JOBEFF_FILE_STORAGE_ROOT_DIR=.tmp/file-storage go run ./cmd/server
//
// What it tests:
//   - Snapshot replay through the file source
//   - Extraction, in-flight filtering and state filters over the HTTP API
//   - The terminal alias and unknown filter values falling back to total
//   - Concurrent summary requests returning identical results
//   - The health endpoint
//
// Expected results:
//   - completed: 10 jobs in the last 7 days, 30 in the last 30 days
//   - total, terminal and unknown filters: 30 and 90 jobs
//   - RUNNING rows never counted
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the job efficiency API server
	user := "e2e"                         // Accounting user the server replays snapshots for
	requestsPerFilter := 50               // Summary requests sent for every filter value
	parallel := 8                         // Number of concurrent requests
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	storagePath, err := filepath.Abs(filepath.Join(projectRoot, fileStorageDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve file storage path: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_replayed_snapshot_summary")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("USER: %s\n", user)
	fmt.Printf("REQUESTS_PER_FILTER: %d\n", requestsPerFilter)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Println()

	for days, jobs := range map[int]int{7: jobsLast7Days, 30: jobsLast30Days} {
		path, err := writeSnapshot(storagePath, user, days, jobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to write %d day snapshot: %v\n", days, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d jobs to %s\n", jobs, path)
	}
	fmt.Println()

	if err := checkHealth(baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: health check failed: %v\n", err)
		os.Exit(1)
	}

	expectations := []expectation{
		{filter: "completed", last7Days: 10, last30Days: 30, cpuBucketTotal: 10},
		{filter: "total", last7Days: 30, last30Days: 90, cpuBucketTotal: 30},
		{filter: "terminal", last7Days: 30, last30Days: 90, cpuBucketTotal: 30},
		{filter: "bogus", last7Days: 30, last30Days: 90, cpuBucketTotal: 30},
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error
	var okRequests int64
	var failedRequests int64

	for _, exp := range expectations {
		for i := 0; i < requestsPerFilter; i++ {
			wg.Add(1)
			workerChan <- struct{}{} // Acquire worker slot

			go func(e expectation) {
				defer wg.Done()
				defer func() { <-workerChan }() // Release worker slot

				if err := checkSummary(baseURL, e); err != nil {
					atomic.AddInt64(&failedRequests, 1)
					mu.Lock()
					failures = append(failures, fmt.Errorf("filter %s: %w", e.filter, err))
					mu.Unlock()
					return
				}
				atomic.AddInt64(&okRequests, 1)
			}(exp)
		}
	}

	wg.Wait()

	fmt.Println("=== Statistics ===")
	fmt.Printf("Successful requests: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Printf("Failed requests: %d\n", atomic.LoadInt64(&failedRequests))

	if len(failures) > 0 {
		for _, err := range failures[:min(len(failures), 10)] {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	projectRoot, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	// Walk up the directory tree to find go.mod
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			return projectRoot, nil
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			break
		}
		projectRoot = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from the project root")
}

// writeSnapshot writes a parsable sacct listing with one main row and one step row per job.
func writeSnapshot(storagePath, user string, days, jobs int) (string, error) {
	var sb strings.Builder
	for i := 0; i < jobs; i++ {
		jobID := 1000*days + i
		state := states[i%len(states)]
		cpuSeconds := 3600 * 4 * cpuShares[i%len(cpuShares)] / 100

		fmt.Fprintf(&sb, "%d|%s|3600|120|4|1|%s||8G||billing=4,cpu=4,mem=8G,node=1\n",
			jobID, state, clock(cpuSeconds))
		fmt.Fprintf(&sb, "%d.batch|%s|3600|120|4|1|%s|%dM|8G|cpu=00:10:00,mem=%dM|\n",
			jobID, state, clock(cpuSeconds), 1024*(1+i%8), 1024*(1+i%8))
	}

	path := filepath.Join(storagePath, "snapshots", user, fmt.Sprintf("last-%d-days.txt", days))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(sb.String()), 0o644)
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func checkHealth(baseURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		return fmt.Errorf("HTTP %d status %q", resp.StatusCode, body.Status)
	}
	return nil
}

func checkSummary(baseURL string, e expectation) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + "/api/job-efficiency-summary?state_filter=" + e.filter)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var body summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	switch {
	case !body.Success:
		return fmt.Errorf("success=false")
	case body.Data.Last7Days.JobsConsidered != e.last7Days:
		return fmt.Errorf("last_7_days.jobs_considered = %d, want %d", body.Data.Last7Days.JobsConsidered, e.last7Days)
	case body.Data.Last30Days.JobsConsidered != e.last30Days:
		return fmt.Errorf("last_30_days.jobs_considered = %d, want %d", body.Data.Last30Days.JobsConsidered, e.last30Days)
	}

	bucketTotal := 0
	for _, count := range body.Data.Last7Days.CPU.Buckets {
		bucketTotal += count
	}
	if bucketTotal != e.cpuBucketTotal || body.Data.Last7Days.CPU.Count != e.cpuBucketTotal {
		return fmt.Errorf("cpu buckets hold %d of %d samples, want %d", bucketTotal, body.Data.Last7Days.CPU.Count, e.cpuBucketTotal)
	}
	return nil
}
