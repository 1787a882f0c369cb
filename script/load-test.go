package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// GenerationRequest represents the generation payload
type GenerationRequest struct {
	Prompt string `json:"prompt"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Denied       bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	DeniedRequests     int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[int]int // Track requests per account
	Lock               sync.Mutex
}

var prompts = []string{
	"Summarize my weekly activity",
	"Suggest a low-impact workout plan",
	"Explain this lab result in plain language",
	"Draft a meal plan for the next three days",
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountIDsStr := flag.String("a", "1,2,3", "Comma-separated list of account IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	// Parse account IDs
	var accountIDs []int
	for _, idStr := range strings.Split(*accountIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			accountIDs = append(accountIDs, id)
		}
	}

	// Default to account ID 1 if no valid IDs provided
	if len(accountIDs) == 0 {
		accountIDs = []int{1}
	}

	fmt.Printf("Load testing API across %d accounts: %v\n", len(accountIDs), accountIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[int]int),
	}

	for _, id := range accountIDs {
		stats.AccountStats[id] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, accountIDs, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Denied:
				stats.DeniedRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.DeniedRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(id int, baseURL string, delayMs int, accountIDs []int,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	for range jobs {
		// Optional delay between requests to prevent hammering the provider
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select an account ID
		accountID := accountIDs[rand.Intn(len(accountIDs))]

		stats.Lock.Lock()
		stats.AccountStats[accountID]++
		stats.Lock.Unlock()

		apiURL := fmt.Sprintf("%s/accounts/%d/generations", baseURL, accountID)

		payload := GenerationRequest{
			Prompt: prompts[rand.Intn(len(prompts))],
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		// Send the request and measure response time
		reqStart := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(reqStart)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			switch {
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				result.Success = true
			case resp.StatusCode == http.StatusPaymentRequired:
				// Running accounts out of credits is expected under load
				result.Denied = true
			default:
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Authorized Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Denied (no credits): %d (%.1f%%)\n", stats.DeniedRequests,
		float64(stats.DeniedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (authorized requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (all requests / total time)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print account distribution
	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	totalAccounts := 0
	for _, count := range stats.AccountStats {
		totalAccounts += count
	}
	for accountID, count := range stats.AccountStats {
		if count > 0 {
			fmt.Printf("Account %d:    %d requests (%.1f%%)\n", accountID, count,
				float64(count)/float64(totalAccounts)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
