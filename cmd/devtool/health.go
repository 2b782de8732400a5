package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	healthTimeout       = 5 * time.Second
	slowResponseWarning = time.Second
)

type HealthCheckCommand struct {
	client *http.Client
}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running API (default $API_URL or localhost)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := os.Getenv("API_URL")
	if len(args) > 0 {
		baseURL = args[0]
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	baseURL, err := checkBaseURL(baseURL)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := c.client
	if client == nil {
		client = &http.Client{Timeout: healthTimeout}
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := checkEndpoint(client, baseURL+path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowResponseWarning {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) (time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
