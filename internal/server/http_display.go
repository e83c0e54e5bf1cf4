package server

import (
	"fmt"

	"searchfind/internal/utils"
)

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
	s.displayReloadInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET  /health              - Health check")
	fmt.Println("  GET  /stats               - Server statistics")
	if s.obs.MetricsHandler() != nil {
		fmt.Printf("  GET  %-20s - Prometheus metrics\n", s.obs.MetricsEndpoint())
	}
	fmt.Println("  POST /extract             - Extract skills, contacts and experience")
	fmt.Println("  POST /validate            - Classify a document and score completeness")
	fmt.Println("  POST /match               - Score a resume against a job")
	fmt.Println("  POST /rank                - Rank candidates for a job")
	fmt.Println("  POST /suggest             - Resume improvement suggestions")
	fmt.Println("  POST /qualify             - Check a resume against several jobs")
	fmt.Println("  POST /interview           - Generate interview questions")
	fmt.Println("  POST /interview/guidance  - Answer guidance for a question type")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if n := s.APIKeyCount(); n > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", n)
		fmt.Println("Include 'X-API-Key: <your-key>' header in POST requests")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %s\n", utils.FormatFileSize(s.MaxRequestSize))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
		fmt.Println("WARNING: No rate limiting configured!")
	}
}

// displayReloadInfo shows which runtime reloads are active
func (s *Server) displayReloadInfo() {
	if s.catalogWatcher != nil {
		fmt.Printf("Catalog hot reload: watching %s\n", s.catalogWatcher.Path())
	}
	if s.vaultWatcher != nil {
		fmt.Printf("API key rotation: polling Vault every %s\n", s.AppConfig.Vault.PollInterval)
	}
}
