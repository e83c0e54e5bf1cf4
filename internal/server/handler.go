package server

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"searchfind/internal/utils"
)

const defaultHealthCheckTimeout = 10 * time.Second

// healthHandler reports service health including catalog and AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "searchfind",
		"version": s.Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	}

	healthy := true
	if tk := s.Toolkit(); tk != nil {
		response["catalog"] = tk.Catalog.Stats()
	} else {
		response["catalog"] = map[string]any{"loaded": false}
		healthy = false
	}

	if aiStatus, ok := s.checkAIHealth(r.Context()); aiStatus != nil {
		response["ai"] = aiStatus
		healthy = healthy && ok
	}

	if s.vaultWatcher != nil {
		response["vault"] = s.vaultWatcher.Status()
	}
	if s.catalogWatcher != nil {
		response["catalog_watcher"] = map[string]any{
			"running": s.catalogWatcher.IsRunning(),
			"file":    s.catalogWatcher.Path(),
		}
	}

	status := http.StatusOK
	if !healthy {
		response["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}

// checkAIHealth reports the model and circuit breakers when AI questions are
// enabled. The boolean is false when the model is unreachable.
func (s *Server) checkAIHealth(ctx context.Context) (map[string]any, bool) {
	if s.aiService == nil {
		return nil, true
	}

	timeout := s.AppConfig.AI.ModelCheckTimeout
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	modelInfo := s.aiService.GetModelInfo(ctx)
	return map[string]any{
		"model":            modelInfo,
		"circuit_breakers": s.aiService.CircuitBreakerStats(),
	}, modelInfo.Available
}

// statsHandler provides runtime, catalog and rate limiting statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response := map[string]any{
		"service": "searchfind",
		"version": s.Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"runtime": map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"heap_alloc": utils.FormatFileSize(int64(mem.HeapAlloc)),
		},
		"auth": map[string]any{
			"enabled":   s.APIKeyCount() > 0,
			"key_count": s.APIKeyCount(),
		},
		"max_request_size": utils.FormatFileSize(s.MaxRequestSize),
		"ai_enabled":       s.aiService != nil,
	}

	if tk := s.Toolkit(); tk != nil {
		response["catalog"] = tk.Catalog.Stats()
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	writeJSON(w, http.StatusOK, response)
}
