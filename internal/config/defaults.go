package config

import (
	"time"

	"github.com/spf13/viper"

	"searchfind/internal/interview"
	"searchfind/internal/matching"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "yaml", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 5*1024*1024) // 5MB, PDFs are bulky

	// Reference catalog
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.debounceDelay", 500*time.Millisecond)

	// Matching engine
	m := matching.DefaultConfig()
	v.SetDefault("matching.weights.skills", m.Weights.Skills)
	v.SetDefault("matching.weights.experience", m.Weights.Experience)
	v.SetDefault("matching.weights.education", m.Weights.Education)
	v.SetDefault("matching.weights.jobTitle", m.Weights.JobTitle)
	v.SetDefault("matching.weights.location", m.Weights.Location)
	v.SetDefault("matching.fuzzyThreshold", m.FuzzyThreshold)
	v.SetDefault("matching.referenceYear", 0)
	v.SetDefault("matching.workers", m.Workers)

	// Interview questions
	q := interview.DefaultConfig()
	v.SetDefault("interview.seed", q.Seed)
	v.SetDefault("interview.technical", q.Technical)
	v.SetDefault("interview.behavioral", q.Behavioral)
	v.SetDefault("interview.company", q.Company)
	v.SetDefault("interview.useAI", false)
	v.SetDefault("interview.aiQuestions", q.AIQuestions)

	// AI Configuration
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 2)
	v.SetDefault("ai.temperature", 0.7) // some variety in generated questions
	v.SetDefault("ai.useSystemPrompts", true)
	v.SetDefault("ai.prompts.system", "")
	v.SetDefault("ai.prompts.systemFile", "")
	v.SetDefault("ai.prompts.user", "")
	v.SetDefault("ai.prompts.userFile", "")
	v.SetDefault("ai.modelCheckTimeout", 10*time.Second)

	v.SetDefault("ai.circuitBreaker.enabled", true)
	v.SetDefault("ai.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 60*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.shutdownTimeout", 15*time.Second)
	v.SetDefault("server.maxBodySize", 10*1024*1024)
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.apiKeys", []string{})
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.pollInterval", time.Duration(0))
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "searchfind")
	v.SetDefault("observability.serviceVersion", "") // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "")
	v.SetDefault("observability.sampleRate", 1.0)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.matching.enabled", true)
	v.SetDefault("observability.customMetrics.matching.trackScores", true)
	v.SetDefault("observability.customMetrics.matching.trackRanking", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackCatalogReloads", true)

	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "")

	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
