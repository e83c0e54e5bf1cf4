package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the custom instruments
type Metrics struct {
	// AI operation metrics
	AIProcessingTime metric.Float64Histogram
	AIRequestCount   metric.Int64Counter
	AIErrorCount     metric.Int64Counter
	AITokenUsage     metric.Int64Histogram

	// Matching metrics
	MatchesScored      metric.Int64Counter
	MatchScore         metric.Float64Histogram
	RankingDuration    metric.Float64Histogram
	RankingCandidates  metric.Int64Histogram
	DocumentsValidated metric.Int64Counter
	Operations         metric.Int64Counter

	// Infrastructure metrics
	RateLimitHits  metric.Int64Counter
	CatalogReloads metric.Int64Counter
}

// AIOperationResult holds the outcome of an AI call including token usage
type AIOperationResult struct {
	Error      error
	TokenUsage *TokenUsage
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.AIProcessingTime, err = meter.Float64Histogram(
		"searchfind_ai_processing_duration",
		metric.WithDescription("Time spent processing AI requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create AI processing time metric: %w", err)
	}

	if m.AIRequestCount, err = meter.Int64Counter(
		"searchfind_ai_requests",
		metric.WithDescription("Total number of AI requests"),
	); err != nil {
		return nil, fmt.Errorf("failed to create AI request count metric: %w", err)
	}

	if m.AIErrorCount, err = meter.Int64Counter(
		"searchfind_ai_errors",
		metric.WithDescription("Total number of AI request errors"),
	); err != nil {
		return nil, fmt.Errorf("failed to create AI error count metric: %w", err)
	}

	if m.AITokenUsage, err = meter.Int64Histogram(
		"searchfind_ai_token_usage",
		metric.WithDescription("Token usage for AI requests (input, output, total)"),
		metric.WithUnit("{token}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create AI token usage metric: %w", err)
	}

	if m.MatchesScored, err = meter.Int64Counter(
		"searchfind_matches_scored",
		metric.WithDescription("Total number of resume/job pairs scored"),
	); err != nil {
		return nil, fmt.Errorf("failed to create matches scored metric: %w", err)
	}

	if m.MatchScore, err = meter.Float64Histogram(
		"searchfind_match_score",
		metric.WithDescription("Distribution of overall match scores"),
		metric.WithExplicitBucketBoundaries(20, 40, 55, 70, 85, 100),
	); err != nil {
		return nil, fmt.Errorf("failed to create match score metric: %w", err)
	}

	if m.RankingDuration, err = meter.Float64Histogram(
		"searchfind_ranking_duration",
		metric.WithDescription("Time spent ranking a batch of candidates"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create ranking duration metric: %w", err)
	}

	if m.RankingCandidates, err = meter.Int64Histogram(
		"searchfind_ranking_candidates",
		metric.WithDescription("Number of candidates per ranking request"),
	); err != nil {
		return nil, fmt.Errorf("failed to create ranking candidates metric: %w", err)
	}

	if m.DocumentsValidated, err = meter.Int64Counter(
		"searchfind_documents_validated",
		metric.WithDescription("Total number of documents checked for type"),
	); err != nil {
		return nil, fmt.Errorf("failed to create documents validated metric: %w", err)
	}

	if m.Operations, err = meter.Int64Counter(
		"searchfind_operations",
		metric.WithDescription("Total number of analysis operations by kind"),
	); err != nil {
		return nil, fmt.Errorf("failed to create operations metric: %w", err)
	}

	if m.RateLimitHits, err = meter.Int64Counter(
		"searchfind_rate_limit_hits",
		metric.WithDescription("Total number of rate limit hits"),
	); err != nil {
		return nil, fmt.Errorf("failed to create rate limit hits metric: %w", err)
	}

	if m.CatalogReloads, err = meter.Int64Counter(
		"searchfind_catalog_reloads",
		metric.WithDescription("Total number of reference catalog reloads"),
	); err != nil {
		return nil, fmt.Errorf("failed to create catalog reload metric: %w", err)
	}

	return m, nil
}

// TrackAIOperation runs fn inside a span and records duration, request,
// error and token metrics. It returns fn's error.
func (m *Manager) TrackAIOperation(ctx context.Context, operation string, fn func(context.Context) *AIOperationResult) error {
	if !m.Enabled() || m.metrics == nil {
		if result := fn(ctx); result != nil {
			return result.Error
		}
		return nil
	}

	ctx, span := m.Tracer("searchfind.ai").Start(ctx, "ai."+operation)
	defer span.End()

	start := time.Now()
	result := fn(ctx)
	duration := time.Since(start).Seconds()

	var err error
	if result != nil {
		err = result.Error
	}

	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	}
	span.SetAttributes(attrs...)

	aiConfig := m.config.CustomMetrics.AIOperations
	if aiConfig.Enabled {
		if aiConfig.TrackDuration {
			m.metrics.AIProcessingTime.Record(ctx, duration, metric.WithAttributes(attrs...))
		}
		m.metrics.AIRequestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
		if err != nil {
			m.metrics.AIErrorCount.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
	}

	if result != nil && result.TokenUsage != nil {
		usage := result.TokenUsage
		if aiConfig.Enabled && aiConfig.TrackTokenUsage {
			m.recordTokens(ctx, operation, usage)
		}
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", usage.InputTokens),
			attribute.Int64("ai.tokens.output", usage.OutputTokens),
			attribute.Int64("ai.tokens.total", usage.TotalTokens),
		)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (m *Manager) recordTokens(ctx context.Context, operation string, usage *TokenUsage) {
	tokenTypes := []struct {
		tokenType string
		value     int64
	}{
		{"input", usage.InputTokens},
		{"output", usage.OutputTokens},
		{"total", usage.TotalTokens},
	}

	for _, tt := range tokenTypes {
		m.metrics.AITokenUsage.Record(ctx, tt.value, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("token_type", tt.tokenType),
		))
	}
}

func (m *Manager) matchingEnabled() bool {
	return m.Enabled() && m.metrics != nil && m.config.CustomMetrics.Matching.Enabled
}

// RecordMatch counts one scored pair and, if enabled, its score
func (m *Manager) RecordMatch(ctx context.Context, score float64, category string) {
	if !m.matchingEnabled() {
		return
	}
	attrs := metric.WithAttributes(attribute.String("category", category))
	m.metrics.MatchesScored.Add(ctx, 1, attrs)
	if m.config.CustomMetrics.Matching.TrackScores {
		m.metrics.MatchScore.Record(ctx, score, attrs)
	}
}

// RecordRanking records the size and duration of a ranking batch
func (m *Manager) RecordRanking(ctx context.Context, candidates, ranked int, elapsed time.Duration) {
	if !m.matchingEnabled() || !m.config.CustomMetrics.Matching.TrackRanking {
		return
	}
	attrs := metric.WithAttributes(attribute.Int("skipped", candidates-ranked))
	m.metrics.RankingCandidates.Record(ctx, int64(candidates), attrs)
	m.metrics.RankingDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordDocumentValidated counts a document type check
func (m *Manager) RecordDocumentValidated(ctx context.Context, expected string, valid bool) {
	if !m.matchingEnabled() {
		return
	}
	m.metrics.DocumentsValidated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("expected_type", expected),
		attribute.Bool("valid", valid),
	))
}

// RecordOperation counts an analysis operation such as extract or suggest
func (m *Manager) RecordOperation(ctx context.Context, operation string, success bool, attributes ...attribute.KeyValue) {
	if !m.matchingEnabled() {
		return
	}
	attrs := append([]attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	}, attributes...)
	m.metrics.Operations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Manager) infrastructureEnabled() bool {
	return m.Enabled() && m.metrics != nil && m.config.CustomMetrics.Infrastructure.Enabled
}

// RecordRateLimitHit counts a rejected request
func (m *Manager) RecordRateLimitHit(ctx context.Context, limitType string) {
	if !m.infrastructureEnabled() || !m.config.CustomMetrics.Infrastructure.TrackRateLimits {
		return
	}
	m.metrics.RateLimitHits.Add(ctx, 1, metric.WithAttributes(attribute.String("limit_type", limitType)))
}

// RecordCatalogReload counts a reference catalog reload attempt
func (m *Manager) RecordCatalogReload(ctx context.Context, success bool) {
	if !m.infrastructureEnabled() || !m.config.CustomMetrics.Infrastructure.TrackCatalogReloads {
		return
	}
	m.metrics.CatalogReloads.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}
