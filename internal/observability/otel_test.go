package observability

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"searchfind/internal/config"
)

func testConfig() config.ObservabilityConfig {
	return config.ObservabilityConfig{
		Enabled:     true,
		ServiceName: "searchfind-test",
		SampleRate:  1.0,
		CustomMetrics: config.CustomMetricsConfig{
			AIOperations: config.AIOperationsMetricsConfig{Enabled: true, TrackDuration: true, TrackTokenUsage: true},
			Matching:     config.MatchingMetricsConfig{Enabled: true, TrackScores: true, TrackRanking: true},
			Infrastructure: config.InfrastructureMetricsConfig{
				Enabled:             true,
				TrackRateLimits:     true,
				TrackCatalogReloads: true,
			},
		},
		Prometheus: config.PrometheusConfig{Enabled: true, Endpoint: "/metrics"},
	}
}

func newTestManager(t *testing.T, cfg config.ObservabilityConfig) (*Manager, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	m, err := NewManager(cfg, "test", WithMetricReader(reader))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = m.Shutdown(ctx)
	})
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			out[md.Name] = md.Data
		}
	}
	return out
}

func counterTotal(t *testing.T, data metricdata.Aggregation) int64 {
	t.Helper()
	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "expected an int64 sum, got %T", data)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNilAndDisabledManager(t *testing.T) {
	var nilManager *Manager
	ctx := context.Background()

	assert.False(t, nilManager.Enabled())
	assert.Nil(t, nilManager.MetricsHandler())
	assert.NoError(t, nilManager.Shutdown(ctx))
	nilManager.RecordMatch(ctx, 80, "Excellent Match")
	nilManager.RecordRateLimitHit(ctx, "ip")

	called := false
	err := nilManager.TrackAIOperation(ctx, "op", func(context.Context) *AIOperationResult {
		called = true
		return &AIOperationResult{Error: io.EOF}
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, io.EOF)

	disabled, err := NewManager(config.ObservabilityConfig{}, "v1")
	require.NoError(t, err)
	assert.False(t, disabled.Enabled())

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	disabled.HTTPMiddleware()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRecordMatchingMetrics(t *testing.T) {
	m, reader := newTestManager(t, testConfig())
	ctx := context.Background()

	m.RecordMatch(ctx, 82.5, "Very Good Match")
	m.RecordMatch(ctx, 41, "Fair Match")
	m.RecordRanking(ctx, 5, 4, 120*time.Millisecond)
	m.RecordDocumentValidated(ctx, "resume", true)
	m.RecordOperation(ctx, "suggest", true)

	data := collect(t, reader)
	assert.Equal(t, int64(2), counterTotal(t, data["searchfind_matches_scored"]))
	assert.Equal(t, int64(1), counterTotal(t, data["searchfind_documents_validated"]))
	assert.Equal(t, int64(1), counterTotal(t, data["searchfind_operations"]))

	scores, ok := data["searchfind_match_score"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, scores.DataPoints, 2)

	candidates, ok := data["searchfind_ranking_candidates"].(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, candidates.DataPoints, 1)
	assert.Equal(t, int64(5), candidates.DataPoints[0].Sum)
}

func TestScoreTrackingDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.CustomMetrics.Matching.TrackScores = false
	cfg.CustomMetrics.Matching.TrackRanking = false
	m, reader := newTestManager(t, cfg)

	m.RecordMatch(context.Background(), 90, "Excellent Match")
	m.RecordRanking(context.Background(), 3, 3, time.Second)

	data := collect(t, reader)
	assert.Equal(t, int64(1), counterTotal(t, data["searchfind_matches_scored"]))
	assert.NotContains(t, data, "searchfind_match_score")
	assert.NotContains(t, data, "searchfind_ranking_duration")
}

func TestTrackAIOperation(t *testing.T) {
	m, reader := newTestManager(t, testConfig())
	ctx := context.Background()

	err := m.TrackAIOperation(ctx, "interview_questions", func(context.Context) *AIOperationResult {
		return &AIOperationResult{TokenUsage: &TokenUsage{InputTokens: 100, OutputTokens: 40, TotalTokens: 140}}
	})
	require.NoError(t, err)

	failure := stderrors.New("model unavailable")
	err = m.TrackAIOperation(ctx, "interview_questions", func(context.Context) *AIOperationResult {
		return &AIOperationResult{Error: failure}
	})
	assert.ErrorIs(t, err, failure)

	data := collect(t, reader)
	assert.Equal(t, int64(2), counterTotal(t, data["searchfind_ai_requests"]))
	assert.Equal(t, int64(1), counterTotal(t, data["searchfind_ai_errors"]))

	tokens, ok := data["searchfind_ai_token_usage"].(metricdata.Histogram[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range tokens.DataPoints {
		total += dp.Sum
	}
	assert.Equal(t, int64(280), total)
}

func TestInfrastructureMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.CustomMetrics.Infrastructure.TrackCatalogReloads = false
	m, reader := newTestManager(t, cfg)

	m.RecordRateLimitHit(context.Background(), "api_key")
	m.RecordCatalogReload(context.Background(), true)

	data := collect(t, reader)
	assert.Equal(t, int64(1), counterTotal(t, data["searchfind_rate_limit_hits"]))
	assert.NotContains(t, data, "searchfind_catalog_reloads")
}

func TestPrometheusHandler(t *testing.T) {
	m, _ := newTestManager(t, testConfig())
	m.RecordMatch(context.Background(), 70, "Good Match")

	handler := m.MetricsHandler()
	require.NotNil(t, handler)
	assert.Equal(t, "/metrics", m.MetricsEndpoint())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "searchfind_matches_scored")

	// A second manager owns its own registry
	other, _ := newTestManager(t, testConfig())
	assert.NotNil(t, other.MetricsHandler())
}
