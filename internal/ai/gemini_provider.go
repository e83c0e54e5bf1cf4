package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"searchfind/internal/config"
	"searchfind/internal/errors"
	"searchfind/internal/types"
)

const (
	defaultModelCheckTimeout = 10 * time.Second
	maxBackoff               = 30 * time.Second
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client       *genai.Client
	config       *config.AIConfig
	breaker      *Breaker[*genai.GenerateContentResponse]
	modelBreaker *Breaker[*genai.Model]
	logger       *errors.Logger
	baseDelay    time.Duration
}

var _ Provider = (*GeminiProvider)(nil)

// GeminiOption customises the Gemini client
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL sends requests to a different endpoint, such as a proxy
func WithBaseURL(url string) GeminiOption {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = url }
}

// NewGeminiProvider creates a Gemini provider for interview questions
func NewGeminiProvider(cfg *config.AIConfig, logger *errors.Logger, opts ...GeminiOption) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingAPIKey, "Gemini API key is not configured", nil)
	}
	if logger == nil {
		logger = errors.NopLogger()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed, "Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:       client,
		config:       cfg,
		breaker:      NewBreaker[*genai.GenerateContentResponse]("AI-interview-questions", cfg.CircuitBreaker, operationTrip(cfg.CircuitBreaker), logger),
		modelBreaker: NewBreaker[*genai.Model]("AI-model-check", cfg.CircuitBreaker, modelCheckTrip, logger),
		logger:       logger,
		baseDelay:    time.Second,
	}, nil
}

// GenerateQuestions asks the model for up to count interview questions
func (g *GeminiProvider) GenerateQuestions(ctx context.Context, job types.JobRequirements, resume *types.ExtractedDocument, count int) ([]string, *TokenUsage, error) {
	if count <= 0 {
		return nil, nil, nil
	}

	tracer := otel.Tracer("searchfind.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini.interview_questions")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(g.config.Temperature)),
		attribute.Int("input.job_length", len(job.Text)),
		attribute.Int("input.skill_count", len(job.RequiredSkills)),
		attribute.Bool("input.has_resume", resume != nil),
		attribute.Int("request.count", count),
	)

	genaiConfig := g.buildQuestionsSchema()
	if g.config.UseSystemPrompts {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt(g.config), genai.RoleUser)
	}
	userPrompt := buildUserPrompt(g.config, job, resume, count)

	result, err := g.breaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, "interview_questions", func() (*genai.GenerateContentResponse, error) {
			attemptCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
			defer cancel()
			return g.client.Models.GenerateContent(attemptCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, nil, errors.NewAIError(classifyFailure(err), "Failed to generate interview questions", err)
	}

	questions, err := parseQuestions(result.Text())
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, nil, errors.NewAIError(errors.ErrCodeAIResponseInvalid, "Failed to parse AI response for interview questions", err)
	}
	questions = questions[:min(len(questions), count)]

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}
	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.question_count", len(questions)),
	)

	return questions, tokenUsage, nil
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{Name: g.config.Model}

	timeout := g.config.ModelCheckTimeout
	if timeout <= 0 {
		timeout = defaultModelCheckTimeout
	}
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model, err := g.modelBreaker.Execute(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	modelInfo.DisplayName = model.DisplayName
	modelInfo.Version = model.Version

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// CircuitBreakerStats reports both breakers for the health endpoint
func (g *GeminiProvider) CircuitBreakerStats() map[string]any {
	return map[string]any{
		"ai_operations":    g.breaker.Stats(),
		"model_operations": g.modelBreaker.Stats(),
		"overall_healthy":  g.breaker.IsHealthy() && g.modelBreaker.IsHealthy(),
	}
}

// Close releases provider resources
func (g *GeminiProvider) Close() error {
	return nil
}

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error
	maxRetries := g.config.MaxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", maxRetries,
				"error", lastErr.Error())

			select {
			case <-time.After(g.backoff(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		if ctx.Err() != nil || !isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed",
		"operation", operation,
		"max_retries", maxRetries)

	return nil, fmt.Errorf("operation '%s' failed: %w", operation, lastErr)
}

// backoff doubles the base delay per attempt and adds up to 10% jitter
func (g *GeminiProvider) backoff(attempt int) time.Duration {
	baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * g.baseDelay
	jitter := time.Duration(0)
	if jitterMax := int64(float64(baseDelay) * 0.1); jitterMax > 0 {
		if n, err := rand.Int(rand.Reader, big.NewInt(jitterMax)); err == nil {
			jitter = time.Duration(n.Int64())
		}
	}
	return min(baseDelay+jitter, maxBackoff)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Timeouts and connection failures
	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		return retryableStatus(apiErr.Code)
	}

	var gErr *googleapi.Error
	if stderrors.As(err, &gErr) {
		return retryableStatus(gErr.Code)
	}

	return false
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// classifyFailure maps a failed call to an error code
func classifyFailure(err error) string {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrCodeAITimeout
	}
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) && (apiErr.Code == http.StatusServiceUnavailable || apiErr.Code == http.StatusTooManyRequests) {
		return errors.ErrCodeAIUnavailable
	}
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.ErrCodeAIUnavailable
	}
	return errors.ErrCodeAIServiceFailed
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// parseQuestions decodes the structured response and drops blank entries
func parseQuestions(text string) ([]string, error) {
	var resp questionsResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, err
	}
	questions := make([]string, 0, len(resp.Questions))
	for _, q := range resp.Questions {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (g *GeminiProvider) buildQuestionsSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"questions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"questions"},
		},
	}

	if g.config.Temperature > 0 {
		temperature := g.config.Temperature
		cfg.Temperature = &temperature
	}

	return cfg
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
