package ai

import (
	"context"
	"fmt"

	"searchfind/internal/config"
	"searchfind/internal/errors"
	"searchfind/internal/interview"
	"searchfind/internal/observability"
	"searchfind/internal/types"
)

// Service adapts a Provider to the interview generator and records
// telemetry for every call
type Service struct {
	Provider Provider
	config   *config.AIConfig
	logger   *errors.Logger
	obs      *observability.Manager
}

var _ interview.QuestionProvider = (*Service)(nil)

// ServiceOption customises a Service
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	obs    *observability.Manager
	gemini []GeminiOption
}

// WithObservability records AI metrics on m
func WithObservability(m *observability.Manager) ServiceOption {
	return func(o *serviceOptions) { o.obs = m }
}

// WithGeminiOptions passes options through to the Gemini client
func WithGeminiOptions(opts ...GeminiOption) ServiceOption {
	return func(o *serviceOptions) { o.gemini = append(o.gemini, opts...) }
}

// NewService creates the service for the configured provider
func NewService(cfg *config.AIConfig, logger *errors.Logger, opts ...ServiceOption) (*Service, error) {
	if logger == nil {
		logger = errors.NopLogger()
	}
	var o serviceOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries,
		"use_system_prompts", cfg.UseSystemPrompts)

	var provider Provider
	var err error
	switch cfg.Provider {
	case "gemini", "":
		provider, err = NewGeminiProvider(cfg, logger, o.gemini...)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
	if err != nil {
		return nil, err
	}

	return NewServiceWithProvider(provider, cfg, logger, o.obs), nil
}

// NewServiceWithProvider wraps an existing provider
func NewServiceWithProvider(p Provider, cfg *config.AIConfig, logger *errors.Logger, obs *observability.Manager) *Service {
	if logger == nil {
		logger = errors.NopLogger()
	}
	return &Service{Provider: p, config: cfg, logger: logger, obs: obs}
}

// GenerateQuestions returns up to count questions tailored to the job
func (s *Service) GenerateQuestions(ctx context.Context, job types.JobRequirements, resume *types.ExtractedDocument, count int) ([]string, error) {
	var questions []string
	err := s.obs.TrackAIOperation(ctx, "interview_questions", func(ctx context.Context) *observability.AIOperationResult {
		var usage *TokenUsage
		var err error
		questions, usage, err = s.Provider.GenerateQuestions(ctx, job, resume, count)
		return &observability.AIOperationResult{Error: err, TokenUsage: usage}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("AI interview questions generated",
		"model", s.config.Model,
		"requested", count,
		"returned", len(questions))
	return questions, nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	return s.Provider.GetModelInfo(ctx)
}

// CircuitBreakerStats reports breaker state when the provider exposes it
func (s *Service) CircuitBreakerStats() map[string]any {
	if reporter, ok := s.Provider.(interface{ CircuitBreakerStats() map[string]any }); ok {
		return reporter.CircuitBreakerStats()
	}
	return map[string]any{"enabled": false}
}

// Close releases provider resources
func (s *Service) Close() error {
	return s.Provider.Close()
}
