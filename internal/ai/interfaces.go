package ai

import (
	"context"

	"searchfind/internal/observability"
	"searchfind/internal/types"
)

// Provider generates interview questions with a language model
type Provider interface {
	GenerateQuestions(ctx context.Context, job types.JobRequirements, resume *types.ExtractedDocument, count int) ([]string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// TokenUsage is shared with the observability layer so usage can be recorded as-is
type TokenUsage = observability.TokenUsage
