package usecase

import (
	"context"
	"errors"

	"mailtriage-backend/internal/analysis/domain"
)

var (
	// ErrEmptyEmail means neither inline text nor file bytes resolved to text.
	ErrEmptyEmail = errors.New("no email text provided")
	// ErrAIUnavailable means the AI integration failed to initialize.
	ErrAIUnavailable = errors.New("AI service not available")
)

// AnalyzeInput carries one email to process. Text takes precedence; when it
// is empty, FileBytes are decoded through the encoding resolver.
type AnalyzeInput struct {
	Text      string
	FileBytes []byte
	Context   string
	Force     bool
}

type AnalysisUsecase interface {
	AnalyzeEmail(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error)
}
