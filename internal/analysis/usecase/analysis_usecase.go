package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mailtriage-backend/internal/analysis/domain"
	"mailtriage-backend/pkg/ai"
	"mailtriage-backend/pkg/metrics"
	"mailtriage-backend/pkg/textenc"
)

type analysisUsecase struct {
	classifier ai.Classifier
	responder  ai.ReplyGenerator
	log        zerolog.Logger
}

// NewAnalysisUsecase wires the analysis pipeline. Nil classifier or
// responder marks the AI integration as unavailable; every request then
// fails with ErrAIUnavailable until restart.
func NewAnalysisUsecase(classifier ai.Classifier, responder ai.ReplyGenerator, log zerolog.Logger) AnalysisUsecase {
	return &analysisUsecase{
		classifier: classifier,
		responder:  responder,
		log:        log,
	}
}

func (u *analysisUsecase) AnalyzeEmail(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error) {
	if u.classifier == nil || u.responder == nil {
		return nil, ErrAIUnavailable
	}

	text := strings.TrimSpace(input.Text)
	if text == "" && len(input.FileBytes) > 0 {
		text = strings.TrimSpace(textenc.Resolve(input.FileBytes))
	}
	if text == "" {
		return nil, ErrEmptyEmail
	}

	classification := u.classifier.Classify(ctx, text)
	metrics.IncrementEmailAnalyzed(string(classification.Category))

	reply := u.responder.GenerateReply(ctx, text, classification.Category, input.Context, input.Force)

	result := &domain.AnalysisResult{
		ID:             uuid.NewString(),
		Text:           text,
		Classification: classification,
		Response:       reply,
		Timestamp:      time.Now().UTC(),
	}

	u.log.Info().
		Str("analysis_id", result.ID).
		Str("category", string(classification.Category)).
		Bool("reply_generated", reply.Generated).
		Msg("email analyzed")

	return result, nil
}
