package ai

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mailtriage-backend/pkg/gemini"
)

// Config holds AI strategy configuration.
type Config struct {
	Provider ProviderType // "gemini" or "local"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Local inference config, runtime-mutable via getters
	GetInferenceBaseURL func() string
	GetInferenceModel   func() string

	Timeout time.Duration
	Logger  zerolog.Logger
}

// Services bundles the classification and reply-generation strategies
// active in one deployment. Exactly one classifier strategy is built.
type Services struct {
	Classifier Classifier
	Responder  ReplyGenerator
}

// NewServices is the factory function: switch classifier strategy by
// changing cfg.Provider. Reply generation always uses the remote model, so
// a Gemini key is required regardless of the classifier strategy.
func NewServices(cfg Config) (*Services, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	gen := gemini.NewService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout)

	var classifier Classifier
	switch cfg.Provider {
	case ProviderLocal:
		classifier = NewLocalClassifierWithGetters(cfg.GetInferenceBaseURL, cfg.GetInferenceModel, cfg.Timeout, cfg.Logger)
	case ProviderGemini, "":
		classifier = NewPromptClassifier(gen, cfg.Logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}

	return &Services{
		Classifier: classifier,
		Responder:  NewGeminiResponder(gen, cfg.Logger),
	}, nil
}
