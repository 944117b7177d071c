package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"mailtriage-backend/pkg/metrics"
)

// maxInferenceRunes bounds the text sent to the local model. Sequence
// classification models accept at most 512 tokens; runes are a safe upper
// bound on tokens.
const maxInferenceRunes = 512

// LocalClassifier delegates to a local text-classification inference server
// (text in, ranked label+score list out).
type LocalClassifier struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
	client     *http.Client
	log        zerolog.Logger
}

// NewLocalClassifier creates a classifier with static settings.
func NewLocalClassifier(baseURL, model string, timeout time.Duration, log zerolog.Logger) *LocalClassifier {
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}
	return NewLocalClassifierWithGetters(
		func() string { return baseURL },
		func() string { return model },
		timeout, log,
	)
}

// NewLocalClassifierWithGetters creates a classifier whose base URL and
// model can change at runtime (settings API).
func NewLocalClassifierWithGetters(getBaseURL, getModel func() string, timeout time.Duration, log zerolog.Logger) *LocalClassifier {
	return &LocalClassifier{
		getBaseURL: getBaseURL,
		getModel:   getModel,
		client:     &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (l *LocalClassifier) Classify(ctx context.Context, emailText string) Classification {
	start := time.Now()

	prediction, err := l.predict(ctx, truncateRunes(emailText, maxInferenceRunes))
	if err != nil {
		metrics.RecordAICallLatency("local", "error", time.Since(start))
		l.log.Warn().Err(err).Msg("local inference failed, defaulting to Improdutivo")
		return Classification{Category: CategoryUnproductive}
	}
	metrics.RecordAICallLatency("local", "ok", time.Since(start))

	return mapPrediction(prediction.Label, prediction.Score)
}

type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// predict calls the inference server and returns the top-scoring label.
func (l *LocalClassifier) predict(ctx context.Context, text string) (prediction, error) {
	url := l.getBaseURL() + "/classify"

	payload := map[string]interface{}{"inputs": text}
	if model := l.getModel(); model != "" {
		payload["model"] = model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return prediction{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return prediction{}, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return prediction{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return prediction{}, fmt.Errorf("inference API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var preds []prediction
	if err := json.Unmarshal(respBody, &preds); err != nil {
		return prediction{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(preds) == 0 {
		return prediction{}, fmt.Errorf("no predictions returned")
	}

	top := preds[0]
	for _, p := range preds[1:] {
		if p.Score > top.Score {
			top = p
		}
	}
	return top, nil
}

// mapPrediction maps a model label onto a category. Labels outside the
// known set fall back to thresholding the score at 0.5.
func mapPrediction(label string, score float64) Classification {
	conf := score
	c := Classification{Confidence: &conf}

	switch strings.ToLower(strings.TrimSpace(label)) {
	case "produtivo", "productive":
		c.Category = CategoryProductive
	case "improdutivo", "unproductive":
		c.Category = CategoryUnproductive
	default:
		if score > 0.5 {
			c.Category = CategoryProductive
		} else {
			c.Category = CategoryUnproductive
		}
	}
	return c
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
