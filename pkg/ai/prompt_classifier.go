package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mailtriage-backend/pkg/metrics"
)

// classifyPromptTemplate asks for the bare classification and fails closed
// to "improdutivo" when the model is uncertain.
const classifyPromptTemplate = `Classifique o e-mail como "produtivo" ou "improdutivo" conforme as definições abaixo.
Responda apenas com a classificação, sem explicações.
produtivo: e-mails sobre trabalho, tarefas, projetos, reuniões, calls, stack, decisões ou informações úteis.
improdutivo: e-mails irrelevantes, pessoais, correntes, café, promoções ou spam.
Se não tiver certeza, classifique como "improdutivo".
E-mail: %s
Classificação:`

// PromptClassifier classifies by asking the remote generative model.
type PromptClassifier struct {
	gen ContentGenerator
	log zerolog.Logger
}

func NewPromptClassifier(gen ContentGenerator, log zerolog.Logger) *PromptClassifier {
	return &PromptClassifier{gen: gen, log: log}
}

func (p *PromptClassifier) Classify(ctx context.Context, emailText string) Classification {
	prompt := fmt.Sprintf(classifyPromptTemplate, emailText)

	start := time.Now()
	raw, err := p.gen.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.RecordAICallLatency("gemini", "error", time.Since(start))
		p.log.Warn().Err(err).Msg("classification call failed, defaulting to Improdutivo")
		return Classification{Category: CategoryUnproductive}
	}
	metrics.RecordAICallLatency("gemini", "ok", time.Since(start))

	return Classification{Category: ParseCategory(raw)}
}

// ParseCategory maps a literal model reply onto a category. Unparseable
// replies default to Improdutivo.
func ParseCategory(raw string) Category {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(cleaned, "produtivo") && !strings.Contains(cleaned, "improdutivo") {
		return CategoryProductive
	}
	return CategoryUnproductive
}
