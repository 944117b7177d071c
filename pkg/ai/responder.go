package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mailtriage-backend/pkg/metrics"
)

const (
	productiveReplyInstruction = `Você é um assistente que escreve respostas profissionais para e-mails de trabalho.
Escreva uma resposta construtiva e objetiva para o e-mail abaixo.`

	unproductiveReplyInstruction = `Você é um assistente que escreve respostas diplomáticas para e-mails fora do contexto de trabalho.
Escreva uma resposta educada para o e-mail abaixo, redirecionando a conversa quando apropriado.`

	replyFormatInstructions = `Instruções de formato:
- Seja conciso e respeitoso.
- Escreva em português.
- Termine com "Resposta sugerida:" seguida do texto da resposta.`
)

// GeminiResponder generates suggested replies via the remote generative
// model. Unproductive emails are skipped unless forced: that is a cost and
// relevance gate, not a failure.
type GeminiResponder struct {
	gen ContentGenerator
	log zerolog.Logger
}

func NewGeminiResponder(gen ContentGenerator, log zerolog.Logger) *GeminiResponder {
	return &GeminiResponder{gen: gen, log: log}
}

func (r *GeminiResponder) GenerateReply(ctx context.Context, emailText string, category Category, emailContext string, force bool) Reply {
	if !category.IsProductive() && !force {
		return Reply{
			Generated: false,
			Message:   "Resposta automática não gerada para e-mails improdutivos.",
		}
	}

	prompt := buildReplyPrompt(emailText, category, emailContext)

	start := time.Now()
	raw, err := r.gen.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.RecordAICallLatency("gemini", "error", time.Since(start))
		r.log.Warn().Err(err).Msg("reply generation failed")
		return Reply{Generated: false, Message: fmt.Sprintf("Falha ao gerar resposta: %v", err)}
	}
	metrics.RecordAICallLatency("gemini", "ok", time.Since(start))

	text := strings.TrimSpace(raw)
	if text == "" {
		return Reply{Generated: false, Message: "O modelo não retornou conteúdo."}
	}

	return Reply{Generated: true, Message: "Resposta gerada com sucesso.", Text: &text}
}

func buildReplyPrompt(emailText string, category Category, emailContext string) string {
	instruction := productiveReplyInstruction
	if !category.IsProductive() {
		instruction = unproductiveReplyInstruction
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nE-mail original:\n")
	b.WriteString(emailText)
	if emailContext != "" {
		b.WriteString("\n\nContexto adicional:\n")
		b.WriteString(emailContext)
	}
	b.WriteString("\n\nClassificação do e-mail: ")
	b.WriteString(string(category))
	b.WriteString("\n\n")
	b.WriteString(replyFormatInstructions)
	return b.String()
}
