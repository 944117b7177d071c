package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage-backend/pkg/ai"
)

type stubClassifier struct {
	result   ai.Classification
	gotTexts []string
}

func (s *stubClassifier) Classify(_ context.Context, emailText string) ai.Classification {
	s.gotTexts = append(s.gotTexts, emailText)
	return s.result
}

type stubResponder struct {
	result   ai.Reply
	gotText  string
	gotForce bool
}

func (s *stubResponder) GenerateReply(_ context.Context, emailText string, _ ai.Category, _ string, force bool) ai.Reply {
	s.gotText = emailText
	s.gotForce = force
	return s.result
}

func newTestUsecase(classification ai.Classification, reply ai.Reply) (AnalysisUsecase, *stubClassifier, *stubResponder) {
	classifier := &stubClassifier{result: classification}
	responder := &stubResponder{result: reply}
	return NewAnalysisUsecase(classifier, responder, zerolog.Nop()), classifier, responder
}

func TestAnalyzeEmailInlineText(t *testing.T) {
	replyText := "Olá, podemos conversar amanhã."
	uc, classifier, responder := newTestUsecase(
		ai.Classification{Category: ai.CategoryProductive},
		ai.Reply{Generated: true, Message: "ok", Text: &replyText},
	)

	result, err := uc.AnalyzeEmail(context.Background(), AnalyzeInput{
		Text: "  Vamos marcar uma call para revisar o projeto  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Vamos marcar uma call para revisar o projeto", result.Text)
	assert.Equal(t, ai.CategoryProductive, result.Classification.Category)
	assert.True(t, result.Response.Generated)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Timestamp.IsZero())

	require.Len(t, classifier.gotTexts, 1)
	assert.Equal(t, result.Text, classifier.gotTexts[0])
	assert.Equal(t, result.Text, responder.gotText)
}

func TestAnalyzeEmailDecodesFileBytes(t *testing.T) {
	uc, classifier, _ := newTestUsecase(
		ai.Classification{Category: ai.CategoryUnproductive},
		ai.Reply{Generated: false, Message: "skipped"},
	)

	// Windows-1252 bytes, invalid as UTF-8
	result, err := uc.AnalyzeEmail(context.Background(), AnalyzeInput{
		FileBytes: []byte("caf\xE9 com a equipe"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Text)
	assert.Contains(t, result.Text, "com a equipe")
	require.Len(t, classifier.gotTexts, 1)
}

func TestAnalyzeEmailTextTakesPrecedenceOverFile(t *testing.T) {
	uc, classifier, _ := newTestUsecase(
		ai.Classification{Category: ai.CategoryProductive},
		ai.Reply{Generated: true, Message: "ok"},
	)

	_, err := uc.AnalyzeEmail(context.Background(), AnalyzeInput{
		Text:      "texto inline",
		FileBytes: []byte("conteúdo do arquivo"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"texto inline"}, classifier.gotTexts)
}

func TestAnalyzeEmailEmptyInput(t *testing.T) {
	uc, _, _ := newTestUsecase(ai.Classification{}, ai.Reply{})

	tests := []struct {
		name  string
		input AnalyzeInput
	}{
		{name: "nothing provided", input: AnalyzeInput{}},
		{name: "whitespace text", input: AnalyzeInput{Text: "   \n\t"}},
		{name: "file decodes to whitespace", input: AnalyzeInput{FileBytes: []byte("  \n")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.AnalyzeEmail(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrEmptyEmail)
		})
	}
}

func TestAnalyzeEmailAIUnavailable(t *testing.T) {
	uc := NewAnalysisUsecase(nil, nil, zerolog.Nop())

	_, err := uc.AnalyzeEmail(context.Background(), AnalyzeInput{Text: "qualquer"})
	assert.ErrorIs(t, err, ErrAIUnavailable)
}

func TestAnalyzeEmailForwardsForceFlag(t *testing.T) {
	uc, _, responder := newTestUsecase(
		ai.Classification{Category: ai.CategoryUnproductive},
		ai.Reply{Generated: true, Message: "forced"},
	)

	_, err := uc.AnalyzeEmail(context.Background(), AnalyzeInput{Text: "spam", Force: true})
	require.NoError(t, err)
	assert.True(t, responder.gotForce)
}
