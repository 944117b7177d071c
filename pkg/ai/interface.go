package ai

import "context"

// Category is the binary productivity label for an email.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// IsProductive reports whether the category is the productive label.
func (c Category) IsProductive() bool {
	return c == CategoryProductive
}

// Classification is the outcome of classifying one email.
type Classification struct {
	Category   Category
	Confidence *float64 // nil when the strategy reports no score
}

// Reply is the outcome of reply generation. Generation can be withheld by
// policy (unproductive email without the force flag) or fail upstream; both
// cases are reported in the fields rather than as errors.
type Reply struct {
	Generated bool
	Message   string
	Text      *string
}

// Classifier labels email text as productive or unproductive.
// Implementations must return a label for any input; internal failures
// degrade to the unproductive default instead of raising.
type Classifier interface {
	Classify(ctx context.Context, emailText string) Classification
}

// ReplyGenerator produces a suggested reply for an email.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, emailText string, category Category, emailContext string, force bool) Reply
}

// ContentGenerator is the prompt-in/text-out contract of the remote
// generative model. *gemini.Service satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ProviderType selects the classification strategy.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderLocal  ProviderType = "local"
)
