package datasources

import "context"

// TextGenerator produces free text from a prompt. Used for both ingestion
// summaries and recommendation narratives; no structural constraints are
// placed on the output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NullTextGenerator is a null implementation of TextGenerator.
type NullTextGenerator struct{}

var _ TextGenerator = NullTextGenerator{}

func (NullTextGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return "", nil
}
