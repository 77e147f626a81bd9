package datasources

import "context"

// Embedder embeds text into fixed-dimension vectors for similarity search.
// EmbedTexts is order-preserving: one vector per input text.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// NullEmbedder is a null implementation of Embedder.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (NullEmbedder) EmbedTexts(_ context.Context, _ []string) ([][]float32, error) {
	return nil, nil
}
