package embedding

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Encoder turns texts into embedding vectors. The ranker only assumes the
// vectors of one encoder are mutually comparable; normalization is handled
// on this side.
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// OpenAIEncoder calls the OpenAI embeddings API
type OpenAIEncoder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEncoder constructs an OpenAI-backed encoder. The model name is
// configuration; "text-embedding-3-small" is a sensible default for
// multilingual symptom titles.
func NewOpenAIEncoder(apiKey, model string) *OpenAIEncoder {
	return &OpenAIEncoder{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

// Encode embeds the given texts in one API call, preserving order
func (e *OpenAIEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if e.client == nil {
		return nil, errors.New("openai client not initialized")
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, errors.New("embedding response size mismatch")
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, errors.New("embedding response index out of range")
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}
