package materials

import (
	"context"
	"errors"

	"studykit-backend/internal/llm"
)

// Generator orchestrates a provider completion call with the fixed study
// instruction and normalizes the raw completion. It knows nothing about
// documents, users, or persistence; provider and parse errors propagate
// unmodified to the caller, which owns failure handling. No retries here.
type Generator struct {
	LLM llm.Client
}

// Generate produces structured study material for the given document text.
func (g *Generator) Generate(ctx context.Context, documentText string) (Generated, error) {
	if g == nil || g.LLM == nil {
		return Generated{}, errors.New("missing llm client")
	}
	raw, err := g.LLM.Complete(ctx, llm.StudySystemPrompt, documentText)
	if err != nil {
		return Generated{}, err
	}
	return Normalize(raw)
}
