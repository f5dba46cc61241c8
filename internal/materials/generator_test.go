package materials

import (
	"context"
	"errors"
	"testing"
)

type stubLLM struct {
	response string
	err      error

	gotSystem string
	gotUser   string
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userText
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubLLM{response: "```json\n" + validPayload + "\n```"}
	gen := &Generator{LLM: stub}

	got, err := gen.Generate(context.Background(), "document text")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Summary == "" || len(got.Quiz) == 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if stub.gotUser != "document text" {
		t.Fatalf("user text = %q", stub.gotUser)
	}
	if stub.gotSystem == "" {
		t.Fatalf("expected system prompt")
	}
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	boom := errors.New("provider down")
	gen := &Generator{LLM: &stubLLM{err: boom}}

	_, err := gen.Generate(context.Background(), "text")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped provider error", err)
	}
}

func TestGenerateParseErrorPropagates(t *testing.T) {
	gen := &Generator{LLM: &stubLLM{response: "nonsense"}}

	_, err := gen.Generate(context.Background(), "text")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
}

func TestGenerateMissingClient(t *testing.T) {
	gen := &Generator{}
	if _, err := gen.Generate(context.Background(), "text"); err == nil {
		t.Fatalf("expected error")
	}
}
