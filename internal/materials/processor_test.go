package materials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studykit-backend/internal/documents"
	"studykit-backend/internal/extract"
)

func seedDocument(t *testing.T, repo documents.Repo) documents.Document {
	t.Helper()
	doc := documents.Document{
		ID:       "doc-1",
		UserID:   "user-1",
		FileName: "notes.txt",
		MimeType: "text/plain",
		FileData: "aGVsbG8=",
		Status:   documents.StatusPending,
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return doc
}

func newTestProcessor(docs documents.Repo, mats Repo, llmResponse string, llmErr error) *Processor {
	return &Processor{
		Docs:      docs,
		Materials: mats,
		Generator: &Generator{LLM: &stubLLM{response: llmResponse, err: llmErr}},
	}
}

func mustGetDoc(t *testing.T, repo documents.Repo, id string) documents.Document {
	t.Helper()
	doc, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	return doc
}

func TestProcessSuccess(t *testing.T) {
	docs := documents.NewMemoryRepo()
	mats := NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, mats, validPayload, nil)
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.Status != documents.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.ErrorMessage != nil {
		t.Fatalf("errorMessage = %q, want nil", *got.ErrorMessage)
	}

	m, err := mats.GetByDocumentID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("material: %v", err)
	}
	if m.DocumentID != doc.ID || m.Summary == "" {
		t.Fatalf("unexpected material: %+v", m)
	}
}

func TestProcessProviderFailure(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, NewMemoryRepo(), "", errors.New("model overloaded"))
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.Status != documents.StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "model overloaded") {
		t.Fatalf("errorMessage = %v", got.ErrorMessage)
	}
}

func TestProcessPDFParseFailure(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
	p.Extract = func(payload, mimeType string) (string, error) {
		return "", &extract.PDFParseError{Err: errors.New("bad xref table")}
	}
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.Status != documents.StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "Failed to parse PDF") {
		t.Fatalf("errorMessage = %v, want to contain %q", got.ErrorMessage, "Failed to parse PDF")
	}
}

type emptyError struct{}

func (emptyError) Error() string { return "   " }

func TestProcessBlankErrorMessageBecomesUnknown(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
	p.Extract = func(payload, mimeType string) (string, error) {
		return "", emptyError{}
	}
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.ErrorMessage == nil || *got.ErrorMessage != "Unknown error" {
		t.Fatalf("errorMessage = %v, want %q", got.ErrorMessage, "Unknown error")
	}
}

func TestProcessErrorMessageSanitized(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	long := strings.Repeat("line one\nline two\n", 100)
	p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
	p.Extract = func(payload, mimeType string) (string, error) {
		return "", errors.New(long)
	}
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.ErrorMessage == nil {
		t.Fatalf("expected errorMessage")
	}
	if strings.ContainsAny(*got.ErrorMessage, "\r\n") {
		t.Fatalf("errorMessage contains newlines: %q", *got.ErrorMessage)
	}
	if len(*got.ErrorMessage) > maxErrorMessageLen {
		t.Fatalf("errorMessage length = %d, want <= %d", len(*got.ErrorMessage), maxErrorMessageLen)
	}
}

func TestProcessPanicRecovered(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
	p.Extract = func(payload, mimeType string) (string, error) {
		panic("boom")
	}
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.Status != documents.StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "panic") {
		t.Fatalf("errorMessage = %v", got.ErrorMessage)
	}
}

type failingMaterialsRepo struct{ Repo }

func (failingMaterialsRepo) Create(ctx context.Context, m StudyMaterial) error {
	return errors.New("disk full")
}

func TestProcessPersistFailure(t *testing.T) {
	docs := documents.NewMemoryRepo()
	doc := seedDocument(t, docs)

	p := newTestProcessor(docs, failingMaterialsRepo{Repo: NewMemoryRepo()}, validPayload, nil)
	p.Process(context.Background(), doc.ID)

	got := mustGetDoc(t, docs, doc.ID)
	if got.Status != documents.StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "disk full") {
		t.Fatalf("errorMessage = %v", got.ErrorMessage)
	}
}

func TestProcessMissingDocument(t *testing.T) {
	docs := documents.NewMemoryRepo()
	p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
	// Must not panic; there is no document to transition.
	p.Process(context.Background(), "missing")
}

func TestProcessTerminalStateAlways(t *testing.T) {
	cases := map[string]func(p *Processor){
		"extract_error": func(p *Processor) {
			p.Extract = func(payload, mimeType string) (string, error) { return "", errors.New("x") }
		},
		"extract_panic": func(p *Processor) {
			p.Extract = func(payload, mimeType string) (string, error) { panic("x") }
		},
		"bad_llm_output": func(p *Processor) {
			p.Generator = &Generator{LLM: &stubLLM{response: "not json"}}
		},
		"success": func(p *Processor) {},
	}

	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			docs := documents.NewMemoryRepo()
			doc := seedDocument(t, docs)
			p := newTestProcessor(docs, NewMemoryRepo(), validPayload, nil)
			mutate(p)
			p.Process(context.Background(), doc.ID)

			got := mustGetDoc(t, docs, doc.ID)
			if got.Status != documents.StatusCompleted && got.Status != documents.StatusFailed {
				t.Fatalf("status = %q, want terminal", got.Status)
			}
		})
	}
}
