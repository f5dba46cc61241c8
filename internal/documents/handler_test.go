package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/shared/server/middleware"
)

func setupDocumentRouter(t *testing.T) (*gin.Engine, *MemoryRepo, *stubDispatcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	dispatcher := &stubDispatcher{}
	handler := NewHandler(NewService(repo, dispatcher))

	router := gin.New()
	router.Use(middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, repo, dispatcher
}

func doJSON(router *gin.Engine, method, path, guestID string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUploadEndpoint(t *testing.T) {
	router, _, dispatcher := setupDocumentRouter(t)

	resp := doJSON(router, http.MethodPost, "/api/v1/documents", "alice", map[string]string{
		"fileName": "notes.txt",
		"mimeType": "text/plain",
		"fileData": validBase64(100),
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.DocumentID == "" || created.Status != StatusPending {
		t.Fatalf("response = %+v", created)
	}
	if len(dispatcher.ids) != 1 {
		t.Fatalf("enqueued = %v, want one id", dispatcher.ids)
	}
}

func TestUploadEndpointRejectsImages(t *testing.T) {
	router, _, dispatcher := setupDocumentRouter(t)

	resp := doJSON(router, http.MethodPost, "/api/v1/documents", "alice", map[string]string{
		"fileName": "scan.png",
		"mimeType": "image/png",
		"fileData": validBase64(100),
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if len(dispatcher.ids) != 0 {
		t.Fatalf("image upload must not enqueue, got %v", dispatcher.ids)
	}
}

func TestStatusEndpoint(t *testing.T) {
	router, repo, _ := setupDocumentRouter(t)

	failedMsg := "Failed to parse PDF: bad xref"
	doc := Document{
		ID:           "doc-1",
		UserID:       "guest:alice",
		FileName:     "broken.pdf",
		MimeType:     "application/pdf",
		Status:       StatusFailed,
		ErrorMessage: &failedMsg,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	resp := doJSON(router, http.MethodGet, "/api/v1/documents/doc-1/status", "alice", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body struct {
		Status       string  `json:"status"`
		ErrorMessage *string `json:"errorMessage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != StatusFailed {
		t.Fatalf("status = %q", body.Status)
	}
	if body.ErrorMessage == nil || *body.ErrorMessage != failedMsg {
		t.Fatalf("errorMessage = %v", body.ErrorMessage)
	}
}

func TestStatusEndpointOwnership(t *testing.T) {
	router, repo, _ := setupDocumentRouter(t)

	doc := Document{
		ID:        "doc-owned",
		UserID:    "guest:alice",
		FileName:  "notes.txt",
		MimeType:  "text/plain",
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	foreign := doJSON(router, http.MethodGet, "/api/v1/documents/doc-owned/status", "mallory", nil)
	if foreign.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", foreign.Code)
	}
	missing := doJSON(router, http.MethodGet, "/api/v1/documents/nope/status", "mallory", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", missing.Code)
	}
	if foreign.Body.String() != missing.Body.String() {
		t.Fatalf("foreign and missing documents should be indistinguishable")
	}
}

func TestListEndpointNewestFirst(t *testing.T) {
	router, repo, _ := setupDocumentRouter(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []string{"doc-a", "doc-b", "doc-c"} {
		doc := Document{
			ID:        id,
			UserID:    "guest:alice",
			FileName:  id + ".txt",
			MimeType:  "text/plain",
			Status:    StatusCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), doc); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	resp := doJSON(router, http.MethodGet, "/api/v1/documents", "alice", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body []summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 3 {
		t.Fatalf("len = %d, want 3", len(body))
	}
	for i := 1; i < len(body); i++ {
		if body[i].CreatedAt.After(body[i-1].CreatedAt) {
			t.Fatalf("list not newest-first: %v", body)
		}
	}
	if body[0].DocumentID != "doc-c" {
		t.Fatalf("first = %q, want doc-c", body[0].DocumentID)
	}
}

func TestListEndpointPaging(t *testing.T) {
	router, repo, _ := setupDocumentRouter(t)

	base := time.Now().UTC().Add(-time.Hour)
	ids := []string{"d1", "d2", "d3", "d4"}
	for i, id := range ids {
		doc := Document{
			ID:        id,
			UserID:    "guest:alice",
			FileName:  id + ".txt",
			MimeType:  "text/plain",
			Status:    StatusCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), doc); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	resp := doJSON(router, http.MethodGet, "/api/v1/documents?limit=2&offset=1", "alice", nil)
	var body []summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("len = %d, want 2", len(body))
	}
	if body[0].DocumentID != "d3" || body[1].DocumentID != "d2" {
		t.Fatalf("page = %v", body)
	}
}
