package materials

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/documents"
	"studykit-backend/internal/shared/server/middleware"
	"studykit-backend/internal/shared/server/respond"
)

// Handler serves the material read endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches material routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:id/material", h.getMaterial)
}

type materialResponse struct {
	ID         string         `json:"id"`
	Summary    string         `json:"summary"`
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}

func (h *Handler) getMaterial(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, material, err := h.Svc.GetForDocument(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch material", nil)
		}
		return
	}

	var materialBody *materialResponse
	if material != nil {
		materialBody = &materialResponse{
			ID:         material.ID,
			Summary:    material.Summary,
			Flashcards: material.Flashcards,
			Quiz:       material.Quiz,
		}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"document": gin.H{
			"id":        doc.ID,
			"fileName":  doc.FileName,
			"status":    doc.Status,
			"createdAt": doc.CreatedAt,
		},
		"studyMaterial": materialBody,
	})
}
