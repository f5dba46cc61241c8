package progress

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/shared/server/middleware"
	"studykit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches progress routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/progress", h.save)
	rg.GET("/progress", h.list)
}

type saveRequest struct {
	StudyMaterialID string `json:"studyMaterialId"`
	Score           *int   `json:"score"`
	TotalQuestions  *int   `json:"totalQuestions"`
}

type entryResponse struct {
	ID              string    `json:"id"`
	StudyMaterialID string    `json:"studyMaterialId"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"totalQuestions"`
	Percentage      int       `json:"percentage"`
	CompletedAt     time.Time `json:"completedAt"`
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Score == nil || req.TotalQuestions == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "score and totalQuestions are required", nil)
		return
	}

	p, err := h.Svc.Save(c.Request.Context(), userID, req.StudyMaterialID, *req.Score, *req.TotalQuestions)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save progress", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"id": p.ID})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	entries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list progress", nil)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{
			ID:              e.ID,
			StudyMaterialID: e.StudyMaterialID,
			Score:           e.Score,
			TotalQuestions:  e.TotalQuestions,
			Percentage:      e.Percentage,
			CompletedAt:     e.CompletedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
