package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, "Failed to fetch authors", err)
		return
	}

	c.JSON(http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Failed to create author", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Failed to fetch author", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, "Failed to update author", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, "Failed to delete author", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author deleted successfully"})
}

// ════════════════════════════════════════════════════════════════
// BOOKS: GET /api/authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetBooks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetBooks(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Failed to fetch author books", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// STATS: GET /api/authors/:id/stats
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetStats(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Failed to fetch author stats", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleError translates a domain error once, at the boundary. Unexpected
// errors get a generic message with the underlying cause in details.
func handleError(c *gin.Context, message string, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.ErrorWithDetails(c, status, message, err.Error(), model.ToErrorCode(err))
		return
	}

	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrDuplicateEmail):
		response.Conflict(c, err.Error())
	default:
		response.ErrorWithCode(c, status, err.Error(), model.ToErrorCode(err))
	}
}
