package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/service"
	"library-catalog/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /api/books/search
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Search(c *gin.Context) {
	params := model.SearchParams{
		Search:     c.Query("search"),
		Genre:      c.Query("genre"),
		AuthorName: c.Query("authorName"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
		SortBy:     c.Query("sortBy"),
		Order:      c.Query("order"),
	}

	resp, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		handleError(c, "Failed to search books", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Failed to create book", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Failed to fetch book", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, "Failed to update book", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, "Failed to delete book", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleError translates a domain error once, at the boundary.
func handleError(c *gin.Context, message string, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.ErrorWithDetails(c, status, message, err.Error(), model.ToErrorCode(err))
		return
	}

	switch {
	case errors.Is(err, model.ErrBookNotFound), errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrDuplicateISBN):
		response.Conflict(c, err.Error())
	default:
		response.ErrorWithCode(c, status, err.Error(), model.ToErrorCode(err))
	}
}
