package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/pkg/response"
)

// ListBooks returns the whole catalog. Reference-data scale, no pagination.
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {object} response.Response
// @Router /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, books)
}

// GetBook returns one book by ISBN-13.
// @Summary Get book
// @Tags books
// @Produce json
// @Param isbn13 path string true "ISBN-13"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{isbn13} [get]
func (h *Handler) GetBook(c *gin.Context) {
	b, err := h.books.Get(c.Request.Context(), c.Param("isbn13"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, b)
}
