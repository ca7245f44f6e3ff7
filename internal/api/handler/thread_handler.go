package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/internal/service"
	"github.com/shelftalk/shelftalk/pkg/response"
)

type createThreadRequest struct {
	BookISBN13 string `json:"book_isbn13" binding:"required,isbn13"`
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}

type updateThreadRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ListThreads returns thread summaries, newest first.
// @Summary List threads
// @Tags community
// @Produce json
// @Success 200 {object} response.Response
// @Router /community/threads [get]
func (h *Handler) ListThreads(c *gin.Context) {
	threads, err := h.community.ListThreads(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, threads)
}

// CreateThread posts a review on a book. Author is the authenticated actor.
// @Summary Create thread
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body createThreadRequest true "thread"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads [post]
func (h *Handler) CreateThread(c *gin.Context) {
	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.community.CreateThread(c.Request.Context(), actorID(c), service.CreateThreadInput{
		BookISBN13: req.BookISBN13,
		Title:      req.Title,
		Content:    req.Content,
		Rating:     req.Rating,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, t)
}

// GetThread returns full detail: embedded book, comments, like count.
// @Summary Get thread
// @Tags community
// @Produce json
// @Param id path string true "thread id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads/{id} [get]
func (h *Handler) GetThread(c *gin.Context) {
	t, err := h.community.GetThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, t)
}

// UpdateThread applies partial changes. Owner-only.
// @Summary Update thread
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "thread id"
// @Param request body updateThreadRequest true "mutable fields"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads/{id} [put]
func (h *Handler) UpdateThread(c *gin.Context) {
	var req updateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.community.UpdateThread(c.Request.Context(), actorID(c), c.Param("id"), service.UpdateThreadInput{
		Title:   req.Title,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, t)
}

// DeleteThread removes a thread and cascades to its comments and likes.
// @Summary Delete thread
// @Tags community
// @Security BearerAuth
// @Param id path string true "thread id"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads/{id} [delete]
func (h *Handler) DeleteThread(c *gin.Context) {
	if err := h.community.DeleteThread(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// ToggleLike flips the actor's like on a thread.
// @Summary Toggle like
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param id path string true "thread id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads/{id}/likes [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	res, err := h.community.ToggleLike(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}
