package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/pkg/response"
)

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment posts a comment on a thread. Author is the actor.
// @Summary Create comment
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "thread id"
// @Param request body createCommentRequest true "comment"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/threads/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.community.CreateComment(c.Request.Context(), actorID(c), c.Param("id"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, cm)
}

// DeleteComment removes a comment. Owner-only.
// @Summary Delete comment
// @Tags community
// @Security BearerAuth
// @Param id path string true "comment id"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /community/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.community.DeleteComment(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
