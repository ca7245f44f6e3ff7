package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/internal/auth"
	"github.com/shelftalk/shelftalk/pkg/response"
)

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account.
// @Summary Sign up
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body signupRequest true "credentials"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /accounts/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.accounts.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, gin.H{"id": u.ID, "username": u.Username})
}

// Login exchanges credentials for a bearer token.
// @Summary Log in
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /accounts/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	token, err := h.tokens.Issue(u)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Logout revokes the presented token until it expires.
// @Summary Log out
// @Tags accounts
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} response.Response
// @Router /accounts/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := c.Get(auth.CtxClaimsKey)
	if !ok {
		response.Unauthorized(c, "missing bearer token")
		return
	}
	if err := h.tokens.Revoke(c.Request.Context(), claims.(*auth.Claims)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// Profile returns a user with materialized follower/following lists.
// @Summary Get profile
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/profile/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
	p, err := h.accounts.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, p)
}

// Follow toggles the actor's follow edge to the target user.
// @Summary Toggle follow
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "target user id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/follow/{user_id} [post]
func (h *Handler) Follow(c *gin.Context) {
	res, err := h.accounts.ToggleFollow(c.Request.Context(), actorID(c), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// DeleteMe removes the actor's account and everything it owns.
// @Summary Delete own account
// @Tags accounts
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} response.Response
// @Router /accounts/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	if err := h.accounts.DeleteAccount(c.Request.Context(), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
