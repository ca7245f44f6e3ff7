package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/internal/auth"
	"github.com/shelftalk/shelftalk/internal/service"
	"github.com/shelftalk/shelftalk/pkg/response"
)

type Handler struct {
	accounts  service.AccountService
	books     service.BookService
	community service.CommunityService
	tokens    *auth.Manager
}

func New(accounts service.AccountService, books service.BookService, community service.CommunityService, tokens *auth.Manager) *Handler {
	return &Handler{accounts: accounts, books: books, community: community, tokens: tokens}
}

// fail maps the service error taxonomy to a status exactly once.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrSelfFollow):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func actorID(c *gin.Context) string {
	return c.GetString(auth.CtxUserIDKey)
}
