package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/shelftalk/shelftalk/config"
	"github.com/shelftalk/shelftalk/internal/api/handler"
	"github.com/shelftalk/shelftalk/internal/api/middleware"
	"github.com/shelftalk/shelftalk/internal/auth"
)

// isbn13 accepts exactly 13 digits, the catalog's primary key format.
func isbn13(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewRouter wires middleware and routes. The v1 group mirrors the public
// surface; everything mutating sits behind RequireAuth.
func NewRouter(cfg *config.Config, h *handler.Handler, tokens *auth.Manager) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isbn13", isbn13)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.Burst))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("shelftalk"))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(tokens)
	v1 := r.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.POST("/signup", h.Signup)
			accounts.POST("/login", h.Login)
			accounts.POST("/logout", requireAuth, h.Logout)
			accounts.DELETE("/me", requireAuth, h.DeleteMe)
			accounts.GET("/profile/:username", requireAuth, h.Profile)
			accounts.POST("/follow/:user_id", requireAuth, h.Follow)
		}

		books := v1.Group("/books")
		{
			books.GET("", h.ListBooks)
			books.GET("/:isbn13", h.GetBook)
		}

		community := v1.Group("/community")
		{
			community.GET("/threads", h.ListThreads)
			community.POST("/threads", requireAuth, h.CreateThread)
			community.GET("/threads/:id", h.GetThread)
			community.PUT("/threads/:id", requireAuth, h.UpdateThread)
			community.DELETE("/threads/:id", requireAuth, h.DeleteThread)
			community.POST("/threads/:id/likes", requireAuth, h.ToggleLike)
			community.POST("/threads/:id/comments", requireAuth, h.CreateComment)
			community.DELETE("/comments/:id", requireAuth, h.DeleteComment)
		}
	}

	return r
}
