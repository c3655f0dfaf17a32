package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Charitie/DevConnector/internal/container"
	handlers "github.com/Charitie/DevConnector/internal/interface/http"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/helpers"
)

// PostModule wires the feed. Every route requires authentication.

type PostModule struct {
	Handler *handlers.PostHandler
	Tokens  *helpers.TokenManager
}

func NewPostModule(h *handlers.PostHandler, tokens *helpers.TokenManager) *PostModule {
	return &PostModule{Handler: h, Tokens: tokens}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts", m.Handler.List)
		auth.GET("/posts/search", m.Handler.Search)
		auth.GET("/posts/:id", m.Handler.Get)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.PUT("/posts/like/:id", m.Handler.Like)
		auth.PUT("/posts/unlike/:id", m.Handler.Unlike)
		auth.POST("/posts/comment/:id", m.Handler.AddComment)
		auth.DELETE("/posts/comment/:id/:comment_id", m.Handler.RemoveComment)
	}
}
