package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Charitie/DevConnector/internal/container"
	handlers "github.com/Charitie/DevConnector/internal/interface/http"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/helpers"
)

// UserModule wires registration and login.
// Public: POST /users, POST /auth
// Protected: GET /auth, POST /users/avatar

type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits; local traffic is exempt.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/auth", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("/auth", m.Handler.Me)
		auth.POST("/users/avatar", m.Handler.UploadAvatar)
	}
}
