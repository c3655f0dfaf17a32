package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Charitie/DevConnector/internal/container"
	handlers "github.com/Charitie/DevConnector/internal/interface/http"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/helpers"
)

// ProfileModule wires profile reads, the upsert, the embedded
// experience/education editors and account deletion.
// Public: GET /profile, GET /profile/user/:user_id, GET /profile/github/:username
// Protected: GET /profile/me, POST /profile, DELETE /profile,
// PUT+DELETE /profile/experience, PUT+DELETE /profile/education

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Tokens  *helpers.TokenManager
}

func NewProfileModule(h *handlers.ProfileHandler, tokens *helpers.TokenManager) *ProfileModule {
	return &ProfileModule{Handler: h, Tokens: tokens}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	// The github lookup proxies an external API, so it gets its own limit.
	githubLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/profile", m.Handler.List)
	rg.GET("/profile/user/:user_id", m.Handler.ByUser)
	rg.GET("/profile/github/:username", githubLimiter, m.Handler.GithubRepos)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("/profile/me", m.Handler.Me)
		auth.POST("/profile", m.Handler.Upsert)
		auth.DELETE("/profile", m.Handler.DeleteAccount)
		auth.PUT("/profile/experience", m.Handler.AddExperience)
		auth.DELETE("/profile/experience/:exp_id", m.Handler.RemoveExperience)
		auth.PUT("/profile/education", m.Handler.AddEducation)
		auth.DELETE("/profile/education/:edu_id", m.Handler.RemoveEducation)
	}
}
