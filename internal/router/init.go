package router

import (
	"github.com/Charitie/DevConnector/internal/application"
	"github.com/Charitie/DevConnector/internal/container"
	"github.com/Charitie/DevConnector/internal/infrastructure/mongodb"
	handlers "github.com/Charitie/DevConnector/internal/interface/http"
	"github.com/Charitie/DevConnector/internal/router/modules"
)

type Deps struct {
	UserHandler    *handlers.UserHandler
	ProfileHandler *handlers.ProfileHandler
	PostHandler    *handlers.PostHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()

	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	posts := mongodb.NewPostRepository(db)

	userSvc := &application.UserService{
		Users:     users,
		Profiles:  profiles,
		Posts:     posts,
		Tokens:    container.GetTokens(),
		GCS:       container.GetGCS(),
		GCSBucket: cfg.GCSBucket,
		Pub:       container.GetRabbitPub(),
		MailSend:  cfg.MailSendEnabled,
		Logger:    logger,
	}
	profileSvc := &application.ProfileService{
		Profiles: profiles,
		Logger:   logger,
	}
	postSvc := &application.PostService{
		Posts:   posts,
		Users:   users,
		Logger:  logger,
		ES:      container.GetES(),
		ESIndex: cfg.ESPostsIndex,
	}

	return Deps{
		UserHandler:    handlers.NewUserHandler(userSvc, logger),
		ProfileHandler: handlers.NewProfileHandler(profileSvc, userSvc, logger),
		PostHandler:    handlers.NewPostHandler(postSvc, logger),
	}
}

// InitModules wires repositories, services and handlers and registers every
// feature module with the registry. Called once during startup.
func InitModules(r *Registry) {
	deps := buildDeps()
	tokens := container.GetTokens()

	r.Add(modules.NewUserModule(deps.UserHandler, tokens))
	r.Add(modules.NewProfileModule(deps.ProfileHandler, tokens))
	r.Add(modules.NewPostModule(deps.PostHandler, tokens))
}
