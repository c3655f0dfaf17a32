package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Charitie/DevConnector/config"
	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
	"github.com/Charitie/DevConnector/internal/infrastructure/mongodb"
	"github.com/Charitie/DevConnector/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	posts := mongodb.NewPostRepository(db)

	email := "demo@devconnector.dev"
	password := "password123"

	u, err := users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("failed to look up seed user: %v", err)
	}
	if u == nil {
		hash, err := helpers.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u = &entity.User{
			Name:     "Demo User",
			Email:    email,
			Password: hash,
			Avatar:   helpers.GravatarURL(email),
			Date:     time.Now(),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID.Hex(), email, password)

	p, err := profiles.GetByUser(ctx, u.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("failed to look up seed profile: %v", err)
	}
	if p == nil {
		p = &entity.Profile{
			User:           u.ID,
			Company:        "DevConnector",
			Website:        "https://devconnector.dev",
			Location:       "Remote",
			Status:         "Developer",
			Skills:         []string{"Go", "MongoDB", "Docker"},
			Bio:            "Seeded demo profile",
			GithubUsername: "octocat",
			Experience:     []entity.Experience{},
			Education:      []entity.Education{},
			Date:           time.Now(),
		}
		if err := profiles.Create(ctx, p); err != nil {
			log.Fatalf("failed to seed profile: %v", err)
		}
		fmt.Printf("seeded profile: id=%s\n", p.ID.Hex())
	}

	post := &entity.Post{
		User:     u.ID,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Text:     "Hello from the seeded demo account",
		Likes:    []entity.Like{},
		Comments: []entity.Comment{},
		Date:     time.Now(),
	}
	if err := posts.Create(ctx, post); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s\n", post.ID.Hex())
}
