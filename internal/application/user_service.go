package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
	"github.com/Charitie/DevConnector/pkg/helpers"
	"github.com/Charitie/DevConnector/pkg/mailer"
)

// UserService owns registration, credential verification and account
// deletion. Optional collaborators (GCS, RabbitMQ) may be nil; the features
// backed by them degrade quietly.
type UserService struct {
	Users     repository.UserRepository
	Profiles  repository.ProfileRepository
	Posts     repository.PostRepository
	Tokens    *helpers.TokenManager
	GCS       *storage.Client
	GCSBucket string
	Pub       *helpers.RabbitPublisher
	MailSend  bool
	Logger    *logrus.Logger
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a bcrypt-hashed password and a gravatar URL
// derived from the email, then returns a signed token for the new identity.
// A welcome email job is published best-effort.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	existing, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return "", err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Avatar:   helpers.GravatarURL(in.Email),
		Date:     time.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return "", err
	}

	if s.Pub != nil && s.MailSend {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.Welcome,
			Data:     map[string]any{"Name": u.Name},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email publish failed")
		}
	}

	return s.Tokens.Issue(u.ID.Hex())
}

// Authenticate verifies email/password and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(u.ID.Hex())
}

// GetByID returns the user for a hex id, without leaking whether the id was
// unparsable or simply absent.
func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.Users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes the user's posts, profile and credential record, in
// that order. The three deletions are independent calls with no transaction:
// a failure mid-sequence leaves the earlier deletions in place.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.Posts.DeleteByUser(ctx, oid); err != nil {
		return err
	}
	if err := s.Profiles.DeleteByUser(ctx, oid); err != nil {
		return err
	}
	return s.Users.Delete(ctx, oid)
}

// UploadAvatar stores a custom avatar image in GCS and points the user's
// avatar URL at it. Posts and comments keep the snapshot taken when they
// were written.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("avatar storage not configured")
	}
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, primitive.NewObjectID().Hex()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.Avatar = url
	if err := s.Users.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}
