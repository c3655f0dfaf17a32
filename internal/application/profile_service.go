package application

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

// ProfileService owns profile upsert, the embedded experience/education
// sequences and the public github repo listing.
type ProfileService struct {
	Profiles repository.ProfileRepository
	Logger   *logrus.Logger

	// Github overrides the API client in tests; nil means the public API.
	Github *github.Client
}

// ProfileInput carries the profile submission. Skills arrives as a
// comma-separated string and is split and trimmed.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// GetByUser returns the profile owned by the given user id.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	p, err := s.Profiles.GetByUser(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns every profile.
func (s *ProfileService) List(ctx context.Context) ([]entity.Profile, error) {
	return s.Profiles.List(ctx)
}

// Upsert creates the caller's profile or updates it in place; a user never
// gets a second profile document. Embedded experience and education survive
// an update untouched.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	skills := make([]string, 0)
	for _, sk := range strings.Split(in.Skills, ",") {
		if sk = strings.TrimSpace(sk); sk != "" {
			skills = append(skills, sk)
		}
	}
	social := entity.Social{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}

	p, err := s.Profiles.GetByUser(ctx, oid)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if p != nil {
		p.Company = in.Company
		p.Website = in.Website
		p.Location = in.Location
		p.Status = in.Status
		p.Skills = skills
		p.Bio = in.Bio
		p.GithubUsername = in.GithubUsername
		p.Social = social
		if err := s.Profiles.Save(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	p = &entity.Profile{
		User:           oid,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Status:         in.Status,
		Skills:         skills,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social:         social,
		Experience:     []entity.Experience{},
		Education:      []entity.Education{},
		Date:           time.Now(),
	}
	if err := s.Profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ExperienceInput is one work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// AddExperience prepends a new experience entry (fresh id, newest first) and
// persists the whole profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*entity.Profile, error) {
	p, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	exp := entity.Experience{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = entity.InsertFront(p.Experience, exp)
	if err := s.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience removes the entry with the given id. An unknown id is a
// no-op that still returns the profile, matching the deployed behavior.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*entity.Profile, error) {
	p, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Experience, _ = entity.RemoveByKey(p.Experience, expID)
	if err := s.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// EducationInput is one schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// AddEducation prepends a new education entry and persists the whole profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*entity.Profile, error) {
	p, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	edu := entity.Education{
		ID:           primitive.NewObjectID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = entity.InsertFront(p.Education, edu)
	if err := s.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveEducation removes the entry with the given id, no-op when absent.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*entity.Profile, error) {
	p, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Education, _ = entity.RemoveByKey(p.Education, eduID)
	if err := s.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GithubRepos returns the user's five most recent public repositories.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]*github.Repository, error) {
	client := s.Github
	if client == nil {
		client = github.NewClient(nil)
	}
	opts := &github.RepositoryListOptions{
		Sort:        "created",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: 5},
	}
	repos, resp, err := client.Repositories.List(ctx, username, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNoGithubProfile
		}
		return nil, err
	}
	return repos, nil
}
