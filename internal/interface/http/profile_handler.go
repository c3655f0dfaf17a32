package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Charitie/DevConnector/internal/application"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/response"
	"github.com/Charitie/DevConnector/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, users *application.UserService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Users: users, Logger: logger}
}

type profileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type educationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldofstudy" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Me handles GET /profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.GetByUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		h.Logger.WithError(err).Error("load own profile failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Upsert handles POST /profile: create the caller's profile or update it in
// place.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Upsert(c.Request.Context(), uid, application.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		h.Logger.WithError(err).Error("profile upsert failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /profile.
func (h *ProfileHandler) List(c *gin.Context) {
	ps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list profiles failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// ByUser handles GET /profile/user/:user_id.
func (h *ProfileHandler) ByUser(c *gin.Context) {
	p, err := h.Svc.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "Profile not found")
			return
		}
		h.Logger.WithError(err).Error("load profile by user failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount handles DELETE /profile: removes the caller's posts, profile
// and user record.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Users.DeleteAccount(c.Request.Context(), uid); err != nil {
		h.Logger.WithError(err).Error("account deletion failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// AddExperience handles PUT /profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.AddExperience(c.Request.Context(), uid, application.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.profileError(c, err, "add experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveExperience handles DELETE /profile/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveExperience(c.Request.Context(), uid, c.Param("exp_id"))
	if err != nil {
		h.profileError(c, err, "remove experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddEducation handles PUT /profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.AddEducation(c.Request.Context(), uid, application.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.profileError(c, err, "add education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveEducation handles DELETE /profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveEducation(c.Request.Context(), uid, c.Param("edu_id"))
	if err != nil {
		h.profileError(c, err, "remove education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// GithubRepos handles GET /profile/github/:username.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Svc.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, application.ErrNoGithubProfile) {
			response.Msg(c, http.StatusNotFound, "No github profile found")
			return
		}
		h.Logger.WithError(err).Error("github repos lookup failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, repos)
}

func (h *ProfileHandler) profileError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, application.ErrProfileNotFound) {
		response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.ServerError(c)
}
