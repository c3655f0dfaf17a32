package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Charitie/DevConnector/internal/application"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/response"
	"github.com/Charitie/DevConnector/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /users.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Errors(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login handles POST /auth.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	token, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Errors(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"token":   token,
	})
}

// Me handles GET /auth: the authenticated user's record, password omitted.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).Error("load current user failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UploadAvatar handles POST /users/avatar: a multipart image replacing the
// user's avatar URL. Existing posts keep the snapshot taken when they were
// written.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.ValidationFailed(c, []response.ErrorItem{{Msg: "Avatar file is required", Param: "avatar"}})
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, file, header.Filename, contentType)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).Error("avatar upload failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
