package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Charitie/DevConnector/internal/application"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/response"
	"github.com/Charitie/DevConnector/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, req.Text)
	if err != nil {
		h.postError(c, err, "create post failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /posts, newest first.
func (h *PostHandler) List(c *gin.Context) {
	ps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.postError(c, err, "load post failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /posts/:id; author only.
func (h *PostHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.postError(c, err, "delete post failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post removed"})
}

// Like handles PUT /posts/like/:id and returns the updated likes array.
func (h *PostHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Svc.Like(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrAlreadyLiked) {
			response.Msg(c, http.StatusBadRequest, "Post already liked")
			return
		}
		h.postError(c, err, "like failed")
		return
	}
	c.JSON(http.StatusOK, likes)
}

// Unlike handles PUT /posts/unlike/:id and returns the updated likes array.
func (h *PostHandler) Unlike(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Svc.Unlike(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNotLiked) {
			response.Msg(c, http.StatusBadRequest, "Post has not yet been liked")
			return
		}
		h.postError(c, err, "unlike failed")
		return
	}
	c.JSON(http.StatusOK, likes)
}

// AddComment handles POST /posts/comment/:id and returns the comments array.
func (h *PostHandler) AddComment(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToErrors(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	comments, err := h.Svc.AddComment(c.Request.Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		h.postError(c, err, "add comment failed")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RemoveComment handles DELETE /posts/comment/:id/:comment_id.
func (h *PostHandler) RemoveComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	comments, err := h.Svc.RemoveComment(c.Request.Context(), uid, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		if errors.Is(err, application.ErrCommentNotFound) {
			response.Msg(c, http.StatusNotFound, "Comment does not exist")
			return
		}
		h.postError(c, err, "remove comment failed")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Search handles GET /posts/search?q=&size=.
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.ValidationFailed(c, []response.ErrorItem{{Msg: "Query is required", Param: "q"}})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("post search failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

func (h *PostHandler) postError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		response.Msg(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, application.ErrUserNotFound):
		response.Msg(c, http.StatusNotFound, "User not found")
	case errors.Is(err, application.ErrNotAuthorized):
		response.Msg(c, http.StatusUnauthorized, "User not authorized")
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.ServerError(c)
	}
}
