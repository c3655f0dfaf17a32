package application

import "errors"

// Sentinel errors handlers translate to HTTP responses with errors.Is.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not yet been liked")
	ErrCommentNotFound    = errors.New("comment does not exist")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrNoGithubProfile    = errors.New("no github profile found")
)
