// Package response writes the three JSON error shapes the original clients
// already parse: validation failures as {errors: [{msg, param}]}, auth and
// precondition failures as {msg}, and generic server faults as {message}.
// The shapes are intentionally kept distinct per route for compatibility.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is a single entry of a validation error array.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationFailed writes 400 {errors: [...]}.
func ValidationFailed(c *gin.Context, items []ErrorItem) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": items})
}

// Errors writes {errors: [{msg}...]} with the given status. Used for
// handler-level failures the clients read from the errors array, e.g.
// "Invalid credentials" and "User already exists".
func Errors(c *gin.Context, status int, msgs ...string) {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	c.JSON(status, gin.H{"errors": items})
}

// Msg writes {msg} with the given status. Used for auth, ownership and
// precondition failures.
func Msg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// ServerError writes the generic 500 {message} without leaking any internal
// error detail.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
}
