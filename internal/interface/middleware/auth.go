package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Charitie/DevConnector/pkg/helpers"
	"github.com/Charitie/DevConnector/pkg/response"
)

// CtxUserIDKey is the gin context key carrying the authenticated user id.
const CtxUserIDKey = "userID"

// TokenHeader is the bearer token header the deployed clients send. Not the
// standard Authorization header; must stay as-is.
const TokenHeader = "x-auth-token"

// Auth reads the x-auth-token header, verifies it and injects the user id
// into the request context. Requests fail here before any handler runs:
// missing and invalid tokens get 401, an unexpected verification fault gets
// the generic 500.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			if errors.Is(err, helpers.ErrTokenMalformed) || errors.Is(err, helpers.ErrTokenSignature) {
				response.Msg(c, http.StatusUnauthorized, "Token is not valid")
			} else {
				response.ServerError(c)
			}
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.User.ID)
		c.Next()
	}
}
