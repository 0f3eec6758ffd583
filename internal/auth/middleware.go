package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the API key. The assistant
// integration sends the bare key in a custom header rather than a standard
// Authorization scheme.
const TokenHeader = "API_TOKEN"

// TokenMiddleware guards data-access endpoints with the static token table
type TokenMiddleware struct {
	store *TokenStore
}

// NewTokenMiddleware creates a new token authentication middleware
func NewTokenMiddleware(store *TokenStore) *TokenMiddleware {
	return &TokenMiddleware{store: store}
}

// RequireToken validates the API_TOKEN header and sets the username context.
// Requests with a missing or unknown token are rejected before any handler
// logic runs.
func (m *TokenMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API token is required"})
			c.Abort()
			return
		}

		username, err := m.store.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API token"})
			c.Abort()
			return
		}

		c.Set("username", username)

		c.Next()
	}
}
