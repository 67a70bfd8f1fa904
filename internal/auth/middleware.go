package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "org-directory/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthenticatedKey is set on the gin context once a request passed the API key check
const AuthenticatedKey = "api_key_authenticated"

// APIKeyMiddleware guards routes with a static shared bearer secret
type APIKeyMiddleware struct {
	apiKey []byte
}

// NewAPIKeyMiddleware creates a middleware accepting requests that carry apiKey
func NewAPIKeyMiddleware(apiKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKey: []byte(apiKey)}
}

// Verify checks an Authorization header value of the form "Bearer <key>"
func (m *APIKeyMiddleware) Verify(header string) error {
	if header == "" {
		return apperrors.ErrMissingAuthorization
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidAuthScheme
	}

	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), m.apiKey) != 1 {
		return apperrors.ErrInvalidAPIKey
	}
	return nil
}

// RequireAPIKey rejects requests without the configured bearer key
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Verify(c.GetHeader("Authorization")); err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(AuthenticatedKey, true)
		c.Next()
	}
}
