package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextAccountIDKey = "accountID"
)

// AuthMiddleware accepts a request only if it carries a valid bearer token
// for the account that currently holds the session. Tokens outlive a logout,
// so the session check is what actually signs a user out.
func AuthMiddleware(tokens *TokenIssuer, sessions service.SessionHolder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		accountID, err := tokens.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		active := sessions.Restore(c.Request.Context())
		if active == nil || active.ID != accountID {
			abortWithError(c, http.StatusUnauthorized, "Session has ended, please log in again")
			return
		}

		c.Set(ContextAccountIDKey, accountID)
		c.Next()
	}
}

// RequestLogger logs one line per request through logrus.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var (
		workoutErr *service.InvalidWorkoutInputError
		accountErr *service.InvalidAccountInputError
	)
	switch {
	case errors.As(err, &workoutErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": workoutErr.Error(), "field": workoutErr.Field})
	case errors.As(err, &accountErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": accountErr.Error(), "field": accountErr.Field})
	case errors.Is(err, service.ErrDuplicateEmail):
		abortWithError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrPersistenceUnavailable):
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusServiceUnavailable, "Your change could not be saved, please try again")
	default:
		log.Errorf("%s %s: unexpected error: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// Helper function to get the account id from context (used by handlers)
func getAccountIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextAccountIDKey)
	if !exists {
		return "", errors.New("account ID not found in context")
	}
	id, ok := idRaw.(string)
	if !ok || id == "" {
		return "", errors.New("invalid account ID type in context")
	}
	return id, nil
}
