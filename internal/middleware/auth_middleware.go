package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/pkg/auth"
)

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth verifies the Authorization header and stores the caller's user id
// in the request context under "userID". Every failure is a bare 401; the
// response never says which check failed.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Authentication failed"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			abortUnauthorized(c, message)
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
