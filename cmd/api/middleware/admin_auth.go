package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"birthday-twins/internal/logger"

	"github.com/gin-gonic/gin"
)

const RoleAdmin = "admin"

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// bearerToken 은 "Authorization: Bearer <token>" 에서 토큰만 꺼낸다. scheme 은 대소문자를 가리지 않는다.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidFormat
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// AdminAuthMiddleware 는 Bearer 토큰이 운영 토큰과 일치하는지 확인한다.
// 토큰 형식 오류는 401, 불일치는 403.
func AdminAuthMiddleware(adminToken string) gin.HandlerFunc {
	want := []byte(adminToken)
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if len(want) == 0 || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			logger.WarnWithFields("admin access denied", logger.Fields{
				"path":      c.FullPath(),
				"client_ip": c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set("role", RoleAdmin)
		c.Next()
	}
}
