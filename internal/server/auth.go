package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authMiddleware verifies the bearer token issued by the main backend
// for service-to-service calls. It only runs when a shared secret is
// configured.
func (a *App) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			writeError(c, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		parserOpts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{a.cfg.JWTAlgorithm}),
		}
		if a.cfg.JWTAudience != "" {
			parserOpts = append(parserOpts, jwt.WithAudience(a.cfg.JWTAudience))
		}
		if a.cfg.JWTIssuer != "" {
			parserOpts = append(parserOpts, jwt.WithIssuer(a.cfg.JWTIssuer))
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(a.cfg.ServiceJWTSecret), nil
		}, parserOpts...)
		if err != nil || !token.Valid {
			writeError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, _ := claims["sub"].(string); sub != "" {
				c.Set("subject", sub)
			}
		}
		c.Next()
	}
}
