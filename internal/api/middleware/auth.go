package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/pkg/response"
	"github.com/linskybing/gigboard/pkg/utils"
)

// Role lets the request through only if the caller's token carries one of
// the given roles. It must run after JWTAuthMiddleware.
func Role(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := utils.GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		for _, r := range roles {
			if user.Role(role) == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{
			Error: "only " + joinRoles(roles) + " accounts can do this",
			Kind:  "authorization",
		})
	}
}

func joinRoles(roles []user.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		uid, _ := utils.GetUserIDFromContext(c)
		log.Printf("[http] %s %s %d %s uid=%d", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), uid)
	}
}

// CORSMiddleware allows the configured front-end origins plus any localhost
// port for development.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
