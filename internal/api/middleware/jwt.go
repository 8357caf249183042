package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/pkg/response"
	"github.com/linskybing/gigboard/pkg/types"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token carrying the user's id and role.
var GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// tokenFromRequest looks at the Authorization header, then the token cookie,
// then the token query parameter. Browsers cannot set headers on WebSocket
// upgrades, hence the last two.
func tokenFromRequest(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errors.New("authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, nil
	}
	if q := c.Query("token"); q != "" {
		return q, nil
	}
	return "", errors.New("authorization required (header, cookie or token query)")
}

// JWTAuthMiddleware validates the caller's token and stores its claims.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}

		// Explicitly enforce expiration to avoid lax parser behavior
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
