package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/pkg/types"
)

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var GetUserRoleFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}
