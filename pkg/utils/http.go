package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("empty parameter")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, ErrEmptyParameter
	}
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

func ParseQueryIntParam(c *gin.Context, param string, fallback int) int {
	valStr := c.Query(param)
	if valStr == "" {
		return fallback
	}
	v, err := strconv.Atoi(valStr)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
