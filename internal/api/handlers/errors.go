package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/response"
	"github.com/linskybing/gigboard/pkg/utils"
)

// writeError sends err with the status for its kind.
func writeError(c *gin.Context, err error) {
	status := response.StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, response.FromError(err))
}

// writeBindError turns binding failures into readable field messages.
func writeBindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Kind: string(apperr.KindValidation)})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := fieldLabel(fe.StructField())

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "url":
			msg = fmt.Sprintf("%s must be a valid URL", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; "), Kind: string(apperr.KindValidation)})
}

// fieldLabel turns FullName into "full name".
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// currentUser reads the caller id, answering 401 if it is missing.
func currentUser(c *gin.Context) (uint, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return uid, true
}

// pathID reads the :id parameter, answering 400 if it is malformed.
func pathID(c *gin.Context, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + what + " id", Kind: string(apperr.KindValidation)})
		return 0, false
	}
	return id, true
}
