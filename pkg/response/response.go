package response

import (
	"net/http"

	"github.com/linskybing/gigboard/pkg/apperr"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// StatusFor maps an error kind to the HTTP status shown to the caller.
func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindDuplicate:
		return http.StatusConflict
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindPrecondition:
		return http.StatusPreconditionFailed
	case apperr.KindSafety:
		return http.StatusUnprocessableEntity
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError builds the error body for err. Store failures hide their cause.
func FromError(err error) ErrorResponse {
	kind := apperr.KindOf(err)
	msg := err.Error()
	if kind == apperr.KindStore {
		msg = "internal error"
	}
	return ErrorResponse{Error: msg, Kind: string(kind), Reason: apperr.ReasonOf(err)}
}
