package application

import (
	"errors"

	"github.com/linskybing/gigboard/pkg/apperr"
	"gorm.io/gorm"
)

// storeErr turns a repository error into a domain error. what names the
// entity for the caller-facing message.
func storeErr(what string, err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Duplicate("%s already exists", what)
	default:
		return apperr.Store("failed to access "+what, err)
	}
}
