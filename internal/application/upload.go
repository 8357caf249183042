package application

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/pkg/apperr"
)

// ObjectStore keeps uploaded files and returns a URL anyone can fetch them
// from.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

func validateImage(up Upload) (string, error) {
	if up.Size <= 0 {
		return "", apperr.Validation("file is empty")
	}
	if up.Size > config.MaxAvatarBytes {
		return "", apperr.Validation("file is larger than %d bytes", config.MaxAvatarBytes)
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return "", apperr.Validation("only images can be uploaded")
	}
	ext := strings.ToLower(path.Ext(up.Filename))
	if _, ok := imageExtensions[ext]; !ok {
		return "", apperr.Validation("unsupported image type %q", ext)
	}
	return ext, nil
}

// objectKey places each upload under its owner with a random name so
// re-uploads never overwrite a URL that is still cached somewhere.
func objectKey(prefix string, ownerID uint, ext string) string {
	return prefix + "/" + idString(ownerID) + "/" + uuid.NewString() + ext
}
