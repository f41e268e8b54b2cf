package service

import (
	"context"
	"io"
)

// PhotoFile is an image picked by the user, not yet uploaded.
type PhotoFile struct {
	Name        string
	ContentType string // declared media type, may be empty
	Data        []byte
}

// Size returns the file size in bytes.
func (f *PhotoFile) Size() int64 {
	return int64(len(f.Data))
}

// PhotoStore stores event photos in object storage.
type PhotoStore interface {
	// Validate checks media type and size before any network call
	Validate(file *PhotoFile) error

	// Upload validates, downsizes and stores the photo under owner/subject and returns its URL
	Upload(ctx context.Context, file *PhotoFile, ownerID, subjectID string) (string, error)

	// Delete removes a photo previously returned by Upload. Failures are logged, never returned.
	Delete(ctx context.Context, url string)

	// Owns reports whether url points into this store
	Owns(url string) bool
}

// PhotoObject is a stored photo opened for reading. The caller closes Body.
type PhotoObject struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// PhotoReader serves stored photos back to the UI.
type PhotoReader interface {
	// Open returns the object stored under key, a key issued by Upload
	Open(ctx context.Context, key string) (*PhotoObject, error)
}
