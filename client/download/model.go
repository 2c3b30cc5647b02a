package download

import (
	"errors"
	"fmt"
)

const (
	// DefaultChunkSize is the number of bytes read from the
	// response body per read when WithChunkSize is not given.
	DefaultChunkSize = 4096

	// fallbackName is used when neither the headers nor the URL
	// path yield a usable filename.
	fallbackName = "index.html"

	// MaxChunkSize caps WithChunkSize at 64 MiB. It must match the
	// lte bound on Request.ChunkSize.
	MaxChunkSize = 64 << 20

	// fileMode is applied to the temp file before it is renamed into place.
	fileMode = 0o644

	tempPattern = ".fetchr-dl-*"
)

var (
	ErrContentLengthMismatch = errors.New("content length mismatch")
	ErrDownloadCancelled     = errors.New("download cancelled")
)

// Error wraps a sentinel error with additional detail.
type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Request is the settled form of a single download's settings,
// assembled from the options passed to Handle.
type Request struct {
	SaveAs    string `json:"save_as"`
	SaveDir   string `json:"save_dir"`
	ChunkSize int    `json:"chunk_size" validate:"gt=0,lte=67108864"`
}
