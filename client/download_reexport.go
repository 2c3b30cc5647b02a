package client

import (
	"io"

	"github.com/adamwoolhether/fetchr/client/download"
)

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export user-facing types from [download].
// ————————————————————————————————————————————————————————————————————

type (
	// DownloadOption configures a single [Client.Download] call.
	DownloadOption = download.Option

	// DownloadError wraps a sentinel error with additional detail.
	DownloadError = download.Error
)

// ————————————————————————————————————————————————————————————————————
// Sentinel errors
// ————————————————————————————————————————————————————————————————————

var (
	// ErrContentLengthMismatch indicates the byte count did not match Content-Length.
	ErrContentLengthMismatch = download.ErrContentLengthMismatch

	// ErrDownloadCancelled indicates the download was cancelled via context.
	ErrDownloadCancelled = download.ErrDownloadCancelled
)

// ————————————————————————————————————————————————————————————————————
// Download option forwarding functions
// ————————————————————————————————————————————————————————————————————

// WithSaveAs writes the download to exactly path, skipping filename inference.
func WithSaveAs(path string) DownloadOption { return download.WithSaveAs(path) }

// WithSaveDir places the inferred filename inside dir, creating it if absent.
func WithSaveDir(dir string) DownloadOption { return download.WithSaveDir(dir) }

// WithChunkSize sets the number of bytes read from the response body per read.
// Defaults to [download.DefaultChunkSize]; must not exceed [download.MaxChunkSize].
func WithChunkSize(size int) DownloadOption { return download.WithChunkSize(size) }

// WithProgressBar renders the progress bar to w instead of os.Stderr.
func WithProgressBar(w io.Writer) DownloadOption { return download.WithProgressBar(w) }

// WithProgressLog enables periodic download progress logging
// in place of the progress bar.
func WithProgressLog() DownloadOption { return download.WithProgressLog() }

// WithSummary prints the pre-transfer summary to w instead of os.Stdout.
func WithSummary(w io.Writer) DownloadOption { return download.WithSummary(w) }

// WithSkipExisting causes a download to return immediately when
// the resolved destination file already exists.
func WithSkipExisting() DownloadOption { return download.WithSkipExisting() }
