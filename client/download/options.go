package download

import (
	"errors"
	"io"
)

// Option defines optional settings for downloading files.
//
// WithSaveAs writes to the exact path given, bypassing filename inference.
//
// WithSaveDir places the inferred filename inside dir, creating it
// (and any parents) if absent. Ignored when WithSaveAs is also given.
//
// WithChunkSize sets the number of bytes read from the body per read.
// It must be in the range 1 to MaxChunkSize.
//
// WithProgressBar renders a progress bar to w. This is the default,
// rendering to os.Stderr.
//
// WithProgressLog replaces the progress bar with periodic download
// progress logging via the logger supplied to Handle.
//
// WithSummary sets where the pre-transfer summary is printed.
// Defaults to os.Stdout.
//
// WithSkipExisting causes Handle to return the resolved path
// immediately when it already exists, avoiding a redundant download.
type Option func(*options) error

type options struct {
	saveAs       string
	saveDir      string
	chunkSize    int
	barOut       io.Writer
	logProgress  bool
	summary      io.Writer
	skipExisting bool
}

func WithSaveAs(path string) Option {
	return func(opts *options) error {
		if path == "" {
			return errors.New("save as path must not be empty")
		}

		opts.saveAs = path
		return nil
	}
}

func WithSaveDir(dir string) Option {
	return func(opts *options) error {
		if dir == "" {
			return errors.New("save dir must not be empty")
		}

		opts.saveDir = dir
		return nil
	}
}

func WithChunkSize(size int) Option {
	return func(opts *options) error {
		opts.chunkSize = size
		return nil
	}
}

func WithProgressBar(w io.Writer) Option {
	return func(opts *options) error {
		if w == nil {
			return errors.New("progress writer must not be nil")
		}

		opts.barOut = w
		opts.logProgress = false
		return nil
	}
}

func WithProgressLog() Option {
	return func(opts *options) error {
		opts.logProgress = true
		return nil
	}
}

func WithSummary(w io.Writer) Option {
	return func(opts *options) error {
		if w == nil {
			return errors.New("summary writer must not be nil")
		}

		opts.summary = w
		return nil
	}
}

func WithSkipExisting() Option {
	return func(opts *options) error {
		opts.skipExisting = true
		return nil
	}
}

func (o options) request() Request {
	return Request{
		SaveAs:    o.saveAs,
		SaveDir:   o.saveDir,
		ChunkSize: o.chunkSize,
	}
}
