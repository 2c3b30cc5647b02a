package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adamwoolhether/fetchr/internal/validate"
	"github.com/google/uuid"
)

// Handle streams resp.Body to disk and returns the path it was saved to.
//
// The path is resolved from the options, the Content-Disposition header
// or the final request URL, in that order. The body is written to a temp
// file alongside the destination in chunks of the configured size, then
// renamed on success. On any error the temp file is removed.
func Handle(ctx context.Context, resp *http.Response, logger *slog.Logger, optFns ...Option) (string, error) {
	opts := options{
		chunkSize: DefaultChunkSize,
		barOut:    os.Stderr,
		summary:   os.Stdout,
	}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return "", fmt.Errorf("applying option: %w", err)
		}
	}

	req := opts.request()
	if err := validate.Check(&req); err != nil {
		return "", fmt.Errorf("validating options: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("download_id", uuid.NewString())

	destPath, err := resolvePath(resp, req, logger)
	if err != nil {
		return "", err
	}

	if opts.skipExisting {
		if _, err := os.Stat(destPath); err == nil {
			logger.Info("skipping existing file", "path", destPath)
			return destPath, nil
		}
	}

	if err := printSummary(opts.summary, sourceURL(resp), resp.ContentLength, req.ChunkSize, destPath); err != nil {
		return "", err
	}

	var reporter Reporter
	if opts.logProgress {
		reporter = newLogReporter(logger)
	} else {
		reporter = newBarReporter(opts.barOut, filepath.Base(destPath))
	}

	reporter.Start(max(resp.ContentLength, 0))
	n, err := write(ctx, resp.Body, resp.ContentLength, destPath, req.ChunkSize, reporter, logger)
	reporter.Finish(err)
	if err != nil {
		return "", err
	}

	logger.Info("download saved", "path", destPath, "bytes", n)

	return destPath, nil
}

// write copies body into a temp file next to destPath and renames it
// into place once the byte count has been checked.
func write(ctx context.Context, body io.Reader, contentLength int64, destPath string, chunkSize int, reporter Reporter, logger *slog.Logger) (int64, error) {
	body = &contextReader{ctx: ctx, r: body}

	file, err := os.CreateTemp(filepath.Dir(destPath), tempPattern)
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}

	var successful bool
	defer func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			logger.Error("defer closing temp file", "error", err)
		}
		if !successful {
			if err := os.Remove(file.Name()); err != nil {
				logger.Error("failed to remove temp file", "error", err)
			}
		}
	}()

	n, err := copyChunks(file, body, make([]byte, chunkSize), reporter.Add)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return n, fmt.Errorf("%w: %w", ErrDownloadCancelled, err)
		}

		return n, fmt.Errorf("copying file body: %w", err)
	}

	if contentLength >= 0 && n != contentLength {
		return n, &Error{
			Err:    ErrContentLengthMismatch,
			Detail: fmt.Sprintf("expected %d bytes, got %d", contentLength, n),
		}
	}

	if err := file.Chmod(fileMode); err != nil {
		return n, fmt.Errorf("setting file mode: %w", err)
	}
	if err := file.Sync(); err != nil {
		return n, fmt.Errorf("syncing temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return n, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(file.Name(), destPath); err != nil {
		return n, fmt.Errorf("renaming temp file: %w", err)
	}

	successful = true

	return n, nil
}

// copyChunks reads src in chunks of len(buf) bytes, writing each
// non-empty chunk to dst in order and passing its length to report.
// Only the final chunk may be short.
func copyChunks(dst io.Writer, src io.Reader, buf []byte, report func(int)) (int64, error) {
	var written int64
	for {
		nr, rerr := readChunk(src, buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
			report(nw)
		}

		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}

// readChunk fills buf from r, stopping early only on error or EOF.
func readChunk(r io.Reader, buf []byte) (int, error) {
	var n int
	for n < len(buf) {
		nr, err := r.Read(buf[n:])
		n += nr
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// sourceURL reports the URL originally requested, before any redirects.
func sourceURL(resp *http.Response) string {
	req := resp.Request
	if req == nil {
		return ""
	}

	for req.Response != nil && req.Response.Request != nil {
		req = req.Response.Request
	}

	return req.URL.String()
}

// contextReader stops a read once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}
