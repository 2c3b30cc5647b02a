package download

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var errNoFilename = errors.New("no usable filename")

// looseFilename matches a filename parameter that mime.ParseMediaType
// rejects, such as an unquoted value containing spaces.
var looseFilename = regexp.MustCompile(`(?i)\bfilename\s*=\s*(?:"([^"]*)"|([^;]+))`)

// resolvePath determines the output path for resp. An explicit SaveAs
// wins outright. Otherwise the base name comes from Content-Disposition,
// falling back to the final request URL, and is joined to SaveDir,
// which is created if absent.
func resolvePath(resp *http.Response, req Request, logger *slog.Logger) (string, error) {
	if req.SaveAs != "" {
		return req.SaveAs, nil
	}

	dir := req.SaveDir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating save dir: %w", err)
	}

	name, err := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if err != nil {
		logger.Debug("content-disposition unusable, using url", "error", err)
	}

	if name == "" {
		var u *url.URL
		if resp.Request != nil {
			u = resp.Request.URL
		}
		name = filenameFromURL(u)
	}

	return filepath.Join(dir, name), nil
}

// filenameFromDisposition extracts the filename parameter of a
// Content-Disposition header value. An empty header yields no name
// and no error.
func filenameFromDisposition(header string) (string, error) {
	if header == "" {
		return "", nil
	}

	var name string
	_, params, err := mime.ParseMediaType(header)
	switch {
	case err == nil:
		name = params["filename"]
	default:
		m := looseFilename.FindStringSubmatch(header)
		if m == nil {
			return "", fmt.Errorf("parsing content-disposition: %w", err)
		}
		name = m[1] + strings.TrimSpace(m[2])
	}

	name, ok := cleanName(name)
	if !ok {
		return "", fmt.Errorf("content-disposition %q: %w", header, errNoFilename)
	}

	return name, nil
}

// filenameFromURL derives a filename from the last segment of u's path.
func filenameFromURL(u *url.URL) string {
	if u == nil {
		return fallbackName
	}

	name, ok := cleanName(path.Base(u.EscapedPath()))
	if !ok {
		return fallbackName
	}

	return name
}

// cleanName percent-decodes name and strips any directory components
// so the result always stays inside the save directory.
func cleanName(name string) (string, bool) {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	name = filepath.Base(filepath.FromSlash(strings.TrimSpace(name)))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", false
	}

	return name, true
}
