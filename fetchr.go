// Package fetchr downloads a file over HTTP(S) to local storage,
// inferring its name from the response and reporting progress.
package fetchr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adamwoolhether/fetchr/client"
	"github.com/adamwoolhether/fetchr/internal/validate"
)

// NewClient instantiates a new *Client with the provided options.
// If not specified, a fresh http.Client over http.DefaultTransport is used.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

type target struct {
	URL string `json:"url" validate:"required,http_url"`
}

// Download fetches rawURL with a default client, following redirects,
// and returns the path the body was saved to. Any status other than
// 200 OK is an error.
//
// With no options the file lands in the working directory, named from
// the Content-Disposition header or else the final URL's last path
// segment, and is read in 4096 byte chunks.
func Download(ctx context.Context, rawURL string, opts ...client.DownloadOption) (string, error) {
	c, err := client.Build()
	if err != nil {
		return "", fmt.Errorf("building client: %w", err)
	}

	return DownloadWith(ctx, c, rawURL, opts...)
}

// DownloadWith is [Download] using the preconfigured client c.
func DownloadWith(ctx context.Context, c *client.Client, rawURL string, opts ...client.DownloadOption) (string, error) {
	if err := validate.Check(target{URL: rawURL}); err != nil {
		return "", fmt.Errorf("validating url: %w", err)
	}

	req, err := c.Request(ctx, rawURL)
	if err != nil {
		return "", err
	}

	return c.Download(req, http.StatusOK, opts...)
}
