// Package client provides the configurable HTTP client used to
// download files, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Minute),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Downloading Files
//
// Construct a [Request], then stream the response body to disk with
// [Client.Download]. The returned path is where the file was saved:
//
//	req, err := client.Request(ctx, "https://example.com/files/data.csv")
//	path, err := c.Download(req, http.StatusOK,
//		client.WithSaveDir("downloads"),
//		client.WithChunkSize(8192),
//	)
//
// Without [WithSaveAs] the filename comes from the Content-Disposition
// header, or else from the last segment of the final URL path.
//
// # Tracing
//
// Each download is recorded as a "client.download" span on the tracer
// given to [WithTracer], and the global propagator is injected into the
// outgoing request headers.
//
// For lower-level control see the
// [github.com/adamwoolhether/fetchr/client/download] package.
package client
