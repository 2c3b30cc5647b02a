// Package download streams HTTP response bodies to disk, inferring the
// destination filename and reporting progress.
//
// # Single Download
//
// [Handle] resolves the output path, prints a short summary, and writes
// the response body to a temporary file alongside the destination in
// fixed-size chunks, then atomically renames it on success:
//
//	path, err := download.Handle(ctx, resp, logger,
//		download.WithSaveDir("out/sub"),
//		download.WithChunkSize(8192),
//	)
//
// # Filename Resolution
//
// In priority order:
//
//  1. The path given to [WithSaveAs], used verbatim.
//  2. The filename parameter of the Content-Disposition header.
//  3. The last segment of the final (post-redirect) request URL path.
//
// Names from 2 and 3 are percent-decoded, stripped of any directory
// components, and joined to the [WithSaveDir] directory (default: the
// working directory), which is created if it does not exist. A header
// that cannot be parsed is ignored in favour of the URL.
//
// # Progress
//
// A progress bar is rendered to os.Stderr by default; use
// [WithProgressBar] to redirect it or [WithProgressLog] to log progress
// through the supplied [log/slog.Logger] instead.
//
// Most callers should use the higher-level
// [github.com/adamwoolhether/fetchr/client] package, which invokes
// Handle internally and re-exports all download options as
// client.With* functions.
package download
