package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/fetchr"
	"github.com/adamwoolhether/fetchr/client"
	"github.com/adamwoolhether/fetchr/client/download"
	"github.com/adamwoolhether/fetchr/internal/validate"
)

type rootCmdFlags struct {
	saveAs      string
	saveDir     string
	chunkSize   int
	timeout     time.Duration
	userAgent   string
	logProgress bool
	skip        bool
}

func rootCmd() *cobra.Command {
	flags := rootCmdFlags{}
	command := &cobra.Command{
		Use:   "fetchr <url>",
		Short: "Download a file over HTTP(S), naming it from the response",
		Long: "Download a file over HTTP(S). Without --output the filename comes from the\n" +
			"Content-Disposition header, or else the last segment of the final URL.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args[0], flags)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.Flags().StringVarP(&flags.saveAs, "output", "o", "", "exact output file path, overrides filename inference")
	command.Flags().StringVarP(&flags.saveDir, "dir", "d", "", "directory to save into, created if absent (default: working directory)")
	command.Flags().IntVarP(&flags.chunkSize, "chunk-size", "c", download.DefaultChunkSize, "bytes read per chunk")
	command.Flags().DurationVar(&flags.timeout, "timeout", 0, "overall request timeout, 0 for none")
	command.Flags().StringVar(&flags.userAgent, "user-agent", "", "User-Agent header to send")
	command.Flags().BoolVar(&flags.logProgress, "log-progress", false, "log progress lines instead of drawing a bar")
	command.Flags().BoolVar(&flags.skip, "skip-existing", false, "do nothing if the destination already exists")

	return command
}

func runFetch(cmd *cobra.Command, rawURL string, flags rootCmdFlags) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	c, err := fetchr.NewClient(
		client.WithLogger(logger),
		client.WithTimeout(flags.timeout),
		client.WithUserAgent(flags.userAgent),
	)
	if err != nil {
		return err
	}

	opts := []client.DownloadOption{
		client.WithChunkSize(flags.chunkSize),
		client.WithSummary(cmd.OutOrStdout()),
	}
	if flags.saveAs != "" {
		opts = append(opts, client.WithSaveAs(flags.saveAs))
	}
	if flags.saveDir != "" {
		opts = append(opts, client.WithSaveDir(flags.saveDir))
	}
	if flags.skip {
		opts = append(opts, client.WithSkipExisting())
	}
	if flags.logProgress || !isTerminal(cmd.ErrOrStderr()) {
		opts = append(opts, client.WithProgressLog())
	} else {
		opts = append(opts, client.WithProgressBar(cmd.ErrOrStderr()))
	}

	path, err := fetchr.DownloadWith(cmd.Context(), c, rawURL, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError writes err to w, listing invalid fields one per line.
func printError(w io.Writer, err error) {
	fields := validate.GetFieldErrors(err).Fields()
	if len(fields) == 0 {
		fmt.Fprintln(w, "error:", err)
		return
	}

	fmt.Fprintln(w, "error: invalid arguments")
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s: %s\n", name, fields[name])
	}
}
