package download

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var label = color.New(color.FgCyan, color.Bold)

// printSummary writes the pre-transfer overview. total is reported as
// 0 when the server did not declare a length.
func printSummary(w io.Writer, rawURL string, total int64, chunkSize int, dest string) error {
	if total < 0 {
		total = 0
	}

	lines := []struct {
		label string
		value any
	}{
		{"Downloading:", rawURL},
		{"Total size:", total},
		{"Chunk size:", chunkSize},
		{"Saving to:", dest},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %v\n", label.Sprint(l.label), l.value); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	return nil
}
