package download

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestBarReporter_Finish(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		adds  []int
		err   error
	}{
		{name: "known total", total: 10, adds: []int{4, 4, 2}},
		{name: "unknown total", total: 0, adds: []int{3, 3}},
		{name: "aborted", total: 10, adds: []int{4}, err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			br := newBarReporter(&buf, "file.bin")

			done := make(chan struct{})
			go func() {
				defer close(done)
				br.Start(tt.total)
				for _, n := range tt.adds {
					br.Add(n)
				}
				br.Finish(tt.err)
			}()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("Finish did not return")
			}

			if tt.err == nil && !strings.Contains(buf.String(), "file.bin") {
				t.Errorf("bar output missing name:\n%q", buf.String())
			}
		})
	}
}

func TestLogReporter(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		err          error
		wantMsg      string
		wantProgress string
	}{
		{name: "complete", total: 8, wantMsg: "download complete", wantProgress: "100.0%"},
		{name: "unknown total", total: 0, wantMsg: "download complete", wantProgress: "unknown"},
		{name: "aborted", total: 16, err: errors.New("boom"), wantMsg: "download aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lr := newLogReporter(slog.New(slog.NewJSONHandler(&buf, nil)))

			lr.Start(tt.total)
			lr.Add(4)
			lr.Add(4)
			lr.Finish(tt.err)

			var rec map[string]any
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("decoding log record %q: %v", buf.String(), err)
			}

			if rec["msg"] != tt.wantMsg {
				t.Errorf("msg = %v, want %q", rec["msg"], tt.wantMsg)
			}
			if rec["transferred"] != float64(8) {
				t.Errorf("transferred = %v, want 8", rec["transferred"])
			}
			if tt.wantProgress != "" && rec["progress"] != tt.wantProgress {
				t.Errorf("progress = %v, want %q", rec["progress"], tt.wantProgress)
			}
		})
	}
}
