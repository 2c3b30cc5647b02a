package download

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Reporter receives progress for a single transfer. Start is called
// once with the declared total (0 when unknown), Add once per written
// chunk, and Finish once with the transfer's outcome.
type Reporter interface {
	Start(total int64)
	Add(n int)
	Finish(err error)
}

// barReporter renders an mpb progress bar.
type barReporter struct {
	out  io.Writer
	name string

	progress *mpb.Progress
	bar      *mpb.Bar
}

func newBarReporter(out io.Writer, name string) *barReporter {
	return &barReporter{out: out, name: name}
}

func (br *barReporter) Start(total int64) {
	br.progress = mpb.New(
		mpb.WithOutput(br.out),
		mpb.WithAutoRefresh(),
		mpb.WithWidth(64),
	)

	br.bar = br.progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(br.name, decor.WC{C: decor.DindentRight | decor.DextraSpace}),
			decor.CountersKibiByte("% .2f / % .2f"),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
}

func (br *barReporter) Add(n int) {
	br.bar.IncrBy(n)
}

func (br *barReporter) Finish(err error) {
	if err != nil {
		br.bar.Abort(false)
	} else {
		// Completes bars started with an unknown total.
		br.bar.SetTotal(-1, true)
	}

	br.progress.Wait()
}

// logReporter logs download progress at most once per second.
type logReporter struct {
	logger      *slog.Logger
	transferred int64
	total       int64
	startTime   time.Time
	lastLog     time.Time
}

func newLogReporter(logger *slog.Logger) *logReporter {
	return &logReporter{logger: logger}
}

func (lr *logReporter) Start(total int64) {
	lr.total = total
	lr.startTime = time.Now()
	lr.lastLog = lr.startTime
}

func (lr *logReporter) Add(n int) {
	lr.transferred += int64(n)

	if time.Since(lr.lastLog) >= time.Second {
		lr.lastLog = time.Now()
		lr.log("downloading")
	}
}

func (lr *logReporter) Finish(err error) {
	if err != nil {
		lr.logger.Warn("download aborted", "transferred", lr.transferred, "total", lr.total)
		return
	}

	lr.log("download complete")
}

func (lr *logReporter) log(msg string) {
	elapsed := time.Since(lr.startTime)

	progress := "unknown"
	if lr.total > 0 {
		progress = fmt.Sprintf("%.1f%%", float64(lr.transferred)/float64(lr.total)*100)
	}

	var mbps float64
	if secs := elapsed.Seconds(); secs > 0 {
		mbps = float64(lr.transferred) / secs / (1024 * 1024)
	}

	lr.logger.Info(msg,
		"progress", progress,
		"elapsed", elapsed.Round(time.Millisecond),
		"transferred", lr.transferred,
		"total", lr.total,
		"mbps", fmt.Sprintf("%.2f", mbps),
	)
}
