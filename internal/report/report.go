// Package report is the leveled console reporter handed to the launcher
// components. It styles messages for the operator and mirrors them to the
// log file; errors and warnings go to the error stream.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/launchkit-tools/cli/internal/log"
	"github.com/launchkit-tools/cli/internal/ui/style"
)

// Reporter is constructed once in main and passed explicitly to the
// components that report; there is no ambient global reporter.
type Reporter struct {
	out   io.Writer
	err   io.Writer
	debug bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithDebug makes debug-level messages visible on the console.
func WithDebug() Option {
	return func(r *Reporter) {
		r.debug = true
	}
}

// WithWriters overrides the output and error streams (tests).
func WithWriters(out, err io.Writer) Option {
	return func(r *Reporter) {
		r.out = out
		r.err = err
	}
}

// New creates a Reporter writing to stdout/stderr.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out: os.Stdout,
		err: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Errorf reports a failure.
func (r *Reporter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Error("%s", msg)
	fmt.Fprintln(r.err, style.Error("error:")+" "+msg)
}

// Warnf reports a recoverable problem on the error channel.
func (r *Reporter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Warn("%s", msg)
	fmt.Fprintln(r.err, style.Warning("warning:")+" "+msg)
}

// Infof reports normal progress.
func (r *Reporter) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Info("%s", msg)
	fmt.Fprintln(r.out, msg)
}

// Debugf reports diagnostics; visible on the console only in debug mode,
// always mirrored to the log file.
func (r *Reporter) Debugf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Debug("%s", msg)
	if r.debug {
		fmt.Fprintln(r.err, style.Muted("debug:")+" "+msg)
	}
}
