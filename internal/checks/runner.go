package checks

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SuccessBanner is printed once every check has passed.
const SuccessBanner = "All checks passed! Your system can be upgradable to Windows 11"

// Check is one query-then-compare gate.
type Check interface {
	// Title is the human name used in the "<Title> checking..." lines.
	Title() string
	Run(ctx context.Context) Result
}

// Runner executes checks in order and stops at the first failure.
type Runner struct {
	out    io.Writer
	errOut io.Writer
	log    *logrus.Entry
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the writer for progress lines.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithErrorOutput sets the writer for failure lines.
func WithErrorOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.errOut = w
	}
}

// WithLogger sets the operational logger.
func WithLogger(log *logrus.Entry) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// NewRunner creates a Runner writing to stdout/stderr unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return r
}

// Run executes checks in order. It returns the *Failure of the first check
// that does not pass; later checks are not started. On success the overall
// banner is printed and nil is returned.
func (r *Runner) Run(ctx context.Context, checks []Check) error {
	for i, c := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}

		title := c.Title()
		_, _ = fmt.Fprintf(r.out, "%s checking...\n", title)

		res := c.Run(ctx)
		for _, d := range res.Details {
			_, _ = fmt.Fprintf(r.out, "\t%s\n", d)
		}

		log := r.log.WithFields(logrus.Fields{"check": title, "step": i + 1})

		if !res.Passed() {
			f := res.Failure
			if f == nil {
				f = &Failure{Check: title, Kind: KindThreshold, Reason: title + " check failed!"}
			}
			if f.Check == "" {
				f.Check = title
			}
			_, _ = fmt.Fprintln(r.errOut, f.Reason)
			log.WithField("kind", f.Kind).Debug("check failed")
			return f
		}

		_, _ = fmt.Fprintf(r.out, "%s check passed!\n", title)
		log.Debug("check passed")
	}

	_, _ = fmt.Fprintln(r.out, SuccessBanner)
	return nil
}
