package checks

import (
	"fmt"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusPass Status = iota
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// Kind classifies why a check failed.
type Kind string

const (
	KindQuery     Kind = "query"     // platform call failed
	KindResource  Kind = "resource"  // output buffer could not be allocated
	KindThreshold Kind = "threshold" // reading below the minimum
	KindProcess   Kind = "process"   // subprocess failed or produced no output
	KindPattern   Kind = "pattern"   // expected marker missing from output
)

// Failure describes why a check did not pass. It is the error returned by
// Runner.Run when the checklist stops.
type Failure struct {
	Check  string
	Kind   Kind
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	return f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result is what a check reports back: diagnostic readings collected along
// the way and, if it failed, the failure.
type Result struct {
	Name    string
	Status  Status
	Details []string
	Failure *Failure
}

// AddDetailf records a diagnostic reading.
func (r *Result) AddDetailf(format string, args ...any) {
	r.Details = append(r.Details, fmt.Sprintf(format, args...))
}

// Passed reports whether the check met its requirement.
func (r Result) Passed() bool {
	return r.Status == StatusPass && r.Failure == nil
}

func (r Result) pass() Result {
	r.Status = StatusPass
	return r
}

func (r Result) fail(kind Kind, err error, format string, args ...any) Result {
	r.Status = StatusFail
	r.Failure = &Failure{
		Check:  r.Name,
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
	return r
}

func (r Result) failQuery(err error) Result {
	return r.fail(KindQuery, err, "%v", err)
}
