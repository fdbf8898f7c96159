package checks

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var out, errOut bytes.Buffer
	r := NewRunner(
		WithOutput(&out),
		WithErrorOutput(&errOut),
		WithLogger(logrus.NewEntry(logger)),
	)
	return r, &out, &errOut
}

func TestRunner_AllPass(t *testing.T) {
	r, out, errOut := newTestRunner(t)
	host := passingHost()
	reader := &fakeReader{report: passingReport}

	err := r.Run(context.Background(), Default(host, reader, nil))

	require.NoError(t, err)
	assert.Empty(t, errOut.String())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, SuccessBanner, lines[len(lines)-1], "banner must be the last line")
	assert.Equal(t, "CPU checking...", lines[0])

	for _, title := range []string{"CPU", "RAM", "Disk", "Resolution", "Firmware", "Secure boot", "TPM", "DirectX", "WDDM"} {
		assert.Contains(t, out.String(), title+" check passed!\n")
	}
	assert.Equal(t, 1, reader.calls)
}

func TestRunner_DetailsAreIndented(t *testing.T) {
	r, out, _ := newTestRunner(t)

	err := r.Run(context.Background(), []Check{&MemoryCheck{Source: passingHost()}})

	require.NoError(t, err)
	assert.Equal(t,
		"RAM checking...\n\tRAM capacity: 16777216\nRAM check passed!\n"+SuccessBanner+"\n",
		out.String())
}

func TestRunner_TPMFailureStopsChecklist(t *testing.T) {
	r, out, errOut := newTestRunner(t)
	host := passingHost()
	host.tpm.Version = 1
	reader := &fakeReader{report: passingReport}

	err := r.Run(context.Background(), Default(host, reader, nil))

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "tpm", f.Check)
	assert.Equal(t, KindThreshold, f.Kind)

	assert.Equal(t, "TPM version: 1 is less than minimum requirement!\n", errOut.String())
	assert.NotContains(t, out.String(), SuccessBanner)
	assert.NotContains(t, out.String(), "DirectX checking...")
	assert.NotContains(t, out.String(), "WDDM checking...")
	assert.True(t, strings.HasSuffix(out.String(), "TPM checking...\n\tTPM version: 1 Interface: 0\n"))

	assert.Zero(t, host.calls["runtime"], "DirectX check must not run")
	assert.Zero(t, reader.calls, "WDDM check must not run")
}

func TestRunner_MarkerMissingIsPatternFailure(t *testing.T) {
	r, _, errOut := newTestRunner(t)
	reader := &fakeReader{report: "Driver Model: WDDM 1.3\n"}

	err := r.Run(context.Background(), Default(passingHost(), reader, nil))

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindPattern, f.Kind)
	assert.Contains(t, errOut.String(), "marker not found")
}

type stubCheck struct {
	title string
	res   Result
	ran   bool
}

func (s *stubCheck) Title() string { return s.title }

func (s *stubCheck) Run(context.Context) Result {
	s.ran = true
	return s.res
}

func TestRunner_FailureWithoutDetails(t *testing.T) {
	r, _, errOut := newTestRunner(t)
	first := &stubCheck{title: "First", res: Result{Status: StatusFail}}
	second := &stubCheck{title: "Second", res: Result{Status: StatusPass}}

	err := r.Run(context.Background(), []Check{first, second})

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "First", f.Check)
	assert.Equal(t, "First check failed!\n", errOut.String())
	assert.False(t, second.ran)
}

func TestRunner_CancelledContext(t *testing.T) {
	r, out, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := &stubCheck{title: "Never", res: Result{Status: StatusPass}}
	err := r.Run(ctx, []Check{check})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, check.ran)
	assert.Empty(t, out.String())
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	f := &Failure{Check: "x", Kind: KindQuery, Reason: "x failed", Err: cause}

	assert.Equal(t, "x failed", f.Error())
	assert.ErrorIs(t, f, cause)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PASS", StatusPass.String())
	assert.Equal(t, "FAIL", StatusFail.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}
