package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
)

const (
	DefaultDxDiagPath = "dxdiag"
	reportPrefix      = "wsc"
)

// ToolExitError is returned when the diagnostic tool exits with a non-zero code.
type ToolExitError struct {
	Tool string
	Code int
}

func (e *ToolExitError) Error() string {
	return fmt.Sprintf("%s process execute failed with exit code: %d", e.Tool, e.Code)
}

// DxDiag produces a DirectX diagnostic text report by running dxdiag.
type DxDiag struct {
	Path       string // executable, defaults to "dxdiag" on PATH
	Dir        string // report directory, defaults to os.TempDir()
	KeepReport bool
	Log        *logrus.Entry
}

// Report runs `dxdiag /t <file>`, waits for it to exit and returns the
// report text. There is no timeout beyond ctx.
func (d *DxDiag) Report(ctx context.Context) (string, error) {
	log := d.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	exe := d.Path
	if exe == "" {
		exe = DefaultDxDiagPath
	}

	name := TempReportName(d.Dir)
	log.WithField("report", name).Debugf("running %s", exe)

	cmd := exec.CommandContext(ctx, exe, "/t", name)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ToolExitError{Tool: filepath.Base(exe), Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("%s process execute failed: %w", filepath.Base(exe), err)
	}

	if !d.KeepReport {
		defer func() {
			if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
				log.Warnf("failed to remove report %s: %v", name, err)
			}
		}()
	}

	return ReadReport(name)
}

// TempReportName returns a report path in dir (or the OS temp directory)
// with the fixed "wsc" prefix and a random token, so concurrent runs never
// share a file.
func TempReportName(dir string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, reportPrefix+uuid.NewString()+".tmp")
}

// ReadReport reads a whole report file as text. UTF-16LE files (with BOM)
// are decoded; anything else is taken as-is.
func ReadReport(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("report read failed: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptyReport
	}

	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		text, err := dec.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("report decode failed: %w", err)
		}
		return string(text), nil
	}

	return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), nil
}
