package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nhdewitt/w11check/internal/checks"
	"github.com/nhdewitt/w11check/internal/collector"
	"github.com/nhdewitt/w11check/internal/config"
	"github.com/nhdewitt/w11check/internal/diagnostics"
	"github.com/nhdewitt/w11check/internal/logging"
	"github.com/nhdewitt/w11check/internal/platform"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app holds the process edges so the command can run against fakes.
type app struct {
	argv0  string
	stdout io.Writer
	stderr io.Writer

	newHost   func() (checks.Host, error)
	newReader func(cfg config.Config, log *logrus.Entry) checks.DriverModelReader
	elevated  func() bool
	identify  func(ctx context.Context) (platform.Info, error)

	code int
}

func newApp(argv0 string, stdout, stderr io.Writer) *app {
	return &app{
		argv0:  argv0,
		stdout: stdout,
		stderr: stderr,
		newHost: func() (checks.Host, error) {
			return collector.NewHost()
		},
		newReader: func(cfg config.Config, log *logrus.Entry) checks.DriverModelReader {
			return &collector.DxDiag{
				Path:       cfg.DxDiagPath,
				KeepReport: cfg.KeepReport,
				Log:        log,
			}
		},
		elevated: diagnostics.IsElevated,
		identify: platform.Detect,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Args[0], os.Stdout, os.Stderr)
	code := a.execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "w11check",
		Short: "Check whether this machine meets the Windows 11 minimum requirements",
		Long: `Runs the Windows 11 minimum hardware requirement checks in order
(CPU, RAM, Disk, Resolution, Firmware, Secure boot, TPM, DirectX, WDDM) and
stops at the first one that fails.

Exit status is 0 when every check passes and 1 otherwise.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			a.code = a.run(cmd.Context(), cfg)
			return nil
		},
	}

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	config.AddFlags(cmd.Flags())

	return cmd
}

func (a *app) run(ctx context.Context, cfg config.Config) int {
	logger, closeLog, err := logging.New(cfg.Logging(), a.stderr)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(a.stderr, "close log file: %v\n", err)
		}
	}()
	log := logging.Component(logger, "main")

	fmt.Fprintf(a.stdout, "Windows 11 minimum requirement checker tool: '%s' started!\n", a.argv0)

	if info, err := a.identify(ctx); err != nil {
		log.Debugf("host identity unavailable: %v", err)
	} else {
		log.WithField("host", info.Hostname).Debugf("Running on %s", info)
	}

	host, err := a.newHost()
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}

	if !a.elevated() {
		log.Warn("not running as administrator, firmware and TPM queries may be refused")
	}

	runner := checks.NewRunner(
		checks.WithOutput(a.stdout),
		checks.WithErrorOutput(a.stderr),
		checks.WithLogger(logging.Component(logger, "runner")),
	)
	reader := a.newReader(cfg, logging.Component(logger, "dxdiag"))

	if err := runner.Run(ctx, checks.Default(host, reader, logging.Component(logger, "checks"))); err != nil {
		log.WithError(err).Debug("checklist stopped")
		return 1
	}
	return 0
}
