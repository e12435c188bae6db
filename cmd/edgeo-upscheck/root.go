package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgeo-scada/upscheck/snmp"
)

// app wires one invocation of the probe.
type app struct {
	stdout io.Writer
	stderr io.Writer
	dial   snmp.Dialer

	v       *viper.Viper
	cfgFile string
}

// run executes the probe with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return execute(args, stdout, stderr, nil)
}

// execute is run with a replaceable session dialer; nil selects gosnmp.
func execute(args []string, stdout, stderr io.Writer, dial snmp.Dialer) int {
	a := &app{stdout: stdout, stderr: stderr, dial: dial}

	cmd, err := a.newRootCmd()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	code := exitCode(err)

	var ee *exitError
	switch {
	case err == nil:
	case errors.As(err, &ee):
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code
}

func (a *app) newRootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "edgeo-upscheck -H HOST -C COMMUNITY -l COMMAND",
		Short: "SNMP health-check probe for UPS devices",
		Long: `edgeo-upscheck queries a UPS over SNMP and prints the value of one object.

Commands (supplied with -l):
` + checkList() + `

Example:
  edgeo-upscheck -H ups1.domain.local -C public -l manufacturer`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runCheck,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringP("host", "H", "", "address or hostname of the UPS (required)")
	flags.StringP("community", "C", "", "SNMP community string (required)")
	flags.StringP("command", "l", "", "command to run, see the command list (required)")
	flags.IntP("port", "p", snmp.DefaultPort, "SNMP port")
	flags.IntP("timeout", "t", 0, "request timeout in seconds (0 uses the library default)")
	flags.StringP("warning", "w", "", "warning threshold (reserved)")
	flags.StringP("critical", "c", "", "critical threshold (reserved)")
	flags.BoolP("unknown", "u", false, "reserved")
	flags.String("snmp-version", "2c", "SNMP version (1, 2c)")
	flags.Int("retries", snmp.DefaultRetries, "number of SNMP retries")
	flags.StringP("output", "o", string(FormatText), "output format: text, raw, json, csv")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("color", false, "colored output")
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.edgeo-upscheck.yaml)")

	v, err := newViper(flags)
	if err != nil {
		return nil, err
	}
	a.v = v

	cmd.AddCommand(newVersionCmd())
	return cmd, nil
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	if err := readConfigFile(a.v, a.cfgFile); err != nil {
		return usageError("reading config: %w", err)
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}

	logger := newLogger(a.stderr, cfg.Verbose)
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	if cfg.Host == "" || cfg.Community == "" {
		return usageError("snmp host -H or community -C is not defined")
	}

	if cfg.Command == "" {
		fmt.Fprintln(a.stderr, "Error: command -l is not defined")
		cmd.Help()
		return &exitError{code: exitMissingCommand}
	}

	c, ok := lookupCheck(cfg.Command)
	if !ok {
		return &exitError{
			code: exitUnknownCommand,
			err:  fmt.Errorf("%s is not a valid command", cfg.Command),
		}
	}

	if cfg.Warning != "" || cfg.Critical != "" || cfg.Unknown {
		logger.Debug("threshold flags are not used by this command",
			"command", c.name,
			"warning", cfg.Warning,
			"critical", cfg.Critical,
			"unknown", cfg.Unknown)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := a.query(ctx, cfg, c, logger)
	if err != nil {
		return &exitError{code: exitQueryFailed, err: fmt.Errorf("%s failed: %w", c.name, err)}
	}

	formatter := NewFormatter(cfg.Output, a.stdout, cfg.Color)
	if err := formatter.FormatResult(result); err != nil {
		return &exitError{code: exitQueryFailed, err: fmt.Errorf("writing output: %w", err)}
	}
	return nil
}

// query opens a session, runs the check and closes the session.
func (a *app) query(ctx context.Context, cfg Config, c check, logger *slog.Logger) (snmp.Result, error) {
	client := snmp.NewClient(buildClientOptions(cfg, logger, a.dial)...)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	defer client.Close()

	logger.Debug("sending GET request",
		"command", c.name,
		"target", cfg.Host,
		"port", cfg.Port,
		"oids", len(c.oids))
	start := time.Now()

	result, err := c.run(ctx, client)
	if err != nil {
		return nil, err
	}

	snap := client.Metrics().Snapshot()
	logger.Debug("response received",
		"elapsed", formatDuration(time.Since(start)),
		"requests", snap.RequestsSent,
		"varbinds", snap.VarbindsReceived,
		"latency", formatDuration(snap.RequestLatency.Max))
	return result, nil
}
