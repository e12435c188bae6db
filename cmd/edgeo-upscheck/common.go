package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/edgeo-scada/upscheck/snmp"
)

// buildClientOptions builds SNMP client options from the invocation config.
func buildClientOptions(cfg Config, logger *slog.Logger, dial snmp.Dialer) []snmp.Option {
	return []snmp.Option{
		snmp.WithTarget(cfg.Host),
		snmp.WithPort(cfg.Port),
		snmp.WithCommunity(cfg.Community),
		snmp.WithVersion(cfg.Version),
		snmp.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
		snmp.WithRetries(cfg.Retries),
		snmp.WithDialer(dial),
		snmp.WithLogger(logger),
		snmp.WithProtocolTrace(cfg.Verbose),
	}
}

// newLogger logs warnings to w, or everything when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
