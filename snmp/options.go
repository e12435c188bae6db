package snmp

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

// SNMPVersion represents the SNMP protocol version.
type SNMPVersion int

const (
	// Version1 is SNMP v1.
	Version1 SNMPVersion = 0
	// Version2c is SNMP v2c.
	Version2c SNMPVersion = 1
)

// String returns the string representation of the SNMP version.
func (v SNMPVersion) String() string {
	switch v {
	case Version1:
		return "SNMPv1"
	case Version2c:
		return "SNMPv2c"
	default:
		return "Unknown"
	}
}

// toGoSNMP returns the matching gosnmp version.
func (v SNMPVersion) toGoSNMP() gosnmp.SnmpVersion {
	if v == Version1 {
		return gosnmp.Version1
	}
	return gosnmp.Version2c
}

// ParseVersion parses "1", "v1", "2c", "v2c" or "2".
func ParseVersion(s string) (SNMPVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "v1":
		return Version1, nil
	case "2c", "v2c", "2":
		return Version2c, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
}

// ClientOptions contains configuration options for the SNMP client.
type ClientOptions struct {
	// Target is the SNMP agent hostname or address.
	Target string
	// Port is the SNMP agent port (default 161).
	Port int
	// Version is the SNMP version to use.
	Version SNMPVersion
	// Community is the community string.
	Community string
	// Timeout is the request timeout.
	Timeout time.Duration
	// Retries is the number of retries on timeout.
	Retries int

	// Dialer opens the session. Defaults to DialGoSNMP.
	Dialer Dialer

	// Logger
	Logger *slog.Logger
	// TraceProtocol forwards the SNMP library's packet traces to Logger.
	TraceProtocol bool
}

// NewClientOptions creates ClientOptions with default values.
func NewClientOptions() *ClientOptions {
	return &ClientOptions{
		Port:      DefaultPort,
		Version:   Version2c,
		Community: DefaultCommunity,
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		Dialer:    DialGoSNMP,
	}
}

// Option is a functional option for configuring the client.
type Option func(*ClientOptions)

// WithTarget sets the target address.
func WithTarget(target string) Option {
	return func(o *ClientOptions) {
		o.Target = target
	}
}

// WithPort sets the target port.
func WithPort(port int) Option {
	return func(o *ClientOptions) {
		o.Port = port
	}
}

// WithVersion sets the SNMP version.
func WithVersion(version SNMPVersion) Option {
	return func(o *ClientOptions) {
		o.Version = version
	}
}

// WithCommunity sets the community string.
func WithCommunity(community string) Option {
	return func(o *ClientOptions) {
		o.Community = community
	}
}

// WithTimeout sets the request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(o *ClientOptions) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithRetries sets the number of retries.
func WithRetries(n int) Option {
	return func(o *ClientOptions) {
		o.Retries = n
	}
}

// WithDialer replaces the session dialer.
func WithDialer(d Dialer) Option {
	return func(o *ClientOptions) {
		if d != nil {
			o.Dialer = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *ClientOptions) {
		o.Logger = logger
	}
}

// WithProtocolTrace enables SNMP packet tracing on the logger.
func WithProtocolTrace(enabled bool) Option {
	return func(o *ClientOptions) {
		o.TraceProtocol = enabled
	}
}
