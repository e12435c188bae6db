// Copyright 2025 Edgeo SCADA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package snmp issues SNMP GET requests against UPS agents and coerces the
// returned values to scalars.
package snmp

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"
)

// Client is an SNMP client that issues single GET requests.
type Client struct {
	opts    *ClientOptions
	mu      sync.Mutex
	session Session
	metrics *Metrics
	logger  *slog.Logger
}

// NewClient creates a new SNMP client.
func NewClient(opts ...Option) *Client {
	options := NewClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		opts:    options,
		metrics: &Metrics{},
		logger:  logger,
	}
}

// Connect opens a session to the configured agent.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return ErrAlreadyConnected
	}
	if c.opts.Target == "" {
		return ErrNoTarget
	}

	c.metrics.ConnectionAttempts.Add(1)

	addr := net.JoinHostPort(c.opts.Target, strconv.Itoa(c.opts.Port))
	session, err := c.opts.Dialer(ctx, c.opts)
	if err != nil {
		c.metrics.Errors.Add(1)
		c.logger.Debug("session setup failed", "target", addr, "error", err)
		return newIndicationError(err)
	}
	c.session = session

	c.logger.Debug("session opened",
		"target", addr,
		"version", c.opts.Version)

	return nil
}

// Close releases the session. It is safe to call on a closed client.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// Get performs one SNMP GET request for oids and coerces every returned value.
// The request is not retried beyond the configured Retries.
func (c *Client) Get(ctx context.Context, oids ...string) (Result, error) {
	if len(oids) == 0 {
		return nil, ErrNoOIDs
	}

	names := make([]string, len(oids))
	for i, s := range oids {
		oid, err := ParseOID(s)
		if err != nil {
			return nil, err
		}
		names[i] = oid.String()
	}

	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == nil {
		return nil, ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.metrics.RequestsSent.Add(1)
	start := time.Now()

	packet, err := session.Get(names)
	if err != nil {
		c.metrics.Errors.Add(1)
		return nil, newIndicationError(err)
	}

	latency := time.Since(start)
	c.metrics.RequestLatency.Observe(latency)
	c.metrics.ResponsesReceived.Add(1)

	if packet != nil && packet.Error != gosnmp.NoError {
		c.metrics.Errors.Add(1)
		return nil, statusError(packet, names)
	}
	if packet == nil || len(packet.Variables) == 0 {
		c.metrics.Errors.Add(1)
		return nil, ErrNoResults
	}

	result := make(Result, 0, len(packet.Variables))
	for _, pdu := range packet.Variables {
		result = append(result, Variable{
			OID:   NormalizeOID(pdu.Name),
			Type:  typeName(pdu.Type),
			Value: pduValue(pdu),
		})
	}
	c.metrics.VarbindsReceived.Add(int64(len(result)))

	c.logger.Debug("response received",
		"varbinds", len(result),
		"latency", latency)

	return result, nil
}

// statusError builds a QueryError from a response carrying a non-zero error-status.
func statusError(packet *gosnmp.SnmpPacket, requested []string) *QueryError {
	qe := &QueryError{
		Status: errorStatusName(packet.Error),
		Index:  int(packet.ErrorIndex),
	}
	if qe.Index > 0 && qe.Index <= len(requested) {
		qe.OID = requested[qe.Index-1]
	}
	return qe
}

// Metrics returns the client metrics.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// Options returns the client options.
func (c *Client) Options() *ClientOptions {
	return c.opts
}
