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

package snmp

import (
	"errors"
	"fmt"
)

// Standard errors.
var (
	ErrNotConnected     = errors.New("snmp: not connected")
	ErrAlreadyConnected = errors.New("snmp: already connected")
	ErrNoTarget         = errors.New("snmp: no target configured")
	ErrInvalidOID       = errors.New("snmp: invalid OID")
	ErrInvalidVersion   = errors.New("snmp: invalid SNMP version")
	ErrNoOIDs           = errors.New("snmp: no OIDs requested")
	ErrNoResults        = errors.New("snmp: no results returned")
)

// QueryError is returned when a request fails at the transport or protocol
// level. Either Indication or Status is set.
type QueryError struct {
	// Indication describes a transport or engine failure.
	Indication string
	// Status is the agent's error-status name, e.g. "noSuchName".
	Status string
	// Index is the agent's error-index (1-based, 0 when unset).
	Index int
	// OID is the requested OID at Index, when known.
	OID string

	err error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Indication != "" {
		return fmt.Sprintf("snmp: got SNMP error: %s", e.Indication)
	}
	if e.OID != "" {
		return fmt.Sprintf("snmp: %s at index %d (OID: %s)", e.Status, e.Index, e.OID)
	}
	return fmt.Sprintf("snmp: %s at index %d", e.Status, e.Index)
}

// Unwrap returns the underlying transport error, if any.
func (e *QueryError) Unwrap() error {
	return e.err
}

// newIndicationError wraps a transport failure.
func newIndicationError(err error) *QueryError {
	return &QueryError{Indication: err.Error(), err: err}
}

// IsQueryError returns true if err is or wraps a QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// IsNoResults returns true if the agent answered without any variables.
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}
