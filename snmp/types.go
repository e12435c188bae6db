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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Well-known OIDs on UPS agents.
const (
	// OIDManufacturer is upsIdentManufacturer from the XUPS MIB.
	OIDManufacturer = "1.3.6.1.4.1.534.1.1.1.0"
)

// Default values.
const (
	DefaultPort      = 161
	DefaultTimeout   = 2 * time.Second
	DefaultRetries   = 0
	DefaultCommunity = "public"
)

// OID represents an SNMP Object Identifier.
type OID []int

// String returns the dotted-decimal string representation.
func (o OID) String() string {
	if len(o) == 0 {
		return ""
	}
	parts := make([]string, len(o))
	for i, n := range o {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// ParseOID parses a dotted-decimal OID string.
func ParseOID(s string) (OID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), ".")
	if s == "" {
		return nil, ErrInvalidOID
	}

	parts := strings.Split(s, ".")
	oid := make(OID, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrInvalidOID, p)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative component %d", ErrInvalidOID, n)
		}
		oid[i] = n
	}

	return oid, nil
}

// NormalizeOID returns s in dotted-decimal form without a leading dot.
func NormalizeOID(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), ".")
}

// Variable is a variable binding after value coercion.
type Variable struct {
	OID   string
	Type  string
	Value Value
}

// String returns a string representation of the variable.
func (v Variable) String() string {
	return fmt.Sprintf("%s = %s: %s", v.OID, v.Type, v.Value)
}

// Result maps object identifiers to coerced values, in response order.
type Result []Variable

// Len returns the number of variables.
func (r Result) Len() int { return len(r) }

// First returns the first variable, or false when the result is empty.
func (r Result) First() (Variable, bool) {
	if len(r) == 0 {
		return Variable{}, false
	}
	return r[0], true
}

// Lookup returns the value bound to oid.
func (r Result) Lookup(oid string) (Value, bool) {
	oid = NormalizeOID(oid)
	for _, v := range r {
		if v.OID == oid {
			return v.Value, true
		}
	}
	return Value{}, false
}

// Map returns the result as an OID to value mapping.
func (r Result) Map() map[string]Value {
	m := make(map[string]Value, len(r))
	for _, v := range r {
		m[v.OID] = v.Value
	}
	return m
}
