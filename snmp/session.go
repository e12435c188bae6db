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
	"context"
	"fmt"
	"log/slog"

	"github.com/gosnmp/gosnmp"
)

// Session is an open request/response channel to one agent.
type Session interface {
	// Get sends a GET request for oids and waits for the response.
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	// Close releases the underlying socket.
	Close() error
}

// Dialer opens a Session using the given options.
type Dialer func(ctx context.Context, opts *ClientOptions) (Session, error)

// gosnmpSession adapts *gosnmp.GoSNMP to Session.
type gosnmpSession struct {
	*gosnmp.GoSNMP
}

// Close closes the UDP socket.
func (s gosnmpSession) Close() error {
	if s.Conn == nil {
		return nil
	}
	return s.Conn.Close()
}

// DialGoSNMP opens a UDP session with gosnmp.
func DialGoSNMP(ctx context.Context, opts *ClientOptions) (Session, error) {
	if opts.Port <= 0 || opts.Port > 65535 {
		return nil, fmt.Errorf("snmp: invalid port %d", opts.Port)
	}

	g := &gosnmp.GoSNMP{
		Context:   ctx,
		Target:    opts.Target,
		Port:      uint16(opts.Port),
		Transport: "udp",
		Community: opts.Community,
		Version:   opts.Version.toGoSNMP(),
		Timeout:   opts.Timeout,
		Retries:   opts.Retries,
		MaxOids:   gosnmp.MaxOids,
	}
	if opts.TraceProtocol && opts.Logger != nil {
		g.Logger = gosnmp.NewLogger(slog.NewLogLogger(opts.Logger.Handler(), slog.LevelDebug))
	}

	if err := g.Connect(); err != nil {
		return nil, err
	}
	return gosnmpSession{g}, nil
}

// errorStatusName returns the RFC 3416 name for an error-status.
func errorStatusName(status gosnmp.SNMPError) string {
	switch status {
	case gosnmp.NoError:
		return "noError"
	case gosnmp.TooBig:
		return "tooBig"
	case gosnmp.NoSuchName:
		return "noSuchName"
	case gosnmp.BadValue:
		return "badValue"
	case gosnmp.ReadOnly:
		return "readOnly"
	case gosnmp.GenErr:
		return "genErr"
	case gosnmp.NoAccess:
		return "noAccess"
	case gosnmp.WrongType:
		return "wrongType"
	case gosnmp.WrongLength:
		return "wrongLength"
	case gosnmp.WrongEncoding:
		return "wrongEncoding"
	case gosnmp.WrongValue:
		return "wrongValue"
	case gosnmp.NoCreation:
		return "noCreation"
	case gosnmp.InconsistentValue:
		return "inconsistentValue"
	case gosnmp.ResourceUnavailable:
		return "resourceUnavailable"
	case gosnmp.CommitFailed:
		return "commitFailed"
	case gosnmp.UndoFailed:
		return "undoFailed"
	case gosnmp.AuthorizationError:
		return "authorizationError"
	case gosnmp.NotWritable:
		return "notWritable"
	case gosnmp.InconsistentName:
		return "inconsistentName"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(status))
	}
}

// typeName returns the SMI name for a BER type.
func typeName(t gosnmp.Asn1BER) string {
	switch t {
	case gosnmp.Integer:
		return "INTEGER"
	case gosnmp.BitString:
		return "BIT STRING"
	case gosnmp.OctetString:
		return "STRING"
	case gosnmp.Null:
		return "NULL"
	case gosnmp.ObjectIdentifier:
		return "OID"
	case gosnmp.IPAddress:
		return "IpAddress"
	case gosnmp.Counter32:
		return "Counter32"
	case gosnmp.Gauge32:
		return "Gauge32"
	case gosnmp.TimeTicks:
		return "Timeticks"
	case gosnmp.Opaque:
		return "Opaque"
	case gosnmp.Counter64:
		return "Counter64"
	case gosnmp.Uinteger32:
		return "UInteger32"
	case gosnmp.OpaqueFloat:
		return "Opaque: Float"
	case gosnmp.OpaqueDouble:
		return "Opaque: Double"
	case gosnmp.NoSuchObject:
		return "noSuchObject"
	case gosnmp.NoSuchInstance:
		return "noSuchInstance"
	case gosnmp.EndOfMibView:
		return "endOfMibView"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", byte(t))
	}
}

// pduValue coerces a variable binding, turning SNMPv2 exceptions into text.
func pduValue(pdu gosnmp.SnmpPDU) Value {
	switch pdu.Type {
	case gosnmp.NoSuchObject:
		return StringValue("No Such Object currently exists at this OID")
	case gosnmp.NoSuchInstance:
		return StringValue("No Such Instance currently exists at this OID")
	case gosnmp.EndOfMibView:
		return StringValue("No more variables left in this MIB View")
	case gosnmp.Null:
		return RawValue(nil)
	case gosnmp.ObjectIdentifier:
		if s, ok := pdu.Value.(string); ok {
			return Cast(NormalizeOID(s))
		}
	}
	return Cast(pdu.Value)
}
