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

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/edgeo-scada/upscheck/snmp"
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatRaw  OutputFormat = "raw"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatRaw, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text, raw, json, csv)", s)
	}
}

// Formatter handles output formatting.
type Formatter struct {
	format OutputFormat
	writer io.Writer
	color  bool
}

// NewFormatter creates a new formatter.
func NewFormatter(format OutputFormat, w io.Writer, color bool) *Formatter {
	return &Formatter{
		format: format,
		writer: w,
		color:  color,
	}
}

// FormatResult prints every variable of r.
func (f *Formatter) FormatResult(r snmp.Result) error {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(r)
	case FormatCSV:
		return f.formatCSV(r)
	case FormatRaw:
		for _, v := range r {
			if _, err := fmt.Fprintln(f.writer, v.Value.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, v := range r {
			if _, err := fmt.Fprintf(f.writer, "%s = %s\n", f.colorize(v.OID, ColorCyan), v.Value); err != nil {
				return err
			}
		}
		return nil
	}
}

// formatJSON prints the result as one OID to value object.
func (f *Formatter) formatJSON(r snmp.Result) error {
	out := make(map[string]interface{}, len(r))
	for _, v := range r {
		out[v.OID] = jsonValue(v.Value)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.writer, string(data))
	return err
}

func (f *Formatter) formatCSV(r snmp.Result) error {
	w := csv.NewWriter(f.writer)
	if err := w.Write([]string{"oid", "type", "value"}); err != nil {
		return err
	}
	for _, v := range r {
		if err := w.Write([]string{v.OID, v.Type, v.Value.String()}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// jsonValue falls back to text for values encoding/json rejects (NaN, Inf).
func jsonValue(v snmp.Value) interface{} {
	val := v.Interface()
	if _, err := json.Marshal(val); err != nil {
		return v.String()
	}
	return val
}

// Color codes for terminal output.
const (
	ColorReset = "\033[0m"
	ColorCyan  = "\033[36m"
)

// colorize wraps text with color codes.
func (f *Formatter) colorize(text, color string) string {
	if !f.color {
		return text
	}
	return color + text + ColorReset
}
