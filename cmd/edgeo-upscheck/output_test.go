package main

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeo-scada/upscheck/snmp"
)

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{
		"":      FormatText,
		"text":  FormatText,
		"RAW":   FormatRaw,
		" json": FormatJSON,
		"csv":   FormatCSV,
	} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOutputFormat("table")
	assert.Error(t, err)
}

func TestFormatterJSONKeepsNumericKinds(t *testing.T) {
	result := snmp.Result{
		{OID: "1.3.6.1.2.1.33.1.2.3.0", Type: "INTEGER", Value: snmp.IntValue(42)},
		{OID: "1.3.6.1.2.1.33.1.3.3.1.3.1", Type: "STRING", Value: snmp.FloatValue(3.14)},
		{OID: "1.3.6.1.2.1.33.1.1.1.0", Type: "NULL", Value: snmp.RawValue(nil)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf, false).FormatResult(result))
	assert.JSONEq(t, `{
		"1.3.6.1.2.1.33.1.2.3.0": 42,
		"1.3.6.1.2.1.33.1.3.3.1.3.1": 3.14,
		"1.3.6.1.2.1.33.1.1.1.0": null
	}`, buf.String())
}

func TestFormatterJSONNaN(t *testing.T) {
	result := snmp.Result{{OID: "1.3.6.1.4.1.534.1.3.4.0", Type: "STRING", Value: snmp.FloatValue(math.NaN())}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf, false).FormatResult(result))
	assert.JSONEq(t, `{"1.3.6.1.4.1.534.1.3.4.0": "NaN"}`, buf.String())
}

func TestFormatterTextColor(t *testing.T) {
	result := snmp.Result{{OID: snmp.OIDManufacturer, Type: "STRING", Value: snmp.StringValue("EATON")}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatText, &buf, true).FormatResult(result))
	assert.Equal(t, ColorCyan+snmp.OIDManufacturer+ColorReset+" = EATON\n", buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitUsage, exitCode(errors.New("unknown shorthand flag: 'z' in -z")))
	assert.Equal(t, exitUnknownCommand, exitCode(&exitError{code: exitUnknownCommand}))
	assert.Equal(t, exitQueryFailed, exitCode(&exitError{code: exitQueryFailed, err: snmp.ErrNoResults}))
}

func TestLookupCheck(t *testing.T) {
	c, ok := lookupCheck("manufacturer")
	require.True(t, ok)
	assert.Equal(t, []string{snmp.OIDManufacturer}, c.oids)

	_, ok = lookupCheck("Manufacturer")
	assert.False(t, ok)
}
