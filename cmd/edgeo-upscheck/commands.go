package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/edgeo-scada/upscheck/snmp"
)

// querier is the part of *snmp.Client a check needs.
type querier interface {
	Get(ctx context.Context, oids ...string) (snmp.Result, error)
}

// check is a probe selected with -l.
type check struct {
	name        string
	description string
	oids        []string
}

// run queries the check's OIDs.
func (c check) run(ctx context.Context, q querier) (snmp.Result, error) {
	return q.Get(ctx, c.oids...)
}

var checks = []check{
	{
		name:        "manufacturer",
		description: "manufacturer details",
		oids:        []string{snmp.OIDManufacturer},
	},
}

func lookupCheck(name string) (check, bool) {
	for _, c := range checks {
		if c.name == name {
			return c, true
		}
	}
	return check{}, false
}

// checkList renders the command list for the help text.
func checkList() string {
	var sb strings.Builder
	for _, c := range checks {
		fmt.Fprintf(&sb, "  %s\n      %s\n", c.name, c.description)
	}
	return strings.TrimRight(sb.String(), "\n")
}
