// edgeo-upscheck is a command-line SNMP health-check probe for UPS devices.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
