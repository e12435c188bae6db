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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edgeo-scada/upscheck"
)

var (
	// Build information, set via ldflags
	cliVersion = "dev"
	commit     = "unknown"
	buildDate  = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build metadata.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersionInfo(cmd.OutOrStdout())
		},
	}
}

func printVersionInfo(w io.Writer) {
	info := upscheck.GetBuildInfo()
	fmt.Fprintf(w, "edgeo-upscheck version %s\n", cliVersion)
	fmt.Fprintf(w, "  Probe:         %s\n", info.Version)
	fmt.Fprintf(w, "  Protocol:      %s\n", upscheck.ProtocolName)
	fmt.Fprintf(w, "  Go version:    %s\n", info.GoVersion)
	fmt.Fprintf(w, "  OS/Arch:       %s/%s\n", info.OS, info.Arch)
	fmt.Fprintf(w, "  Git commit:    %s\n", commit)
	fmt.Fprintf(w, "  Build date:    %s\n", buildDate)
}
