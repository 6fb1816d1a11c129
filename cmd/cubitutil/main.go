package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubitutil",
	Short: "Offline helpers for Coreform Cubit assembly meshing prep",
	Long: `cubitutil generates Cubit journal files for repetitive meshing-prep
command sequences (per-part grouping, imprint/merge, overlap removal)
from a YAML plan, for playback with "cubit -batch".`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
