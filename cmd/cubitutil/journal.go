package main

import (
	"fmt"
	"os"

	"github.com/GregVernon/coreform-cubit-utilities/journal"
	"github.com/spf13/cobra"
)

var (
	planPath string
	jouPath  string
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Emit a Cubit journal file from a YAML plan",
	Long: `Read a YAML plan describing a model (volume ids, known groups, known
overlaps) and the operations to run, and emit the equivalent Cubit journal.`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().StringVarP(&planPath, "plan", "f", "", "YAML plan file (required)")
	journalCmd.Flags().StringVarP(&jouPath, "output", "o", "", "journal output file (default stdout)")
	journalCmd.MarkFlagRequired("plan")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) {
	fp, err := os.Open(planPath)
	if err != nil {
		fail(err)
	}
	defer fp.Close()
	plan, err := journal.ReadPlan(fp)
	if err != nil {
		fail(err)
	}
	out := os.Stdout
	if jouPath != "" {
		out, err = os.Create(jouPath)
		if err != nil {
			fail(err)
		}
		defer out.Close()
	}
	if err := plan.Run(out); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
