package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jimrybarski/pilercr-parser/config"
	"github.com/jimrybarski/pilercr-parser/internal/out"
)

// summaryCmd prints per-accession counts to the terminal
var summaryCmd = &cobra.Command{
	Use:                        "summary",
	Short:                      "Print per-accession array and repeat-spacer counts",
	Example:                    "  pilercr-parser summary -i report.txt",
	Run:                        runSummary,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"stats"},
}

func runSummary(cmd *cobra.Command, args []string) {
	c := config.New()

	in, _ := cmd.Flags().GetString("in")
	report, err := readReport(in, c)
	if err != nil {
		logger.Fatal(err)
	}

	out.Summary(os.Stdout, report)
}

// set flags
func init() {
	RootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("in", "i", "", "Input file name of the PILER-CR report")
	summaryCmd.MarkFlagRequired("in")
}
