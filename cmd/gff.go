package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimrybarski/pilercr-parser/config"
	"github.com/jimrybarski/pilercr-parser/internal/out"
)

// gffCmd exports a report's arrays as GFF features
var gffCmd = &cobra.Command{
	Use:   "gff",
	Short: "Export a PILER-CR report as GFF features",
	Long: `Export the corrected arrays of a PILER-CR report as GFF features.

Each array becomes a repeat_region feature; each repeat-spacer pair becomes
a repeat_unit feature and, when the report prints a spacer, a spacer
feature. Coordinates are 1-based inclusive, per GFF.`,
	Example:                    "  pilercr-parser gff -i report.txt -o arrays.gff",
	Run:                        runGFF,
	SuggestionsMinimumDistance: 2,
}

func runGFF(cmd *cobra.Command, args []string) {
	c := config.New()

	in, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")

	report, err := readReport(in, c)
	if err != nil {
		logger.Fatal(err)
	}

	w, done := output(outPath)
	defer done()
	if err := out.WriteGFF(w, report, c.GFFSource); err != nil {
		logger.Fatal(err)
	}
}

// set flags
func init() {
	RootCmd.AddCommand(gffCmd)

	gffCmd.Flags().StringP("in", "i", "", "Input file name of the PILER-CR report")
	gffCmd.Flags().StringP("out", "o", "", "Output file name for the GFF (default stdout)")
	gffCmd.Flags().StringP("source", "s", "pilercr", "Value for the source column of each feature")
	gffCmd.MarkFlagRequired("in")

	viper.BindPFlag("gff-source", gffCmd.Flags().Lookup("source"))
}
