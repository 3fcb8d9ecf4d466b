package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimrybarski/pilercr-parser/config"
	"github.com/jimrybarski/pilercr-parser/internal/out"
)

// parseCmd converts a report to JSON
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a PILER-CR report and write it as JSON",
	Long: `Parse a PILER-CR report and write the corrected array tree as JSON.

Every accession in the report becomes one record holding its arrays, and
every array holds its repeat-spacer pairs with corrected 0-indexed
coordinates and fully reconstructed repeat sequences.`,
	Example:                    "  pilercr-parser parse -i report.txt -o arrays.json",
	Run:                        runParse,
	SuggestionsMinimumDistance: 2,
}

func runParse(cmd *cobra.Command, args []string) {
	c := config.New()

	in, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")

	report, err := readReport(in, c)
	if err != nil {
		logger.Fatal(err)
	}

	w, done := output(outPath)
	defer done()
	if err := out.WriteJSON(w, report, c.JSONIndent); err != nil {
		logger.Fatal(err)
	}
}

// set flags
func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("in", "i", "", "Input file name of the PILER-CR report")
	parseCmd.Flags().StringP("out", "o", "", "Output file name for the parsed JSON (default stdout)")
	parseCmd.Flags().String("indent", "  ", "Indentation used for the JSON output")
	parseCmd.MarkFlagRequired("in")

	viper.BindPFlag("json-indent", parseCmd.Flags().Lookup("indent"))
}
