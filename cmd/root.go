// Package cmd is for command line interactions with the pilercr-parser
// application
package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimrybarski/pilercr-parser/config"
	"github.com/jimrybarski/pilercr-parser/internal/pilercr"
)

// logger writes to stderr so parsed output can go to stdout
var logger = log.New(os.Stderr)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "pilercr-parser",
	Short: "Parse PILER-CR reports into corrected CRISPR arrays",
	Long: `Parse the report text written by PILER-CR and repair its coordinates.

PILER-CR v1.06 reports repeat positions as if every repeat were exactly as
long as the array's consensus repeat, so in arrays with gapped repeats every
row after the first gap has a wrong position. Each repeat is also printed
only as a difference pattern against the consensus. This tool recomputes the
true positions and rebuilds each repeat's literal sequence.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("allow-empty-arrays", "e", false, "Keep arrays that have no repeat-spacer rows")
	viper.BindPFlag("allow-empty-arrays", RootCmd.PersistentFlags().Lookup("allow-empty-arrays"))
}

// readReport reads and parses the PILER-CR report at path
func readReport(path string, c config.Config) (*pilercr.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the report at %s", path)
	}

	report, err := pilercr.Parser{AllowEmptyArrays: c.AllowEmptyArrays}.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return report, nil
}

// output opens the file at path for writing, or stdout when path is empty
func output(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal(errors.Wrapf(err, "failed to create %s", path))
	}
	return f, func() { f.Close() }
}
