package out

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jimrybarski/pilercr-parser/internal/pilercr"
)

var (
	accessionColor = color.New(color.FgCyan, color.Bold)
	countColor     = color.New(color.FgGreen)
)

// Summary prints per-accession array and repeat-spacer counts, one
// accession per paragraph
func Summary(w io.Writer, report *pilercr.Report) {
	for _, acc := range report.Accessions {
		repeats := 0
		for _, arr := range acc.Arrays {
			repeats += len(arr.RepeatSpacers)
		}

		accessionColor.Fprint(w, acc.Name)
		fmt.Fprint(w, ": ")
		countColor.Fprintf(w, "%d array(s), %d repeat-spacer(s)\n", len(acc.Arrays), repeats)

		for _, arr := range acc.Arrays {
			fmt.Fprintf(w, "  array %d  %d..%d  %d repeat-spacer(s)  consensus %s\n",
				arr.Index, arr.Start, arr.End, len(arr.RepeatSpacers), arr.Consensus)
		}
	}
}
