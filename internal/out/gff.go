package out

import (
	"io"
	"strconv"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/pkg/errors"

	"github.com/jimrybarski/pilercr-parser/internal/pilercr"
)

// WriteGFF writes every array as a repeat_region feature with one
// repeat_unit per repeat and one spacer per spacer. Coordinates are
// converted by the writer from the tree's 0-based half-open intervals
// to GFF's 1-based inclusive ones.
func WriteGFF(w io.Writer, report *pilercr.Report, source string) error {
	gw := gff.NewWriter(w, 60, true)

	write := func(seqName, feature string, start, end, array int) error {
		_, err := gw.Write(&gff.Feature{
			SeqName:    seqName,
			Source:     source,
			Feature:    feature,
			FeatStart:  start,
			FeatEnd:    end,
			FeatStrand: seq.None,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "Array", Value: strconv.Itoa(array)},
			},
		})
		return errors.Wrapf(err, "failed to write %s feature", feature)
	}

	for _, acc := range report.Accessions {
		for _, arr := range acc.Arrays {
			if len(arr.RepeatSpacers) == 0 {
				continue
			}
			if err := write(acc.Name, "repeat_region", arr.Start, arr.End, arr.Index); err != nil {
				return err
			}
			for _, rs := range arr.RepeatSpacers {
				if err := write(acc.Name, "repeat_unit", rs.RepeatStart, rs.RepeatEnd, arr.Index); err != nil {
					return err
				}
				if rs.Spacer == "" {
					continue
				}
				if err := write(acc.Name, "spacer", rs.SpacerStart, rs.SpacerEnd, arr.Index); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
