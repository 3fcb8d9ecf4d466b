// Package out writes parsed reports to the formats consumers ask for:
// JSON for downstream tooling, GFF for genome browsers, and a colored
// terminal summary.
package out

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/jimrybarski/pilercr-parser/internal/pilercr"
)

// Output wraps a parsed report for JSON export
type Output struct {
	// unix
	Time int64 `json:"time"`

	// the corrected report tree
	Report *pilercr.Report `json:"report"`
}

// WriteJSON writes the parsed report as indented JSON
func WriteJSON(w io.Writer, report *pilercr.Report, indent string) error {
	output, err := json.MarshalIndent(Output{
		Time:   time.Now().Unix(),
		Report: report,
	}, "", indent)
	if err != nil {
		return errors.Wrap(err, "failed to serialize the report")
	}
	output = append(output, '\n')

	if _, err := w.Write(output); err != nil {
		return errors.Wrap(err, "failed to write the report")
	}
	return nil
}
