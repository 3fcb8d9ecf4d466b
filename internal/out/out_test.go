package out

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jimrybarski/pilercr-parser/internal/pilercr"
)

// a small hand-built report shared by the writer tests
func testReport() *pilercr.Report {
	return &pilercr.Report{
		Accessions: []pilercr.Accession{
			{
				Name: "MGYG000232241_150",
				Arrays: []pilercr.Array{
					{
						Index:     18,
						Start:     3831,
						End:       3905,
						Consensus: "AAGTTTCC",
						RepeatSpacers: []pilercr.RepeatSpacer{
							{
								Start:       3831,
								End:         3905,
								RepeatStart: 3831,
								RepeatEnd:   3871,
								SpacerStart: 3871,
								SpacerEnd:   3905,
								Repeat:      "AAATTTCC",
								Spacer:      "GAATTACA",
							},
						},
					},
				},
			},
		},
	}
}

func Test_WriteJSON(t *testing.T) {
	report := testReport()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report, "  "); err != nil {
		t.Fatalf("failed to write JSON: %v", err)
	}

	var parsed Output
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Time == 0 {
		t.Error("expected a run timestamp")
	}
	if !reflect.DeepEqual(parsed.Report, report) {
		t.Errorf("report did not survive the round trip\ngot:  %+v\nwant: %+v", parsed.Report, report)
	}
}

func Test_WriteGFF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGFF(&buf, testReport(), "pilercr"); err != nil {
		t.Fatalf("failed to write GFF: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"MGYG000232241_150",
		"pilercr",
		"repeat_region",
		"repeat_unit",
		"spacer",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected GFF output to contain %q:\n%s", want, output)
		}
	}
}

// arrays kept by AllowEmptyArrays have no extent and are skipped
func Test_WriteGFF_skipsEmptyArrays(t *testing.T) {
	report := &pilercr.Report{
		Accessions: []pilercr.Accession{
			{
				Name:   "acc_one",
				Arrays: []pilercr.Array{{Index: 1, Consensus: "ACGT"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteGFF(&buf, report, "pilercr"); err != nil {
		t.Fatalf("failed to write GFF: %v", err)
	}
	if strings.Contains(buf.String(), "repeat_region") {
		t.Error("expected no features for an empty array")
	}
}

func Test_Summary(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Summary(&buf, testReport())
	output := buf.String()

	for _, want := range []string{
		"MGYG000232241_150",
		"1 array(s), 1 repeat-spacer(s)",
		"array 18  3831..3905",
		"consensus AAGTTTCC",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected summary to contain %q:\n%s", want, output)
		}
	}
}
