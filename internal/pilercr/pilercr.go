// Package pilercr parses the report text written by PILER-CR, a CRISPR
// array annotation tool (https://www.drive5.com/pilercr/).
//
// PILER-CR v1.06 reports repeat coordinates as if every repeat were exactly
// as long as the array's consensus. Repeats with gaps are shorter, so every
// row after a gapped repeat drifts from its true genomic position. The parser
// rebuilds each repeat's literal sequence from its difference pattern against
// the consensus and recomputes every row's position from the true lengths of
// the rows before it.
//
// All coordinates in the parsed tree are 0-indexed with inclusive starts and
// exclusive ends. The report's Pos column is 1-indexed.
package pilercr

// Report is the parsed form of one PILER-CR report
type Report struct {
	// one record per input sequence, in order of first appearance
	Accessions []Accession `json:"accessions"`
}

// Accession is one input sequence the annotation tool analyzed and
// the arrays found on it
type Accession struct {
	// the accession label, taken verbatim from the report
	Name string `json:"accession"`

	// the CRISPR arrays on this sequence, in report order
	Arrays []Array `json:"arrays"`
}

// Array is one detected CRISPR array: a shared consensus repeat and an
// ordered series of repeat-spacer pairs
type Array struct {
	// the array's number in the report (1-based, as printed)
	Index int `json:"index"`

	// start of the first repeat (0-indexed, inclusive)
	Start int `json:"start"`

	// end of the last spacer (0-indexed, exclusive)
	End int `json:"end"`

	// the consensus repeat sequence, verbatim. May contain gap
	// columns where only some repeats carry an insertion
	Consensus string `json:"consensus"`

	// the repeat-spacer pairs in this array, in genomic order
	RepeatSpacers []RepeatSpacer `json:"repeatSpacers"`
}

// RepeatSpacer is a single repeat and the spacer that follows it, with
// corrected coordinates
type RepeatSpacer struct {
	// start of the repeat (0-indexed, inclusive)
	Start int `json:"start"`

	// end of the spacer (0-indexed, exclusive)
	End int `json:"end"`

	// repeat coordinates, [Start, RepeatEnd)
	RepeatStart int `json:"repeatStart"`
	RepeatEnd   int `json:"repeatEnd"`

	// spacer coordinates, [RepeatEnd, End)
	SpacerStart int `json:"spacerStart"`
	SpacerEnd   int `json:"spacerEnd"`

	// the literal repeat sequence, reconstructed from the difference
	// pattern: gaps removed, substitutions applied
	Repeat string `json:"repeat"`

	// the literal spacer sequence. Empty on the last row of an array
	// when the report omits it
	Spacer string `json:"spacer"`
}

// Parser carries the settings for one parse pass. The zero value is a
// parser with the default settings.
type Parser struct {
	// AllowEmptyArrays keeps arrays that closed without any
	// repeat-spacer rows instead of failing with EmptyArrayError.
	// PILER-CR itself always prints at least one row per array, so
	// the default is to treat an empty array as malformed input
	AllowEmptyArrays bool
}

// Parse walks the report and builds one record per accession. Parsing is
// all-or-nothing: the first structural problem aborts the whole call and
// no partial report is returned.
func (p Parser) Parse(text string) (*Report, error) {
	s := newScanner(text)
	b := newBuilder(p)
	for {
		ev, ok := s.next()
		if !ok {
			break
		}
		// the trailing SUMMARY BY SIMILARITY / SUMMARY BY POSITION
		// tables restate the arrays; nothing below them is parsed
		if ev.kind == evSummaryStop {
			break
		}
		if err := b.handle(ev); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

// Parse parses a PILER-CR report with the default settings.
func Parse(text string) (*Report, error) {
	return Parser{}.Parse(text)
}
