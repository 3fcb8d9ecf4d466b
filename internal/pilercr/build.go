package pilercr

import (
	"strconv"
	"strings"
)

const (
	// a difference-pattern column that matches the consensus
	matchSymbol = '.'

	// a difference-pattern column where this repeat has no base
	gapSymbol = '-'

	// the nucleotide letters a difference pattern may substitute in
	// (IUPAC codes, as PILER-CR prints them)
	nucleotides = "ACGTURYSWKMBDHVN"
)

func isNucleotide(c byte) bool {
	return strings.IndexByte(nucleotides, c) >= 0
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// builderState tracks where in an array block the builder is
type builderState uint8

const (
	// outside any array block
	stateIdle builderState = iota

	// after "Array N", expecting the ">accession" line
	stateAccession

	// expecting the column header and the first separator
	stateHeader

	// consuming data rows until the second separator
	stateRows

	// after the second separator, expecting the consensus summary line
	stateSummary
)

// rawRow is a data row as printed, before correction. Its start is only
// trustworthy for the first row of an array: PILER-CR computes every
// later position assuming each repeat is exactly consensus-length
type rawRow struct {
	// line number the row came from, for error reporting
	line int
	text string

	// 0-indexed start, converted from the 1-based Pos column
	start int

	// difference pattern against the consensus
	diff string

	// literal spacer sequence; empty when the report omits it
	spacer string
}

// builder assembles accession records from scanner events and applies the
// coordinate correction once each array's consensus is known
type builder struct {
	cfg   Parser
	state builderState

	// the array block being accumulated
	index     int
	accession string
	rows      []rawRow

	// completed records, in order of each accession's first appearance
	records []*Accession
	byName  map[string]*Accession
}

func newBuilder(cfg Parser) *builder {
	return &builder{cfg: cfg, byName: make(map[string]*Accession)}
}

// handle advances the state machine by one line event
func (b *builder) handle(ev event) error {
	switch b.state {
	case stateIdle:
		// everything outside an array block is banner or summary
		// text and carries no structure to check
		if ev.kind == evArrayHeader {
			b.index = ev.index
			b.accession = ""
			b.rows = nil
			b.state = stateAccession
		}
		return nil

	case stateAccession:
		switch ev.kind {
		case evBlank:
			return nil
		case evAccession:
			b.accession = ev.accession
			b.state = stateHeader
			return nil
		case evArrayHeader:
			return &UnterminatedArrayError{Accession: b.accession, Index: b.index}
		}
		return &MalformedLineError{Line: ev.line, Text: ev.text}

	case stateHeader:
		switch ev.kind {
		case evBlank, evColumnHeader:
			return nil
		case evSeparator:
			b.state = stateRows
			return nil
		case evArrayHeader, evAccession:
			return &UnterminatedArrayError{Accession: b.accession, Index: b.index}
		}
		return &MalformedLineError{Line: ev.line, Text: ev.text}

	case stateRows:
		switch ev.kind {
		case evBlank:
			return nil
		case evSeparator:
			b.state = stateSummary
			return nil
		case evLine:
			row, err := parseDataRow(ev)
			if err != nil {
				return err
			}
			b.rows = append(b.rows, row)
			return nil
		case evArrayHeader, evAccession:
			return &UnterminatedArrayError{Accession: b.accession, Index: b.index}
		}
		return &MalformedLineError{Line: ev.line, Text: ev.text}

	case stateSummary:
		switch ev.kind {
		case evBlank:
			return nil
		case evLine:
			consensus, err := parseSummaryRow(ev)
			if err != nil {
				return err
			}
			return b.finalize(consensus)
		case evArrayHeader, evAccession:
			return &UnterminatedArrayError{Accession: b.accession, Index: b.index}
		}
		return &MalformedLineError{Line: ev.line, Text: ev.text}
	}
	return nil
}

// finish closes the parse and returns the report. Ending mid-array means
// the consensus summary line never arrived
func (b *builder) finish() (*Report, error) {
	if b.state != stateIdle {
		return nil, &UnterminatedArrayError{Accession: b.accession, Index: b.index}
	}
	report := &Report{}
	for _, rec := range b.records {
		report.Accessions = append(report.Accessions, *rec)
	}
	return report, nil
}

// parseDataRow splits a table row into its raw fields. Rows normally carry
// seven whitespace-delimited columns (position, repeat length, %id, spacer
// length, left flank, difference pattern, spacer); the final row of an
// array omits the spacer length and may omit the trailing spacer, and a
// repeat at the very start of a sequence has no left flank.
func parseDataRow(ev event) (rawRow, error) {
	fields := strings.Fields(ev.text)
	if len(fields) < 4 || len(fields) > 7 {
		return rawRow{}, &MalformedLineError{Line: ev.line, Text: ev.text}
	}

	var diff, spacer string
	switch len(fields) {
	case 7:
		if !allDigits(fields[3]) {
			return rawRow{}, &MalformedLineError{Line: ev.line, Text: ev.text}
		}
		diff, spacer = fields[5], fields[6]
	case 6:
		// with six columns either the spacer length or the trailing
		// spacer is missing; the spacer length is the only one of
		// the two that is numeric
		if allDigits(fields[3]) {
			diff = fields[5]
		} else {
			diff, spacer = fields[4], fields[5]
		}
	case 5:
		diff = fields[4]
	case 4:
		diff = fields[3]
	}

	pos, err := strconv.Atoi(fields[0])
	if err != nil || pos < 1 || !allDigits(fields[1]) {
		return rawRow{}, &MalformedLineError{Line: ev.line, Text: ev.text}
	}
	if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
		return rawRow{}, &MalformedLineError{Line: ev.line, Text: ev.text}
	}

	return rawRow{
		line:   ev.line,
		text:   ev.text,
		start:  pos - 1,
		diff:   diff,
		spacer: spacer,
	}, nil
}

// parseSummaryRow pulls the consensus sequence out of the trailing summary
// line: repeat count, repeat length, average spacer length, consensus. The
// consensus must be nucleotide letters, with gap columns where only some
// repeats carry an insertion.
func parseSummaryRow(ev event) (string, error) {
	fields := strings.Fields(ev.text)
	if len(fields) != 4 || !allDigits(fields[0]) || !allDigits(fields[1]) || !allDigits(fields[2]) {
		return "", &MalformedLineError{Line: ev.line, Text: ev.text}
	}
	consensus := fields[3]
	for i := 0; i < len(consensus); i++ {
		if c := consensus[i]; c != gapSymbol && !isNucleotide(c) {
			return "", &MalformedLineError{Line: ev.line, Text: ev.text}
		}
	}
	return consensus, nil
}

// finalize turns the accumulated raw rows into a corrected Array and files
// it under its accession.
//
// Only the first row's printed position is trusted; every later row's
// corrected start is the running sum of the true repeat and spacer lengths
// before it. This is the fix for the PILER-CR defect: the report instead
// assumes every repeat is consensus-length, so rows after a gapped repeat
// drift by the accumulated gap count.
func (b *builder) finalize(consensus string) error {
	if len(b.rows) == 0 && !b.cfg.AllowEmptyArrays {
		return &EmptyArrayError{Accession: b.accession, Index: b.index}
	}

	arr := Array{Index: b.index, Consensus: consensus}
	start := 0
	for i, row := range b.rows {
		if len(row.diff) != len(consensus) {
			return &MalformedLineError{Line: row.line, Text: row.text}
		}
		repeat, bad := reconstructRepeat(consensus, row.diff)
		if bad != 0 {
			return &InvalidSequenceSymbolError{
				Accession:  b.accession,
				ArrayIndex: b.index,
				Row:        i,
				Symbol:     bad,
			}
		}
		if i == 0 {
			// nothing precedes the first row, so its printed
			// position cannot have drifted
			start = row.start
		}
		end := start + len(repeat) + len(row.spacer)
		arr.RepeatSpacers = append(arr.RepeatSpacers, RepeatSpacer{
			Start:       start,
			End:         end,
			RepeatStart: start,
			RepeatEnd:   start + len(repeat),
			SpacerStart: start + len(repeat),
			SpacerEnd:   end,
			Repeat:      repeat,
			Spacer:      row.spacer,
		})
		start = end
	}
	if n := len(arr.RepeatSpacers); n > 0 {
		arr.Start = arr.RepeatSpacers[0].Start
		arr.End = arr.RepeatSpacers[n-1].End
	}

	rec, ok := b.byName[b.accession]
	if !ok {
		rec = &Accession{Name: b.accession}
		b.byName[b.accession] = rec
		b.records = append(b.records, rec)
	}
	rec.Arrays = append(rec.Arrays, arr)

	b.rows = nil
	b.state = stateIdle
	return nil
}

// reconstructRepeat overlays a difference pattern onto the consensus: a
// match symbol copies the consensus base, a gap symbol drops the column,
// and a nucleotide letter substitutes (or, over a consensus gap column,
// inserts). A match over a consensus gap column also contributes nothing.
// The returned byte is the first pattern symbol outside the recognized
// alphabet, or zero when the pattern is clean.
func reconstructRepeat(consensus, diff string) (string, byte) {
	var repeat strings.Builder
	repeat.Grow(len(consensus))
	for i := 0; i < len(diff); i++ {
		switch c := diff[i]; {
		case c == gapSymbol:
		case c == matchSymbol:
			if i < len(consensus) && consensus[i] != gapSymbol {
				repeat.WriteByte(consensus[i])
			}
		case isNucleotide(c):
			repeat.WriteByte(c)
		default:
			return "", c
		}
	}
	return repeat.String(), 0
}
