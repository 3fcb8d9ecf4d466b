package pilercr

import (
	"strconv"
	"strings"
	"unicode"
)

// eventKind classifies one line of the report
type eventKind uint8

const (
	// an empty or whitespace-only line
	evBlank eventKind = iota

	// banner, column ruling or other text with no structural meaning
	evOther

	// an "Array N" line opening an array block
	evArrayHeader

	// a ">accession" line naming the sequence the array was found on
	evAccession

	// a "==========" ruling separating the column header from the
	// data rows, and the data rows from the summary line
	evSeparator

	// the "Pos  Repeat  %id ..." column header line
	evColumnHeader

	// any other non-blank line. Inside an array block these are the
	// data rows and the consensus summary line; which of the two a
	// line is depends on its position, so the builder parses them
	evLine

	// a "SUMMARY BY ..." heading; everything below it is ignored
	evSummaryStop
)

// event is one classified line of the report
type event struct {
	kind eventKind

	// 1-based line number in the input
	line int

	// the raw line, line ending stripped
	text string

	// array number from an "Array N" line
	index int

	// label from a ">accession" line
	accession string
}

// scanner walks the report line by line and classifies each line against
// the known report shapes. It never interprets biological content: data
// rows and summary rows both surface as evLine and are parsed by the
// builder, which knows which of the two its position calls for.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{lines: strings.Split(text, "\n")}
}

// next classifies and returns the next line of the report. ok is false
// once the input is exhausted.
func (s *scanner) next() (ev event, ok bool) {
	if s.pos >= len(s.lines) {
		return event{}, false
	}
	text := strings.TrimSuffix(s.lines[s.pos], "\r")
	s.pos++
	ev = event{line: s.pos, text: text}

	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		ev.kind = evBlank
	case strings.HasPrefix(text, "SUMMARY BY"):
		ev.kind = evSummaryStop
	case strings.HasPrefix(text, ">"):
		label := text[1:]
		if i := strings.IndexFunc(label, unicode.IsSpace); i >= 0 {
			label = label[:i]
		}
		if label == "" {
			ev.kind = evOther
			break
		}
		ev.kind = evAccession
		ev.accession = label
	case strings.HasPrefix(text, "Array "):
		index, err := strconv.Atoi(strings.TrimSpace(text[len("Array "):]))
		if err != nil || index < 1 {
			ev.kind = evOther
			break
		}
		ev.kind = evArrayHeader
		ev.index = index
	case strings.HasPrefix(trimmed, "="):
		ev.kind = evSeparator
	case strings.HasPrefix(trimmed, "Pos "):
		ev.kind = evColumnHeader
	default:
		ev.kind = evLine
	}
	return ev, true
}
