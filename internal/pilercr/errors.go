package pilercr

import "fmt"

// MalformedLineError reports a line that sits in a structurally required
// position but could not be parsed as the shape that position calls for
type MalformedLineError struct {
	// 1-based line number in the input
	Line int

	// the raw line
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Text)
}

// UnterminatedArrayError reports an array block that ended, or was
// interrupted by a new header, before its consensus summary line
type UnterminatedArrayError struct {
	Accession string
	Index     int
}

func (e *UnterminatedArrayError) Error() string {
	return fmt.Sprintf("array %d of %q has no consensus summary line", e.Index, e.Accession)
}

// InvalidSequenceSymbolError reports a difference-pattern character
// outside the match/gap/nucleotide alphabet
type InvalidSequenceSymbolError struct {
	Accession  string
	ArrayIndex int

	// 0-based row within the array
	Row int

	Symbol byte
}

func (e *InvalidSequenceSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q in row %d of array %d (%s)",
		e.Symbol, e.Row, e.ArrayIndex, e.Accession)
}

// EmptyArrayError reports an array block that closed without any
// repeat-spacer rows. Parser.AllowEmptyArrays keeps the degenerate array
// instead of failing.
type EmptyArrayError struct {
	Accession string
	Index     int
}

func (e *EmptyArrayError) Error() string {
	return fmt.Sprintf("array %d of %q has no repeat-spacer rows", e.Index, e.Accession)
}
