package pilercr

import "testing"

func Test_scanner_classify(t *testing.T) {
	tests := []struct {
		line string
		kind eventKind
	}{
		{"", evBlank},
		{"   ", evBlank},
		{"pilercr v1.06", evLine},
		{"DETAIL REPORT", evLine},
		{"Array 18", evArrayHeader},
		{"Array xyz", evOther},
		{">MGYG000232241_150", evAccession},
		{">", evOther},
		{"       Pos  Repeat     %id  Spacer  Left flank    Repeat    Spacer", evColumnHeader},
		{"==========  ======  ======  ======  ==========    ======    ======", evSeparator},
		{"      3832      40    92.5      34  CATATAGCAA    ..A.CC.    GAATTACA", evLine},
		{"         3      40              37                AAGTTTCC", evLine},
		{"SUMMARY BY SIMILARITY", evSummaryStop},
		{"SUMMARY BY POSITION", evSummaryStop},
	}

	for _, tt := range tests {
		s := newScanner(tt.line)
		ev, ok := s.next()
		if !ok {
			t.Fatalf("no event for %q", tt.line)
		}
		if ev.kind != tt.kind {
			t.Errorf("line %q: kind %d, want %d", tt.line, ev.kind, tt.kind)
		}
	}
}

func Test_scanner_payloads(t *testing.T) {
	s := newScanner("Array 18\n>MGYG000232241_150\r\n")

	ev, _ := s.next()
	if ev.kind != evArrayHeader || ev.index != 18 || ev.line != 1 {
		t.Errorf("unexpected array header event: %+v", ev)
	}

	// carriage returns from CRLF reports are stripped
	ev, _ = s.next()
	if ev.kind != evAccession || ev.accession != "MGYG000232241_150" || ev.line != 2 {
		t.Errorf("unexpected accession event: %+v", ev)
	}
}

func Test_scanner_exhaustion(t *testing.T) {
	s := newScanner("Array 1")
	if _, ok := s.next(); !ok {
		t.Fatal("expected one event")
	}
	if _, ok := s.next(); ok {
		t.Error("expected the scanner to be exhausted")
	}
}
