package mc4dlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

func sampleLog() *Log {
	return &Log{
		Header: "MagicCube4D15.22.snapshot",
		ViewMatrix: [4][4]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		// Scramble is RI2 (move 0, a self-inverse double turn) then UI (move
		// 2); Solution undoes it in reverse order: UI' (move 4, UI's named
		// inverse per TwistNames) then RI2 again.
		Scramble: []puzzle.Twist{puzzle.CanonicalMoves[0], puzzle.CanonicalMoves[2]},
		Solution: []puzzle.Twist{puzzle.CanonicalMoves[4], puzzle.CanonicalMoves[0]},
	}
}

// TestRoundTrip checks a log written out and
// read back yields an equivalent scramble/solution, and replaying both
// against a solved sticker state restores it to solved.
func TestRoundTrip(t *testing.T) {
	orig := sampleLog()

	var buf bytes.Buffer
	if _, err := orig.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := ParseLog(&buf)
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}

	if got.Header != orig.Header {
		t.Fatalf("header: got %q want %q", got.Header, orig.Header)
	}
	if len(got.Scramble) != len(orig.Scramble) || len(got.Solution) != len(orig.Solution) {
		t.Fatalf("twist counts: got scramble=%d solution=%d, want scramble=%d solution=%d",
			len(got.Scramble), len(got.Solution), len(orig.Scramble), len(orig.Solution))
	}

	s := puzzle.SolvedSticker
	s = got.ApplyScramble(s)
	if s.IsSolved() {
		t.Fatal("scramble should have disturbed the solved state")
	}
	s = got.ApplySolution(s)
	if !s.IsSolved() {
		t.Fatal("applying the inverse-order solution should restore the solved state")
	}
}

func TestParseLogRejectsTruncatedHeader(t *testing.T) {
	_, err := ParseLog(strings.NewReader("only one line\n"))
	if err == nil {
		t.Fatal("expected an error for a truncated header")
	}
}

func TestParseLogRejectsMissingSeparator(t *testing.T) {
	bad := "hdr\n1 0 0 0\n0 1 0 0\n0 0 1 0\n0 0 0 1\nnot-a-star\n0,1,1 .\n"
	_, err := ParseLog(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected an error for a missing '*' separator")
	}
}

func TestParseLogRejectsMalformedToken(t *testing.T) {
	bad := "hdr\n1 0 0 0\n0 1 0 0\n0 0 1 0\n0 0 0 1\n*\nnotatoken .\n"
	_, err := ParseLog(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected an error for a malformed move token")
	}
}
