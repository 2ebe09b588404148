// Package mc4dlog implements a text log format for scrambles and
// solutions: a fixed header line, a 4x4 viewing matrix, a "*" separator,
// then a scramble and solution twist list separated by the literal token
// "m|" and terminated by ".". This package is a minimal, GUI-free
// boundary that the CLI and the core's tests can call without pulling
// in any file-dialog or rendering code.
package mc4dlog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Log is the parsed form of a log file.
type Log struct {
	Header     string
	ViewMatrix [4][4]float64
	Scramble   []puzzle.Twist
	Solution   []puzzle.Twist
}

// ParseLog reads a log file from r.
func ParseLog(r io.Reader) (*Log, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mc4dlog: reading: %w", err)
	}
	if len(lines) < 6 {
		return nil, fmt.Errorf("mc4dlog: truncated header, want at least 6 lines, got %d", len(lines))
	}

	l := &Log{Header: lines[0]}
	for i := 0; i < 4; i++ {
		fields := strings.Fields(lines[1+i])
		if len(fields) != 4 {
			return nil, fmt.Errorf("mc4dlog: view matrix row %d: expected 4 floats, got %d", i, len(fields))
		}
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("mc4dlog: view matrix row %d: %w", i, err)
			}
			l.ViewMatrix[i][j] = v
		}
	}
	if strings.TrimSpace(lines[5]) != "*" {
		return nil, fmt.Errorf("mc4dlog: expected '*' separator on line 6, got %q", lines[5])
	}

	tokens := strings.Fields(strings.Join(lines[6:], " "))
	side := &l.Scramble
	for _, tok := range tokens {
		switch tok {
		case ".":
			return l, nil
		case "m|":
			side = &l.Solution
			continue
		}
		t, err := parseTwistToken(tok)
		if err != nil {
			return nil, err
		}
		*side = append(*side, t)
	}
	return l, nil
}

func parseTwistToken(tok string) (puzzle.Twist, error) {
	parts := strings.Split(tok, ",")
	if len(parts) != 3 {
		return puzzle.Twist{}, fmt.Errorf("mc4dlog: malformed move token %q", tok)
	}
	code, err1 := strconv.Atoi(parts[0])
	amount, err2 := strconv.Atoi(parts[1])
	layer, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return puzzle.Twist{}, fmt.Errorf("mc4dlog: malformed move token %q", tok)
	}
	t, err := puzzle.TwistFromMC4D(code, amount, layer)
	if err != nil {
		return puzzle.Twist{}, fmt.Errorf("mc4dlog: %w", err)
	}
	return t, nil
}

// WriteTo serializes the log back to the text format, writing each twist
// as one or two "code,amount,layer" tokens per Twist.ToMC4D.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintln(&b, l.Header)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", l.ViewMatrix[i][j])
		}
		b.WriteByte('\n')
	}
	b.WriteString("*\n")
	writeTwists(&b, l.Scramble)
	b.WriteString(" m| ")
	writeTwists(&b, l.Solution)
	b.WriteString(" .\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeTwists(b *strings.Builder, twists []puzzle.Twist) {
	for i, t := range twists {
		if i > 0 {
			b.WriteByte(' ')
		}
		triple, doubled := t.ToMC4D()
		fmt.Fprintf(b, "%d,%d,%d", triple[0], triple[1], triple[2])
		if doubled {
			fmt.Fprintf(b, " %d,%d,%d", triple[0], triple[1], triple[2])
		}
	}
}

// ApplyScramble returns the sticker state obtained by applying every
// scramble twist in order to s.
func (l *Log) ApplyScramble(s puzzle.StickerState) puzzle.StickerState {
	for _, t := range l.Scramble {
		s = s.Twist(t)
	}
	return s
}

// ApplySolution returns the sticker state obtained by applying every
// solution twist in order to s.
func (l *Log) ApplySolution(s puzzle.StickerState) puzzle.StickerState {
	for _, t := range l.Solution {
		s = s.Twist(t)
	}
	return s
}
