package puzzle

import (
	"fmt"
	"strings"
)

var moveByName map[string]int

func init() {
	moveByName = make(map[string]int, NPhase1Moves)
	for i, name := range TwistNames {
		moveByName[name] = i
	}
}

// ParseMoveName looks up a single canonical move by its piece-notation name
// (e.g. "RI2", "UR'"), the same notation Twist.String produces.
func ParseMoveName(name string) (int, error) {
	m, ok := moveByName[name]
	if !ok {
		return 0, fmt.Errorf("puzzle: unknown move %q", name)
	}
	return m, nil
}

// ParseMoveSequence parses a whitespace-separated string of move names into
// canonical move indices, mirroring the reference CLI's scramble notation.
func ParseMoveSequence(sequence string) ([]int, error) {
	fields := strings.Fields(sequence)
	moves := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMoveName(f)
		if err != nil {
			return nil, fmt.Errorf("puzzle: parsing move sequence: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
