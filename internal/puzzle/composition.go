package puzzle

// CompositionKind classifies how two adjacent canonical moves combine when
// merging solution sequences from different search phases.
type CompositionKind int

const (
	// Concatenate means the two moves do not interact; both are kept.
	Concatenate CompositionKind = iota
	// Annihilate means the two moves cancel exactly, leaving nothing.
	Annihilate
	// Replace means the two moves fuse into a single different move.
	Replace
)

// CompositionResult describes the outcome of composing two canonical
// moves, replacing a 254/255 sentinel-byte scheme
// with an explicit enum.
type CompositionResult struct {
	Kind CompositionKind
	Move uint8
}

var compositionTable [NPhase1Moves][NPhase1Moves]CompositionResult

func init() {
	var canonical [NPhase1Moves]CubieState
	for m := 0; m < NPhase1Moves; m++ {
		canonical[m] = Solved().Apply(m)
	}
	for a := 0; a < NPhase1Moves; a++ {
		for b := 0; b < NPhase1Moves; b++ {
			combined := canonical[a].Compose(canonical[b])
			switch {
			case combined.Equal(Solved()):
				compositionTable[a][b] = CompositionResult{Kind: Annihilate}
			default:
				found := false
				for m := 0; m < NPhase1Moves; m++ {
					if combined.Equal(canonical[m]) {
						compositionTable[a][b] = CompositionResult{Kind: Replace, Move: uint8(m)}
						found = true
						break
					}
				}
				if !found {
					compositionTable[a][b] = CompositionResult{Kind: Concatenate}
				}
			}
		}
	}
}

// ComposeMoves returns how canonical moves a and b combine when adjacent in
// a solution sequence.
func ComposeMoves(a, b int) CompositionResult {
	return compositionTable[a][b]
}
