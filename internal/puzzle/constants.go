// Package puzzle implements the group algebra of the 2x2x2x2 ("2^4")
// hypercube twisty puzzle: twists, sticker-level state, cubie-level state,
// and the coordinate encodings used to compress cubie state into the
// small spaces that the search and table-generation layers operate on.
package puzzle

// Sizes of the full state space and of each coordinate space. These mirror
// the constants a generation run would otherwise have to rediscover by
// brute force, and are used to size move/pruning tables up front.
const (
	// NC3CoordStates is the number of C3 (orientation coset) states: 3^15/3.
	NC3CoordStates = 4782969
	// NIOCoordStates is the number of IO (I/O partition) states: C(15,7).
	NIOCoordStates = 6435
	// NICoordStates is the number of I-piece permutation states: 8!.
	NICoordStates = 40320
	// NHalfICoordStates is half of NICoordStates, used when the other half
	// of parity is implied by the paired O coordinate.
	NHalfICoordStates = 20160
	// NOCoordStates is the number of O-piece permutation states: 7!.
	NOCoordStates = 5040
	// NHalfOCoordStates is half of NOCoordStates.
	NHalfOCoordStates = 2520

	// NPhase1States is the number of K4-orientation-only states: 4^15.
	NPhase1States = 1073741824
	// NPhase2States is the number of C3 x IO states.
	NPhase2States = NC3CoordStates * NIOCoordStates
	// NPhase3States is the number of (half I) x O states.
	NPhase3States = NHalfICoordStates * NOCoordStates

	// NPhase1Moves is the size of the phase 1 move set.
	NPhase1Moves = 92
	// NPhase2Moves is the size of the phase 2 move set.
	NPhase2Moves = 44
	// NPhase3Moves is the size of the phase 3 move set.
	NPhase3Moves = 12

	// Phase1PruneDepth is the BFS depth used to build the phase 1 pruning table.
	Phase1PruneDepth = 6
	// Phase2PruneDepth is the BFS depth used to build the phase 2 pruning table.
	Phase2PruneDepth = 7
	// Phase3PruneDepth is the BFS depth used to build the phase 3 pruning table (full depth).
	Phase3PruneDepth = 21
)

// Move/pruning table file names
// so that generated tables carry recognizable names on disk.
const (
	PermListMoveTableFile = "perm_list.move"
	A4ListMoveTableFile   = "A4_list.move"
	C3MoveTableFile       = "C3.move"
	IMoveTableFile        = "I.move"
	OMoveTableFile        = "O.move"
	IOMoveTableFile       = "IO.move"

	Phase1PruningTableFile = "phase1.prun"
	Phase2PruningTableFile = "phase2.prun"
	Phase3PruningTableFile = "phase3.prun"
)

// TwistAxes gives the fixed axis (0..3) of each of the 92 canonical moves,
// in the order the rest of the package (and every generated table) indexes
// moves. Reproduced from the reference generation run rather than
// re-derived, since it is exactly the data gen_twist_data.py would produce.
var TwistAxes = [NPhase1Moves]int{
	0, 1, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
}

// TwistMC4DNames gives the wire-format token (one or two "code,amount,layer"
// entries separated by a space) for each of the 92 canonical moves.
var TwistMC4DNames = [NPhase1Moves]string{
	"128,1,1 128,1,1", "79,1,1 79,1,1", "182,1,1", "182,1,1 182,1,1", "182,-1,1", "20,1,1", "20,1,1 20,1,1", "20,-1,1",
	"24,1,1 24,1,1", "12,1,1", "22,1,1 22,1,1", "14,1,1", "128,1,1", "128,-1,1", "132,1,1 132,1,1", "120,1,1",
	"130,1,1 130,1,1", "122,1,1", "79,1,1", "79,-1,1", "75,1,1 75,1,1", "68,1,1", "76,1,1 76,1,1", "66,1,1",
	"183,1,1 183,1,1", "177,1,1", "185,1,1 185,1,1", "175,1,1", "19,1,1", "24,1,1", "24,-1,1", "11,1,1",
	"3,-1,1", "3,1,1", "0,1,1", "0,-1,1", "17,1,1", "22,1,1", "22,-1,1", "9,1,1",
	"6,1,1", "6,-1,1", "2,1,1", "2,-1,1", "127,1,1", "132,1,1", "132,-1,1", "119,1,1",
	"111,-1,1", "111,1,1", "108,1,1", "108,-1,1", "125,1,1", "130,1,1", "130,-1,1", "117,1,1",
	"114,1,1", "114,-1,1", "110,1,1", "110,-1,1", "62,1,1", "75,1,1", "75,-1,1", "70,1,1",
	"59,-1,1", "59,1,1", "60,1,1", "60,-1,1", "63,1,1", "76,1,1", "76,-1,1", "71,1,1",
	"54,1,1", "54,-1,1", "58,1,1", "58,-1,1", "178,1,1", "183,1,1", "183,-1,1", "170,1,1",
	"162,-1,1", "162,1,1", "165,1,1", "165,-1,1", "180,1,1", "185,1,1", "185,-1,1", "172,1,1",
	"167,1,1", "167,-1,1", "163,1,1", "163,-1,1",
}

// TwistNames gives a human-readable piece-notation name for each of the 92
// canonical moves, for CLI display and debugging.
var TwistNames = [NPhase1Moves]string{
	"RI2", "FI2", "UI", "UI2", "UI'", "IU", "IU2", "IU'", "IF2", "IRB", "IR2", "IRF", "RI", "RI'", "RU2", "RFD",
	"RF2", "RFU", "FI", "FI'", "FU2", "FRD", "FR2", "FRU", "UF2", "URB", "UR2", "URF", "IFD", "IF", "IF'", "IFU",
	"ILFU'", "ILFU", "IRBU", "IRBU'", "IRD", "IR", "IR'", "IRU", "IRFD", "IRFD'", "IRFU", "IRFU'", "RUO", "RU", "RU'", "RUI",
	"RBUI'", "RBUI", "RFDI", "RFDI'", "RFO", "RF", "RF'", "RFI", "RFUO", "RFUO'", "RFUI", "RFUI'", "FUO", "FU", "FU'", "FUI",
	"FLUI'", "FLUI", "FRDI", "FRDI'", "FRO", "FR", "FR'", "FRI", "FRUO", "FRUO'", "FRUI", "FRUI'", "UFO", "UF", "UF'", "UFI",
	"ULFI'", "ULFI", "URBI", "URBI'", "URO", "UR", "UR'", "URI", "URFO", "URFO'", "URFI", "URFI'",
}

// Phase1Moves[axis] lists all 92 move indices ordered so that moves whose
// axis equals `axis` come first; phase1 BFS and search use
// Phase1Moves[(lastAxis+1)%4] and break as soon as TwistAxes[move]==lastAxis,
// which relies on all of an axis's moves appearing contiguously here.
var Phase1Moves = [4][NPhase1Moves]int{
	{0, 12, 13, 14, 15, 16, 17, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 1, 18, 19, 20, 21, 22, 23, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 2, 3, 4, 24, 25, 26, 27, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43},
	{1, 18, 19, 20, 21, 22, 23, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 2, 3, 4, 24, 25, 26, 27, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59},
	{2, 3, 4, 24, 25, 26, 27, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 1, 18, 19, 20, 21, 22, 23, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75},
	{5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 1, 18, 19, 20, 21, 22, 23, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 2, 3, 4, 24, 25, 26, 27, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91},
}

// Phase2Moves is the analogous axis-first ordering restricted to the 44
// moves that preserve the phase 1 invariant.
var Phase2Moves = [4][NPhase2Moves]int{
	{0, 12, 13, 14, 15, 16, 17, 1, 18, 19, 20, 21, 22, 23, 2, 3, 4, 24, 25, 26, 27, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43},
	{1, 18, 19, 20, 21, 22, 23, 2, 3, 4, 24, 25, 26, 27, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17},
	{2, 3, 4, 24, 25, 26, 27, 5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17, 1, 18, 19, 20, 21, 22, 23},
	{5, 6, 7, 8, 9, 10, 11, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 0, 12, 13, 14, 15, 16, 17, 1, 18, 19, 20, 21, 22, 23, 2, 3, 4, 24, 25, 26, 27},
}

// Phase3Moves is the analogous axis-first ordering restricted to the 12
// moves that preserve the phase 2 invariant (collapsing I/O into a single
// combined coordinate).
var Phase3Moves = [4][NPhase3Moves]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0},
	{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 1},
	{5, 6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 4},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
