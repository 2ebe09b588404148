package tables

import (
	"context"
	"fmt"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
	"github.com/schollz/progressbar/v3"
)

// twoQueueBFS drives the shared structure of the reference's pruning-table
// generation: a distance array initialized to depth+1, two alternating
// frontier queues (the in-progress one and the next-depth one), and a
// same-axis redundancy skip (moves of the axis just used are never tried
// again, since axis-first move ordering guarantees they are contiguous).
// expand is given the current node's opaque key and last axis, and must
// call visit(newKey, newAxis) for every non-redundant move.
func twoQueueBFS(
	ctx context.Context,
	distance *ByteTable,
	solvedIndex int64,
	maxDepth int,
	label string,
	expand func(key int64, lastAxis int, visit func(newKey int64, newAxis int)),
) error {
	bar := progressbar.Default(int64(maxDepth), label)

	type entry struct {
		key  int64
		axis int
	}

	distance.Set(solvedIndex, 0)
	queues := [2][]entry{{{key: solvedIndex, axis: -1}}, nil}
	current := 0
	depth := 0

	for len(queues[current]) > 0 && depth < maxDepth {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		next := (current + 1) % 2
		for _, node := range queues[current] {
			expand(node.key, node.axis, func(newKey int64, newAxis int) {
				if distance.Get(newKey) == byte(maxDepth+1) {
					distance.Set(newKey, byte(depth+1))
					if depth+1 < maxDepth {
						queues[next] = append(queues[next], entry{key: newKey, axis: newAxis})
					}
				}
			})
		}
		queues[current] = nil
		current = next
		depth++
		_ = bar.Add(1)
	}
	return nil
}

// GeneratePhase1PruningTable builds phase1.prun: distances are measured
// purely on the K4 coordinate, but moves are applied to a full cubie state
// since the permutation must still be tracked to apply subsequent moves.
func GeneratePhase1PruningTable(ctx context.Context, layout Layout) error {
	size := phase1PruneSize()
	mf, err := createAndMap(layout.path(puzzle.Phase1PruningTableFile), size)
	if err != nil {
		return err
	}
	defer mf.Close()
	distance := &ByteTable{mf: mf}
	for i := int64(0); i < size; i++ {
		distance.Set(i, byte(puzzle.Phase1PruneDepth+1))
	}

	states := map[int64]puzzle.CubieState{0: puzzle.Solved()}

	expand := func(key int64, lastAxis int, visit func(int64, int)) {
		state := states[key]
		axisGroup := (lastAxis + 1) % 4
		for _, move := range puzzle.Phase1Moves[axisGroup] {
			axis := puzzle.TwistAxes[move]
			if axis == lastAxis {
				break
			}
			newState := state.Apply(move)
			newKey := int64(newState.GetK4Coord())
			if distance.Get(newKey) == byte(puzzle.Phase1PruneDepth+1) {
				states[newKey] = newState
			}
			visit(newKey, axis)
		}
	}

	return twoQueueBFS(ctx, distance, 0, puzzle.Phase1PruneDepth, "phase 1 pruning table", expand)
}

// GeneratePhase2PruningTable builds phase2.prun from the already-generated
// C3 and IO coordinate move tables.
func GeneratePhase2PruningTable(ctx context.Context, layout Layout) error {
	c3Table, err := LoadUint32Table(layout, puzzle.C3MoveTableFile, puzzle.NC3CoordStates)
	if err != nil {
		return err
	}
	defer c3Table.Close()
	ioTable, err := LoadUint16Table(layout, puzzle.IOMoveTableFile, puzzle.NIOCoordStates)
	if err != nil {
		return err
	}
	defer ioTable.Close()

	size := phase2PruneSize()
	mf, err := createAndMap(layout.path(puzzle.Phase2PruningTableFile), size)
	if err != nil {
		return err
	}
	defer mf.Close()
	distance := &ByteTable{mf: mf}
	for i := int64(0); i < size; i++ {
		distance.Set(i, byte(puzzle.Phase2PruneDepth+1))
	}

	index := func(c3, io int) int64 { return int64(io)*puzzle.NC3CoordStates + int64(c3) }

	expand := func(key int64, lastAxis int, visit func(int64, int)) {
		c3 := int(key % puzzle.NC3CoordStates)
		io := int(key / puzzle.NC3CoordStates)
		axisGroup := (lastAxis + 1) % 4
		for _, move := range puzzle.Phase2Moves[axisGroup] {
			axis := puzzle.TwistAxes[move]
			if axis == lastAxis {
				break
			}
			newC3 := int(c3Table.Get(move, c3))
			newIO := int(ioTable.Get(move, io))
			visit(index(newC3, newIO), axis)
		}
	}

	return twoQueueBFS(ctx, distance, 0, puzzle.Phase2PruneDepth, "phase 2 pruning table", expand)
}

// GeneratePhase3PruningTable builds phase3.prun from the already-generated
// I and O coordinate move tables.
func GeneratePhase3PruningTable(ctx context.Context, layout Layout) error {
	iTable, err := LoadUint16Table(layout, puzzle.IMoveTableFile, puzzle.NICoordStates)
	if err != nil {
		return err
	}
	defer iTable.Close()
	oTable, err := LoadUint16Table(layout, puzzle.OMoveTableFile, puzzle.NOCoordStates)
	if err != nil {
		return err
	}
	defer oTable.Close()

	size := phase3PruneSize()
	mf, err := createAndMap(layout.path(puzzle.Phase3PruningTableFile), size)
	if err != nil {
		return err
	}
	defer mf.Close()
	distance := &ByteTable{mf: mf}
	for i := int64(0); i < size; i++ {
		distance.Set(i, byte(puzzle.Phase3PruneDepth+1))
	}

	index := func(i, o int) int64 {
		return int64(o)*puzzle.NHalfICoordStates + int64(i%puzzle.NHalfICoordStates)
	}

	expand := func(key int64, lastAxis int, visit func(int64, int)) {
		o := int(key / puzzle.NHalfICoordStates)
		iHalf := int(key % puzzle.NHalfICoordStates)
		axisGroup := (lastAxis + 1) % 4
		for _, move := range puzzle.Phase3Moves[axisGroup] {
			axis := puzzle.TwistAxes[move]
			if axis == lastAxis {
				break
			}
			newI := int(iTable.Get(move, iHalf))
			newO := int(oTable.Get(move, o))
			visit(index(newI, newO), axis)
		}
	}

	return twoQueueBFS(ctx, distance, 0, puzzle.Phase3PruneDepth, "phase 3 pruning table", expand)
}

// GenerateAll runs move-table then pruning-table generation in the
// required order (pruning tables for phases 2 and 3 read back the
// coordinate move tables).
func GenerateAll(ctx context.Context, layout Layout, workers int) error {
	if err := GenerateMoveTables(ctx, layout, workers); err != nil {
		return fmt.Errorf("tables: move tables: %w", err)
	}
	if err := GeneratePhase1PruningTable(ctx, layout); err != nil {
		return fmt.Errorf("tables: phase 1 pruning table: %w", err)
	}
	if err := GeneratePhase2PruningTable(ctx, layout); err != nil {
		return fmt.Errorf("tables: phase 2 pruning table: %w", err)
	}
	if err := GeneratePhase3PruningTable(ctx, layout); err != nil {
		return fmt.Errorf("tables: phase 3 pruning table: %w", err)
	}
	return nil
}
