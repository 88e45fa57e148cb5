package t2048

// MoveKind describes what happened to a tile during a slide.
type MoveKind int

const (
	// Slid means the tile moved (or stayed) without merging.
	Slid MoveKind = iota
	// Merged means the tile absorbed its neighbour and doubled.
	Merged
	// Absorbed means the tile was consumed by a merge and no longer exists.
	Absorbed
)

// LineMove records where the tile in one line slot ended up.
type LineMove struct {
	From int
	To   int
	Kind MoveKind
}

// LineResult is the outcome of compressing a single line.
type LineResult struct {
	Line          []int
	Changed       bool
	Score         int
	ReachedTarget bool
	Moves         []LineMove
}

// CompressLine slides the tiles of a line towards index 0 and merges
// adjacent equal values once each. A tile produced by a merge is never
// merged again in the same pass, so [2 2 2 0] becomes [4 2 0 0].
// A non-positive target disables target detection.
func CompressLine(line []int, target int) LineResult {
	res := LineResult{Line: make([]int, len(line))}
	writePos := 0
	lastFrom := -1 // source slot of the unmerged tile at writePos-1

	for i, v := range line {
		if v == 0 {
			continue
		}

		if lastFrom >= 0 && res.Line[writePos-1] == v {
			// Merge with previous tile; it was further along, so it survives
			merged := v * 2
			res.Line[writePos-1] = merged
			res.Score += merged
			if target > 0 && merged >= target {
				res.ReachedTarget = true
			}
			res.Moves[len(res.Moves)-1].Kind = Merged
			res.Moves = append(res.Moves, LineMove{From: i, To: writePos - 1, Kind: Absorbed})
			lastFrom = -1
			continue
		}

		res.Line[writePos] = v
		res.Moves = append(res.Moves, LineMove{From: i, To: writePos, Kind: Slid})
		lastFrom = i
		writePos++
	}

	for i := range line {
		if line[i] != res.Line[i] {
			res.Changed = true
			break
		}
	}

	return res
}
