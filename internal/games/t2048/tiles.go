package t2048

import "sort"

// Tile is a board tile with a stable identity, used by renderers to
// correlate tiles across moves.
type Tile struct {
	ID     int
	Value  int
	Row    int
	Col    int
	Merged bool // produced by a merge on the last move
	New    bool // spawned on the last move
}

// TileTracker maps grid positions to tile identities. It is updated with
// the moves reported by Slide, so the surviving tile of a merge keeps its
// ID and the absorbed one is dropped.
type TileTracker struct {
	size   int
	ids    []int
	merged []bool
	fresh  []bool
	nextID int
}

// NewTileTracker creates a tracker and assigns IDs to every tile on g.
func NewTileTracker(g Grid) *TileTracker {
	t := &TileTracker{}
	t.Reset(g)
	return t
}

// Reset discards all identities, restarts the ID counter and numbers the
// tiles of g in row-major order.
func (t *TileTracker) Reset(g Grid) {
	t.size = g.size
	t.ids = make([]int, len(g.cells))
	t.merged = make([]bool, len(g.cells))
	t.fresh = make([]bool, len(g.cells))
	t.nextID = 0
	for i, v := range g.cells {
		if v != 0 {
			t.ids[i] = t.allocID()
		}
	}
}

func (t *TileTracker) allocID() int {
	t.nextID++
	return t.nextID
}

func (t *TileTracker) index(c Cell) int {
	return c.Row*t.size + c.Col
}

// Apply relocates identities according to the moves of one slide.
func (t *TileTracker) Apply(moves []TileMove) {
	ids := make([]int, len(t.ids))
	for i := range t.merged {
		t.merged[i] = false
		t.fresh[i] = false
	}
	for _, m := range moves {
		if m.Kind == Absorbed {
			continue
		}
		to := t.index(m.To)
		ids[to] = t.ids[t.index(m.From)]
		t.merged[to] = m.Kind == Merged
	}
	t.ids = ids
}

// Place allocates a fresh ID for a tile spawned at c and returns it.
func (t *TileTracker) Place(c Cell) int {
	i := t.index(c)
	t.ids[i] = t.allocID()
	t.fresh[i] = true
	return t.ids[i]
}

// Tiles returns the tiles of g with their identities, ordered by ID.
func (t *TileTracker) Tiles(g Grid) []Tile {
	var tiles []Tile
	for i, v := range g.cells {
		if v == 0 || t.ids[i] == 0 {
			continue
		}
		tiles = append(tiles, Tile{
			ID:     t.ids[i],
			Value:  v,
			Row:    i / t.size,
			Col:    i % t.size,
			Merged: t.merged[i],
			New:    t.fresh[i],
		})
	}
	sort.Slice(tiles, func(a, b int) bool {
		return tiles[a].ID < tiles[b].ID
	})
	return tiles
}

// snapshot copies the ID layout for undo.
func (t *TileTracker) snapshot() []int {
	ids := make([]int, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// restore reinstates an ID layout taken by snapshot. The ID counter keeps
// running so restored tiles never collide with later spawns.
func (t *TileTracker) restore(ids []int) {
	copy(t.ids, ids)
	for i := range t.merged {
		t.merged[i] = false
		t.fresh[i] = false
	}
}
