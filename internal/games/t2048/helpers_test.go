package t2048

import "testing"

// seqRand replays fixed values. Intn falls back to 0 and Float64 to 0.99
// once the queues are drained.
type seqRand struct {
	ints   []int
	floats []float64
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func mustGrid(t *testing.T, rows [][]int) Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows(%v): %v", rows, err)
	}
	return g
}

func loadTestSession(t *testing.T, rows [][]int, score int, opts Options) *Session {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = &seqRand{}
	}
	policy := opts.Policy
	if policy == "" {
		policy = PolicyAlways2
	}
	s, err := LoadSession(State{
		Size:      len(rows),
		Cells:     rows,
		Score:     score,
		AllowUndo: opts.AllowUndo,
		Target:    opts.Target,
		Policy:    policy,
	}, opts)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	return s
}
