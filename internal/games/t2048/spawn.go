package t2048

import "fmt"

// TilePolicy selects the value of newly spawned tiles.
type TilePolicy string

const (
	PolicyAlways2 TilePolicy = "always2"
	PolicyAlways4 TilePolicy = "always4"
	PolicyRandom  TilePolicy = "random"
)

// DefaultSpawn4Prob is the chance of a 4 under PolicyRandom.
const DefaultSpawn4Prob = 0.5

// ParseTilePolicy validates a policy name.
func ParseTilePolicy(s string) (TilePolicy, error) {
	switch p := TilePolicy(s); p {
	case PolicyAlways2, PolicyAlways4, PolicyRandom:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// RandomSource is the only source of nondeterminism in the engine.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on the board.
type Spawner struct {
	rng        RandomSource
	policy     TilePolicy
	spawn4Prob float64
}

// NewSpawner creates a spawner. spawn4Prob is only used by PolicyRandom;
// values outside [0, 1] fall back to DefaultSpawn4Prob.
func NewSpawner(rng RandomSource, policy TilePolicy, spawn4Prob float64) (*Spawner, error) {
	if _, err := ParseTilePolicy(string(policy)); err != nil {
		return nil, err
	}
	if spawn4Prob < 0 || spawn4Prob > 1 {
		spawn4Prob = DefaultSpawn4Prob
	}
	return &Spawner{rng: rng, policy: policy, spawn4Prob: spawn4Prob}, nil
}

// Policy returns the spawner's tile policy.
func (s *Spawner) Policy() TilePolicy {
	return s.policy
}

// Spawn puts one tile into a uniformly chosen empty cell.
// A full board is a no-op and reports ok == false.
func (s *Spawner) Spawn(g *Grid) (cell Cell, value int, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	cell = empty[s.rng.Intn(len(empty))]
	value = s.nextValue()
	g.set(cell, value)
	return cell, value, true
}

func (s *Spawner) nextValue() int {
	switch s.policy {
	case PolicyAlways4:
		return 4
	case PolicyRandom:
		if s.rng.Float64() < s.spawn4Prob {
			return 4
		}
	}
	return 2
}
