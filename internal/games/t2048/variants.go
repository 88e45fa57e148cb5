// Package t2048 implements the 2048 sliding tile puzzle: a deterministic
// move/merge engine, a session state machine with single-step undo, and
// the arcade game adapter that drives it.
package t2048

// Variant is a registered board flavour.
type Variant struct {
	ID     string
	Name   string
	Size   int
	Target int
}

// Variants lists the playable boards. The classic variant takes its size
// and target from configuration; the others pin them.
var Variants = []Variant{
	{ID: "2048", Name: "2048"},
	{ID: "2048_mini", Name: "2048 Mini (3x3)", Size: 3, Target: 256},
	{ID: "2048_big", Name: "2048 Big (5x5)", Size: 5, Target: 4096},
}

// VariantByID returns the variant with the given ID.
// Returns nil if no such variant exists.
func VariantByID(id string) *Variant {
	for i := range Variants {
		if Variants[i].ID == id {
			return &Variants[i]
		}
	}
	return nil
}
