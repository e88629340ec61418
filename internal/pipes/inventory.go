package pipes

import (
	"math/rand"
)

// DefaultInventorySize is the number of pieces shown in the queue.
const DefaultInventorySize = 6

// Rand is the randomness the board and inventory draw from.
// *math/rand.Rand satisfies it; tests can inject a scripted source.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomPiece draws a uniformly random placeable (non-Starter) kind.
func RandomPiece(r Rand) Kind {
	return Placeable[r.Intn(len(Placeable))]
}

// Inventory is the FIFO queue of upcoming pieces. Index 0 is the active
// piece, consumed on placement; replacements are appended at the back.
type Inventory struct {
	items []Kind
	rng   Rand
}

// NewInventory creates a full inventory of random pieces.
func NewInventory(capacity int, rng Rand) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	inv := &Inventory{
		items: make([]Kind, 0, capacity),
		rng:   rng,
	}
	for len(inv.items) < capacity && rng != nil {
		inv.items = append(inv.items, RandomPiece(rng))
	}
	return inv
}

// NewInventoryOf creates an inventory holding exactly the given pieces.
// With a nil rng consumed pieces are not replaced, so the queue drains.
func NewInventoryOf(rng Rand, items ...Kind) *Inventory {
	inv := &Inventory{
		items: make([]Kind, len(items)),
		rng:   rng,
	}
	copy(inv.items, items)
	return inv
}

// Len returns the number of pending pieces.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Active returns the piece that the next placement will use.
func (inv *Inventory) Active() (Kind, bool) {
	if len(inv.items) == 0 {
		return None, false
	}
	return inv.items[0], true
}

// Items returns a copy of the queue, active piece first.
func (inv *Inventory) Items() []Kind {
	out := make([]Kind, len(inv.items))
	copy(out, inv.items)
	return out
}

// Take removes the active piece and appends a freshly drawn one.
// Returns false when the inventory is empty.
func (inv *Inventory) Take() (Kind, bool) {
	if len(inv.items) == 0 {
		return None, false
	}
	k := inv.items[0]
	copy(inv.items, inv.items[1:])
	inv.items = inv.items[:len(inv.items)-1]
	if inv.rng != nil {
		inv.items = append(inv.items, RandomPiece(inv.rng))
	}
	return k, true
}
