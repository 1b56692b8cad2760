package blocks

import "math/rand"

// Bag is the 7-bag randomizer: an endless sequence built from independently
// shuffled permutations of all seven kinds.
type Bag struct {
	rng     *rand.Rand
	backlog []Kind
}

// NewBag creates a bag whose sequence is fully determined by seed.
func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.refill()
	return b
}

// refill appends a fresh permutation while the backlog holds seven or fewer kinds.
func (b *Bag) refill() {
	if len(b.backlog) > len(AllKinds) {
		return
	}
	batch := AllKinds
	b.rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	b.backlog = append(b.backlog, batch[:]...)
}

// Next removes and returns the next kind.
func (b *Bag) Next() Kind {
	b.refill()
	k := b.backlog[0]
	b.backlog = b.backlog[1:]
	return k
}

// Peek returns a copy of the next n kinds without consuming them.
// n is capped at the backlog length, which is always at least seven.
func (b *Bag) Peek(n int) []Kind {
	b.refill()
	n = min(max(n, 0), len(b.backlog))
	return append([]Kind(nil), b.backlog[:n]...)
}
