package blocks

import "testing"

func TestBagBatchesArePermutations(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 9001} {
		b := NewBag(seed)
		for batch := 0; batch < 50; batch++ {
			seen := make(map[Kind]int)
			for i := 0; i < len(AllKinds); i++ {
				seen[b.Next()]++
			}
			for _, k := range AllKinds {
				if seen[k] != 1 {
					t.Fatalf("seed %d batch %d: %s drawn %d times", seed, batch, k, seen[k])
				}
			}
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	a, b := NewBag(7), NewBag(7)
	for i := 0; i < 100; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d: %s != %s for the same seed", i, ka, kb)
		}
	}
}

func TestBagSeedsDiffer(t *testing.T) {
	a, b := NewBag(1), NewBag(2)
	same := true
	for i := 0; i < 28; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced the same 28 draws")
	}
}

func TestBagPeek(t *testing.T) {
	b := NewBag(3)
	peek := b.Peek(6)
	if len(peek) != 6 {
		t.Fatalf("Peek(6) returned %d kinds", len(peek))
	}
	peek[0] = KindNone

	for i, peeked := range b.Peek(6) {
		if got := b.Next(); got != peeked {
			t.Errorf("Next() #%d = %s, expected peeked %s", i, got, peeked)
		}
	}

	if got := len(b.Peek(100)); got < len(AllKinds) || got > 2*len(AllKinds) {
		t.Errorf("Peek(100) length = %d, expected the whole backlog of 7 to 14 kinds", got)
	}
	if got := len(b.Peek(-1)); got != 0 {
		t.Errorf("Peek(-1) length = %d, expected 0", got)
	}
}

func TestBagAlwaysBuffersSeven(t *testing.T) {
	b := NewBag(11)
	for i := 0; i < 30; i++ {
		b.Next()
		if len(b.Peek(7)) != 7 {
			t.Fatalf("after %d draws Peek(7) is short", i+1)
		}
	}
}
