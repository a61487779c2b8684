package raw

import "testing"

func TestReserveGrowsExponentially(t *testing.T) {
	var b Buffer
	if err := b.Reserve(1); err != nil {
		t.Fatal(err)
	}
	if b.Cap() != minCapacity {
		t.Fatalf("initial capacity = %d, want %d", b.Cap(), minCapacity)
	}
	if err := b.Reserve(minCapacity + 1); err != nil {
		t.Fatal(err)
	}
	if b.Cap() < 2*minCapacity {
		t.Fatalf("capacity after overflow = %d, want >= %d", b.Cap(), 2*minCapacity)
	}
}

func TestReserveNoopWhenEnough(t *testing.T) {
	var b Buffer
	b.Reserve(100)
	cap1 := b.Cap()
	b.Reserve(50)
	if b.Cap() != cap1 {
		t.Fatalf("capacity changed on a no-op reserve: %d -> %d", cap1, b.Cap())
	}
}

func TestAddPointsPatchKind(t *testing.T) {
	var b Buffer
	first, err := b.AddPoints([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, Line)
	if err != nil {
		t.Fatal(err)
	}
	b.PatchKind(first, Move)
	b.OrKind(b.Len()-1, CloseFigure)

	if b.Kinds[0].Primary() != Move {
		t.Fatalf("entry 0 kind = %v, want Move", b.Kinds[0])
	}
	if !b.Kinds[b.Len()-1].Closed() {
		t.Fatalf("last entry is not closed")
	}
	if b.Len() != 3 {
		t.Fatalf("len = %d, want 3", b.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var b Buffer
	b.AddPoints([]Point{{X: 1, Y: 1}}, Move)
	c := b.Clone()
	b.Points[0].X = 99
	if c.Points[0].X == 99 {
		t.Fatalf("clone shares backing storage with original")
	}
}
