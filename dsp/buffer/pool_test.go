package buffer

import "testing"

func TestPoolGetLength(t *testing.T) {
	p := NewPool()

	b := p.Get(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}

	p.Put(b)

	if b := p.Get(-3); b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative length", b.Len())
	}
}

func TestPoolGetShrinksAndGrows(t *testing.T) {
	p := NewPool()

	b := p.Get(16)
	p.Put(b)

	small := p.Get(4)
	if small.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", small.Len())
	}
	p.Put(small)

	large := p.Get(64)
	if large.Len() != 64 || large.Cap() < 64 {
		t.Fatalf("Len/Cap = %d/%d, want 64/>=64", large.Len(), large.Cap())
	}
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil) // must not panic
}

func TestPoolReusesRecycledSlice(t *testing.T) {
	p := NewPool()

	// A drained block returned through FromSlice keeps its capacity.
	p.Put(FromSlice(make([]float32, 32)))

	b := p.Get(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
}
