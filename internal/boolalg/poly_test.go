package boolalg

import "testing"

func polyEqual(a, b Polynomial) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, m := range a.Terms() {
		if !b.Has(m) {
			return false
		}
	}
	return true
}

func TestAdditiveIdentity(t *testing.T) {
	p := New(Leaf(0))
	got := Add(p, Zero())
	if !polyEqual(got, p) {
		t.Fatalf("p + 0 = %v, want %v", got.Terms(), p.Terms())
	}
}

func TestSelfCancellation(t *testing.T) {
	p := New(Leaf(0))
	got := Add(p, p)
	if got.Size() != 0 {
		t.Fatalf("p + p = %v, want empty", got.Terms())
	}
}

func TestAddCommutative(t *testing.T) {
	p := New(Leaf(0))
	q := New(Leaf(1))
	if !polyEqual(Add(p, q), Add(q, p)) {
		t.Fatalf("addition not commutative")
	}
}

func TestMulCommutative(t *testing.T) {
	p := New(Leaf(0))
	q := New(Leaf(1))
	if !polyEqual(Mul(p, q), Mul(q, p)) {
		t.Fatalf("multiplication not commutative")
	}
}

func TestAddAssociative(t *testing.T) {
	p, q, r := New(Leaf(0)), New(Leaf(1)), New(Leaf(2))
	lhs := Add(Add(p, q), r)
	rhs := Add(p, Add(q, r))
	if !polyEqual(lhs, rhs) {
		t.Fatalf("addition not associative: %v vs %v", lhs.Terms(), rhs.Terms())
	}
}

func TestMulAssociative(t *testing.T) {
	p, q, r := New(Leaf(0)), New(Leaf(1)), New(Leaf(2))
	lhs := Mul(Mul(p, q), r)
	rhs := Mul(p, Mul(q, r))
	if !polyEqual(lhs, rhs) {
		t.Fatalf("multiplication not associative: %v vs %v", lhs.Terms(), rhs.Terms())
	}
}

func TestDistributive(t *testing.T) {
	p, q, r := New(Leaf(0)), New(Leaf(1)), New(Leaf(2))
	lhs := Mul(p, Add(q, r))
	rhs := Add(Mul(p, q), Mul(p, r))
	if !polyEqual(lhs, rhs) {
		t.Fatalf("distributivity failed: %v vs %v", lhs.Terms(), rhs.Terms())
	}
}

func TestAndIdempotent(t *testing.T) {
	p := New(Leaf(0) | Leaf(1))
	got := Mul(p, p)
	if !polyEqual(got, p) {
		t.Fatalf("p * p = %v, want %v", got.Terms(), p.Terms())
	}
}

func TestAbsorbingZero(t *testing.T) {
	p := New(Leaf(0))
	got := Mul(Zero(), p)
	if got.Size() != 0 {
		t.Fatalf("0 * p = %v, want empty", got.Terms())
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	p := New(Leaf(0))
	got := Mul(One(), p)
	if !polyEqual(got, p) {
		t.Fatalf("1 * p = %v, want %v", got.Terms(), p.Terms())
	}
}

func TestNotViaXorOne(t *testing.T) {
	p := New(Leaf(0))
	notP := Not(p)
	back := Not(notP)
	if !polyEqual(back, p) {
		t.Fatalf("~~p = %v, want %v", back.Terms(), p.Terms())
	}
}

func TestOrIdentity(t *testing.T) {
	p, q := New(Leaf(0)), New(Leaf(1))
	lhs := Or(p, q)
	rhs := Add(Add(Mul(p, q), p), q)
	if !polyEqual(lhs, rhs) {
		t.Fatalf("p | q = %v, want %v", lhs.Terms(), rhs.Terms())
	}
}

func TestZeroSentinelAbsorbsInProduct(t *testing.T) {
	aTimesZero := Mul(New(Leaf(0)), New(ZeroSentinel))
	if aTimesZero.Size() != 0 {
		t.Fatalf("a & 0 = %v, want empty (zero sentinel absorbs)", aTimesZero.Terms())
	}
}

func TestSelfAndNotIsZero(t *testing.T) {
	a := New(Leaf(0))
	notA := Not(a)
	got := Mul(a, notA)
	if got.Size() != 0 {
		t.Fatalf("a & ~a = %v, want empty", got.Terms())
	}
}

func TestSelfOrNotIsOne(t *testing.T) {
	a := New(Leaf(0))
	notA := Not(a)
	got := Or(a, notA)
	want := One()
	if !polyEqual(got, want) {
		t.Fatalf("a | ~a = %v, want %v", got.Terms(), want.Terms())
	}
}

func TestOneHotLeaf(t *testing.T) {
	m := Leaf(3)
	if !m.IsOneHotLeaf() {
		t.Fatalf("Leaf(3) should be one-hot")
	}
	if m.LeafIndex() != 3 {
		t.Fatalf("LeafIndex() = %d, want 3", m.LeafIndex())
	}
	conj := Leaf(0) | Leaf(1)
	if conj.IsOneHotLeaf() {
		t.Fatalf("a conjunction of two leaves must not be one-hot")
	}
}

func TestTermsDeterministicOrder(t *testing.T) {
	p := New(Leaf(2))
	p.AddAssign(New(Leaf(0)))
	p.AddAssign(New(Leaf(1)))
	got := p.Terms()
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Terms() not sorted ascending: %v", got)
		}
	}
}
