package model

import "testing"

func TestStyleMapLastEntryWins(t *testing.T) {
	m := NewStyleMap(
		Set(KindText, "size", Int(10)),
		Set(KindText, "size", Int(12)),
	)
	chain := NewChain(m)
	v, ok := chain.Get(KindText, "size")
	if !ok {
		t.Fatal("property must resolve")
	}
	if got, _ := v.AsInt(); got != 12 {
		t.Errorf("size = %d, want 12 (last entry wins)", got)
	}
}

func TestStyleChainInnermostWins(t *testing.T) {
	root := NewStyleMap(
		Set(KindText, "size", Int(11)),
		Set(KindText, "fill", Str("black")),
	)
	inner := NewStyleMap(Set(KindText, "size", Int(20)))

	chain := NewChain(root).Extend(inner)

	v, _ := chain.Get(KindText, "size")
	if got, _ := v.AsInt(); got != 20 {
		t.Errorf("size = %d, want 20 (inner scope wins)", got)
	}
	v, ok := chain.Get(KindText, "fill")
	if !ok {
		t.Fatal("outer property must stay visible")
	}
	if got, _ := v.AsStr(); got != "black" {
		t.Errorf("fill = %q, want %q", got, "black")
	}
}

func TestStyleChainExtendEmpty(t *testing.T) {
	root := NewStyleMap(Set(KindText, "size", Int(11)))
	chain := NewChain(root)
	if chain.Extend(nil) != chain {
		t.Error("extending with nil must not grow the chain")
	}
	if chain.Extend(NewStyleMap()) != chain {
		t.Error("extending with an empty map must not grow the chain")
	}
}

func TestStyleChainGetOr(t *testing.T) {
	chain := NewChain(NewStyleMap())
	v := chain.GetOr(KindText, "size", Int(42))
	if got, _ := v.AsInt(); got != 42 {
		t.Errorf("GetOr fallback = %d, want 42", got)
	}
}

func TestStyleChainDigestDistinguishes(t *testing.T) {
	root := NewStyleMap(Set(KindText, "size", Int(11)))
	a := NewChain(root)
	b := a.Extend(NewStyleMap(Set(KindText, "size", Int(12))))
	c := a.Extend(NewStyleMap(Set(KindText, "size", Int(12))))

	if a.Digest() == b.Digest() {
		t.Error("extended chain must digest differently")
	}
	if b.Digest() != c.Digest() {
		t.Error("identically built chains must digest identically")
	}
}
