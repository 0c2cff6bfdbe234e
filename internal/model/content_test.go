package model

import "testing"

func init() {
	RegisterKind("testpara", 0)
	RegisterKind("testnote", Caps(CapShow, CapLocate))
}

func TestSequenceFlattens(t *testing.T) {
	a := New("testpara", Field{Name: "text", Value: Str("a")})
	b := New("testpara", Field{Name: "text", Value: Str("b")})
	c := New("testpara", Field{Name: "text", Value: Str("c")})

	nested := Sequence(a, Sequence(b, c))
	flat := Sequence(a, b, c)

	if !nested.IsSequence() {
		t.Fatal("Sequence must produce a sequence node")
	}
	if len(nested.Children()) != 3 {
		t.Fatalf("nested sequence should flatten to 3 children, got %d", len(nested.Children()))
	}
	if !nested.Equal(flat) {
		t.Error("flattened and flat sequences must be structurally equal")
	}
}

func TestSequenceSkipsNil(t *testing.T) {
	a := New("testpara", Field{Name: "text", Value: Str("a")})
	seq := Sequence(nil, a, nil)
	if len(seq.Children()) != 1 {
		t.Fatalf("nil children must be dropped, got %d children", len(seq.Children()))
	}
}

func TestContentDigestStable(t *testing.T) {
	a := New("testpara", Field{Name: "text", Value: Str("hello")}, Field{Name: "n", Value: Int(3)})
	b := New("testpara", Field{Name: "text", Value: Str("hello")}, Field{Name: "n", Value: Int(3)})
	c := New("testpara", Field{Name: "text", Value: Str("hello")}, Field{Name: "n", Value: Int(4)})

	if a.Digest() != b.Digest() {
		t.Error("identical nodes must digest identically")
	}
	if a.Digest() == c.Digest() {
		t.Error("differing field values must change the digest")
	}
}

func TestWithFieldReturnsNewNode(t *testing.T) {
	a := New("testpara", Field{Name: "text", Value: Str("x")})
	b := a.WithField("extra", Int(1))

	if _, ok := a.Field("extra"); ok {
		t.Error("WithField must not mutate the receiver")
	}
	v, ok := b.Field("extra")
	if !ok {
		t.Fatal("WithField must add the field to the copy")
	}
	if got, _ := v.AsInt(); got != 1 {
		t.Errorf("extra = %d, want 1", got)
	}
	if a.Digest() == b.Digest() {
		t.Error("adding a field must change the digest")
	}
}

func TestFieldOr(t *testing.T) {
	a := New("testpara", Field{Name: "text", Value: Str("x")})
	if got := a.FieldOr("missing", Int(7)); got.kind != ValInt {
		t.Errorf("FieldOr fallback kind = %v, want ValInt", got.kind)
	}
	if got, _ := a.FieldOr("text", Str("y")).AsStr(); got != "x" {
		t.Errorf("FieldOr present = %q, want %q", got, "x")
	}
}

func TestStyledParts(t *testing.T) {
	inner := New("testpara", Field{Name: "text", Value: Str("x")})
	m := NewStyleMap(Set("testpara", "size", Int(2)))
	wrapped := Styled(inner, m)

	if !wrapped.IsStyled() {
		t.Fatal("Styled must produce a styled node")
	}
	child, gotMap, ok := wrapped.StyledParts()
	if !ok {
		t.Fatal("StyledParts must succeed on a styled node")
	}
	if !child.Equal(inner) {
		t.Error("StyledParts child mismatch")
	}
	if gotMap.Digest() != m.Digest() {
		t.Error("StyledParts map mismatch")
	}
}

func TestRegisteredKindCaps(t *testing.T) {
	caps := KindCaps("testnote")
	if !caps.Has(CapShow) || !caps.Has(CapLocate) {
		t.Error("registered capability set lost")
	}
	if caps.Has(CapLayout) {
		t.Error("capability set must not gain bits")
	}
}
