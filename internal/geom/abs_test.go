package geom

import "testing"

func TestAbsFits(t *testing.T) {
	if !Pt(100).Fits(Pt(100)) {
		t.Error("a size must fit itself")
	}
	if !Pt(100).Fits(Pt(100) + 1e-8) {
		t.Error("Fits must absorb float drift")
	}
	if Pt(100).Fits(Pt(101)) {
		t.Error("a larger size must not fit")
	}
	if !Inf().Fits(Pt(1e9)) {
		t.Error("infinity fits everything finite")
	}
}

func TestAbsApproxEq(t *testing.T) {
	if !Pt(10).ApproxEq(Pt(10) + Abs(1e-9)) {
		t.Error("values within tolerance must compare equal")
	}
	if Pt(10).ApproxEq(Pt(10.1)) {
		t.Error("values outside tolerance must differ")
	}
}

func TestAbsMinMax(t *testing.T) {
	if got := Pt(3).Min(Pt(5)); got != Pt(3) {
		t.Errorf("Min = %v, want 3pt", got)
	}
	if got := Pt(3).Max(Pt(5)); got != Pt(5) {
		t.Errorf("Max = %v, want 5pt", got)
	}
}

func TestAbsString(t *testing.T) {
	if got := Pt(12).String(); got != "12pt" {
		t.Errorf("String = %q, want %q", got, "12pt")
	}
}

func TestSizeFits(t *testing.T) {
	outer := Size{W: Pt(100), H: Pt(200)}
	if !outer.Fits(Size{W: Pt(100), H: Pt(200)}) {
		t.Error("equal sizes must fit")
	}
	if outer.Fits(Size{W: Pt(101), H: Pt(10)}) {
		t.Error("wider content must not fit")
	}
}

func TestUnboundedRegion(t *testing.T) {
	r := UnboundedRegion()
	if !r.Size.W.IsInf() || !r.Size.H.IsInf() {
		t.Error("unbounded region must be infinite on both axes")
	}
	if r.Expand.X || r.Expand.Y {
		t.Error("unbounded region must not expand")
	}
	if r.Repeat {
		t.Error("unbounded region must not repeat")
	}
}
