package layout_test

import (
	"testing"

	"folio/internal/diag"
	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/introspect"
	"folio/internal/layout"
	"folio/internal/library"
	"folio/internal/model"
	"folio/internal/realize"
	"folio/internal/world"
)

func newVt(bag *diag.Bag) *realize.Vt {
	var reporter diag.Reporter = diag.NopReporter{}
	if bag != nil {
		reporter = diag.BagReporter{Bag: bag}
	}
	return realize.NewVt(world.Builtin(), introspect.NewProvider(), introspect.New(nil), introspect.NewConstraint(), reporter)
}

func rootStyles() model.StyleChain {
	return model.NewChain(world.DefaultLibrary().Styles)
}

// textElems collects all text runs of a frame tree in paint order.
func textElems(f *doc.Frame) []placedText {
	var out []placedText
	collectTextElems(f, geom.Point{}, &out)
	return out
}

type placedText struct {
	pos  geom.Point
	text string
}

func collectTextElems(f *doc.Frame, offset geom.Point, out *[]placedText) {
	for _, p := range f.Elements() {
		switch e := p.Elem.(type) {
		case *doc.GroupElem:
			collectTextElems(e.Frame, offset.Add(p.Pos), out)
		case *doc.TextElem:
			*out = append(*out, placedText{pos: offset.Add(p.Pos), text: e.Text()})
		}
	}
}

func TestFragmentSingleLine(t *testing.T) {
	region := geom.Region{Size: geom.Size{W: geom.Pt(200), H: geom.Pt(100)}}
	frames, err := layout.Fragment(newVt(nil), library.Text("hello world"), rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	texts := textElems(frames[0])
	if len(texts) != 2 {
		t.Fatalf("got %d text runs, want 2 words", len(texts))
	}
	if texts[0].text != "hello" || texts[1].text != "world" {
		t.Errorf("words = %q, %q", texts[0].text, texts[1].text)
	}
	if texts[0].pos.Y != texts[1].pos.Y {
		t.Error("both words belong on one line")
	}
	// "hello" is 5 cells plus one gap cell at 11pt text.
	wantX := geom.Pt(11) / 2 * 6
	if !texts[1].pos.X.ApproxEq(wantX) {
		t.Errorf("second word at x=%v, want %v", texts[1].pos.X, wantX)
	}
}

func TestLineWrapping(t *testing.T) {
	// At 11pt each cell is 5.5pt; "aaaa bbbb" needs 49.5pt, so a 30pt
	// region takes one word per line.
	region := geom.Region{Size: geom.Size{W: geom.Pt(30), H: geom.Pt(100)}}
	frames, err := layout.Fragment(newVt(nil), library.Text("aaaa bbbb"), rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 2 {
		t.Fatalf("got %d text runs, want 2", len(texts))
	}
	if texts[0].pos.Y == texts[1].pos.Y {
		t.Error("words must wrap onto separate lines")
	}
	if texts[1].pos.X != 0 {
		t.Errorf("wrapped word must restart at x=0, got %v", texts[1].pos.X)
	}
}

func TestUnboundedRegionNeverWraps(t *testing.T) {
	frames, err := layout.Fragment(newVt(nil), library.Text("aaaa bbbb cccc dddd"), rootStyles(), geom.UnboundedRegion())
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 4 {
		t.Fatalf("got %d text runs, want 4", len(texts))
	}
	for _, pt := range texts[1:] {
		if pt.pos.Y != texts[0].pos.Y {
			t.Fatal("unbounded regions must keep everything on one line")
		}
	}
}

func TestPagebreakStartsNewRegion(t *testing.T) {
	region := geom.Region{
		Size:   geom.Size{W: geom.Pt(100), H: geom.Pt(100)},
		Expand: geom.Axes[bool]{X: true, Y: true},
		Repeat: true,
	}
	content := model.Sequence(
		library.Text("one"),
		library.Pagebreak(),
		library.Text("two"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if got := textElems(frames[0]); len(got) != 1 || got[0].text != "one" {
		t.Errorf("first region content wrong: %v", got)
	}
	if got := textElems(frames[1]); len(got) != 1 || got[0].text != "two" {
		t.Errorf("second region content wrong: %v", got)
	}
}

func TestOverflowBreaksRegion(t *testing.T) {
	// 13.2pt line height against a 30pt region: two lines fit, the third
	// moves to the next region.
	region := geom.Region{
		Size:   geom.Size{W: geom.Pt(200), H: geom.Pt(30)},
		Expand: geom.Axes[bool]{X: true, Y: true},
		Repeat: true,
	}
	content := model.Sequence(
		library.Text("one"), library.Linebreak(),
		library.Text("two"), library.Linebreak(),
		library.Text("three"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if got := textElems(frames[1]); len(got) != 1 || got[0].text != "three" {
		t.Errorf("second region should hold the third line, got %v", got)
	}
}

func TestVSpaceAdvancesCursor(t *testing.T) {
	region := geom.Region{Size: geom.Size{W: geom.Pt(200), H: geom.Pt(200)}}
	content := model.Sequence(
		library.Text("a"),
		library.V(geom.Pt(50)),
		library.Text("b"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 2 {
		t.Fatalf("got %d text runs", len(texts))
	}
	gap := texts[1].pos.Y - texts[0].pos.Y
	// One line height plus the explicit 50pt.
	want := geom.Abs(11*1.2) + geom.Pt(50)
	if !gap.ApproxEq(want) {
		t.Errorf("vertical gap = %v, want %v", gap, want)
	}
}

func TestHSpaceIsHardGap(t *testing.T) {
	region := geom.Region{Size: geom.Size{W: geom.Pt(200), H: geom.Pt(100)}}
	content := model.Sequence(
		library.Text("a"),
		library.H(geom.Pt(25)),
		library.Text("b"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 2 {
		t.Fatalf("got %d text runs", len(texts))
	}
	want := geom.Pt(11)/2 + geom.Pt(25)
	if !(texts[1].pos.X - texts[0].pos.X).ApproxEq(want) {
		t.Errorf("horizontal gap = %v, want %v", texts[1].pos.X-texts[0].pos.X, want)
	}
}

func TestHiddenTextKeepsSpace(t *testing.T) {
	region := geom.Region{Size: geom.Size{W: geom.Pt(200), H: geom.Pt(100)}}
	content := model.Sequence(
		library.Hide(library.Text("xx")),
		library.Text("y"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 1 {
		t.Fatalf("got %d visible runs, want 1", len(texts))
	}
	if texts[0].text != "y" {
		t.Errorf("visible run = %q", texts[0].text)
	}
	// The hidden word still advanced the pen by two cells.
	want := geom.Pt(11)
	if !texts[0].pos.X.ApproxEq(want) {
		t.Errorf("visible run at x=%v, want %v", texts[0].pos.X, want)
	}
}

func TestLeaderFillsLine(t *testing.T) {
	region := geom.Region{Size: geom.Size{W: geom.Pt(110), H: geom.Pt(100)}}
	content := model.Sequence(
		library.Text("a"),
		library.Repeat(library.Text(".")),
		library.Text("9"),
	)
	frames, err := layout.Fragment(newVt(nil), content, rootStyles(), region)
	if err != nil {
		t.Fatal(err)
	}
	texts := textElems(frames[0])
	if len(texts) != 3 {
		t.Fatalf("got %d runs, want 3", len(texts))
	}
	leader := texts[1].text
	if len(leader) < 2 {
		t.Errorf("leader should repeat its unit, got %q", leader)
	}
	for _, r := range leader {
		if r != '.' {
			t.Fatalf("leader text = %q", leader)
		}
	}
	// The trailing run sits after the expanded leader.
	if texts[2].pos.X <= texts[1].pos.X {
		t.Error("leader must push the following run right")
	}
}

func TestPagesWrapWithMargins(t *testing.T) {
	d, err := layout.Pages(newVt(nil), library.Text("hello"), rootStyles())
	if err != nil {
		t.Fatal(err)
	}
	if d.PageCount() != 1 {
		t.Fatalf("got %d pages, want 1", d.PageCount())
	}
	page := d.Pages[0]
	if page.Size().W != geom.Pt(420) || page.Size().H != geom.Pt(595) {
		t.Errorf("page size = %v", page.Size())
	}
	texts := textElems(page)
	if len(texts) != 1 {
		t.Fatalf("got %d runs", len(texts))
	}
	if texts[0].pos.X != geom.Pt(40) || texts[0].pos.Y != geom.Pt(40) {
		t.Errorf("content must start at the margin, got %v", texts[0].pos)
	}
}

func TestOverwideWordReportsOverflow(t *testing.T) {
	bag := diag.NewBag(8)
	region := geom.Region{Size: geom.Size{W: geom.Pt(10), H: geom.Pt(100)}}
	if _, err := layout.Fragment(newVt(bag), library.Text("unbreakable"), rootStyles(), region); err != nil {
		t.Fatal(err)
	}
	if !bag.HasCode(diag.LayoutOverflow) {
		t.Error("an overwide word must report a layout overflow")
	}
}

func TestMeasureIntrinsicSize(t *testing.T) {
	size, err := layout.Measure(world.Builtin(), library.Text("hello"), model.StyleChain{})
	if err != nil {
		t.Fatal(err)
	}
	// 5 cells at 5.5pt, one 13.2pt line.
	if !size.W.ApproxEq(geom.Pt(27.5)) {
		t.Errorf("width = %v, want 27.5pt", size.W)
	}
	if !size.H.ApproxEq(geom.Abs(11 * 1.2)) {
		t.Errorf("height = %v, want 13.2pt", size.H)
	}
}

func TestMeasureLeavesPassUntouched(t *testing.T) {
	vt := newVt(nil)
	if _, err := layout.MeasureWith(vt, library.Text("hello world"), rootStyles()); err != nil {
		t.Fatal(err)
	}
	if vt.Constraint.Len() != 0 {
		t.Error("measuring must not record reads into the enclosing pass")
	}
	// The provider must not have consumed identities either: a node
	// identified now gets the first disambiguator.
	loc := vt.Identify(library.Heading(1, library.Text("t")))
	if loc.Disambiguator != 0 {
		t.Errorf("disambiguator = %d, want 0", loc.Disambiguator)
	}
}

func TestMeasureRepeatable(t *testing.T) {
	content := model.Sequence(library.Text("alpha beta"), library.Parbreak(), library.Text("gamma"))
	a, err := layout.Measure(world.Builtin(), content, model.StyleChain{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := layout.Measure(world.Builtin(), content, model.StyleChain{})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("repeated measurement differs: %v != %v", a, b)
	}
}
