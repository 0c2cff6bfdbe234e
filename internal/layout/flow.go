package layout

import (
	"fmt"
	"strings"

	"folio/internal/diag"
	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
	"folio/internal/realize"
)

type runKind uint8

const (
	runWord runKind = iota
	runGap
	runLeader
)

// run is one horizontal piece of the line under construction.
type run struct {
	kind   runKind
	text   string // word text, or the leader's repeat unit
	width  geom.Abs
	height geom.Abs
	size   geom.Abs
	fill   geom.Color
	hidden bool
	soft   bool // soft gaps merge and trim at line edges
	link   *doc.Destination
}

type pendingMeta struct {
	node *model.Content
	loc  model.Location
}

// flowLayouter assembles one or more frames from a realized item flow.
type flowLayouter struct {
	vt     *realize.Vt
	region geom.Region
	paged  bool

	frames  []*doc.Frame
	cur     *doc.Frame
	cursorY geom.Abs
	usedW   geom.Abs
	started bool
	parGap  bool

	line       []run
	pending    []pendingMeta
	lastStyles model.StyleChain
}

func newFlowLayouter(vt *realize.Vt, region geom.Region, rootStyles model.StyleChain) *flowLayouter {
	return &flowLayouter{
		vt:         vt,
		region:     region,
		paged:      region.Repeat,
		cur:        doc.NewFrame(region.Size),
		lastStyles: rootStyles,
	}
}

// Fragment lays content into the offered region. With Repeat set, flow
// continues into further identical regions and one frame per used
// region is returned; otherwise everything lands in a single frame that
// may overflow (with a diagnostic).
func Fragment(vt *realize.Vt, content *model.Content, styles model.StyleChain, region geom.Region) ([]*doc.Frame, error) {
	items, err := realize.Flow(vt, content, styles)
	if err != nil {
		return nil, err
	}
	fl := newFlowLayouter(vt, region, styles)
	if err := fl.process(items); err != nil {
		return nil, err
	}
	fl.finish()
	return fl.frames, nil
}

// Pages lays content into page-sized regions and wraps each produced
// frame into a page with margins.
func Pages(vt *realize.Vt, content *model.Content, styles model.StyleChain) (*doc.Document, error) {
	pageSize, margin := pageGeometry(styles)
	inner := geom.Size{
		W: (pageSize.W - 2*margin).Max(geom.Pt(1)),
		H: (pageSize.H - 2*margin).Max(geom.Pt(1)),
	}
	region := geom.Region{
		Size:   inner,
		Expand: geom.Splat(true),
		Repeat: true,
	}
	frames, err := Fragment(vt, content, styles, region)
	if err != nil {
		return nil, err
	}
	document := &doc.Document{Pages: make([]*doc.Frame, 0, len(frames))}
	for _, f := range frames {
		page := doc.NewFrame(pageSize)
		page.PushFrame(geom.Point{X: margin, Y: margin}, f)
		document.Pages = append(document.Pages, page)
	}
	return document, nil
}

func (fl *flowLayouter) process(items []realize.Item) error {
	for _, it := range items {
		if !it.Loc.IsDetached() {
			fl.pending = append(fl.pending, pendingMeta{node: it.Node, loc: it.Loc})
		}
		if it.Marker {
			continue
		}
		fl.lastStyles = it.Styles
		if err := fl.item(it); err != nil {
			return err
		}
	}
	return nil
}

func (fl *flowLayouter) item(it realize.Item) error {
	node, styles := it.Node, it.Styles
	switch node.Kind() {
	case model.KindText:
		s, err := realize.FieldStr(node, "text")
		if err != nil {
			return err
		}
		fl.pushText(s, styles)
	case model.KindSpace:
		fl.pushGap(cellWidth(textSize(styles)), true)
	case model.KindLinebreak:
		fl.flushLine()
	case model.KindParbreak:
		fl.flushLine()
		fl.parGap = true
	case model.KindHSpace:
		amount, ok := node.FieldOr("amount", model.Value{}).AsLength()
		if !ok {
			return &realize.BadFieldError{Kind: node.Kind(), Field: "amount", Want: model.ValLength}
		}
		fl.pushGap(amount, false)
	case model.KindVSpace:
		amount, ok := node.FieldOr("amount", model.Value{}).AsLength()
		if !ok {
			return &realize.BadFieldError{Kind: node.Kind(), Field: "amount", Want: model.ValLength}
		}
		fl.flushLine()
		fl.cursorY += amount
	case model.KindRepeat:
		body, err := realize.FieldContent(node, "body")
		if err != nil {
			return err
		}
		fl.pushLeader(collectText(body), styles)
	case model.KindPagebreak:
		fl.flushLine()
		if fl.started || len(fl.frames) == 0 {
			fl.finishRegion()
		}
	default:
		if node.Caps().Has(model.CapLayout) {
			return fl.block(node, styles)
		}
		diag.Report(fl.vt.Reporter, diag.RealizeUnknownKind, fl.pageNo(), string(node.Kind()),
			fmt.Sprintf("no layout rule for kind %q", node.Kind()))
	}
	return nil
}

// block dispatches the Layout capability for a non-inline node and
// places the produced frame into the flow.
func (fl *flowLayouter) block(node *model.Content, styles model.StyleChain) error {
	fl.flushLine()
	fl.applyParGap()

	avail := fl.remaining()
	frame, err := realize.Layout(fl.vt, node, styles, geom.Region{
		Size:   geom.Size{W: fl.region.Size.W, H: avail},
		Expand: geom.Axes[bool]{X: !fl.region.Size.W.IsInf()},
	})
	if err != nil {
		return err
	}
	bh := frame.Size().H
	if fl.paged && fl.started && !avail.Fits(bh) {
		fl.finishRegion()
	}
	if !fl.remaining().Fits(bh) {
		diag.Report(fl.vt.Reporter, diag.LayoutOverflow, fl.pageNo(), string(node.Kind()),
			fmt.Sprintf("block of height %s exceeds the remaining region (%s)", bh, fl.remaining()))
	}
	fl.attachPending(geom.Point{Y: fl.cursorY})
	fl.cur.PushFrame(geom.Point{Y: fl.cursorY}, frame)
	fl.cursorY += bh
	fl.usedW = fl.usedW.Max(frame.Size().W)
	fl.started = true
	return nil
}

func (fl *flowLayouter) pushText(s string, styles model.StyleChain) {
	size := textSize(styles)
	space := cellWidth(size)
	start := 0
	for i, r := range s {
		if r != ' ' {
			continue
		}
		if start < i {
			fl.pushWord(s[start:i], styles)
		}
		fl.pushGap(space, true)
		start = i + 1
	}
	if start < len(s) {
		fl.pushWord(s[start:], styles)
	}
}

func (fl *flowLayouter) pushWord(word string, styles model.StyleChain) {
	size := textSize(styles)
	r := run{
		kind:   runWord,
		text:   word,
		width:  textWidth(word, size),
		height: lineHeight(styles),
		size:   size,
		fill:   textFill(styles),
		hidden: hidden(styles),
	}
	if dest, ok := linkDest(styles); ok {
		r.link = &dest
	}
	maxW := fl.region.Size.W
	if !maxW.IsInf() && len(fl.line) > 0 && !maxW.Fits(fl.lineWidth()+r.width) {
		fl.flushLine()
	}
	if !maxW.IsInf() && len(fl.line) == 0 && !maxW.Fits(r.width) {
		diag.Report(fl.vt.Reporter, diag.LayoutOverflow, fl.pageNo(), string(model.KindText),
			fmt.Sprintf("word %q (%s) exceeds the line width (%s)", word, r.width, maxW))
	}
	fl.line = append(fl.line, r)
}

func (fl *flowLayouter) pushGap(width geom.Abs, soft bool) {
	if soft && len(fl.line) == 0 {
		return
	}
	if soft && len(fl.line) > 0 {
		last := &fl.line[len(fl.line)-1]
		if last.kind == runGap && last.soft {
			last.width = last.width.Max(width)
			return
		}
	}
	fl.line = append(fl.line, run{kind: runGap, width: width, soft: soft})
}

func (fl *flowLayouter) pushLeader(unit string, styles model.StyleChain) {
	if unit == "" {
		return
	}
	size := textSize(styles)
	fl.line = append(fl.line, run{
		kind:   runLeader,
		text:   unit,
		width:  textWidth(unit, size),
		height: lineHeight(styles),
		size:   size,
		fill:   textFill(styles),
		hidden: hidden(styles),
	})
}

func (fl *flowLayouter) lineWidth() geom.Abs {
	var w geom.Abs
	for _, r := range fl.line {
		w += r.width
	}
	return w
}

func (fl *flowLayouter) applyParGap() {
	if fl.parGap {
		if fl.started {
			fl.cursorY += lineHeight(fl.lastStyles) / 2
		}
		fl.parGap = false
	}
}

func (fl *flowLayouter) flushLine() {
	// Trim trailing soft gaps.
	for len(fl.line) > 0 {
		last := fl.line[len(fl.line)-1]
		if last.kind == runGap && last.soft {
			fl.line = fl.line[:len(fl.line)-1]
			continue
		}
		break
	}
	if len(fl.line) == 0 {
		return
	}
	fl.applyParGap()

	var lineH geom.Abs
	for _, r := range fl.line {
		lineH = lineH.Max(r.height)
	}
	if lineH == 0 {
		lineH = lineHeight(fl.lastStyles)
	}
	if fl.paged && fl.started && !fl.remaining().Fits(lineH) {
		fl.finishRegion()
	}
	if !fl.remaining().Fits(lineH) {
		diag.Report(fl.vt.Reporter, diag.LayoutOverflow, fl.pageNo(), "",
			fmt.Sprintf("line of height %s exceeds the remaining region (%s)", lineH, fl.remaining()))
	}

	fl.attachPending(geom.Point{Y: fl.cursorY})

	// Leaders expand into the space the fixed runs leave over.
	leaderSpace := geom.Abs(0)
	leaders := 0
	for _, r := range fl.line {
		if r.kind == runLeader {
			leaders++
		}
	}
	if leaders > 0 && !fl.region.Size.W.IsInf() {
		fixed := geom.Abs(0)
		for _, r := range fl.line {
			if r.kind != runLeader {
				fixed += r.width
			}
		}
		leaderSpace = ((fl.region.Size.W - fixed) / geom.Abs(leaders)).Max(geom.Zero)
	}

	x := geom.Abs(0)
	for _, r := range fl.line {
		switch r.kind {
		case runGap:
			x += r.width
		case runWord:
			fl.placeRun(r, x, r.width, lineH, r.text)
			x += r.width
		case runLeader:
			space := leaderSpace
			if fl.region.Size.W.IsInf() {
				space = r.width * 3
			}
			n := 0
			if r.width > 0 {
				n = int(space / r.width)
			}
			repeated := strings.Repeat(r.text, n)
			fl.placeRun(r, x, textWidth(repeated, r.size), lineH, repeated)
			x += space
		}
	}
	fl.usedW = fl.usedW.Max(x)
	fl.cursorY += lineH
	fl.started = true
	fl.line = nil
}

func (fl *flowLayouter) placeRun(r run, x, width, lineH geom.Abs, text string) {
	pos := geom.Point{X: x, Y: fl.cursorY}
	if !r.hidden && text != "" {
		fl.cur.Push(pos, shape(text, r.size, r.fill))
	}
	if r.link != nil {
		fl.cur.Push(pos, &doc.LinkElem{
			Size: geom.Size{W: width, H: lineH},
			Dest: *r.link,
		})
	}
}

func (fl *flowLayouter) attachPending(pos geom.Point) {
	for _, p := range fl.pending {
		fl.cur.Push(pos, &doc.MetaElem{Node: p.node, Loc: p.loc})
	}
	fl.pending = nil
}

func (fl *flowLayouter) remaining() geom.Abs {
	if fl.region.Size.H.IsInf() {
		return geom.Inf()
	}
	return (fl.region.Size.H - fl.cursorY).Max(geom.Zero)
}

func (fl *flowLayouter) pageNo() int {
	return len(fl.frames) + 1
}

func (fl *flowLayouter) finishRegion() {
	size := fl.region.Size
	if !fl.region.Expand.X || size.W.IsInf() {
		size.W = fl.usedW
		if !fl.region.Size.W.IsInf() {
			size.W = size.W.Min(fl.region.Size.W)
		}
	}
	if !fl.region.Expand.Y || size.H.IsInf() {
		size.H = fl.cursorY
		if !fl.region.Size.H.IsInf() {
			size.H = size.H.Min(fl.region.Size.H)
		}
	}
	fl.cur.SetSize(size)
	fl.frames = append(fl.frames, fl.cur)
	fl.cur = doc.NewFrame(fl.region.Size)
	fl.cursorY = 0
	fl.usedW = 0
	fl.started = false
	fl.parGap = false
}

func (fl *flowLayouter) finish() {
	fl.flushLine()
	fl.attachPending(geom.Point{Y: fl.cursorY})
	fl.finishRegion()
}
