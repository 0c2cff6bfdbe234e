package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
)

func sampleDocument() *doc.Document {
	inner := doc.NewFrame(geom.Size{W: geom.Pt(50), H: geom.Pt(20)})
	inner.Push(geom.Point{X: geom.Pt(1), Y: geom.Pt(2)}, &doc.TextElem{
		Face: doc.DefaultFace,
		Size: geom.Pt(11),
		Fill: geom.Black,
		Glyphs: []doc.Glyph{
			{ID: 'h', Advance: geom.Pt(5.5)},
			{ID: 'i', Advance: geom.Pt(5.5)},
		},
	})

	page := doc.NewFrame(geom.Size{W: geom.Pt(100), H: geom.Pt(200)})
	page.PushFrame(geom.Point{X: geom.Pt(10), Y: geom.Pt(10)}, inner)
	page.Push(geom.Point{X: geom.Pt(10), Y: geom.Pt(40)}, &doc.LinkElem{
		Size: geom.Size{W: geom.Pt(30), H: geom.Pt(12)},
		Dest: doc.Destination{Page: 2, Point: geom.Point{X: geom.Pt(3), Y: geom.Pt(4)}},
	})
	page.Push(geom.Point{}, &doc.MetaElem{
		Node: model.New("chapter", model.Field{Name: "level", Value: model.Int(1)}),
		Loc:  model.Location{ID: 42, Disambiguator: 1},
	})

	return &doc.Document{Pages: []*doc.Frame{page}}
}

func TestConvert(t *testing.T) {
	p := Convert(sampleDocument())
	require.Len(t, p.Pages, 1)

	page := p.Pages[0]
	assert.Equal(t, 100.0, page.Width)
	assert.Equal(t, 200.0, page.Height)
	require.Len(t, page.Elems, 3)

	group := page.Elems[0]
	assert.Equal(t, ElemGroup, group.Kind)
	require.Len(t, group.Children, 1)
	text := group.Children[0]
	assert.Equal(t, ElemText, text.Kind)
	assert.Equal(t, "hi", text.Text)
	assert.Equal(t, 11.0, text.Size)

	link := page.Elems[1]
	assert.Equal(t, ElemLink, link.Kind)
	assert.Equal(t, 2, link.DestPage)
	assert.Equal(t, 3.0, link.DestX)

	meta := page.Elems[2]
	assert.Equal(t, ElemMeta, meta.Kind)
	assert.Equal(t, "chapter", meta.NodeKind)
	assert.Equal(t, uint64(42), meta.LocID)
	assert.Equal(t, uint32(1), meta.LocDis)
}

func TestEncodeDecode(t *testing.T) {
	d := sampleDocument()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Convert(d), decoded)
}

func TestDecodeRejectsUnknownSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode(&Payload{Schema: 999}))

	_, err := Decode(&buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "doc.fp")
	require.NoError(t, WriteFile(path, sampleDocument()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := Decode(f)
	require.NoError(t, err)
	assert.Len(t, decoded.Pages, 1)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
