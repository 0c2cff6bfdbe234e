// Package export serializes finished documents to a compact msgpack
// payload for downstream renderers.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"folio/internal/doc"
	"folio/internal/geom"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// ErrSchema is returned when a decoded payload carries an unknown
// schema version.
var ErrSchema = errors.New("export: unsupported payload schema")

// Element kind tags on the wire.
const (
	ElemText uint8 = iota
	ElemShape
	ElemGroup
	ElemLink
	ElemMeta
)

// Payload is the serialized form of a document.
type Payload struct {
	Schema uint16
	Pages  []Page
}

// Page is one serialized page frame.
type Page struct {
	Width  float64
	Height float64
	Elems  []Elem
}

// Elem is one serialized frame element. Kind selects which field group
// is meaningful; the rest stay at their zero values.
type Elem struct {
	Kind uint8
	X    float64
	Y    float64

	// Text
	Face uint32
	Size float64
	Fill string
	Text string

	// Shape, group and link extent
	W float64
	H float64

	// Group
	Children []Elem

	// Link destination
	DestPage int
	DestX    float64
	DestY    float64

	// Meta
	NodeKind string
	LocID    uint64
	LocDis   uint32
}

// Convert flattens a document into its wire payload.
func Convert(d *doc.Document) *Payload {
	p := &Payload{Schema: schemaVersion, Pages: make([]Page, 0, len(d.Pages))}
	for _, frame := range d.Pages {
		size := frame.Size()
		p.Pages = append(p.Pages, Page{
			Width:  float64(size.W),
			Height: float64(size.H),
			Elems:  convertElems(frame),
		})
	}
	return p
}

func convertElems(f *doc.Frame) []Elem {
	out := make([]Elem, 0, len(f.Elements()))
	for _, pe := range f.Elements() {
		e := Elem{X: float64(pe.Pos.X), Y: float64(pe.Pos.Y)}
		switch el := pe.Elem.(type) {
		case *doc.TextElem:
			e.Kind = ElemText
			e.Face = uint32(el.Face)
			e.Size = float64(el.Size)
			e.Fill = el.Fill.String()
			e.Text = el.Text()
			e.W = float64(el.Width())
		case *doc.ShapeElem:
			e.Kind = ElemShape
			e.W = float64(el.Size.W)
			e.H = float64(el.Size.H)
			e.Fill = el.Fill.String()
		case *doc.GroupElem:
			e.Kind = ElemGroup
			size := el.Frame.Size()
			e.W = float64(size.W)
			e.H = float64(size.H)
			e.Children = convertElems(el.Frame)
		case *doc.LinkElem:
			e.Kind = ElemLink
			e.W = float64(el.Size.W)
			e.H = float64(el.Size.H)
			e.DestPage = el.Dest.Page
			e.DestX = float64(el.Dest.Point.X)
			e.DestY = float64(el.Dest.Point.Y)
		case *doc.MetaElem:
			e.Kind = ElemMeta
			e.NodeKind = string(el.Node.Kind())
			e.LocID = el.Loc.ID
			e.LocDis = el.Loc.Disambiguator
		default:
			continue
		}
		out = append(out, e)
	}
	return out
}

// Encode writes the document's payload to w.
func Encode(w io.Writer, d *doc.Document) error {
	return msgpack.NewEncoder(w).Encode(Convert(d))
}

// Decode reads a payload back, rejecting unknown schemas.
func Decode(r io.Reader) (*Payload, error) {
	var p Payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, schemaVersion)
	}
	return &p, nil
}

// WriteFile encodes the document into path, replacing any existing file
// atomically.
func WriteFile(path string, d *doc.Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := Encode(f, d); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// PageExtent reports one page's size, a convenience for callers that
// only need geometry.
func PageExtent(p Page) geom.Size {
	return geom.Size{W: geom.Abs(p.Width), H: geom.Abs(p.Height)}
}
