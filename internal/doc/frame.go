package doc

import "folio/internal/geom"

// Positioned is one element placed at an offset inside a frame.
type Positioned struct {
	Pos  geom.Point
	Elem Element
}

// Frame is a sized collection of positioned elements: one page, or one
// nested group. A frame is assembled by the layout engine and immutable
// once it leaves the engine.
type Frame struct {
	size  geom.Size
	elems []Positioned
}

// NewFrame creates an empty frame of the given size.
func NewFrame(size geom.Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's extent.
func (f *Frame) Size() geom.Size { return f.size }

// SetSize adjusts the extent during assembly.
func (f *Frame) SetSize(size geom.Size) { f.size = size }

// Push places an element into the frame.
func (f *Frame) Push(pos geom.Point, e Element) {
	f.elems = append(f.elems, Positioned{Pos: pos, Elem: e})
}

// PushFrame places a nested frame as a group element.
func (f *Frame) PushFrame(pos geom.Point, inner *Frame) {
	f.Push(pos, &GroupElem{Frame: inner})
}

// Elements returns the placed elements in paint order. Read-only.
func (f *Frame) Elements() []Positioned { return f.elems }
