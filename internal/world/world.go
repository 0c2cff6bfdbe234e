// Package world defines the opaque capability object handed down through
// every layout call: the root style library and the ambient language.
// The core never reaches around it; fonts and referenced files would
// arrive the same way when external collaborators provide them.
package world

import (
	"golang.org/x/text/language"

	"folio/internal/geom"
	"folio/internal/model"
)

// World supplies process-wide immutable configuration to a layout run.
type World interface {
	Library() *Library
}

// Library is the root style library: the default style map every chain
// ends at, plus the ambient document language.
type Library struct {
	Styles   *model.StyleMap
	Language language.Tag
}

type staticWorld struct {
	lib *Library
}

func (w *staticWorld) Library() *Library { return w.lib }

// NewWorld wraps a library into a World.
func NewWorld(lib *Library) World {
	return &staticWorld{lib: lib}
}

// Builtin returns a world carrying the built-in defaults, used when no
// configuration file is given.
func Builtin() World {
	return NewWorld(DefaultLibrary())
}

// DefaultLibrary builds the built-in root style map.
func DefaultLibrary() *Library {
	return &Library{
		Styles: model.NewStyleMap(
			model.Set(model.KindPage, "width", model.Length(geom.Pt(420))),
			model.Set(model.KindPage, "height", model.Length(geom.Pt(595))),
			model.Set(model.KindPage, "margin", model.Length(geom.Pt(40))),
			model.Set(model.KindText, "size", model.Length(geom.Pt(11))),
			model.Set(model.KindText, "leading", model.Float(1.2)),
			model.Set(model.KindText, "fill", model.Color(geom.Black)),
			model.Set(model.KindText, "lang", model.Str("en")),
			model.Set(model.KindHeading, "numbering", model.None()),
			model.Set(model.KindOutline, "title", model.Auto()),
			model.Set(model.KindOutline, "depth", model.None()),
			model.Set(model.KindOutline, "indent", model.Bool(false)),
			model.Set(model.KindOutline, "fill", model.Str(".")),
		),
		Language: language.English,
	}
}
