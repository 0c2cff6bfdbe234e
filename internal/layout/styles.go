package layout

import (
	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
)

// Style lookups used throughout the engine. Every property has a hard
// fallback so a degenerate chain still lays out.

func textSize(styles model.StyleChain) geom.Abs {
	if v, ok := styles.Get(model.KindText, "size"); ok {
		if a, ok := v.AsLength(); ok {
			return a
		}
	}
	return geom.Pt(11)
}

func textFill(styles model.StyleChain) geom.Color {
	if v, ok := styles.Get(model.KindText, "fill"); ok {
		if c, ok := v.AsColor(); ok {
			return c
		}
	}
	return geom.Black
}

func leading(styles model.StyleChain) float64 {
	if v, ok := styles.Get(model.KindText, "leading"); ok {
		if f, ok := v.AsFloat(); ok && f > 0 {
			return f
		}
	}
	return 1.2
}

func lineHeight(styles model.StyleChain) geom.Abs {
	return geom.Abs(float64(textSize(styles)) * leading(styles))
}

func hidden(styles model.StyleChain) bool {
	if v, ok := styles.Get(model.KindText, "hidden"); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return false
}

func linkDest(styles model.StyleChain) (doc.Destination, bool) {
	v, ok := styles.Get(model.KindLink, "dest")
	if !ok {
		return doc.Destination{}, false
	}
	d, ok := v.AsDict()
	if !ok {
		return doc.Destination{}, false
	}
	var dest doc.Destination
	if pv, ok := d.Get("page"); ok {
		if p, ok := pv.AsInt(); ok {
			dest.Page = int(p)
		}
	}
	if xv, ok := d.Get("x"); ok {
		if x, ok := xv.AsLength(); ok {
			dest.Point.X = x
		}
	}
	if yv, ok := d.Get("y"); ok {
		if y, ok := yv.AsLength(); ok {
			dest.Point.Y = y
		}
	}
	return dest, true
}

func pageGeometry(styles model.StyleChain) (size geom.Size, margin geom.Abs) {
	size = geom.Size{W: geom.Pt(420), H: geom.Pt(595)}
	margin = geom.Pt(40)
	if v, ok := styles.Get(model.KindPage, "width"); ok {
		if w, ok := v.AsLength(); ok {
			size.W = w
		}
	}
	if v, ok := styles.Get(model.KindPage, "height"); ok {
		if h, ok := v.AsLength(); ok {
			size.H = h
		}
	}
	if v, ok := styles.Get(model.KindPage, "margin"); ok {
		if m, ok := v.AsLength(); ok {
			margin = m
		}
	}
	return size, margin
}
