package model

import (
	"fmt"
	"strconv"
	"strings"

	"folio/internal/geom"
)

// ValueKind enumerates the variants of the Value sum type.
type ValueKind uint8

const (
	ValNone ValueKind = iota
	ValAuto
	ValBool
	ValInt
	ValFloat
	ValLength
	ValColor
	ValStr
	ValArray
	ValDict
	ValContent
	ValStyles
)

func (k ValueKind) String() string {
	switch k {
	case ValNone:
		return "none"
	case ValAuto:
		return "auto"
	case ValBool:
		return "bool"
	case ValInt:
		return "int"
	case ValFloat:
		return "float"
	case ValLength:
		return "length"
	case ValColor:
		return "color"
	case ValStr:
		return "str"
	case ValArray:
		return "array"
	case ValDict:
		return "dict"
	case ValContent:
		return "content"
	case ValStyles:
		return "styles"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is an immutable typed value. Heap variants (arrays, dicts, content,
// style maps) are shared, never copied, so cloning a Value is cheap.
type Value struct {
	kind   ValueKind
	b      bool
	i      int64
	f      float64
	abs    geom.Abs
	col    geom.Color
	str    string
	arr    []Value
	dict   *Dict
	node   *Content
	styles *StyleMap
}

// None is the absent value.
func None() Value { return Value{kind: ValNone} }

// Auto marks a value to be chosen by the layout engine.
func Auto() Value { return Value{kind: ValAuto} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: ValBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: ValInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: ValFloat, f: f} }

// Length wraps an absolute length.
func Length(a geom.Abs) Value { return Value{kind: ValLength, abs: a} }

// Color wraps a solid paint.
func Color(c geom.Color) Value { return Value{kind: ValColor, col: c} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: ValStr, str: s} }

// Array wraps an ordered sequence of values. The slice is owned by the
// value after the call.
func Array(items []Value) Value { return Value{kind: ValArray, arr: items} }

// DictValue wraps an ordered string mapping.
func DictValue(d *Dict) Value { return Value{kind: ValDict, dict: d} }

// ContentValue wraps a content node.
func ContentValue(c *Content) Value { return Value{kind: ValContent, node: c} }

// StylesValue wraps a style map; used by styled content nodes.
func StylesValue(m *StyleMap) Value { return Value{kind: ValStyles, styles: m} }

// Kind returns the variant of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether the value is the none variant.
func (v Value) IsNone() bool { return v.kind == ValNone }

// IsAuto reports whether the value is the auto variant.
func (v Value) IsAuto() bool { return v.kind == ValAuto }

// AsBool extracts a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == ValBool }

// AsInt extracts an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == ValInt }

// AsFloat extracts a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == ValFloat }

// AsLength extracts a length.
func (v Value) AsLength() (geom.Abs, bool) { return v.abs, v.kind == ValLength }

// AsColor extracts a color.
func (v Value) AsColor() (geom.Color, bool) { return v.col, v.kind == ValColor }

// AsStr extracts a string.
func (v Value) AsStr() (string, bool) { return v.str, v.kind == ValStr }

// AsArray extracts an array. The returned slice must not be modified.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == ValArray }

// AsDict extracts a dict.
func (v Value) AsDict() (*Dict, bool) { return v.dict, v.kind == ValDict }

// AsContent extracts a content node.
func (v Value) AsContent() (*Content, bool) { return v.node, v.kind == ValContent }

// AsStyles extracts a style map.
func (v Value) AsStyles() (*StyleMap, bool) { return v.styles, v.kind == ValStyles }

// Equal reports structural equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValNone, ValAuto:
		return true
	case ValBool:
		return v.b == other.b
	case ValInt:
		return v.i == other.i
	case ValFloat:
		return v.f == other.f
	case ValLength:
		return v.abs == other.abs
	case ValColor:
		return v.col == other.col
	case ValStr:
		return v.str == other.str
	case ValArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case ValDict:
		return v.dict.Equal(other.dict)
	case ValContent:
		return v.node.Equal(other.node)
	case ValStyles:
		return v.styles.Digest() == other.styles.Digest()
	default:
		return false
	}
}

// hash feeds the value's structure into a digester.
func (v Value) hash(d *digester) {
	d.writeByte(byte(v.kind))
	switch v.kind {
	case ValNone, ValAuto:
	case ValBool:
		if v.b {
			d.writeByte(1)
		} else {
			d.writeByte(0)
		}
	case ValInt:
		d.writeUint64(uint64(v.i))
	case ValFloat:
		d.writeFloat(v.f)
	case ValLength:
		d.writeFloat(v.abs.Points())
	case ValColor:
		d.writeUint32(uint32(v.col.R)<<24 | uint32(v.col.G)<<16 | uint32(v.col.B)<<8 | uint32(v.col.A))
	case ValStr:
		d.writeString(v.str)
	case ValArray:
		d.writeUint64(uint64(len(v.arr)))
		for _, item := range v.arr {
			item.hash(d)
		}
	case ValDict:
		v.dict.hash(d)
	case ValContent:
		d.writeDigest(v.node.Digest())
	case ValStyles:
		d.writeDigest(v.styles.Digest())
	}
}

func (v Value) String() string {
	switch v.kind {
	case ValNone:
		return "none"
	case ValAuto:
		return "auto"
	case ValBool:
		return strconv.FormatBool(v.b)
	case ValInt:
		return strconv.FormatInt(v.i, 10)
	case ValFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValLength:
		return v.abs.String()
	case ValColor:
		return v.col.String()
	case ValStr:
		return strconv.Quote(v.str)
	case ValArray:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, item := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(')')
		return sb.String()
	case ValDict:
		return v.dict.String()
	case ValContent:
		return "[" + string(v.node.Kind()) + "]"
	case ValStyles:
		return "styles(" + v.styles.Digest().Short() + ")"
	default:
		return "invalid"
	}
}

// DictEntry is one key/value pair of a Dict.
type DictEntry struct {
	Key   string
	Value Value
}

// Dict is an ordered string-to-value mapping. It preserves insertion order
// and is treated as immutable once wrapped in a Value.
type Dict struct {
	entries []DictEntry
}

// NewDict creates an empty dict.
func NewDict() *Dict {
	return &Dict{}
}

// Put sets a key, replacing an earlier entry with the same key in place.
// Returns the dict for chaining during construction.
func (d *Dict) Put(key string, v Value) *Dict {
	for i := range d.entries {
		if d.entries[i].Key == key {
			d.entries[i].Value = v
			return d
		}
	}
	d.entries = append(d.entries, DictEntry{Key: key, Value: v})
	return d
}

// Get looks up a key.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	for i := range d.entries {
		if d.entries[i].Key == key {
			return d.entries[i].Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns the entries in insertion order. Read-only.
func (d *Dict) Entries() []DictEntry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Equal reports structural equality including order.
func (d *Dict) Equal(other *Dict) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := range d.entries {
		if d.entries[i].Key != other.entries[i].Key {
			return false
		}
		if !d.entries[i].Value.Equal(other.entries[i].Value) {
			return false
		}
	}
	return true
}

func (d *Dict) hash(h *digester) {
	h.writeUint64(uint64(d.Len()))
	for _, e := range d.Entries() {
		h.writeString(e.Key)
		e.Value.hash(h)
	}
}

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range d.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key)
		sb.WriteString(": ")
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
