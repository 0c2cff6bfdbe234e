package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NodeKind names a kind of content node. Kinds are registered once at
// process start (package init of the node library) and are immutable
// afterwards.
type NodeKind string

// Structural kinds known to the model itself. They carry no capabilities;
// the realization walk handles them directly.
const (
	KindSequence NodeKind = "sequence"
	KindStyled   NodeKind = "styled"
)

// Names of the built-in node kinds. The model only fixes the names so
// that style configuration and the layout engine can address them; the
// behaviors are registered by the node library.
const (
	KindText      NodeKind = "text"
	KindSpace     NodeKind = "space"
	KindLinebreak NodeKind = "linebreak"
	KindParbreak  NodeKind = "parbreak"
	KindHSpace    NodeKind = "h"
	KindVSpace    NodeKind = "v"
	KindRepeat    NodeKind = "repeat"
	KindHide      NodeKind = "hide"
	KindBlock     NodeKind = "block"
	KindHeading   NodeKind = "heading"
	KindOutline   NodeKind = "outline"
	KindRef       NodeKind = "ref"
	KindPagebreak NodeKind = "pagebreak"

	// KindPage and KindLink are pure property namespaces: "page" styles
	// drive pagination, "link" styles carry link destinations inline.
	KindPage NodeKind = "page"
	KindLink NodeKind = "link"
)

// Capability is a named behavior a node kind may support.
type Capability uint8

const (
	// CapPrepare enriches a node with derived fields before it is shown.
	CapPrepare Capability = 1 << iota
	// CapShow expands a semantic node into lower-level content.
	CapShow
	// CapLayout produces final geometry for a node.
	CapLayout
	// CapMeasure allows intrinsic-size queries over the node.
	CapMeasure
	// CapLocate gives node instances a stable Location during layout.
	CapLocate
)

func (c Capability) String() string {
	switch c {
	case CapPrepare:
		return "prepare"
	case CapShow:
		return "show"
	case CapLayout:
		return "layout"
	case CapMeasure:
		return "measure"
	case CapLocate:
		return "locate"
	default:
		return fmt.Sprintf("Capability(%d)", c)
	}
}

// CapabilitySet is a bit set of capabilities.
type CapabilitySet uint8

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

// Caps builds a set from individual capabilities.
func Caps(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s |= CapabilitySet(c)
	}
	return s
}

func (s CapabilitySet) String() string {
	var parts []string
	for _, c := range []Capability{CapPrepare, CapShow, CapLayout, CapMeasure, CapLocate} {
		if s.Has(c) {
			parts = append(parts, c.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var (
	kindMu    sync.RWMutex
	kindTable = map[NodeKind]CapabilitySet{}
)

// RegisterKind declares a node kind and its capability set. Must run
// before any content of that kind is realized; package init is the
// intended call site. Re-registering a kind panics.
func RegisterKind(kind NodeKind, caps CapabilitySet) {
	kindMu.Lock()
	defer kindMu.Unlock()
	if _, ok := kindTable[kind]; ok {
		panic(fmt.Sprintf("model: kind %q registered twice", kind))
	}
	kindTable[kind] = caps
}

// KindCaps returns the capability set declared for a kind. Unregistered
// kinds (including the structural ones) have the empty set.
func KindCaps(kind NodeKind) CapabilitySet {
	kindMu.RLock()
	defer kindMu.RUnlock()
	return kindTable[kind]
}

// RegisteredKinds returns all declared kinds in sorted order, for
// deterministic introspection dumps.
func RegisteredKinds() []NodeKind {
	kindMu.RLock()
	defer kindMu.RUnlock()
	kinds := make([]NodeKind, 0, len(kindTable))
	for k := range kindTable {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
