package board

import (
	"github.com/google/uuid"

	"github.com/wireloom/boardroute/geom"
)

// LayerId indexes the layer stack; 0 is the top layer, per spec.md §3.
type LayerId int

// AllLayers marks a Keepout, Wire, or debug rectangle as applying board-wide
// rather than to one specific layer (spec.md's per-shape layer tag
// supplement, restored from original_source/src/dsn/convert.rs).
const AllLayers LayerId = -1

// ComponentID, PinID, PadstackID, and NetID are the stable string
// identifiers spec.md's data model carries for components, pins, padstacks,
// and nets respectively.
type (
	ComponentID string
	PinID       string
	PadstackID  string
	NetID       string
)

// PinRef names one pin belonging to one component placement.
type PinRef struct {
	Component ComponentID
	Pin       PinID
}

// AttachKind distinguishes through-hole from surface-mount padstacks.
type AttachKind int

const (
	AttachThroughHole AttachKind = iota
	AttachSurface
)

// Padstack is a pad or via footprint: a per-layer shape map plus an attach
// kind, per spec.md §3.
type Padstack struct {
	ID     PadstackID
	Shapes map[LayerId]geom.Shape
	Attach AttachKind
}

// ShapeOn returns the padstack's shape on layer, and whether one exists.
func (p Padstack) ShapeOn(layer LayerId) (geom.Shape, bool) {
	s, ok := p.Shapes[layer]
	return s, ok
}

// Layers returns every layer the padstack occupies.
func (p Padstack) Layers() []LayerId {
	out := make([]LayerId, 0, len(p.Shapes))
	for l := range p.Shapes {
		out = append(out, l)
	}
	return out
}

// Pin is a component-local pin placement: a transform (relative to its
// owning component's frame) plus a reference to the padstack it uses.
type Pin struct {
	ID       PinID
	Local    geom.Transform
	Padstack PadstackID
}

// KeepoutKind selects which routing objects a Keepout forbids.
type KeepoutKind int

const (
	KeepoutAll KeepoutKind = iota
	KeepoutViaOnly
	KeepoutWireOnly
)

// Keepout is a typed forbidden region on a given layer (or AllLayers).
type Keepout struct {
	ID    uuid.UUID
	Kind  KeepoutKind
	Shape geom.Shape
	Layer LayerId
}

// AppliesTo reports whether the keepout restricts routing objects of the
// given class on the given layer. class is the kind of object being
// checked for obstruction (KeepoutWireOnly or KeepoutViaOnly, never
// KeepoutAll as a query); a KeepoutAll keepout obstructs every class.
func (k Keepout) AppliesTo(layer LayerId, class KeepoutKind) bool {
	if k.Layer != AllLayers && k.Layer != layer {
		return false
	}
	if k.Kind == KeepoutAll {
		return true
	}
	return k.Kind == class
}

// Component is a placed component: a world transform, its pins, and any
// component-local keepouts.
type Component struct {
	ID       ComponentID
	World    geom.Transform
	Pins     []Pin
	Keepouts []Keepout
}

// Net is a stable id plus the ordered list of pins it must connect.
type Net struct {
	ID   NetID
	Pins []PinRef
}

// Wire is a routed trace: a layer, a polyline-with-width path, and the net
// it belongs to.
type Wire struct {
	ID    uuid.UUID
	Net   NetID
	Layer LayerId
	Path  geom.Path
}

// Via is an inter-layer connection: a position, the padstack defining which
// layers it bridges, and the net it belongs to.
type Via struct {
	ID       uuid.UUID
	Net      NetID
	Position geom.Point
	Padstack PadstackID
}

// DebugRect is a non-electrical annotation rectangle emitted by the router
// for diagnostics (e.g. visualizing a failed search's visited region).
type DebugRect struct {
	ID    uuid.UUID
	Layer LayerId
	Rect  geom.Rectangle
}

// Resolution is a rational scale factor mapping internal coordinate units
// to millimetres, per spec.md §3's "round-tripping with external tools".
type Resolution struct {
	Numerator   int64
	Denominator int64
}

// Millimetres converts an internal-unit value to millimetres.
func (r Resolution) Millimetres(v float64) float64 {
	if r.Denominator == 0 {
		return v
	}
	return v * float64(r.Numerator) / float64(r.Denominator)
}
