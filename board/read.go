package board

import "github.com/wireloom/boardroute/geom"

// PinsOf returns the pin references belonging to netID, or ErrNetNotFound.
func (p *Pcb) PinsOf(netID NetID) ([]PinRef, error) {
	for _, n := range p.Nets {
		if n.ID == netID {
			return n.Pins, nil
		}
	}
	return nil, ErrNetNotFound
}

// ResolvePinRef resolves ref to its owning component, the pin itself, and
// the pin's absolute (board-space) transform — the composition of the pin's
// component-local transform with the component's world transform.
func (p *Pcb) ResolvePinRef(ref PinRef) (Component, Pin, geom.Transform, error) {
	return p.resolvePinRef(ref)
}

// BoundaryShapes returns the shapes the routable region must lie within;
// for the MVP data model this is just the boundary polygon, but the slice
// return keeps the contract open to a boundary built from multiple shapes.
func (p *Pcb) BoundaryShapes() []geom.Shape {
	return []geom.Shape{p.Boundary}
}

// ObstacleShapes returns every shape on layer that the router must avoid
// when routing excludeNet for routing objects of the given class
// (KeepoutWireOnly or KeepoutViaOnly): component pads belonging to other
// nets, keepouts applicable to this layer and class, and previously placed
// wires/vias belonging to other nets — spec.md §3/§4.C's read-side contract.
// Pads, wires, and vias are physical copper and obstruct both classes
// alike; only keepouts are class-selective, via AppliesTo.
func (p *Pcb) ObstacleShapes(layer LayerId, excludeNet NetID, class KeepoutKind) []geom.Shape {
	var out []geom.Shape

	for _, comp := range p.Components {
		for _, pin := range comp.Pins {
			ref := PinRef{Component: comp.ID, Pin: pin.ID}
			if owner, ok := p.netOfPin[ref]; ok && owner == excludeNet {
				continue
			}
			padstack, ok := p.Padstacks[pin.Padstack]
			if !ok {
				continue
			}
			shape, ok := padstack.ShapeOn(layer)
			if !ok {
				continue
			}
			abs := pin.Local.Then(comp.World)
			out = append(out, abs.Shape(shape))
		}

		for _, ko := range comp.Keepouts {
			if ko.AppliesTo(layer, class) {
				out = append(out, comp.World.Shape(ko.Shape))
			}
		}
	}

	for _, ko := range p.Keepouts {
		if ko.AppliesTo(layer, class) {
			out = append(out, ko.Shape)
		}
	}

	for _, w := range p.Wires {
		if w.Net == excludeNet || (w.Layer != AllLayers && w.Layer != layer) {
			continue
		}
		out = append(out, w.Path)
	}

	for _, v := range p.Vias {
		if v.Net == excludeNet {
			continue
		}
		padstack, ok := p.Padstacks[v.Padstack]
		if !ok {
			continue
		}
		shape, ok := padstack.ShapeOn(layer)
		if !ok {
			continue
		}
		out = append(out, geom.Translate(v.Position).Shape(shape))
	}

	return out
}

// Clearance returns the board's single global clearance scalar.
func (p *Pcb) Clearance() float64 { return p.clearance }
