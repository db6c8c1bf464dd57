package board

import "github.com/wireloom/boardroute/geom"

// Pcb is the bounded board snapshot spec.md §3 describes: boundary, layer
// stack, components, board-level keepouts, and nets are fixed at
// construction; wires, vias, and debug rectangles are an append-only result
// buffer.
type Pcb struct {
	Boundary   geom.Polygon
	Layers     []LayerId
	Components map[ComponentID]Component
	Padstacks  map[PadstackID]Padstack
	Keepouts   []Keepout
	Nets       []Net
	Resolution Resolution

	Wires      []Wire
	Vias       []Via
	DebugRects []DebugRect

	clearance float64
	netOfPin  map[PinRef]NetID
}

// New validates and constructs a Pcb. It is the sole entry point: a Pcb
// returned from New satisfies every invariant spec.md §3 and §7 require,
// and every subsequent read-side query assumes that validation already ran.
func New(
	boundary geom.Polygon,
	layers []LayerId,
	components map[ComponentID]Component,
	padstacks map[PadstackID]Padstack,
	keepouts []Keepout,
	nets []Net,
	clearance float64,
	resolution Resolution,
) (*Pcb, error) {
	if len(boundary.Verts) == 0 {
		return nil, ErrEmptyBoundary
	}
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	pcb := &Pcb{
		Boundary:   boundary,
		Layers:     append([]LayerId(nil), layers...),
		Components: components,
		Padstacks:  padstacks,
		Keepouts:   keepouts,
		Nets:       nets,
		clearance:  clearance,
		Resolution: resolution,
		netOfPin:   make(map[PinRef]NetID),
	}

	if err := pcb.validateNets(); err != nil {
		return nil, err
	}

	return pcb, nil
}

func (p *Pcb) validateNets() error {
	seenNet := make(map[NetID]bool, len(p.Nets))
	for _, net := range p.Nets {
		if seenNet[net.ID] {
			return ErrDuplicateID
		}
		seenNet[net.ID] = true

		for _, ref := range net.Pins {
			if _, _, _, err := p.resolvePinRef(ref); err != nil {
				return err
			}
			if _, assigned := p.netOfPin[ref]; assigned {
				return ErrPinMultiplyAssigned
			}
			p.netOfPin[ref] = net.ID
		}
	}
	return nil
}

// resolvePinRef is the unvalidated lookup used both by construction-time
// validation and by the public ResolvePinRef.
func (p *Pcb) resolvePinRef(ref PinRef) (Component, Pin, geom.Transform, error) {
	comp, ok := p.Components[ref.Component]
	if !ok {
		return Component{}, Pin{}, geom.Transform{}, ErrUnresolvedPinRef
	}
	for _, pin := range comp.Pins {
		if pin.ID != ref.Pin {
			continue
		}
		if _, ok := p.Padstacks[pin.Padstack]; !ok {
			return Component{}, Pin{}, geom.Transform{}, ErrUnresolvedPinRef
		}
		return comp, pin, pin.Local.Then(comp.World), nil
	}
	return Component{}, Pin{}, geom.Transform{}, ErrUnresolvedPinRef
}
