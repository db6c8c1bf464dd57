package board

// AppendWire adds a committed wire to the result buffer. Reserved for the
// route package's aggregator (spec.md §3 "Appends are only invoked by the
// aggregator").
func (p *Pcb) AppendWire(w Wire) { p.Wires = append(p.Wires, w) }

// AppendVia adds a committed via to the result buffer.
func (p *Pcb) AppendVia(v Via) { p.Vias = append(p.Vias, v) }

// AppendDebugRect adds a diagnostic rectangle to the result buffer.
func (p *Pcb) AppendDebugRect(r DebugRect) { p.DebugRects = append(p.DebugRects, r) }

// ClearResults empties the wire/via/debug-rect buffer, per spec.md §3 "a
// full re-route clears it".
func (p *Pcb) ClearResults() {
	p.Wires = nil
	p.Vias = nil
	p.DebugRects = nil
}
