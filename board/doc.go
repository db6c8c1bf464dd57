// Package board implements the typed, immutable-per-routing-pass PCB model:
// layers, components with padstack-backed pins, keepouts, board boundary,
// nets, and an append-only result buffer of wires, vias, and debug
// rectangles.
//
// A Pcb is constructed once (via New) from externally-parsed data and
// validated at construction time; every subsequent read is a pure function
// of that snapshot. The write side (AppendWire, AppendVia, AppendDebugRect)
// is a convention reserved for the route package's result aggregator, not a
// general-purpose mutation API — nothing in this package enforces that
// convention at the type level, matching spec.md §3's "the router borrows
// the PCB for the duration of a pass" ownership model rather than adding
// unneeded access control machinery.
package board
