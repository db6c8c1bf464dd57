package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireloom/boardroute/geom"
)

func rectPadstack(id PadstackID, layer LayerId, half float64) Padstack {
	return Padstack{
		ID: id,
		Shapes: map[LayerId]geom.Shape{
			layer: geom.Rectangle{Min: geom.Point{X: -half, Y: -half}, Max: geom.Point{X: half, Y: half}},
		},
		Attach: AttachSurface,
	}
}

func simpleBoard(t *testing.T) *Pcb {
	t.Helper()
	boundary := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}})

	padstacks := map[PadstackID]Padstack{
		"pad": rectPadstack("pad", 0, 0.5),
	}
	components := map[ComponentID]Component{
		"U1": {
			ID:    "U1",
			World: geom.Translate(geom.Point{X: 10, Y: 10}),
			Pins: []Pin{
				{ID: "1", Local: geom.Identity(), Padstack: "pad"},
				{ID: "2", Local: geom.Translate(geom.Point{X: 5, Y: 0}), Padstack: "pad"},
			},
		},
		"U2": {
			ID:    "U2",
			World: geom.Translate(geom.Point{X: 80, Y: 80}),
			Pins: []Pin{
				{ID: "1", Local: geom.Identity(), Padstack: "pad"},
			},
		},
	}
	nets := []Net{
		{ID: "NET1", Pins: []PinRef{{Component: "U1", Pin: "1"}, {Component: "U2", Pin: "1"}}},
	}

	pcb, err := New(boundary, []LayerId{0}, components, padstacks, nil, nets, 0.2, Resolution{Numerator: 1, Denominator: 1000})
	require.NoError(t, err)
	return pcb
}

func TestNewValidatesBoundary(t *testing.T) {
	_, err := New(geom.Polygon{}, []LayerId{0}, nil, nil, nil, nil, 0, Resolution{})
	assert.ErrorIs(t, err, ErrEmptyBoundary)
}

func TestNewValidatesLayers(t *testing.T) {
	boundary := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	_, err := New(boundary, nil, nil, nil, nil, nil, 0, Resolution{})
	assert.ErrorIs(t, err, ErrNoLayers)
}

func TestNewRejectsUnresolvedPinRef(t *testing.T) {
	boundary := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	nets := []Net{{ID: "N1", Pins: []PinRef{{Component: "ghost", Pin: "1"}}}}
	_, err := New(boundary, []LayerId{0}, map[ComponentID]Component{}, map[PadstackID]Padstack{}, nil, nets, 0, Resolution{})
	assert.ErrorIs(t, err, ErrUnresolvedPinRef)
}

func TestNewRejectsPinMultiplyAssigned(t *testing.T) {
	boundary := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	components := map[ComponentID]Component{
		"U1": {ID: "U1", World: geom.Identity(), Pins: []Pin{{ID: "1", Local: geom.Identity(), Padstack: "pad"}}},
	}
	padstacks := map[PadstackID]Padstack{"pad": rectPadstack("pad", 0, 0.1)}
	nets := []Net{
		{ID: "N1", Pins: []PinRef{{Component: "U1", Pin: "1"}}},
		{ID: "N2", Pins: []PinRef{{Component: "U1", Pin: "1"}}},
	}
	_, err := New(boundary, []LayerId{0}, components, padstacks, nil, nets, 0, Resolution{})
	assert.ErrorIs(t, err, ErrPinMultiplyAssigned)
}

func TestResolvePinRefComposesTransforms(t *testing.T) {
	pcb := simpleBoard(t)
	_, pin, abs, err := pcb.ResolvePinRef(PinRef{Component: "U1", Pin: "2"})
	require.NoError(t, err)
	assert.Equal(t, PinID("2"), pin.ID)
	pos := abs.Point(geom.Point{})
	assert.InDelta(t, 15, pos.X, 1e-9)
	assert.InDelta(t, 10, pos.Y, 1e-9)
}

func TestPinsOfUnknownNet(t *testing.T) {
	pcb := simpleBoard(t)
	_, err := pcb.PinsOf("missing")
	assert.ErrorIs(t, err, ErrNetNotFound)
}

func TestObstacleShapesExcludesOwnNet(t *testing.T) {
	pcb := simpleBoard(t)
	obstacles := pcb.ObstacleShapes(0, "NET1", KeepoutWireOnly)
	// U1 pin 2 belongs to no net and must still appear as an obstacle.
	assert.NotEmpty(t, obstacles)
	for _, s := range obstacles {
		r, ok := s.(geom.Rectangle)
		require.True(t, ok)
		// Neither NET1 pad (U1 pin 1 at (10,10), U2 pin 1 at (80,80)) should
		// be present, only U1 pin 2 at (15,10).
		assert.False(t, r.Center().Equal(geom.Point{X: 10, Y: 10}))
		assert.False(t, r.Center().Equal(geom.Point{X: 80, Y: 80}))
	}
}

func TestAppendAndClearResults(t *testing.T) {
	pcb := simpleBoard(t)
	pcb.AppendWire(Wire{ID: uuid.New(), Net: "NET1", Layer: 0, Path: geom.Path{Verts: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Width: 0.2}})
	pcb.AppendVia(Via{ID: uuid.New(), Net: "NET1", Position: geom.Point{X: 1, Y: 1}, Padstack: "pad"})
	assert.Len(t, pcb.Wires, 1)
	assert.Len(t, pcb.Vias, 1)

	pcb.ClearResults()
	assert.Empty(t, pcb.Wires)
	assert.Empty(t, pcb.Vias)
}

func TestClearanceForHookReturnsGlobal(t *testing.T) {
	pcb := simpleBoard(t)
	assert.InDelta(t, pcb.Clearance(), pcb.ClearanceFor(0, "NET1", "NET2"), 1e-9)
}

func threePinBoard(t *testing.T) *Pcb {
	t.Helper()
	boundary := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}})
	padstacks := map[PadstackID]Padstack{"pad": rectPadstack("pad", 0, 0.5)}
	components := map[ComponentID]Component{
		"U1": {ID: "U1", World: geom.Translate(geom.Point{X: 10, Y: 10}), Pins: []Pin{{ID: "1", Local: geom.Identity(), Padstack: "pad"}}},
		"U2": {ID: "U2", World: geom.Translate(geom.Point{X: 80, Y: 80}), Pins: []Pin{{ID: "1", Local: geom.Identity(), Padstack: "pad"}}},
		"U3": {ID: "U3", World: geom.Translate(geom.Point{X: 50, Y: 10}), Pins: []Pin{{ID: "1", Local: geom.Identity(), Padstack: "pad"}}},
	}
	nets := []Net{{ID: "NET2", Pins: []PinRef{
		{Component: "U1", Pin: "1"}, {Component: "U2", Pin: "1"}, {Component: "U3", Pin: "1"},
	}}}
	pcb, err := New(boundary, []LayerId{0}, components, padstacks, nil, nets, 0.2, Resolution{Numerator: 1, Denominator: 1000})
	require.NoError(t, err)
	return pcb
}

func TestRatsnestBuildsSpanningTree(t *testing.T) {
	pcb := threePinBoard(t)
	edges, err := pcb.Ratsnest("NET2")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestRatsnestSinglePinIsEmpty(t *testing.T) {
	pcb := simpleBoard(t)
	pcb.Nets = append(pcb.Nets, Net{ID: "SOLO", Pins: []PinRef{{Component: "U1", Pin: "1"}}})
	edges, err := pcb.Ratsnest("SOLO")
	require.NoError(t, err)
	assert.Empty(t, edges)
}
