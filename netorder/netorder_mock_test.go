package netorder

// Hand-written mock of the Router interface, in the shape mockgen's
// reflect-mode codegen produces, so netorder's parallel-fitness-evaluation
// tests can assert call arguments without invoking a real grid router.

import (
	"reflect"
	"testing"

	"math/rand"

	gomock "github.com/golang/mock/gomock"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/gridroute"
)

// MockRouter is a mock of the Router interface.
type MockRouter struct {
	ctrl     *gomock.Controller
	recorder *MockRouterMockRecorder
}

// MockRouterMockRecorder is the mock recorder for MockRouter.
type MockRouterMockRecorder struct {
	mock *MockRouter
}

// NewMockRouter creates a new mock instance.
func NewMockRouter(ctrl *gomock.Controller) *MockRouter {
	mock := &MockRouter{ctrl: ctrl}
	mock.recorder = &MockRouterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRouter) EXPECT() *MockRouterMockRecorder {
	return m.recorder
}

// Route mocks base method.
func (m *MockRouter) Route(pcb *board.Pcb, order []board.NetID, rng *rand.Rand) (gridroute.RouteResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Route", pcb, order, rng)
	ret0, _ := ret[0].(gridroute.RouteResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Route indicates an expected call of Route.
func (mr *MockRouterMockRecorder) Route(pcb, order, rng interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Route", reflect.TypeOf((*MockRouter)(nil).Route), pcb, order, rng)
}

// TestEvaluatePopulationDerivesIndependentRNGPerIndividual asserts that
// evaluatePopulation never hands two individuals the same *rand.Rand
// stream, and that the board snapshot passed to every call is the same
// read-only pointer (no per-worker cloning).
func TestEvaluatePopulationDerivesIndependentRNGPerIndividual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pcb := &board.Pcb{}
	opts := DefaultOptions()
	opts.Population = 4
	opts.Workers = 1

	mock := NewMockRouter(ctrl)
	seen := make(map[*rand.Rand]bool)
	mock.EXPECT().Route(gomock.Eq(pcb), gomock.Any(), gomock.Any()).
		DoAndReturn(func(p *board.Pcb, order []board.NetID, rng *rand.Rand) (gridroute.RouteResult, error) {
			if p != pcb {
				t.Fatalf("expected the same board pointer on every call")
			}
			if seen[rng] {
				t.Fatalf("rng stream reused across individuals")
			}
			seen[rng] = true
			return gridroute.RouteResult{TotalLength: float64(len(order))}, nil
		}).
		Times(opts.Population)

	pop := []individual{
		{order: []board.NetID{"A", "B"}},
		{order: []board.NetID{"B", "A"}},
		{order: []board.NetID{"A"}},
		{order: []board.NetID{"B"}},
	}

	base := rngFromSeed(1)
	err := evaluatePopulation(pcb, pop, mock, opts, base, 0)
	if err != nil {
		t.Fatalf("evaluatePopulation returned error: %v", err)
	}
	for i, ind := range pop {
		if ind.cost != opts.KLen*float64(len(ind.order)) {
			t.Fatalf("individual %d: cost not recorded from mocked Route result", i)
		}
	}
}
