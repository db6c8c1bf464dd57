package netorder_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/gridroute"
	"github.com/wireloom/boardroute/netorder"
)

// targetOrder is the landscape's single global optimum: a fake router
// scores any candidate order by its inversion count against this target,
// so the GA has a well-defined hill to climb without invoking a real grid
// router.
var targetOrder = []board.NetID{"N1", "N2", "N3", "N4", "N5", "N6"}

func inversions(order []board.NetID) int {
	pos := make(map[board.NetID]int, len(targetOrder))
	for i, v := range targetOrder {
		pos[v] = i
	}
	count := 0
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if pos[order[i]] > pos[order[j]] {
				count++
			}
		}
	}
	return count
}

type fakeRouter struct{}

func (fakeRouter) Route(_ *board.Pcb, order []board.NetID, _ *rand.Rand) (gridroute.RouteResult, error) {
	return gridroute.RouteResult{TotalLength: float64(inversions(order))}, nil
}

func smallOptions(seed int64) netorder.Options {
	opts := netorder.DefaultOptions()
	opts.Population = 12
	opts.Generations = 20
	opts.StagnationLimit = 20
	opts.Seed = seed
	return opts
}

var _ = Describe("Driver laws", func() {
	var netIDs []board.NetID

	BeforeEach(func() {
		netIDs = append([]board.NetID(nil), targetOrder...)
	})

	It("reproduces the best permutation given a fixed seed", func() {
		r1, err1 := netorder.Evolve(nil, netIDs, fakeRouter{}, smallOptions(99))
		Expect(err1).NotTo(HaveOccurred())
		r2, err2 := netorder.Evolve(nil, netIDs, fakeRouter{}, smallOptions(99))
		Expect(err2).NotTo(HaveOccurred())

		Expect(r1.Order).To(Equal(r2.Order))
		Expect(r1.Cost).To(Equal(r2.Cost))
	})

	It("never returns a best cost worse than the baseline sorted order", func() {
		opts := smallOptions(7)
		baseline := append([]board.NetID(nil), netIDs...)
		baselineResult, err := fakeRouter{}.Route(nil, baseline, nil)
		Expect(err).NotTo(HaveOccurred())
		baselineCost := opts.KLen * baselineResult.TotalLength

		result, err := netorder.Evolve(nil, netIDs, fakeRouter{}, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Cost).To(BeNumerically("<=", baselineCost))
	})

	It("finds the zero-inversion optimum on an easy landscape", func() {
		opts := smallOptions(123)
		opts.Generations = 60
		opts.StagnationLimit = 60

		result, err := netorder.Evolve(nil, netIDs, fakeRouter{}, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Cost).To(BeNumerically("==", 0))
		Expect(inversions(result.Order)).To(Equal(0))
	})
})

var _ = Describe("RouteResult.Merge", func() {
	It("is associative", func() {
		a := gridroute.RouteResult{TotalLength: 1, Vias: make([]board.Via, 1)}
		b := gridroute.RouteResult{TotalLength: 2, Failed: true}
		c := gridroute.RouteResult{TotalLength: 3, Vias: make([]board.Via, 2)}

		left := a.Merge(b).Merge(c)
		right := a.Merge(b.Merge(c))

		Expect(left.TotalLength).To(Equal(right.TotalLength))
		Expect(len(left.Vias)).To(Equal(len(right.Vias)))
		Expect(left.Failed).To(Equal(right.Failed))
	})

	It("OR-combines the failure flag", func() {
		ok := gridroute.RouteResult{Failed: false}
		bad := gridroute.RouteResult{Failed: true}
		Expect(ok.Merge(bad).Failed).To(BeTrue())
		Expect(bad.Merge(ok).Failed).To(BeTrue())
		Expect(ok.Merge(gridroute.RouteResult{}).Failed).To(BeFalse())
	})

	It("is idempotent given an empty RouteResult", func() {
		r := gridroute.RouteResult{TotalLength: 5, Failed: true, Vias: make([]board.Via, 1)}
		merged := r.Merge(gridroute.RouteResult{})
		Expect(merged.TotalLength).To(Equal(r.TotalLength))
		Expect(merged.Failed).To(Equal(r.Failed))
		Expect(len(merged.Vias)).To(Equal(len(r.Vias)))
	})
})
