package netorder

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/wireloom/boardroute/board"
)

// operatorStats tracks each crossover operator's observed improvement
// rate, used to weight adaptive operator selection ("selected adaptively
// by observed improvement rate", spec.md §4.E).
type operatorStats struct {
	uses        [NumCrossover]int
	improvements [NumCrossover]int
}

// weight returns operator idx's Laplace-smoothed improvement rate, so an
// untried or never-improving operator still has a nonzero chance of
// being picked again.
func (s *operatorStats) weight(idx int) float64 {
	return float64(s.improvements[idx]+1) / float64(s.uses[idx]+2)
}

func (s *operatorStats) record(idx int, improved bool) {
	s.uses[idx]++
	if improved {
		s.improvements[idx]++
	}
}

func (s *operatorStats) choose(rng *rand.Rand) int {
	var weights [NumCrossover]float64
	total := 0.0
	for i := range weights {
		weights[i] = s.weight(i)
		total += weights[i]
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return NumCrossover - 1
}

// Evolve runs the generational permutation-GA over netIDs, invoking
// router once per candidate order per generation. pcb is read-only for
// the duration of the run; router must not mutate it.
//
// Complexity: O(Generations * Population) router invocations, each
// parallelized up to opts.Workers.
func Evolve(pcb *board.Pcb, netIDs []board.NetID, router Router, opts Options) (Result, error) {
	base := rngFromSeed(opts.Seed)

	pop := initialPopulation(netIDs, opts, base)
	if err := evaluatePopulation(pcb, pop, router, opts, base, 0); err != nil {
		return Result{}, err
	}
	sortByFitness(pop)

	best := pop[0]
	bestGen := 0
	stagnant := 0
	stats := &operatorStats{}

	eliteCount := int(float64(opts.Population) * opts.ElitismFraction)
	if eliteCount < 1 {
		eliteCount = 1
	}
	childCount := int(float64(opts.Population) * opts.ReplacementFraction)

	for gen := 1; gen <= opts.Generations; gen++ {
		next := make([]individual, 0, opts.Population)
		next = append(next, cloneIndividuals(pop[:eliteCount])...)

		for len(next) < opts.Population-childCount {
			next = append(next, cloneIndividual(tournamentSelect(pop, base)))
		}

		type bred struct {
			childIdx   int
			opIdx      int
			parentCost float64
		}
		var breeding []bred

		for len(next) < opts.Population {
			p1 := tournamentSelect(pop, base)
			p2 := tournamentSelect(pop, base)
			c1 := append([]board.NetID(nil), p1.order...)
			c2 := append([]board.NetID(nil), p2.order...)
			parentCost := (p1.cost + p2.cost) / 2

			opIdx := stats.choose(base)
			crossover(opIdx, c1, c2, base)

			mutIdx := base.Intn(NumMutation)
			mutate(mutIdx, c1, opts.MutationRate, base)
			mutIdx2 := base.Intn(NumMutation)
			mutate(mutIdx2, c2, opts.MutationRate, base)

			for _, c := range [][]board.NetID{c1, c2} {
				if len(next) >= opts.Population {
					break
				}
				if isDuplicate(next, c) {
					c = regeneratePermutation(netIDs, base)
				}
				breeding = append(breeding, bred{childIdx: len(next), opIdx: opIdx, parentCost: parentCost})
				next = append(next, individual{order: c})
			}
		}

		if err := evaluatePopulation(pcb, next, router, opts, base, uint64(gen)); err != nil {
			return Result{}, err
		}
		for _, b := range breeding {
			stats.record(b.opIdx, next[b.childIdx].cost < b.parentCost)
		}
		sortByFitness(next)
		pop = next

		if pop[0].cost < best.cost {
			best = pop[0]
			bestGen = gen
			stagnant = 0
		} else {
			if pop[0].cost == best.cost && lexLess(pop[0].order, best.order) {
				best = pop[0]
			}
			stagnant++
		}
		if stagnant >= opts.StagnationLimit {
			break
		}
	}

	return Result{
		Order:       append([]board.NetID(nil), best.order...),
		RouteResult: best.result,
		Cost:        best.cost,
		Generation:  bestGen,
	}, nil
}

func cloneIndividual(ind individual) individual {
	return individual{order: append([]board.NetID(nil), ind.order...), result: ind.result, cost: ind.cost}
}

func cloneIndividuals(pop []individual) []individual {
	out := make([]individual, len(pop))
	for i, ind := range pop {
		out[i] = cloneIndividual(ind)
	}
	return out
}

func isDuplicate(pop []individual, order []board.NetID) bool {
	for _, ind := range pop {
		if samePermutation(ind.order, order) {
			return true
		}
	}
	return false
}

func regeneratePermutation(netIDs []board.NetID, rng *rand.Rand) []board.NetID {
	out := append([]board.NetID(nil), netIDs...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// tournamentSelect picks the best of 3 randomly-chosen individuals.
func tournamentSelect(pop []individual, rng *rand.Rand) individual {
	const k = 3
	bestIdx := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		cand := rng.Intn(len(pop))
		if pop[cand].cost < pop[bestIdx].cost {
			bestIdx = cand
		}
	}
	return pop[bestIdx]
}

// initialPopulation seeds one individual with the sorted-by-id order
// ("for reproducibility") and the rest with random shuffles.
func initialPopulation(netIDs []board.NetID, opts Options, rng *rand.Rand) []individual {
	pop := make([]individual, 0, opts.Population)
	sorted := append([]board.NetID(nil), netIDs...)
	sortNetIDs(sorted)
	pop = append(pop, individual{order: sorted})
	for len(pop) < opts.Population {
		pop = append(pop, individual{order: regeneratePermutation(netIDs, rng)})
	}
	return pop
}

func sortNetIDs(ids []board.NetID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// evaluatePopulation runs router.Route for every individual in pop in
// parallel, each with its own derived RNG stream keyed by (generation,
// index) so no two fitness evaluations ever share a *rand.Rand.
func evaluatePopulation(pcb *board.Pcb, pop []individual, router Router, opts Options, base *rand.Rand, gen uint64) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type job struct {
		idx int
		rng *rand.Rand
	}
	jobs := make(chan job)
	errs := make([]error, len(pop))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := router.Route(pcb, pop[j.idx].order, j.rng)
				if err != nil {
					errs[j.idx] = err
					continue
				}
				pop[j.idx].result = res
				pop[j.idx].cost = cost(opts, res)
			}
		}()
	}

	for i := range pop {
		stream := gen*uint64(len(pop)) + uint64(i)
		jobs <- job{idx: i, rng: deriveRNG(base, stream)}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
