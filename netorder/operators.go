package netorder

import (
	"math/rand"

	"github.com/wireloom/boardroute/board"
)

// Crossover operators, each permutation-preserving over []board.NetID.
// Shapes mirror router.rs's Evaluator::crossover match arms one-for-one:
// 0 no-op, 1 PMX, 2 order crossover, 3 cycle crossover.

const NumCrossover = 4
const NumMutation = 4

func crossover(idx int, s1, s2 []board.NetID, rng *rand.Rand) {
	switch idx {
	case 0:
		// no-op
	case 1:
		crossoverPMX(s1, s2, rng)
	case 2:
		crossoverOrder(s1, s2, rng)
	case 3:
		crossoverCycle(s1, s2)
	}
}

// crossoverPMX performs partially-mapped crossover in place on s1 and s2
// over a shared random cut range [a, b): each child keeps its own values
// outside the segment and the other parent's values inside it, with
// out-of-segment duplicates resolved by following the mapping between the
// two parents' segments until a value not already placed is found.
func crossoverPMX(s1, s2 []board.NetID, rng *rand.Rand) {
	n := len(s1)
	if n < 2 || len(s2) != n {
		return
	}
	a, b := randRange(rng, n)
	c1 := pmxChild(s1, s2, a, b)
	c2 := pmxChild(s2, s1, a, b)
	copy(s1, c1)
	copy(s2, c2)
}

// pmxChild builds one PMX child: keepParent's values outside [a, b),
// segParent's values inside it.
func pmxChild(keepParent, segParent []board.NetID, a, b int) []board.NetID {
	n := len(keepParent)
	child := append([]board.NetID(nil), keepParent...)
	mapping := make(map[board.NetID]board.NetID, b-a)
	for i := a; i < b; i++ {
		child[i] = segParent[i]
		mapping[segParent[i]] = keepParent[i]
	}
	inSegment := make(map[board.NetID]bool, b-a)
	for i := a; i < b; i++ {
		inSegment[child[i]] = true
	}
	for i := 0; i < n; i++ {
		if i >= a && i < b {
			continue
		}
		v := keepParent[i]
		for inSegment[v] {
			mapped, ok := mapping[v]
			if !ok {
				break
			}
			v = mapped
		}
		child[i] = v
	}
	return child
}

// crossoverOrder performs order crossover (OX1): copy a random slice from
// s1 into the child verbatim, then fill remaining positions with s2's
// values in s2's order, skipping values already present.
func crossoverOrder(s1, s2 []board.NetID, rng *rand.Rand) {
	n := len(s1)
	if n < 2 || len(s2) != n {
		return
	}
	a, b := randRange(rng, n)

	buildChild := func(keep, other []board.NetID) []board.NetID {
		child := make([]board.NetID, n)
		present := make(map[board.NetID]bool, n)
		for i := a; i < b; i++ {
			child[i] = keep[i]
			present[keep[i]] = true
		}
		rotated := make([]board.NetID, n)
		copy(rotated, other[b:])
		copy(rotated[n-b:], other[:b])

		pos := b % n
		for _, v := range rotated {
			if present[v] {
				continue
			}
			child[pos] = v
			present[v] = true
			pos = (pos + 1) % n
			if pos == a {
				break
			}
		}
		return child
	}

	c1 := buildChild(s1, s2)
	c2 := buildChild(s2, s1)
	copy(s1, c1)
	copy(s2, c2)
}

// crossoverCycle performs cycle crossover: partitions positions into
// cycles linking s1 and s2 by value, then alternates which parent
// contributes each cycle to each child.
func crossoverCycle(s1, s2 []board.NetID) {
	n := len(s1)
	if n < 2 || len(s2) != n {
		return
	}
	posOf2 := make(map[board.NetID]int, n)
	for i, v := range s2 {
		posOf2[v] = i
	}

	c1 := append([]board.NetID(nil), s1...)
	c2 := append([]board.NetID(nil), s2...)
	visited := make([]bool, n)
	fromSecond := false

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		i := start
		for !visited[i] {
			visited[i] = true
			if fromSecond {
				c1[i], c2[i] = s2[i], s1[i]
			}
			i = posOf2[s1[i]]
		}
		fromSecond = !fromSecond
	}
	copy(s1, c1)
	copy(s2, c2)
}

// randRange returns a random [a, b) with 0 <= a < b <= n, n >= 2.
func randRange(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a == b {
		b = (b + 1) % n
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// mutate applies mutation operator idx to s with probability rate; shapes
// mirror router.rs's Evaluator::mutate: 0 swap, 1 remove-and-reinsert,
// 2 scramble sub-range, 3 reverse sub-range.
func mutate(idx int, s []board.NetID, rate float64, rng *rand.Rand) {
	if rng.Float64() > rate {
		return
	}
	switch idx {
	case 0:
		mutateSwap(s, rng)
	case 1:
		mutateInsert(s, rng)
	case 2:
		mutateScramble(s, rng)
	case 3:
		mutateInversion(s, rng)
	}
}

func mutateSwap(s []board.NetID, rng *rand.Rand) {
	if len(s) < 2 {
		return
	}
	i, j := rng.Intn(len(s)), rng.Intn(len(s))
	s[i], s[j] = s[j], s[i]
}

// mutateInsert removes one element and reinserts it at a random position,
// which may be the one it came from ("remove-and-reinsert one element").
func mutateInsert(s []board.NetID, rng *rand.Rand) {
	n := len(s)
	if n < 2 {
		return
	}
	from := rng.Intn(n)
	to := rng.Intn(n)
	v := s[from]

	without := make([]board.NetID, 0, n-1)
	without = append(without, s[:from]...)
	without = append(without, s[from+1:]...)
	if to > len(without) {
		to = len(without)
	}

	out := make([]board.NetID, 0, n)
	out = append(out, without[:to]...)
	out = append(out, v)
	out = append(out, without[to:]...)
	copy(s, out)
}

func mutateScramble(s []board.NetID, rng *rand.Rand) {
	a, b := randRange(rng, len(s))
	sub := s[a:b]
	rng.Shuffle(len(sub), func(i, j int) { sub[i], sub[j] = sub[j], sub[i] })
}

func mutateInversion(s []board.NetID, rng *rand.Rand) {
	a, b := randRange(rng, len(s))
	for i, j := a, b-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
