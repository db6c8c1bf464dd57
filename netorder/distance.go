package netorder

import "github.com/wireloom/boardroute/board"

// kendallTau counts the number of discordant pairs between two
// permutations of the same net-id set: positions (i, j) where the
// relative order of a[i]/a[j] differs between a and b. Used as the
// diversity metric spec.md §4.E names ("Kendall-tau distance between
// permutations; duplicates disallowed").
//
// Complexity: O(n^2), acceptable at population size 32.
func kendallTau(a, b []board.NetID) int {
	n := len(a)
	posB := make(map[board.NetID]int, n)
	for i, v := range b {
		posB[v] = i
	}
	discordant := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi, okI := posB[a[i]]
			bj, okJ := posB[a[j]]
			if !okI || !okJ {
				continue
			}
			if (bi < bj) != (i < j) {
				discordant++
			}
		}
	}
	return discordant
}

func samePermutation(a, b []board.NetID) bool {
	return kendallTau(a, b) == 0
}
