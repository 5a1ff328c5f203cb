package stdimg

import (
	"cmp"
	"fmt"
	"slices"
)

// Policy selects where the rebalancer sends pixels it moves away from an
// over-represented color.
type Policy string

const (
	// PolicyNext always moves excess pixels of index i to (i+1) mod 3.
	PolicyNext Policy = "next"
	// PolicyNearest moves each excess pixel to whichever of the two other
	// colors is closer to it, preferring (i+1) mod 3 on a tie.
	PolicyNearest Policy = "nearest"
)

// ParsePolicy maps a policy name to a Policy. The empty string selects PolicyNext.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyNext:
		return PolicyNext, nil
	case PolicyNearest:
		return PolicyNearest, nil
	}
	return "", fmt.Errorf("unknown rebalance policy %q (want %s or %s)", s, PolicyNext, PolicyNearest)
}

// Rebalance pushes each palette index toward total/3 pixels. Indices are
// handled once each, in order 0, 1, 2; counts seen by later indices include
// moves made earlier. Within an index the pixels with the smallest combined
// distance to the two other colors move first, scan order breaking ties.
//
// The pass is greedy and one-directional, so the final split is only close
// to equal thirds and depends on palette order.
//
// Rebalance mutates a and returns how many pixels left each index.
func Rebalance(a *Assignment, d Distances, policy Policy) [3]int {
	if len(d) != len(a.Labels) {
		panic(fmt.Sprintf("stdimg: %d distances for %d labels", len(d), len(a.Labels)))
	}
	var moved [3]int
	target := len(a.Labels) / 3
	counts := a.Counts()
	for i := 0; i < 3; i++ {
		excess := counts[i] - target
		if excess <= 0 {
			continue
		}
		next := (i + 1) % 3
		other := (i + 2) % 3

		members := make([]int, 0, counts[i])
		for p, l := range a.Labels {
			if int(l) == i {
				members = append(members, p)
			}
		}
		slices.SortStableFunc(members, func(p, q int) int {
			return cmp.Compare(d[p][next]+d[p][other], d[q][next]+d[q][other])
		})

		for _, p := range members[:excess] {
			to := next
			if policy == PolicyNearest && d[p][other] < d[p][next] {
				to = other
			}
			a.Labels[p] = uint8(to)
			counts[i]--
			counts[to]++
		}
		moved[i] = excess
	}
	return moved
}
