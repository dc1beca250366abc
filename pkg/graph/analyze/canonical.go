package analyze

import "slices"

// Canonical returns the representative of cycle among all its rotations and
// its reversal's rotations: the lexicographically smallest of them.
func Canonical(cycle []string) []string {
	if len(cycle) == 0 {
		return nil
	}
	best := smallestRotation(cycle)
	rev := slices.Clone(cycle)
	slices.Reverse(rev)
	if r := smallestRotation(rev); slices.Compare(r, best) < 0 {
		best = r
	}
	return best
}

// Equivalent reports whether a and b describe the same cycle, ignoring the
// starting node and the direction of traversal.
func Equivalent(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(Canonical(a), Canonical(b))
}

func smallestRotation(s []string) []string {
	var best []string
	for i := range s {
		rot := append(slices.Clone(s[i:]), s[:i]...)
		if best == nil || slices.Compare(rot, best) < 0 {
			best = rot
		}
	}
	return best
}
