package core

// Retrace walks parent indices backward from target until it reaches
// start, then returns the forward sequence [start, ..., target].
// Comparison is by node index (identity), never by position, since
// distinct nodes may share coordinates.
//
// Errors:
//
//   - ErrBrokenChain if an unset parent (NoParent) is met before start,
//     or if the walk exceeds Order() steps (a parent cycle). Either case
//     means the scratch state was corrupted or reused across runs; a
//     correct search run can never produce it.
//
// The start == target case returns the single-node path.
//
// Complexity: O(path length), bounded by O(V) via the cycle guard.
func Retrace(t Topology, start, target int) (Path, error) {
	// 1) Accumulate nodes target→start following Parent indices.
	reversed := make([]*Node, 0, 8)
	cur := target

	// 2) The cycle guard: a valid parent chain visits each node at most
	//    once, so more than Order() hops proves a cycle.
	for steps := 0; ; steps++ {
		n := t.Node(cur)
		if n == nil {
			return Path{}, ErrBrokenChain
		}
		reversed = append(reversed, n)
		if cur == start {
			break
		}
		if n.State.Parent == NoParent || steps >= t.Order() {
			return Path{}, ErrBrokenChain
		}
		cur = n.State.Parent
	}

	// 3) Reverse in place to obtain start→target order.
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return Path{Nodes: reversed}, nil
}
