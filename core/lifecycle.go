package core

// ResetSearch restores the search scratch of every traversable node in
// t to its initial values: G and Cost to Infinity, H to zero, Parent to
// NoParent. It is the explicit lifecycle step that makes consecutive
// runs on the same topology independent of each other.
//
// Complexity: O(V).
func ResetSearch(t Topology) {
	for id := 0; id < t.Order(); id++ {
		n := t.Node(id)
		if n == nil {
			continue // non-traversable slot (e.g. wall cell)
		}
		n.State = State{
			G:      Infinity,
			H:      0,
			Cost:   Infinity,
			Parent: NoParent,
		}
	}
}

// ValidateEndpoints rejects a search before it begins when t is nil or
// when start/target do not name traversable nodes of t. Both failure
// modes wrap nothing: they are pure sentinel results.
func ValidateEndpoints(t Topology, start, target int) error {
	// 1) The topology itself must exist.
	if t == nil {
		return ErrNilTopology
	}

	// 2) Both endpoints must be traversable members of t. Node returns
	//    nil for out-of-range indices and for non-traversable positions,
	//    so one check covers both rejection reasons.
	if t.Node(start) == nil || t.Node(target) == nil {
		return ErrNotInTopology
	}

	return nil
}
