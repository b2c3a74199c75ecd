package dawg

import "lukechampine.com/blake3"

// childList is a canonical, value-typed handle for an ordered tuple of
// dagNodes. The overlap compressor and the linearizer reason about
// child-list identity, not structural equality, so every dagNode that
// shares the same ordered set of children must point at the exact same
// *childList instance.
type childList struct {
	members []*dagNode // sorted by val, as produced by the minimizer
	letters uint32     // bit i set iff a member has val == 'A'+i
	key     [16]byte   // canonical identity key, concat of member hashes
}

func (c *childList) empty() bool { return len(c.members) == 0 }

// canonicalizeChildLists walks the minimized DAG reachable from root and
// rewrites every dagNode's children slice to the one canonical *childList
// instance for that sequence of members, returning the distinct non-empty
// lists found (in first-visited order, which is deterministic given the
// deterministic post-order minimize() pass).
func canonicalizeChildLists(root *dagNode) (rootList *childList, lists []*childList) {
	canon := make(map[[16]byte]*childList)
	visited := make(map[*dagNode]*childList)

	var visit func(n *dagNode) *childList
	visit = func(n *dagNode) *childList {
		if cl, ok := visited[n]; ok {
			return cl
		}

		key := childListKey(n.children)
		cl, ok := canon[key]
		if !ok {
			cl = &childList{members: n.children, key: key, letters: letterMask(n.children)}
			canon[key] = cl
			if !cl.empty() {
				lists = append(lists, cl)
			}
		}
		visited[n] = cl
		n.list = cl

		for _, c := range n.children {
			visit(c)
		}
		return cl
	}

	rootList = visit(root)
	return rootList, lists
}

// childListKey is the concatenation of member hashes, digested again. Two
// children slices with the same ordered sequence of member identities
// always produce the same key, which is exactly the structural-equality
// rule a canonical child-list handle needs.
func childListKey(children []*dagNode) [16]byte {
	if len(children) == 0 {
		return [16]byte{}
	}
	buf := make([]byte, 0, 16*len(children))
	for _, c := range children {
		buf = append(buf, c.hash[:]...)
	}

	full := blake3.Sum256(buf)
	var out [16]byte
	copy(out[:], full[:16])
	return out
}

func letterMask(children []*dagNode) uint32 {
	var mask uint32
	for _, c := range children {
		if c.val >= 'A' && c.val <= 'Z' {
			mask |= 1 << uint(c.val-'A')
		}
	}
	return mask
}
