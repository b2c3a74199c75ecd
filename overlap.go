package dawg

import (
	"bytes"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// hostChain is a materialized child-list (chain[0]) together with the
// aliased sub-lists stored as its trailing segments, outer to inner:
// chain[i+1]'s member set is a strict subset of chain[i]'s.
type hostChain struct {
	chain []*childList
	alive bool // false once this list has itself been aliased into another host
}

// materializedHost is a host chain after bucket-by-depth ordering: order is
// the final physical sequence of members, and base maps each childList in
// the chain (the host itself included) to its offset from the start of
// order. The linearizer adds the host's absolute array position to these
// offsets once it is known.
type materializedHost struct {
	host  *childList
	order []*dagNode
	base  map[*childList]int
}

// compressChildLists decides host/alias roles for every list in lists and
// returns one materializedHost per surviving host, in a deterministic order.
//
// Given the set of distinct non-empty child-lists, each list is either
// materialized as its own contiguous run, or aliased as a contiguous
// trailing suffix of another materialized run ("host") whose member set is
// a strict superset. A host accumulates a chain of progressively smaller
// aliased sub-lists; within the host's run the physical order of records is
// free (readers scan forward to end_of_list, matching by val, never
// assuming alphabetical order), and that freedom is what makes each
// sub-list a valid trailing suffix.
func compressChildLists(lists []*childList) []*materializedHost {
	chains := assignHostChains(lists)

	hosts := make([]*materializedHost, len(chains))
	for i, hc := range chains {
		hosts[i] = materializeHost(hc)
	}
	return hosts
}

func assignHostChains(lists []*childList) []*hostChain {
	compress := make(map[*childList]*hostChain, len(lists))
	for _, cl := range lists {
		compress[cl] = &hostChain{chain: []*childList{cl}, alive: true}
	}

	inverse := buildInverseIndex(lists)
	popularity := make(map[*childList]int, len(lists))
	for _, cl := range lists {
		sum := 0
		for _, m := range cl.members {
			sum += len(inverse[m])
		}
		popularity[cl] = sum
	}

	// Sort each node's inverse entry ascending: the easiest hosts to commit
	// to (fewest members, rarest members) come first.
	for _, il := range inverse {
		il := il
		sort.Slice(il, func(i, j int) bool {
			return lessByEaseOfHosting(il[i], il[j], popularity)
		})
	}

	// Process candidates largest-first; among equal sizes, the ones with the
	// smallest popularity sum commit earliest (see DESIGN.md's Open
	// Question #2 for why this tie-break direction was chosen).
	candidates := append([]*childList(nil), lists...)
	sort.Slice(candidates, func(i, j int) bool {
		return lessByCommitPriority(candidates[i], candidates[j], popularity)
	})

	for _, cl := range candidates {
		host := findHost(cl, inverse, compress)
		if host != nil {
			compress[host].chain = append(compress[host].chain, cl)
			compress[cl].alive = false
		}
	}

	survivors := make([]*hostChain, 0, len(lists))
	for _, cl := range lists {
		if hc := compress[cl]; hc.alive {
			survivors = append(survivors, hc)
		}
	}
	sort.Slice(survivors, func(i, j int) bool {
		return bytes.Compare(survivors[i].chain[0].key[:], survivors[j].chain[0].key[:]) < 0
	})
	return survivors
}

// findHost scans the inverse list of cl's least-popular member (the
// shortest list of candidate hosts to check) for the first alive host whose
// current deepest member is a strict superset of cl.
func findHost(cl *childList, inverse map[*dagNode][]*childList, compress map[*childList]*hostChain) *childList {
	shortest := shortestInverseList(cl, inverse)
	for _, host := range shortest {
		if host == cl {
			continue
		}
		hc := compress[host]
		if hc.alive && isStrictSubset(cl, hc.chain[len(hc.chain)-1]) {
			return host
		}
	}
	return nil
}

func shortestInverseList(cl *childList, inverse map[*dagNode][]*childList) []*childList {
	var shortest []*childList
	for _, m := range cl.members {
		il := inverse[m]
		if shortest == nil || len(il) < len(shortest) {
			shortest = il
		}
	}
	return shortest
}

func buildInverseIndex(lists []*childList) map[*dagNode][]*childList {
	inverse := make(map[*dagNode][]*childList)
	for _, cl := range lists {
		for _, m := range cl.members {
			inverse[m] = append(inverse[m], cl)
		}
	}
	return inverse
}

func lessByEaseOfHosting(a, b *childList, popularity map[*childList]int) bool {
	if len(a.members) != len(b.members) {
		return len(a.members) < len(b.members)
	}
	if popularity[a] != popularity[b] {
		return popularity[a] < popularity[b]
	}
	return bytes.Compare(a.key[:], b.key[:]) < 0
}

func lessByCommitPriority(a, b *childList, popularity map[*childList]int) bool {
	if len(a.members) != len(b.members) {
		return len(a.members) > len(b.members) // larger lists first
	}
	if popularity[a] != popularity[b] {
		return popularity[a] < popularity[b]
	}
	return bytes.Compare(a.key[:], b.key[:]) < 0
}

// isStrictSubset reports whether every member of small is, by node
// identity, also a member of big, and small has strictly fewer members. The
// 26-letter bitmask is checked first as a cheap pre-filter: if small's
// letters aren't a subset of big's letters, no identity match is possible
// either, so the O(n+m) merge-join below can be skipped.
func isStrictSubset(small, big *childList) bool {
	if len(small.members) >= len(big.members) {
		return false
	}

	sb := bitset.From([]uint64{uint64(small.letters)})
	bb := bitset.From([]uint64{uint64(big.letters)})
	if !bb.IsSuperSet(sb) {
		return false
	}

	i := 0
	for _, bm := range big.members {
		if i < len(small.members) && small.members[i] == bm {
			i++
		}
	}
	return i == len(small.members)
}

// materializeHost buckets a host chain's members by the deepest aliased
// sub-list that still contains them, so each sub-list ends up as a
// contiguous trailing block of the chosen order.
func materializeHost(hc *hostChain) *materializedHost {
	host := hc.chain[0]
	if len(hc.chain) == 1 {
		base := map[*childList]int{host: 0}
		return &materializedHost{host: host, order: host.members, base: base}
	}

	depth := make(map[*dagNode]int, len(host.members))
	for i, cl := range hc.chain {
		for _, m := range cl.members {
			depth[m] = i // later (deeper) chain entries overwrite shallower ones
		}
	}

	order := append([]*dagNode(nil), host.members...)
	sort.Slice(order, func(i, j int) bool {
		di, dj := depth[order[i]], depth[order[j]]
		if di != dj {
			return di < dj
		}
		return order[i].val < order[j].val
	})

	base := make(map[*childList]int, len(hc.chain))
	n := len(host.members)
	for _, cl := range hc.chain {
		base[cl] = n - len(cl.members)
	}
	return &materializedHost{host: host, order: order, base: base}
}
