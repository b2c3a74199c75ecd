package dawg

import (
	"lukechampine.com/blake3"
)

// dagNode is a node of the minimized DAWG: an arena-free handle is just the
// Go pointer itself, since the DAG has in-degree > 1 and Go's GC is
// perfectly happy tracing a shared acyclic pointer graph. hash identifies
// the subtree's regular language and is only meaningful during minimization
// and child-list canonicalization.
type dagNode struct {
	val      byte
	isEnd    bool
	children []*dagNode // canonical slice instance, see childlist.go
	list     *childList // this node's children, as a canonical handle; nil/empty means no children
	hash     [16]byte
}

// minimize walks root in post-order, computing a 128-bit structural hash for
// every subtree and collapsing any two subtrees that hash equal into a
// single representative node. The result is a minimal DAWG: two subtrees
// accepting the same language share one physical node.
func minimize(root *trieNode) *dagNode {
	m := &minimizer{
		seen: make(map[[16]byte]*dagNode),
	}
	return m.visit(root)
}

type minimizer struct {
	seen map[[16]byte]*dagNode
}

func (m *minimizer) visit(n *trieNode) *dagNode {
	children := make([]*dagNode, len(n.children))
	for i, c := range n.children {
		children[i] = m.visit(c)
	}

	h := structuralHash(n.isEnd, n.val, children)
	if existing, ok := m.seen[h]; ok {
		return existing
	}

	dn := &dagNode{val: n.val, isEnd: n.isEnd, children: children, hash: h}
	m.seen[h] = dn
	return dn
}

// structuralHash computes H(is_end_byte || val || concat(child hashes)): a
// 128-bit digest, taken as the first 16 bytes of blake3's 256-bit sum. Any
// two subtrees with the same (isEnd, val, ordered child hashes) produce the
// same digest and are treated as structurally equal, which is exactly the
// dedup rule the minimizer wants.
func structuralHash(isEnd bool, val byte, children []*dagNode) [16]byte {
	buf := make([]byte, 0, 2+16*len(children))
	if isEnd {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, val)
	for _, c := range children {
		buf = append(buf, c.hash[:]...)
	}

	full := blake3.Sum256(buf)
	var out [16]byte
	copy(out[:], full[:16])
	return out
}
