package dawg

// Record is one entry of the linearized node array. Val is an ASCII letter
// ('A'-'Z') or 0 for the sentinel/root descriptor. Children is an index
// into the enclosing array; 0 means "no children."
type Record struct {
	Val       byte
	IsEnd     bool
	EndOfList bool
	Children  uint32
}

// NodeArray is the dense output of the linearizer: A[0] is the terminal
// sentinel, A[len(A)-1] is the synthetic root descriptor.
type NodeArray []Record

// linearize lays every materialized host's records out contiguously,
// starting at index 1 (index 0 is the sentinel), and appends the synthetic
// root descriptor as the final slot.
func linearize(rootList *childList, lists []*childList) NodeArray {
	hosts := compressChildLists(lists)

	total := 1 // the sentinel
	for _, h := range hosts {
		total += len(h.order)
	}

	arr := make(NodeArray, total+1) // +1 for the root descriptor
	arr[0] = Record{Val: 0, IsEnd: false, EndOfList: true, Children: 0}

	base := make(map[*childList]int, len(lists))

	type placement struct {
		idx  int
		node *dagNode
	}
	placements := make([]placement, 0, total-1)

	pos := 1
	for _, h := range hosts {
		hostBase := pos
		for i, n := range h.order {
			arr[pos] = Record{
				Val:       n.val,
				IsEnd:     n.isEnd,
				EndOfList: i == len(h.order)-1,
			}
			placements = append(placements, placement{idx: pos, node: n})
			pos++
		}
		for cl, off := range h.base {
			base[cl] = hostBase + off
		}
	}

	for _, p := range placements {
		arr[p.idx].Children = uint32(childBase(p.node.list, base))
	}

	arr[total] = Record{
		Val:       0,
		IsEnd:     false,
		EndOfList: true,
		Children:  uint32(childBase(rootList, base)),
	}
	return arr
}

// childBase returns the absolute array index a node's children start at, or
// 0 (the sentinel) for an empty or absent child list; that single value
// doubles as both "the sentinel record" and "no children" on purpose.
func childBase(cl *childList, base map[*childList]int) int {
	if cl == nil || cl.empty() {
		return 0
	}
	return base[cl]
}
