// Package dawg compiles a sorted, duplicate-free list of words into a
// minimal directed acyclic word graph and packs it into a compact binary
// array.
//
// The pipeline runs in seven stages: the Trie Builder (this file) inserts
// words into an uncompressed trie; the Node Minimizer hashes every subtree
// and collapses structurally identical ones; the Child-List Canonicalizer
// gives every distinct child sequence a single shared instance; the Overlap
// Compressor aliases child lists whose members are a strict subset of
// another list's; the Array Linearizer lays the result out as a flat
// array; the Verifier re-derives the accepted language from that array and
// checks it against the input; and the Bit-Packed Encoder serializes the
// array into one of two fixed-width binary record formats.
package dawg

// trieNode is a single letter in the uncompressed trie. val is the zero
// byte only at the root.
//
// Unlike a compressed (radix) trie, which stores a run of characters as a
// single edge label, this trie stores exactly one letter per node. That is
// deliberate: the Node Minimizer hashes each node's subtree to find shared
// suffixes, and a one-letter-per-node trie is what makes that hash cheap and
// the resulting DAWG maximally shared. Label compression would just have to
// be undone before minimization could start.
type trieNode struct {
	val      byte
	isEnd    bool
	children []*trieNode // ordered by val, by construction
}

// Builder accumulates a sorted, duplicate-free sequence of words into a
// trie. Words must be inserted in sorted order; Insert returns an
// InvalidInput error otherwise.
type Builder struct {
	root *trieNode
	prev string
	n    int
}

// NewBuilder returns an empty Builder ready for word insertion.
func NewBuilder() *Builder {
	return &Builder{root: &trieNode{}}
}

// Insert adds word to the trie. Words must arrive in strictly sorted order.
func (b *Builder) Insert(word string) error {
	if err := validateWord(word); err != nil {
		return err
	}
	if b.n > 0 && word <= b.prev {
		return newError(InvalidInput, "word list not sorted or contains a duplicate")
	}

	cur := b.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		// Only works because the input is pre-sorted: the next distinct
		// letter at this depth is always greater than the last child
		// appended, so the last child is the only one worth checking.
		if len(cur.children) == 0 || cur.children[len(cur.children)-1].val != c {
			cur.children = append(cur.children, &trieNode{val: c})
		}
		cur = cur.children[len(cur.children)-1]
	}
	cur.isEnd = true

	b.prev = word
	b.n++
	return nil
}

// Root returns the trie's root node. Valid even for an empty Builder (an
// empty root with no children and isEnd false).
func (b *Builder) Root() *trieNode {
	return b.root
}

// BuildTrie is a convenience wrapper that inserts every word in words, in
// order, and returns the resulting root.
func BuildTrie(words []string) (*trieNode, error) {
	b := NewBuilder()
	for _, w := range words {
		if err := b.Insert(w); err != nil {
			return nil, err
		}
	}
	return b.Root(), nil
}
