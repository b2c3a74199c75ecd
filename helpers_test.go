// Test helpers shared across the package's test files.

package dawg

import (
	"sort"
	"testing"
)

// mustBuildTrie builds a trie over words or fails the test.
func mustBuildTrie(t *testing.T, words []string) *trieNode {
	t.Helper()
	root, err := BuildTrie(words)
	if err != nil {
		t.Fatalf("BuildTrie(%v): %v", words, err)
	}
	return root
}

// collectTrieWords recovers every word accepted by a trie rooted at root, by
// DFS, so a built trie can be checked against its input set directly.
func collectTrieWords(root *trieNode) []string {
	var words []string
	var walk func(n *trieNode, prefix string)
	walk = func(n *trieNode, prefix string) {
		word := prefix
		if n.val != 0 {
			word = prefix + string(n.val)
		}
		if n.isEnd {
			words = append(words, word)
		}
		for _, c := range n.children {
			walk(c, word)
		}
	}
	walk(root, "")
	sort.Strings(words)
	return words
}

// countDagNodes counts the distinct *dagNode values reachable from root,
// i.e. the minimized DAG's physical node count (as opposed to the trie's).
func countDagNodes(root *dagNode) int {
	seen := make(map[*dagNode]bool)
	var walk func(n *dagNode)
	walk = func(n *dagNode) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	return len(seen)
}
