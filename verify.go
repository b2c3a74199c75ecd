package dawg

import "fmt"

// Verify re-derives the accepted language from the linearized array by DFS
// and checks it against the original input, enumerating every word arr
// accepts and comparing the result against words. It returns a
// CorruptOutput error on any mismatch.
func Verify(arr NodeArray, words []string) error {
	got := EnumerateWords(arr)

	want := make(map[string]struct{}, len(words))
	for _, w := range words {
		want[w] = struct{}{}
	}

	if len(got) != len(want) {
		return newError(CorruptOutput, fmt.Sprintf("array accepts %d words, input has %d", len(got), len(want)))
	}
	for _, w := range got {
		if _, ok := want[w]; !ok {
			return newError(CorruptOutput, fmt.Sprintf("array accepts unexpected word %q", w))
		}
	}
	return nil
}

// EnumerateWords performs a depth-first walk starting at the child run the
// root descriptor points to: it follows each run to end_of_list, recursing
// into a record's own children before deciding whether the accumulated
// prefix is itself a word.
func EnumerateWords(arr NodeArray) []string {
	if len(arr) == 0 {
		return nil
	}

	var words []string
	var walk func(i int, prefix string)
	walk = func(i int, prefix string) {
		if arr[i].Val == 0 {
			return
		}
		for {
			node := arr[i]
			word := prefix + string(node.Val)
			if node.Children != 0 {
				walk(int(node.Children), word)
			}
			if node.IsEnd {
				words = append(words, word)
			}
			if node.EndOfList {
				break
			}
			i++
		}
	}

	root := arr[len(arr)-1]
	walk(int(root.Children), "")
	return words
}
