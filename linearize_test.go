package dawg

import "testing"

// buildArray runs stages 1-5 over words, failing the test on any error.
func buildArray(t *testing.T, words []string) NodeArray {
	t.Helper()
	root, err := BuildTrie(words)
	if err != nil {
		t.Fatalf("BuildTrie: %v", err)
	}
	dag := minimize(root)
	rootList, lists := canonicalizeChildLists(dag)
	return linearize(rootList, lists)
}

// TestLinearizeSingleWord checks a single-word dictionary.
func TestLinearizeSingleWord(t *testing.T) {
	arr := buildArray(t, []string{"A"})

	if len(arr) != 3 {
		t.Fatalf("len(arr) = %d, want 3 (M=3)", len(arr))
	}
	if arr[0] != (Record{Val: 0, IsEnd: false, EndOfList: true, Children: 0}) {
		t.Errorf("A[0] = %+v, want the sentinel", arr[0])
	}
	if arr[1].Val != 'A' || !arr[1].IsEnd || !arr[1].EndOfList || arr[1].Children != 0 {
		t.Errorf("A[1] = %+v, want (val='A', is_end, end_of_list, children=0)", arr[1])
	}
	root := arr[len(arr)-1]
	if root.Children != 1 {
		t.Errorf("root descriptor points at %d, want 1", root.Children)
	}
}

// TestLinearizeSharedPrefix checks a two-word dictionary sharing a prefix.
func TestLinearizeSharedPrefix(t *testing.T) {
	arr := buildArray(t, []string{"AB", "AC"})

	// sentinel + the {A} run + the {B,C} run + the root descriptor.
	if len(arr) != 5 {
		t.Fatalf("len(arr) = %d, want 5 (M=5)", len(arr))
	}

	root := arr[len(arr)-1]
	aIdx := int(root.Children)
	if arr[aIdx].Val != 'A' || !arr[aIdx].EndOfList {
		t.Fatalf("expected a single-member run containing 'A' at %d, got %+v", aIdx, arr[aIdx])
	}

	bcBase := int(arr[aIdx].Children)
	seen := map[byte]bool{}
	for i := bcBase; ; i++ {
		r := arr[i]
		if !r.IsEnd {
			t.Errorf("record %+v at %d should be is_end", r, i)
		}
		seen[r.Val] = true
		if r.EndOfList {
			break
		}
	}
	if !seen['B'] || !seen['C'] || len(seen) != 2 {
		t.Errorf("B/C run = %v, want exactly {B, C}", seen)
	}
}

// TestLinearizeSharedChildList checks that the {B,C} list is a single
// materialized run shared by both 'A' and 'X'.
func TestLinearizeSharedChildList(t *testing.T) {
	arr := buildArray(t, []string{"AB", "AC", "XB", "XC"})

	root := arr[len(arr)-1]
	var aIdx, xIdx int
	for i, r := range arr {
		if r.Val == 'A' {
			aIdx = i
		}
		if r.Val == 'X' {
			xIdx = i
		}
	}
	_ = root
	if arr[aIdx].Children != arr[xIdx].Children {
		t.Errorf("A and X should point at the same child run: %d vs %d", arr[aIdx].Children, arr[xIdx].Children)
	}
}

// TestLinearizeWordIsAlsoPrefix checks that "A" is itself a word AND a
// prefix of "AB".
func TestLinearizeWordIsAlsoPrefix(t *testing.T) {
	arr := buildArray(t, []string{"A", "AB"})

	root := arr[len(arr)-1]
	aIdx := int(root.Children)
	a := arr[aIdx]
	if !a.IsEnd {
		t.Error("'A' should be is_end")
	}
	if a.Children == 0 {
		t.Error("'A' should also have non-empty children (pointing at the 'B' run)")
	}
	b := arr[a.Children]
	if b.Val != 'B' || !b.IsEnd {
		t.Errorf("child run of 'A' = %+v, want the 'B' leaf", b)
	}
}

func TestLinearizeSentinelStability(t *testing.T) {
	arr := buildArray(t, []string{"A", "B", "C"})
	want := Record{Val: 0, IsEnd: false, EndOfList: true, Children: 0}
	if arr[0] != want {
		t.Errorf("A[0] = %+v, want %+v", arr[0], want)
	}
}

// TestLinearizeEndOfListExactness checks that every host run has exactly
// one end_of_list record, and it's the last member of that run.
func TestLinearizeEndOfListExactness(t *testing.T) {
	words := []string{"APPLE", "APRICOT", "BANANA", "BANANAS", "BERRY"}
	arr := buildArray(t, words)

	i := 1
	for i < len(arr)-1 {
		runStart := i
		for !arr[i].EndOfList {
			i++
			if i >= len(arr)-1 {
				t.Fatalf("run starting at %d never terminates with end_of_list", runStart)
			}
		}
		i++ // step past the end_of_list record into the next run
	}

	// The host runs are laid out from index 1 in the order
	// compressChildLists returns them; only each run's last record may
	// carry end_of_list.
	_, lists := canonicalizeChildLists(minimize(mustBuildTrie(t, words)))
	pos := 1
	for _, h := range compressChildLists(lists) {
		for k := range h.order {
			want := k == len(h.order)-1
			if arr[pos+k].EndOfList != want {
				t.Errorf("record %d (member %d of a %d-member run): end_of_list = %v, want %v", pos+k, k, len(h.order), arr[pos+k].EndOfList, want)
			}
		}
		pos += len(h.order)
	}
	if pos != len(arr)-1 {
		t.Errorf("host runs end at %d, want %d (the root descriptor)", pos, len(arr)-1)
	}
}

func TestLinearizeRoundTripsAcrossDictionaries(t *testing.T) {
	dictionaries := [][]string{
		{"A"},
		{"AB", "AC"},
		{"CAR", "CARS", "CAT", "CATS"},
		{"AB", "AC", "XB", "XC"},
		{"A", "AB"},
		{"BAE", "BAM", "CE"},
	}

	for _, words := range dictionaries {
		arr := buildArray(t, words)
		if err := Verify(arr, words); err != nil {
			t.Errorf("Verify(%v): %v", words, err)
		}
	}
}
