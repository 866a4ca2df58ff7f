package poker

// IndexCombinations generates all k-element subsets of [0, n) in
// lexicographic order, so callers that rank them pick deterministically.
func IndexCombinations(n, k int) [][]int {
	if k > n || k < 0 {
		return nil
	}

	combinations := [][]int{}
	combination := make([]int, k)

	var generate func(start, depth int)
	generate = func(start, depth int) {
		if depth == k {
			combinationCopy := make([]int, k)
			copy(combinationCopy, combination)
			combinations = append(combinations, combinationCopy)
			return
		}
		for i := start; i < n; i++ {
			combination[depth] = i
			generate(i+1, depth+1)
		}
	}
	generate(0, 0)

	return combinations
}
