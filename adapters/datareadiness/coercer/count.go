package coercer

// Unique returns the distinct labels in first-seen order.
func Unique(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// UniqueFromMatrix returns the distinct labels across all rows in first-seen
// order.
func UniqueFromMatrix(matrix [][]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range matrix {
		for _, l := range row {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// OccurrencesOf counts how many times label appears.
func OccurrencesOf(labels []string, label string) int {
	n := 0
	for _, l := range labels {
		if l == label {
			n++
		}
	}
	return n
}

// Frequencies returns the distinct labels and their counts, both in
// first-seen order.
func Frequencies(labels []string) ([]string, []int) {
	unique := Unique(labels)
	index := make(map[string]int, len(unique))
	for i, u := range unique {
		index[u] = i
	}
	counts := make([]int, len(unique))
	for _, l := range labels {
		counts[index[l]]++
	}
	return unique, counts
}

// CountsAgainst counts each category of labels in the order given by
// categories. Labels missing from categories are ignored.
func CountsAgainst(labels, categories []string) []int {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	counts := make([]int, len(categories))
	for _, l := range labels {
		if i, ok := index[l]; ok {
			counts[i]++
		}
	}
	return counts
}
