package pkgtable

import "fmt"

// normalizeHeader names blank columns "Unnamed: i" and disambiguates repeated
// names as name, name.1, name.2, skipping suffixes already taken.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	counts := make(map[string]int, len(header))

	for i, col := range header {
		if col == "" {
			col = fmt.Sprintf("Unnamed: %d", i)
		}

		cur := counts[col]
		for cur > 0 {
			counts[col] = cur + 1
			col = fmt.Sprintf("%s.%d", col, cur)
			cur = counts[col]
		}

		out[i] = col
		counts[col] = cur + 1
	}

	return out
}
