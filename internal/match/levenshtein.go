package match

// Levenshtein returns the edit distance between a and b counted in runes, so
// that bone names such as "左腕" and "右腕" differ by one edit.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// row[i] holds the distance between ra[:i] and the processed prefix of rb.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			sub := diag
			if ca != cb {
				sub++
			}

			diag = row[i+1]
			row[i+1] = min(row[i+1]+1, row[i]+1, sub)
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized maps the distance to a similarity in [0, 1], where 1
// means equal strings.
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// BoneNameSimilarity compares two bone names after NormalizeBoneName.
func BoneNameSimilarity(a, b string) float64 {
	return LevenshteinNormalized(NormalizeBoneName(a), NormalizeBoneName(b))
}
