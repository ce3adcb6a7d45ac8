package match

import (
	"sort"
	"strings"
)

// Candidate represents a potential avatar bone for an unmatched wearable bone.
type Candidate struct {
	// Name is the raw avatar-side bone name.
	Name string

	// NameScore is the normalized Levenshtein similarity (0-1).
	NameScore float64
	// Contains is true if one normalized name contains the other.
	Contains bool

	// CombinedScore is used for ranking (higher is better).
	CombinedScore float64

	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates ranks sibling bone names by similarity to the given name.
// Returns candidates sorted by combined score (descending).
func RankCandidates(name string, siblings []string) CandidateList {
	target := NormalizeBoneName(name)

	candidates := make(CandidateList, 0, len(siblings))

	for _, sibling := range siblings {
		norm := NormalizeBoneName(sibling)
		score := LevenshteinNormalized(norm, target)
		contains := target != "" && norm != "" &&
			(strings.Contains(norm, target) || strings.Contains(target, norm))

		candidates = append(candidates, Candidate{
			Name:           sibling,
			NameScore:      score,
			Contains:       contains,
			CombinedScore:  calculateCombinedScore(score, contains),
			NormalizedName: norm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// calculateCombinedScore computes a combined score from name similarity and containment.
// Weights:
//   - Name similarity: 80% (0.0-0.8)
//   - Containment: 20% (0.0-0.2)
func calculateCombinedScore(nameScore float64, contains bool) float64 {
	const (
		nameWeight     = 0.8
		containsWeight = 0.2
	)

	score := nameScore * nameWeight
	if contains {
		score += containsWeight
	}

	return score
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the raw names of the candidates, in order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns up to n sibling names that look like plausible matches.
func Suggest(name string, siblings []string, n int) []string {
	return RankCandidates(name, siblings).AboveThreshold(DefaultSuggestionScore).Top(n).Names()
}

// DefaultSuggestionScore is the minimum combined score for a name to be suggested.
const DefaultSuggestionScore = 0.5
