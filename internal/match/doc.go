// Package match provides bone-name normalization, the bone-name alias table,
// Levenshtein distance calculation, and candidate ranking for bone matching.
//
// Key functions:
//   - StripDecorations: removes "(Prefix) Name (Suffix)" decorations
//   - NormalizeBoneName: decoration stripping plus case folding for comparisons
//   - AliasTable.Match: synonym lookup used when exact-name matching fails
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks sibling bone names for "did you mean" suggestions
package match
