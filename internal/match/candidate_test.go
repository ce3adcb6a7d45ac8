package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	siblings := []string{"Spine", "UpperLeg.R", "UpperLeg.L", "Head"}

	candidates := RankCandidates("Upper_Leg.L", siblings)
	require.Len(t, candidates, 4)

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "UpperLeg.L", best.Name)
	assert.Equal(t, "UpperLeg.R", candidates[1].Name)

	// Sorted descending
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].CombinedScore, candidates[i].CombinedScore)
	}
}

func TestRankCandidatesContainment(t *testing.T) {
	candidates := RankCandidates("Hips", []string{"Hips_Root", "Head"})
	require.Len(t, candidates, 2)

	assert.Equal(t, "Hips_Root", candidates[0].Name)
	assert.True(t, candidates[0].Contains)
	assert.False(t, candidates[1].Contains)
}

func TestRankCandidatesTieBreaksByName(t *testing.T) {
	candidates := RankCandidates("X", []string{"B", "A"})
	require.Len(t, candidates, 2)

	assert.Equal(t, "A", candidates[0].Name)
	assert.Equal(t, "B", candidates[1].Name)
}

func TestCandidateListHelpers(t *testing.T) {
	var empty CandidateList
	assert.Nil(t, empty.Best())
	assert.Empty(t, empty.Top(3))
	assert.Empty(t, empty.Names())

	list := CandidateList{
		{Name: "a", CombinedScore: 0.9},
		{Name: "b", CombinedScore: 0.6},
		{Name: "c", CombinedScore: 0.2},
	}

	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.5).Names())
}

func TestSuggest(t *testing.T) {
	siblings := []string{"Chest", "Spine", "Neck", "UpperChest"}

	assert.Equal(t, []string{"Chest", "UpperChest"}, Suggest("Chest (Outfit)", siblings, 2))
	assert.Empty(t, Suggest("Tail", siblings, 3))
}
