package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendshapeWeight(t *testing.T) {
	tree, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	body, _ := tree.Find(tree.Root(), "Body")
	hips, _ := tree.Find(tree.Root(), "Armature/Hips")

	w, err := tree.BlendshapeWeight(body, "Shrink_Chest")
	require.NoError(t, err)
	assert.InDelta(t, 25.0, w, 1e-9)

	_, err = tree.BlendshapeWeight(body, "Missing")
	assert.ErrorIs(t, err, ErrNoBlendshape)

	_, err = tree.BlendshapeWeight(hips, "Shrink_Chest")
	assert.ErrorIs(t, err, ErrNoRenderer)
}

func TestBlendshapeWeightNoMesh(t *testing.T) {
	tree := NewTree("Root")
	id := tree.AddChild(tree.Root(), "Body")
	tree.AddComponent(id, Component{Type: SkinnedMeshRendererType})

	_, err := tree.BlendshapeWeight(id, "Any")
	assert.ErrorIs(t, err, ErrNoMesh)
}
