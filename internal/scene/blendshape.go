package scene

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// SkinnedMeshRendererType is the component type carrying a mesh and its blendshapes.
const SkinnedMeshRendererType = "SkinnedMeshRenderer"

var (
	// ErrNoRenderer is returned when the node has no skinned mesh renderer.
	ErrNoRenderer = errors.New("no skinned mesh renderer")
	// ErrNoMesh is returned when the renderer has no mesh assigned.
	ErrNoMesh = errors.New("no mesh")
	// ErrNoBlendshape is returned when the mesh lacks the named blendshape.
	ErrNoBlendshape = errors.New("no such blendshape")
)

type skinnedMeshProperties struct {
	Mesh        string             `mapstructure:"mesh"`
	BlendShapes map[string]float64 `mapstructure:"blendShapes"`
}

// BlendshapeWeight returns the current weight of the named blendshape on the
// node's skinned mesh renderer.
func (t *Tree) BlendshapeWeight(id NodeID, name string) (float64, error) {
	n := t.Node(id)
	if n == nil {
		return 0, ErrNoRenderer
	}

	c, ok := n.Component(SkinnedMeshRendererType)
	if !ok {
		return 0, ErrNoRenderer
	}

	var props skinnedMeshProperties
	if err := mapstructure.Decode(c.Properties, &props); err != nil {
		return 0, fmt.Errorf("decode %s on %s: %w", SkinnedMeshRendererType, n.Name, err)
	}

	if props.Mesh == "" {
		return 0, ErrNoMesh
	}

	w, ok := props.BlendShapes[name]
	if !ok {
		return 0, ErrNoBlendshape
	}

	return w, nil
}
