package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

var humanoidBones = []string{
	"Armature/Hips/Spine/Chest/Neck/Head",
	"Armature/Hips/Spine/Chest/Shoulder.L/UpperArm.L",
	"Armature/Hips/UpperLeg.L/LowerLeg.L",
	"Armature/Hips/UpperLeg.R/LowerLeg.R",
}

func humanoid(root string, extra ...string) *scene.Tree {
	tree := scene.NewTree(root)

	for _, p := range humanoidBones {
		tree.Ensure(p)
	}

	for _, p := range extra {
		tree.Ensure(p)
	}

	return tree
}

func addPhysBone(tree *scene.Tree, path string) {
	tree.AddComponent(tree.Ensure(path), scene.Component{Type: scene.PhysBoneType})
}

func resolveWith(t *testing.T, avatar, wearable *scene.Tree, option mapping.DynamicsOption) (*Plan, *diagnostic.Diagnostics) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.DynamicsOption = option

	diags := &diagnostic.Diagnostics{}
	p := NewResolver(avatar, wearable, cfg).Resolve(diags)

	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(p, diags))
		}
	})

	return p, diags
}

func countBones(tree *scene.Tree, armature string) int {
	arm, ok := tree.Find(tree.Root(), armature)
	if !ok {
		return 0
	}

	n := 0

	tree.Walk(arm, func(id scene.NodeID) bool {
		if id != arm {
			n++
		}

		return true
	})

	return n
}
