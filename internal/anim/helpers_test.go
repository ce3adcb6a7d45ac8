package anim

import (
	"armature-dresser/internal/scene"
)

func addBlendshapes(tree *scene.Tree, path string, weights map[string]any) scene.NodeID {
	id := tree.Ensure(path)
	tree.AddComponent(id, scene.Component{
		Type:       scene.SkinnedMeshRendererType,
		Properties: map[string]any{"mesh": "Cube", "blendShapes": weights},
	})

	return id
}

func avatarScene() *scene.Tree {
	tree := scene.NewTree("Avatar")
	tree.Ensure("SomeRootObject1")
	tree.Ensure("SomeRootObject2")
	tree.Ensure("Armature/Hips")
	addBlendshapes(tree, "AvatarBlendshapeCube", map[string]any{"SomeKey": 20.0})

	return tree
}

func wearableScene() *scene.Tree {
	tree := scene.NewTree("Wearable")
	tree.Ensure("SomeWearableRootObject1")
	tree.SetActive(tree.Ensure("SomeWearableRootObject2"), false)
	addBlendshapes(tree, "WearableBlendshapeCube", map[string]any{"SomeKey": 30.0, "Other": 0.0})

	dyn := tree.Ensure("Armature/Hips/MyDynBone")
	tree.AddComponent(dyn, scene.Component{Type: scene.PhysBoneType})
	tree.AddComponent(dyn, scene.Component{Type: scene.PhysBoneType})

	return tree
}
