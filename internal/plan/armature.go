package plan

import (
	"strings"

	"armature-dresser/internal/common"
	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/match"
	"armature-dresser/internal/scene"
)

// locateArmature finds the armature by path below the root. Failing that, it
// guesses the single direct child of the root whose normalized name contains
// the normalized armature name.
func locateArmature(tree *scene.Tree, name string) (id scene.NodeID, guessed, ok bool) {
	if id, ok := tree.Find(tree.Root(), name); ok {
		return id, false, true
	}

	want := match.NormalizeBoneName(name)
	if want == "" {
		return scene.InvalidNode, false, false
	}

	found := scene.InvalidNode

	for _, c := range tree.Children(tree.Root()) {
		if !strings.Contains(match.NormalizeBoneName(tree.Name(c)), want) {
			continue
		}

		if found != scene.InvalidNode {
			return scene.InvalidNode, false, false
		}

		found = c
	}

	return found, true, found != scene.InvalidNode
}

// checkFirstLevel records precautions about the direct children of both armatures.
func checkFirstLevel(res *diagnostic.Diagnostics, avatar *scene.Tree, avatarArm scene.NodeID, wearable *scene.Tree, wearableArm scene.NodeID) {
	avatarPath := avatar.Path(avatarArm, avatar.Root())
	wearablePath := wearable.Path(wearableArm, wearable.Root())

	avatarBones := avatar.Children(avatarArm)
	wearableBones := wearable.Children(wearableArm)

	if common.IsEmpty(avatarBones) {
		res.AddError(CodeNoBonesInAvatarArmatureFirstLevel, avatarPath,
			"avatar armature %q has no bones in its first level", avatarPath)
	}

	if common.IsEmpty(wearableBones) {
		res.AddError(CodeNoBonesInWearableArmatureFirstLevel, wearablePath,
			"wearable armature %q has no bones in its first level", wearablePath)
	}

	if common.IsMultiple(avatarBones) {
		if common.CountFunc(avatarBones, avatar.IsActive) == 1 {
			res.AddInfo(CodeMultipleBonesWarningRemoved, avatarPath,
				"avatar armature %q has %d first level bones but only one is active", avatarPath, len(avatarBones))
		} else {
			res.AddWarning(CodeMultipleBonesInAvatarArmatureFirstLevel, avatarPath,
				"avatar armature %q has %d bones in its first level", avatarPath, len(avatarBones))
		}
	}

	if common.IsMultiple(wearableBones) {
		res.AddWarning(CodeMultipleBonesInWearableArmatureFirstLevel, wearablePath,
			"wearable armature %q has %d bones in its first level", wearablePath, len(wearableBones))
	}
}
