package plan

import (
	"math"

	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

// Recursion is how the resolver continues below a decided bone.
type Recursion int

const (
	// RecurseNone stops at the bone.
	RecurseNone Recursion = iota
	// RecurseNormal matches children with the regular rules.
	RecurseNormal
	// RecurseInherit gives every name-matched descendant the same directive type.
	RecurseInherit
)

// Decision is the outcome of the dynamics conflict policy for one bone.
type Decision struct {
	Type      mapping.DirectiveType
	Recursion Recursion
	// EmitTag requests a CopyDynamics tag for the bone.
	EmitTag bool
	// Code is an informational diagnostic code to record, if any.
	Code string
}

// Decide picks the directive for a matched bone. avatarDyn is the dynamics
// rooted at the avatar bone and wearableDyn the one rooted at the wearable
// bone; either may be nil. AutoDynamics must be resolved by the caller and is
// treated as RemoveDynamicsAndUseParentConstraint here.
func Decide(avatarDyn, wearableDyn *scene.Descriptor, option mapping.DynamicsOption) Decision {
	if avatarDyn == nil {
		return Decision{Type: mapping.MoveToBone, Recursion: RecurseNormal}
	}

	switch option {
	case mapping.KeepDynamicsAndUseParentConstraintIfNecessary:
		if wearableDyn != nil {
			return Decision{Type: mapping.DoNothing, Recursion: RecurseNone}
		}

		return Decision{Type: mapping.ParentConstraint, Recursion: RecurseInherit}
	case mapping.IgnoreTransformDynamics:
		return Decision{Type: mapping.IgnoreTransform, Recursion: RecurseInherit}
	case mapping.CopyDynamicsOption:
		return Decision{Type: mapping.CopyDynamics, Recursion: RecurseNormal, EmitTag: true}
	case mapping.IgnoreAllDynamics:
		return Decision{Type: mapping.DoNothing, Recursion: RecurseNormal, Code: CodeDynamicsAllIgnored}
	default:
		return Decision{Type: mapping.ParentConstraint, Recursion: RecurseInherit}
	}
}

// detectDynamicsOption resolves AutoDynamics for one bone pair. Bones copied
// from another rig sit at a different world pose and cannot be constrained.
// Two poses match when the positions are closer than threshold and the
// rotations differ by less than threshold in 1-|dot|, so q and -q are equal.
func detectDynamicsOption(wearable, avatar *scene.Node, threshold float64) mapping.DynamicsOption {
	if distance(wearable.Position, avatar.Position) < threshold &&
		1-math.Abs(dot(normalizeQuat(wearable.Rotation), normalizeQuat(avatar.Rotation))) < threshold {
		return mapping.RemoveDynamicsAndUseParentConstraint
	}

	return mapping.IgnoreTransformDynamics
}

func distance(a, b scene.Vec3) float64 {
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
}

func dot(a, b scene.Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func normalizeQuat(q scene.Quat) scene.Quat {
	n := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if n == 0 {
		return scene.IdentityRotation
	}

	inv := 1 / math.Sqrt(n)

	return scene.Quat{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}
