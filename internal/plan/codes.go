package plan

// Diagnostic codes recorded during resolution.
const (
	CodeNoArmatureInAvatar                        = "NoArmatureInAvatar"
	CodeNoArmatureInWearable                      = "NoArmatureInWearable"
	CodeAvatarArmatureObjectGuessed               = "AvatarArmatureObjectGuessed"
	CodeWearableArmatureObjectGuessed             = "WearableArmatureObjectGuessed"
	CodeNoBonesInAvatarArmatureFirstLevel         = "NoBonesInAvatarArmatureFirstLevel"
	CodeNoBonesInWearableArmatureFirstLevel       = "NoBonesInWearableArmatureFirstLevel"
	CodeMultipleBonesWarningRemoved               = "MultipleBonesWarningRemoved"
	CodeMultipleBonesInAvatarArmatureFirstLevel   = "MultipleBonesInAvatarArmatureFirstLevel"
	CodeMultipleBonesInWearableArmatureFirstLevel = "MultipleBonesInWearableArmatureFirstLevel"
	CodeBonesNotMatchingInArmatureFirstLevel      = "BonesNotMatchingInArmatureFirstLevel"
	CodeNonMatchingWearableBoneKeptUntouched      = "NonMatchingWearableBoneKeptUntouched"
	CodeDynamicsAllIgnored                        = "DynamicsAllIgnored"
	CodeFrankensteinBoneIgnoreTransform           = "FrankensteinBoneIgnoreTransform"
)
