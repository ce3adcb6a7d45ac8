package pipeline

import (
	"armature-dresser/internal/anim"
	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/plan"
	"armature-dresser/internal/scene"
)

// State is the data a run passes from stage to stage.
type State struct {
	// Inputs.
	Avatar   *scene.Tree
	Wearable *scene.Tree
	// WearableBase is the path of the wearable root below the avatar root.
	WearableBase string
	Config       *mapping.WearableConfig

	// Decoded module settings.
	ArmatureMapping mapping.ArmatureMappingConfig
	CabinetAnim     *mapping.CabinetAnimConfig

	// Results.
	Plan       *plan.Plan
	Remapper   *plan.PathRemapper
	Animations *Animations

	Diagnostics diagnostic.Diagnostics
}

// Animations are the clips generated for the cabinetAnim module.
type Animations struct {
	Enable                  *anim.Clip            `yaml:"enable"`
	Disable                 *anim.Clip            `yaml:"disable"`
	CustomizableToggles     []anim.ToggleClips    `yaml:"customizableToggles,omitempty"`
	CustomizableBlendshapes []anim.BlendshapeClip `yaml:"customizableBlendshapes,omitempty"`
}

// NewState prepares a run. An empty wearableBase places the wearable root
// directly below the avatar root under its own name; a nil cfg means a
// configuration with every module at its defaults.
func NewState(avatar, wearable *scene.Tree, wearableBase string, cfg *mapping.WearableConfig) *State {
	if wearableBase == "" && wearable != nil {
		wearableBase = wearable.Name(wearable.Root())
	}

	if cfg == nil {
		cfg = &mapping.WearableConfig{
			Version:        mapping.CurrentVersion,
			AvatarConfig:   mapping.ArmatureConfig{ArmatureName: mapping.DefaultArmatureName},
			WearableConfig: mapping.ArmatureConfig{ArmatureName: mapping.DefaultArmatureName},
		}
	}

	return &State{
		Avatar:       avatar,
		Wearable:     wearable,
		WearableBase: wearableBase,
		Config:       cfg,
	}
}
