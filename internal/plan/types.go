package plan

import (
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/match"
)

// Container suffixes created when the plan is applied.
const (
	// DefaultContainerSuffix marks per-bone containers holding moved bones.
	DefaultContainerSuffix = "_DT"
	// ExcludedContainerSuffix marks per-bone containers skipped by avatar dynamics.
	ExcludedContainerSuffix = "_DBExcluded"
)

// DefaultPoseEpsilon is the tolerance for comparing world poses, both as a
// distance and as 1-|dot| between rotations.
const DefaultPoseEpsilon = 0.01

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// AvatarArmatureName is the path of the armature below the avatar root.
	AvatarArmatureName string
	// WearableArmatureName is the path of the armature below the wearable root.
	WearableArmatureName string
	// DynamicsOption decides how bones driven by avatar dynamics are handled.
	DynamicsOption mapping.DynamicsOption
	// ContainerSuffix marks wearable children left by a previous run; they are skipped.
	ContainerSuffix string
	// PoseEpsilon is the tolerance for the frankenstein bone check of AutoDynamics.
	PoseEpsilon float64
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		AvatarArmatureName:   mapping.DefaultArmatureName,
		WearableArmatureName: mapping.DefaultArmatureName,
		DynamicsOption:       mapping.AutoDynamics,
		ContainerSuffix:      DefaultContainerSuffix,
		PoseEpsilon:          DefaultPoseEpsilon,
	}
}

// ConfigFrom builds a resolution config from a wearable configuration.
func ConfigFrom(cfg *mapping.WearableConfig, am mapping.ArmatureMappingConfig) ResolutionConfig {
	out := DefaultConfig()
	out.DynamicsOption = am.DynamicsOption

	if cfg == nil {
		return out
	}

	if cfg.AvatarConfig.ArmatureName != "" {
		out.AvatarArmatureName = cfg.AvatarConfig.ArmatureName
	}

	if cfg.WearableConfig.ArmatureName != "" {
		out.WearableArmatureName = cfg.WearableConfig.ArmatureName
	}

	return out
}

// Plan is the result of resolving a wearable against an avatar.
type Plan struct {
	// Success is false if any error was recorded while resolving. Directives
	// are still returned for inspection.
	Success bool `yaml:"success"`

	// AvatarArmature and WearableArmature are the located armature paths.
	AvatarArmature   string `yaml:"avatarArmature,omitempty"`
	WearableArmature string `yaml:"wearableArmature,omitempty"`

	// Directives holds one entry per visited wearable bone, in visiting order.
	Directives []mapping.MappingDirective `yaml:"directives"`

	// Tags marks bones needing extra handling.
	Tags []mapping.Tag `yaml:"tags,omitempty"`
}

// DirectiveFor returns the first directive with the given source path.
func (p *Plan) DirectiveFor(sourcePath string) (mapping.MappingDirective, bool) {
	for _, d := range p.Directives {
		if d.SourcePath == sourcePath {
			return d, true
		}
	}

	return mapping.MappingDirective{}, false
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAliasTable sets the alias table used when names do not match.
func WithAliasTable(t *match.AliasTable) Option {
	return func(r *Resolver) {
		r.aliases = t
	}
}
