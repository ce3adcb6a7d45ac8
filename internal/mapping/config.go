package mapping

// Module names recognized in a wearable configuration.
const (
	ModuleArmatureMapping = "armatureMapping"
	ModuleCabinetAnim     = "cabinetAnim"
	ModuleBlendshapeSync  = "blendshapeSync"
)

// CurrentVersion is the configuration schema version written by this module.
const CurrentVersion = "1"

// DefaultArmatureName is used when a side does not name its armature.
const DefaultArmatureName = "Armature"

// WearableConfig is the root of a wearable configuration file.
type WearableConfig struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// AvatarConfig describes the avatar side.
	AvatarConfig ArmatureConfig `yaml:"avatarConfig"`

	// WearableConfig describes the wearable side.
	WearableConfig ArmatureConfig `yaml:"wearableConfig"`

	// Modules holds the per-module settings in application order.
	Modules []ModuleEntry `yaml:"modules,omitempty"`
}

// ArmatureConfig names the armature node of one side.
type ArmatureConfig struct {
	ArmatureName string `yaml:"armatureName"`
}

// ModuleEntry is a single module with its untyped settings.
type ModuleEntry struct {
	ModuleName string         `yaml:"moduleName"`
	Config     map[string]any `yaml:"config,omitempty"`
}

// Module returns the first module entry with the given name.
func (c *WearableConfig) Module(name string) (*ModuleEntry, bool) {
	for i := range c.Modules {
		if c.Modules[i].ModuleName == name {
			return &c.Modules[i], true
		}
	}

	return nil, false
}

// ArmatureMappingConfig configures bone mapping for a wearable.
type ArmatureMappingConfig struct {
	// DresserName selects the dresser implementation; only "default" exists.
	DresserName string `yaml:"dresserName,omitempty" mapstructure:"dresserName"`

	// DynamicsOption decides how avatar dynamics conflicts are handled.
	DynamicsOption DynamicsOption `yaml:"dynamicsOption" mapstructure:"dynamicsOption"`

	// Mode decides how BoneMappings combine with generated directives.
	Mode MappingMode `yaml:"mode" mapstructure:"mode"`

	// GroupBones places moved bones under a per-bone container.
	GroupBones bool `yaml:"groupBones" mapstructure:"groupBones"`

	// Prefix and Suffix decorate the names of moved bones.
	Prefix string `yaml:"prefix,omitempty" mapstructure:"prefix"`
	Suffix string `yaml:"suffix,omitempty" mapstructure:"suffix"`

	// PreventDuplicateNames appends a unique token to moved bone names.
	PreventDuplicateNames bool `yaml:"preventDuplicateNames" mapstructure:"preventDuplicateNames"`

	// BoneMappings are user overrides, or the whole plan in manual mode.
	BoneMappings []MappingDirective `yaml:"boneMappings,omitempty" mapstructure:"boneMappings"`

	// Tags are user tag overrides.
	Tags []Tag `yaml:"tags,omitempty" mapstructure:"tags"`
}

// DefaultArmatureMappingConfig returns the settings used for absent keys.
func DefaultArmatureMappingConfig() ArmatureMappingConfig {
	return ArmatureMappingConfig{
		DresserName:    "default",
		DynamicsOption: AutoDynamics,
		Mode:           ModeAuto,
		GroupBones:     true,
	}
}

// Toggle sets the active state of the node at Path.
type Toggle struct {
	Path  string `yaml:"path" mapstructure:"path"`
	State bool   `yaml:"state" mapstructure:"state"`
}

// BlendshapeValue sets a blendshape weight (0 to 100) on the renderer at Path.
type BlendshapeValue struct {
	Path           string  `yaml:"path" mapstructure:"path"`
	BlendshapeName string  `yaml:"blendshapeName" mapstructure:"blendshapeName"`
	Value          float64 `yaml:"value" mapstructure:"value"`
}

// AnimationPreset is a set of toggles and blendshape values applied together.
type AnimationPreset struct {
	Toggles     []Toggle          `yaml:"toggles,omitempty" mapstructure:"toggles"`
	Blendshapes []BlendshapeValue `yaml:"blendshapes,omitempty" mapstructure:"blendshapes"`
}

// IsEmpty reports whether the preset changes nothing.
func (p AnimationPreset) IsEmpty() bool {
	return len(p.Toggles) == 0 && len(p.Blendshapes) == 0
}

// CustomizableType is the control kind of a customizable.
type CustomizableType int

const (
	CustomizableToggle     CustomizableType = iota // Toggle
	CustomizableBlendshape                         // Blendshape
)

// MarshalText implements encoding.TextMarshaler.
func (t CustomizableType) MarshalText() ([]byte, error) {
	return marshalEnum(t, CustomizableToggle, CustomizableBlendshape)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CustomizableType) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, t, CustomizableToggle, CustomizableBlendshape)
}

// Customizable is a user-facing control of a worn wearable.
type Customizable struct {
	Name         string           `yaml:"name" mapstructure:"name"`
	Type         CustomizableType `yaml:"type" mapstructure:"type"`
	DefaultValue float64          `yaml:"defaultValue" mapstructure:"defaultValue"`

	// Toggle customizables use these.
	AvatarToggles   []Toggle `yaml:"avatarToggles,omitempty" mapstructure:"avatarToggles"`
	WearableToggles []Toggle `yaml:"wearableToggles,omitempty" mapstructure:"wearableToggles"`

	// Blendshape customizables use these; Toggle customizables may too.
	AvatarBlendshapes   []BlendshapeValue `yaml:"avatarBlendshapes,omitempty" mapstructure:"avatarBlendshapes"`
	WearableBlendshapes []BlendshapeValue `yaml:"wearableBlendshapes,omitempty" mapstructure:"wearableBlendshapes"`
}

// CabinetAnimConfig configures the animations generated for a wearable.
type CabinetAnimConfig struct {
	AvatarAnimationOnWear   AnimationPreset `yaml:"avatarAnimationOnWear" mapstructure:"avatarAnimationOnWear"`
	WearableAnimationOnWear AnimationPreset `yaml:"wearableAnimationOnWear" mapstructure:"wearableAnimationOnWear"`
	WearableCustomizables   []Customizable  `yaml:"wearableCustomizables,omitempty" mapstructure:"wearableCustomizables"`

	// SetWearableDynamicsInactive adds enable curves for the wearable's dynamics.
	SetWearableDynamicsInactive bool `yaml:"setWearableDynamicsInactive" mapstructure:"setWearableDynamicsInactive"`

	// WriteDefaults leaves restore curves out of disable clips.
	WriteDefaults bool `yaml:"writeDefaults" mapstructure:"writeDefaults"`
}

// DefaultCabinetAnimConfig returns the settings used for absent keys.
func DefaultCabinetAnimConfig() CabinetAnimConfig {
	return CabinetAnimConfig{SetWearableDynamicsInactive: true}
}
