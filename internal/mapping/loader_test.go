package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
version: "1"
avatarConfig:
  armatureName: Armature
wearableConfig:
  armatureName: Armature.001
modules:
  - moduleName: armatureMapping
    config:
      dynamicsOption: copyDynamics
      mode: override
      prefix: "(J) "
      boneMappings:
        - type: ParentConstraint
          sourcePath: Armature.001/Hips/Tail
          targetPath: Armature/Hips
      tags:
        - type: CopyDynamics
          sourcePath: Armature.001/Hips/Ear
          targetPath: Armature/Head/Ear
  - moduleName: cabinetAnim
    config:
      writeDefaults: true
      avatarAnimationOnWear:
        toggles:
          - {path: Shoes, state: false}
        blendshapes:
          - {path: Body, blendshapeName: Shrink_Feet, value: 100}
      wearableCustomizables:
        - name: Hood
          type: toggle
          wearableToggles:
            - {path: Hood, state: true}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "Armature", cfg.AvatarConfig.ArmatureName)
	assert.Equal(t, "Armature.001", cfg.WearableConfig.ArmatureName)
	require.Len(t, cfg.Modules, 2)
	assert.Equal(t, ModuleArmatureMapping, cfg.Modules[0].ModuleName)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("modules: []\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultArmatureName, cfg.AvatarConfig.ArmatureName)
	assert.Equal(t, DefaultArmatureName, cfg.WearableConfig.ArmatureName)

	am, err := cfg.ArmatureMapping()
	require.NoError(t, err)
	assert.Equal(t, DefaultArmatureMappingConfig(), am)

	ca, err := cfg.CabinetAnim()
	require.NoError(t, err)
	assert.True(t, ca.SetWearableDynamicsInactive)
	assert.False(t, ca.WriteDefaults)
}

func TestArmatureMappingModule(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	am, err := cfg.ArmatureMapping()
	require.NoError(t, err)

	assert.Equal(t, CopyDynamicsOption, am.DynamicsOption)
	assert.Equal(t, ModeOverride, am.Mode)
	assert.True(t, am.GroupBones, "absent keys keep defaults")
	assert.Equal(t, "(J) ", am.Prefix)
	require.Len(t, am.BoneMappings, 1)
	assert.Equal(t, MappingDirective{
		Type:       ParentConstraint,
		SourcePath: "Armature.001/Hips/Tail",
		TargetPath: "Armature/Hips",
	}, am.BoneMappings[0])
	require.Len(t, am.Tags, 1)
	assert.Equal(t, TagCopyDynamics, am.Tags[0].Type)
}

func TestCabinetAnimModule(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	ca, err := cfg.CabinetAnim()
	require.NoError(t, err)

	assert.True(t, ca.WriteDefaults)
	assert.True(t, ca.SetWearableDynamicsInactive)
	assert.Equal(t, []Toggle{{Path: "Shoes", State: false}}, ca.AvatarAnimationOnWear.Toggles)
	require.Len(t, ca.AvatarAnimationOnWear.Blendshapes, 1)
	assert.InDelta(t, 100.0, ca.AvatarAnimationOnWear.Blendshapes[0].Value, 1e-9)
	require.Len(t, ca.WearableCustomizables, 1)
	assert.Equal(t, CustomizableToggle, ca.WearableCustomizables[0].Type)
	assert.True(t, ca.WearableAnimationOnWear.IsEmpty())
}

func TestDecodeModuleErrors(t *testing.T) {
	unknownKey := &ModuleEntry{ModuleName: ModuleArmatureMapping, Config: map[string]any{"bogus": 1}}
	out := DefaultArmatureMappingConfig()
	assert.ErrorContains(t, DecodeModule(unknownKey, &out), "armatureMapping")

	badEnum := &ModuleEntry{ModuleName: ModuleArmatureMapping, Config: map[string]any{"dynamicsOption": "explode"}}
	assert.Error(t, DecodeModule(badEnum, &out))
}

func TestEncodeModuleRoundTrip(t *testing.T) {
	am := DefaultArmatureMappingConfig()
	am.Mode = ModeManual
	am.BoneMappings = []MappingDirective{{Type: MoveToBone, SourcePath: "A/B", TargetPath: "C/B"}}

	entry, err := EncodeModule(ModuleArmatureMapping, am)
	require.NoError(t, err)
	assert.Equal(t, "Manual", entry.Config["mode"])

	cfg := &WearableConfig{}
	cfg.SetModule(entry)
	cfg.SetModule(entry)
	require.Len(t, cfg.Modules, 1)

	back, err := cfg.ArmatureMapping()
	require.NoError(t, err)
	assert.Equal(t, am, back)
}

func TestWriteAndLoadFile(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wearable.yaml")
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.WearableConfig, loaded.WearableConfig)
	assert.Len(t, loaded.Modules, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("modules: {"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
