package mapping

import (
	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/scene"
)

// Validate checks a wearable configuration. Trees are optional; when given,
// override and animation paths are checked against them.
func Validate(cfg *WearableConfig, avatar, wearable *scene.Tree) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "", "wearable config is nil")
		return res
	}

	seen := map[string]struct{}{}

	for i := range cfg.Modules {
		m := &cfg.Modules[i]

		if _, dup := seen[m.ModuleName]; dup {
			res.AddError("duplicate_module", m.ModuleName, "module %q is configured more than once", m.ModuleName)
			continue
		}

		seen[m.ModuleName] = struct{}{}

		switch m.ModuleName {
		case ModuleArmatureMapping:
			validateArmatureMapping(res, m, avatar, wearable)
		case ModuleCabinetAnim:
			validateCabinetAnim(res, m, avatar, wearable)
		case ModuleBlendshapeSync:
			res.AddInfo("unsupported_module", m.ModuleName, "module %q is not handled by the planner", m.ModuleName)
		default:
			res.AddWarning("unknown_module", m.ModuleName, "unknown module %q", m.ModuleName)
		}
	}

	return res
}

func validateArmatureMapping(res *diagnostic.Diagnostics, m *ModuleEntry, avatar, wearable *scene.Tree) {
	cfg := DefaultArmatureMappingConfig()
	if err := DecodeModule(m, &cfg); err != nil {
		res.AddError("invalid_module_config", m.ModuleName, "%v", err)
		return
	}

	if cfg.Mode == ModeManual && len(cfg.BoneMappings) == 0 {
		res.AddWarning("empty_manual_mapping", m.ModuleName, "manual mode without bone mappings moves nothing")
	}

	sources := map[string]struct{}{}

	for _, d := range cfg.BoneMappings {
		if err := ValidatePath(d.SourcePath); err != nil {
			res.AddError("invalid_source_path", m.ModuleName, "invalid bone mapping source: %v", err)
			continue
		}

		if _, dup := sources[d.SourcePath]; dup {
			res.AddWarning("duplicate_override", d.SourcePath, "bone mapping source %q appears more than once", d.SourcePath)
		}

		sources[d.SourcePath] = struct{}{}

		checkExists(res, wearable, "source_not_found", d.SourcePath)

		if d.Type == DoNothing {
			continue
		}

		if err := ValidatePath(d.TargetPath); err != nil {
			res.AddError("invalid_target_path", d.SourcePath, "invalid bone mapping target: %v", err)
			continue
		}

		checkExists(res, avatar, "target_not_found", d.TargetPath)
	}

	for _, t := range cfg.Tags {
		if err := ValidatePath(t.SourcePath); err != nil {
			res.AddError("invalid_tag_path", m.ModuleName, "invalid tag source: %v", err)
			continue
		}

		checkExists(res, wearable, "source_not_found", t.SourcePath)
	}
}

func validateCabinetAnim(res *diagnostic.Diagnostics, m *ModuleEntry, avatar, wearable *scene.Tree) {
	cfg := DefaultCabinetAnimConfig()
	if err := DecodeModule(m, &cfg); err != nil {
		res.AddError("invalid_module_config", m.ModuleName, "%v", err)
		return
	}

	validatePreset(res, cfg.AvatarAnimationOnWear, avatar)
	validatePreset(res, cfg.WearableAnimationOnWear, wearable)

	names := map[string]struct{}{}

	for _, c := range cfg.WearableCustomizables {
		if c.Name == "" {
			res.AddError("customizable_without_name", m.ModuleName, "customizable has no name")
			continue
		}

		if _, dup := names[c.Name]; dup {
			res.AddError("duplicate_customizable", c.Name, "customizable %q is defined more than once", c.Name)
		}

		names[c.Name] = struct{}{}

		if c.Type == CustomizableBlendshape && len(c.WearableToggles) > 0 {
			res.AddWarning("toggles_ignored", c.Name, "blendshape customizable %q ignores its wearable toggles", c.Name)
		}

		validatePreset(res, AnimationPreset{Toggles: c.AvatarToggles, Blendshapes: c.AvatarBlendshapes}, avatar)
		validatePreset(res, AnimationPreset{Toggles: c.WearableToggles, Blendshapes: c.WearableBlendshapes}, wearable)
	}
}

func validatePreset(res *diagnostic.Diagnostics, p AnimationPreset, tree *scene.Tree) {
	for _, t := range p.Toggles {
		if err := ValidatePath(t.Path); err != nil {
			res.AddError("invalid_toggle_path", t.Path, "invalid toggle: %v", err)
			continue
		}

		checkExists(res, tree, "object_not_found", t.Path)
	}

	for _, b := range p.Blendshapes {
		if err := ValidatePath(b.Path); err != nil {
			res.AddError("invalid_blendshape_path", b.Path, "invalid blendshape: %v", err)
			continue
		}

		if b.BlendshapeName == "" {
			res.AddError("blendshape_without_name", b.Path, "blendshape value has no blendshape name")
		}

		if b.Value < 0 || b.Value > 100 {
			res.AddError("blendshape_out_of_range", b.Path, "blendshape %q value %g is outside 0..100", b.BlendshapeName, b.Value)
		}

		checkExists(res, tree, "object_not_found", b.Path)
	}
}

func checkExists(res *diagnostic.Diagnostics, tree *scene.Tree, code, path string) {
	if tree == nil {
		return
	}

	if _, _, ok := resolvePath(tree, path); ok {
		return
	}

	res.AddWarning(code, path, "%q not found under %q", path, tree.Name(tree.Root())).
		WithSuggestions(suggestPath(tree, path)...)
}
