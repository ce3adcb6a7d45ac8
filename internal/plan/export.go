package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"armature-dresser/internal/mapping"
)

// ExportOverrides turns a resolved plan into manual armatureMapping settings.
// This allows users to review the generated directives and pin them.
func ExportOverrides(p *Plan, base mapping.ArmatureMappingConfig) mapping.ArmatureMappingConfig {
	out := base
	out.Mode = mapping.ModeManual
	out.BoneMappings = append([]mapping.MappingDirective(nil), p.Directives...)
	out.Tags = append([]mapping.Tag(nil), p.Tags...)

	return out
}

// ExportOverridesYAML returns cfg with its armatureMapping module replaced by
// the exported plan, serialized as YAML. cfg itself is not modified.
func ExportOverridesYAML(cfg *mapping.WearableConfig, p *Plan, base mapping.ArmatureMappingConfig) ([]byte, error) {
	entry, err := mapping.EncodeModule(mapping.ModuleArmatureMapping, ExportOverrides(p, base))
	if err != nil {
		return nil, err
	}

	out := *cfg
	out.Modules = append([]mapping.ModuleEntry(nil), cfg.Modules...)
	out.SetModule(entry)

	return mapping.Marshal(&out)
}

// MarshalPlan serializes a plan to YAML.
func MarshalPlan(p *Plan) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return data, nil
}
