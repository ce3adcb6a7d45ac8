package pipeline

import (
	"context"
	"log/slog"

	"armature-dresser/internal/anim"
	"armature-dresser/internal/diagnostic"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/plan"
)

// Default stage names.
const (
	StageDecodeConfig         = "decode-config"
	StageResolveArmature      = "resolve-armature"
	StageMergeOverrides       = "merge-overrides"
	StageBuildRemapper        = "build-remapper"
	StageSynthesizeAnimations = "synthesize-animations"
)

// CodeOverridesIgnored is recorded when bone mappings are configured in auto mode.
const CodeOverridesIgnored = "OverridesIgnoredInAutoMode"

// DefaultStages returns the stages of a full dressing plan.
func (p *Pipeline) DefaultStages() []Stage {
	return []Stage{
		{Name: StageDecodeConfig, Apply: p.decodeConfig},
		{Name: StageResolveArmature, After: []string{StageDecodeConfig}, Apply: p.resolveArmature},
		{Name: StageMergeOverrides, After: []string{StageResolveArmature}, Apply: p.mergeOverrides},
		{Name: StageBuildRemapper, After: []string{StageMergeOverrides}, Apply: p.buildRemapper},
		{Name: StageSynthesizeAnimations, After: []string{StageBuildRemapper}, Apply: p.synthesizeAnimations},
	}
}

func (p *Pipeline) decodeConfig(_ context.Context, st *State, diags *diagnostic.Diagnostics) error {
	res := mapping.Validate(st.Config, st.Avatar, st.Wearable)
	diags.Merge(*res)

	if res.HasErrors() {
		return ErrInvalidConfig
	}

	am, err := st.Config.ArmatureMapping()
	if err != nil {
		return err
	}

	st.ArmatureMapping = am

	if _, ok := st.Config.Module(mapping.ModuleCabinetAnim); ok {
		ca, err := st.Config.CabinetAnim()
		if err != nil {
			return err
		}

		st.CabinetAnim = &ca
	}

	return nil
}

func (p *Pipeline) resolveArmature(_ context.Context, st *State, diags *diagnostic.Diagnostics) error {
	cfg := plan.ConfigFrom(st.Config, st.ArmatureMapping)

	if st.ArmatureMapping.Mode == mapping.ModeManual {
		p.logger.Debug("manual bone mapping, skipping resolution",
			slog.Int("boneMappings", len(st.ArmatureMapping.BoneMappings)))

		st.Plan = &plan.Plan{
			Success:          true,
			AvatarArmature:   cfg.AvatarArmatureName,
			WearableArmature: cfg.WearableArmatureName,
		}

		return nil
	}

	resolver := plan.NewResolver(st.Avatar, st.Wearable, cfg,
		plan.WithAliasTable(p.aliases),
		plan.WithScanner(p.scanner),
		plan.WithLogger(p.logger))

	st.Plan = resolver.Resolve(diags)
	if !st.Plan.Success {
		return ErrResolutionFailed
	}

	return nil
}

func (p *Pipeline) mergeOverrides(_ context.Context, st *State, diags *diagnostic.Diagnostics) error {
	am := st.ArmatureMapping

	switch am.Mode {
	case mapping.ModeManual:
		st.Plan.Directives = append([]mapping.MappingDirective(nil), am.BoneMappings...)
		st.Plan.Tags = append([]mapping.Tag(nil), am.Tags...)
	case mapping.ModeOverride:
		mapping.Merge(&st.Plan.Directives, am.BoneMappings)
		mapping.MergeTags(&st.Plan.Tags, am.Tags)
	default:
		if len(am.BoneMappings) > 0 || len(am.Tags) > 0 {
			diags.AddInfo(CodeOverridesIgnored, mapping.ModuleArmatureMapping,
				"%d bone mappings and %d tags are ignored in auto mode", len(am.BoneMappings), len(am.Tags))
		}
	}

	return nil
}

func (p *Pipeline) buildRemapper(_ context.Context, st *State, _ *diagnostic.Diagnostics) error {
	var opts []plan.RemapperOption
	if p.token != nil {
		opts = append(opts, plan.WithUniqueToken(p.token))
	}

	if st.Avatar != nil {
		opts = append(opts, plan.WithAvatarDynamics(p.scanner.Scan(st.Avatar, st.Avatar.Root(), true)))
	}

	st.Remapper = plan.NewPathRemapper(st.Avatar, st.WearableBase, st.Plan.Directives,
		plan.LayoutFrom(st.ArmatureMapping), opts...)

	return nil
}

func (p *Pipeline) synthesizeAnimations(_ context.Context, st *State, diags *diagnostic.Diagnostics) error {
	if st.CabinetAnim == nil {
		return nil
	}

	var remap anim.PathRemap = anim.Identity
	if st.Remapper != nil {
		remap = st.Remapper.Remap
	}

	g := anim.NewGenerator(st.Avatar, st.Wearable, st.WearableBase, *st.CabinetAnim, remap,
		anim.WithLogger(p.logger),
		anim.WithScanner(p.scanner))

	enable, disable := g.WearAnimations(diags)

	st.Animations = &Animations{
		Enable:                  enable,
		Disable:                 disable,
		CustomizableToggles:     g.CustomizableToggleAnimations(diags),
		CustomizableBlendshapes: g.CustomizableBlendshapeAnimations(diags),
	}

	return nil
}
