package main

import (
	"github.com/spf13/cobra"

	"armature-dresser/internal/mapping"
	"armature-dresser/internal/pipeline"
	"armature-dresser/internal/scene"
)

// inputFlags locate the scenes and configuration of a run.
type inputFlags struct {
	avatar   string
	wearable string
	config   string
	base     string
	dynamics string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.avatar, "avatar", "a", "", "Avatar scene snapshot (YAML)")
	cmd.Flags().StringVarP(&f.wearable, "wearable", "w", "", "Wearable scene snapshot (YAML)")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Wearable configuration (YAML); defaults apply when omitted")
	cmd.Flags().StringVar(&f.base, "base", "", "Path of the wearable root below the avatar root (default: wearable root name)")
	cmd.Flags().StringVar(&f.dynamics, "dynamics", "", "Override the dynamics option (e.g. Auto, IgnoreTransform, CopyDynamics)")

	_ = cmd.MarkFlagRequired("avatar")
	_ = cmd.MarkFlagRequired("wearable")
}

// load reads the inputs into a fresh pipeline state.
func (f *inputFlags) load() (*pipeline.State, error) {
	avatar, err := scene.LoadFile(f.avatar)
	if err != nil {
		return nil, err
	}

	wearable, err := scene.LoadFile(f.wearable)
	if err != nil {
		return nil, err
	}

	var cfg *mapping.WearableConfig

	if f.config != "" {
		cfg, err = mapping.LoadFile(f.config)
		if err != nil {
			return nil, err
		}
	}

	st := pipeline.NewState(avatar, wearable, f.base, cfg)

	if f.dynamics != "" {
		if err := overrideDynamics(st.Config, f.dynamics); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func overrideDynamics(cfg *mapping.WearableConfig, value string) error {
	opt, err := mapping.ParseDynamicsOption(value)
	if err != nil {
		return err
	}

	am, err := cfg.ArmatureMapping()
	if err != nil {
		return err
	}

	am.DynamicsOption = opt

	entry, err := mapping.EncodeModule(mapping.ModuleArmatureMapping, am)
	if err != nil {
		return err
	}

	cfg.SetModule(entry)

	return nil
}
