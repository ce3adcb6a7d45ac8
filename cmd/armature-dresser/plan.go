package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"armature-dresser/internal/pipeline"
	"armature-dresser/internal/plan"
)

func newPlanCmd(opts *globalOptions) *cobra.Command {
	var (
		in         inputFlags
		exportPath string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve the bone mapping plan of a wearable",
		Long: `Resolves the wearable armature against the avatar armature and prints the
resulting directives. With --export the plan is written back as a wearable
configuration in manual mode, ready to be reviewed and pinned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := in.load()
			if err != nil {
				return err
			}

			if err := pipeline.New(pipeline.WithLogger(opts.logger)).Run(cmd.Context(), st); err != nil {
				return err
			}

			if exportPath != "" {
				data, err := plan.ExportOverridesYAML(st.Config, st.Plan, st.ArmatureMapping)
				if err != nil {
					return err
				}

				if err := os.WriteFile(exportPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", exportPath, err)
				}
			}

			if outDir != "" {
				files, err := st.Outputs()
				if err != nil {
					return err
				}

				return pipeline.WriteFiles(files, outDir)
			}

			data, err := plan.MarshalPlan(st.Plan)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the plan as a manual-mode wearable configuration")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write plan, relocations and animations to this directory")

	return cmd
}
