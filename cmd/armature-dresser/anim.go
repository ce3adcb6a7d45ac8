package main

import (
	"errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"armature-dresser/internal/pipeline"
)

var errNoCabinetAnim = errors.New("the wearable configuration has no cabinetAnim module")

func newAnimCmd(opts *globalOptions) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "anim",
		Short: "Synthesize the wear animations of a wearable",
		Long: `Runs the full plan and prints the cabinetAnim clips. Animated paths point at
the nodes' locations after dressing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := in.load()
			if err != nil {
				return err
			}

			if err := pipeline.New(pipeline.WithLogger(opts.logger)).Run(cmd.Context(), st); err != nil {
				return err
			}

			if st.Animations == nil {
				return errNoCabinetAnim
			}

			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(st.Animations)
		},
	}

	in.register(cmd)

	return cmd
}
