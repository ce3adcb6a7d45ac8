package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"armature-dresser/internal/mapping"
	"armature-dresser/internal/scene"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var avatarPath, wearablePath string

	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a wearable configuration",
		Long: `Checks module settings, bone mapping paths and animation targets. Paths are
checked against the scenes when --avatar and --wearable are given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}

			var avatar, wearable *scene.Tree

			if avatarPath != "" {
				if avatar, err = scene.LoadFile(avatarPath); err != nil {
					return err
				}
			}

			if wearablePath != "" {
				if wearable, err = scene.LoadFile(wearablePath); err != nil {
					return err
				}
			}

			res := mapping.Validate(cfg, avatar, wearable)
			opts.logger.Debug("validated wearable config",
				slog.String("config", args[0]),
				slog.Int("entries", res.Len()))

			out := cmd.OutOrStdout()
			for _, d := range res.Entries {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if res.HasErrors() {
				return fmt.Errorf("configuration has %d errors", len(res.Errors()))
			}

			fmt.Fprintln(out, "Configuration is valid")

			return nil
		},
	}

	cmd.Flags().StringVarP(&avatarPath, "avatar", "a", "", "Avatar scene snapshot (YAML)")
	cmd.Flags().StringVarP(&wearablePath, "wearable", "w", "", "Wearable scene snapshot (YAML)")

	return cmd
}
