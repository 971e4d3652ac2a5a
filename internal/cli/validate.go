package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tensor-field/internal/core"
	"tensor-field/internal/scenario"
)

func (a *App) newValidateCmd() *cobra.Command {
	build := false
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file",
		Long: `Validate a scenario file: YAML syntax, field source, navigator tunables,
selection points and tick budget. With --build the field is also constructed,
which catches duplicate samples and unreadable images.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			if build {
				f, err := s.BuildField()
				if err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}
				size := f.Size()
				fmt.Fprintf(a.stdout, "Field: %dx%d\n", size.W, size.H)
			}
			fmt.Fprintf(a.stdout, "Scenario %q is valid.\n", s.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&build, "build", false, "Also build the field")
	return cmd
}

func (a *App) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the registered field presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.SimNames() {
				fmt.Fprintln(a.stdout, name)
			}
		},
	}
}
