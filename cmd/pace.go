package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Push the pacing schedule to the pacing API without reseeding",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.PaceAPIBaseURL == "" {
			return fmt.Errorf("PACESEED_PACE_API_URL is not set")
		}

		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		runner, err := buildRunner(cmd, cfg, s, newLogger(cmd), nil)
		if err != nil {
			return err
		}

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			if err := runner.PaceReset(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Reset pacing configuration for group %s.\n", cfg.GroupID)
			return nil
		}

		windows, err := runner.Pace(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Pushed pacing for %d modules:\n", len(windows))
		for _, w := range windows {
			fmt.Printf("  module %d: %d working days\n", w.ModuleIdx+1, len(w.Days))
		}
		return nil
	},
}

func init() {
	paceCmd.Flags().Bool("reset", false, "Clear the remote pacing configuration instead of pushing")
}
