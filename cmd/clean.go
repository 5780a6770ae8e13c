package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all seeded data for the sandbox group",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cmd)

		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		if !confirm(cmd, fmt.Sprintf("Delete everything seeded for group %s?", cfg.GroupID)) {
			return fmt.Errorf("aborted")
		}

		runner, err := buildRunner(cmd, cfg, s, log, nil)
		if err != nil {
			return err
		}

		deleted, err := runner.Clean(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d events and the %s roster.\n", deleted, cfg.GroupID)
		return nil
	},
}

func init() {
	cleanCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
