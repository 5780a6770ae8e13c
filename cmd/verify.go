package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/paceseed/internal/store"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the database schema and report what the group holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		version, err := s.MetaValue(cmd.Context(), "version")
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %s (supported: %s)\n", version, store.SchemaVersion)

		runner, err := buildRunner(cmd, cfg, s, newLogger(cmd), nil)
		if err != nil {
			return err
		}
		rep, err := runner.Verify(cmd.Context())
		if err != nil {
			return err
		}

		if !rep.GroupExists {
			fix, _ := cmd.Flags().GetBool("fix")
			if !fix {
				fmt.Printf("Group %s does not exist yet. Run `paceseed seed` to create it.\n", cfg.GroupID)
				return nil
			}
			if err := runner.Fix(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Created missing roster for group %s.\n", cfg.GroupID)
			if rep, err = runner.Verify(cmd.Context()); err != nil {
				return err
			}
		}
		fmt.Printf("Group %s: %d modules, %d lessons, %d students, %d events.\n",
			cfg.GroupID, rep.Modules, rep.Lessons, rep.Students, rep.Counts.Total())
		return nil
	},
}

func init() {
	verifyCmd.Flags().Bool("fix", false, "Create missing sandbox roster rows")
}
