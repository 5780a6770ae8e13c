package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/paceseed/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-day and per-type totals for the seeded group",
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

		runner, err := buildRunner(cmd, cfg, s, newLogger(cmd), nil)
		if err != nil {
			return err
		}

		rep, err := runner.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderDayTable(rep.Days))
		fmt.Println(ui.RenderCounts(rep.Counts))
		return nil
	},
}
