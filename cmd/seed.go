package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/paceseed/internal/seeder"
	"github.com/abhisek/paceseed/internal/ui"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the sandbox group with synthetic activity history",
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

		// Reseeding replaces the group's existing events.
		probe, err := buildRunner(cmd, cfg, s, log, nil)
		if err != nil {
			return err
		}
		state, err := probe.Verify(cmd.Context())
		if err != nil {
			return err
		}
		keep, _ := cmd.Flags().GetBool("keep")
		if !keep && state.GroupExists && state.Counts.Total() > 0 {
			prompt := fmt.Sprintf("Group %s already holds %d events; replace them?",
				cfg.GroupID, state.Counts.Total())
			if !confirm(cmd, prompt) {
				return fmt.Errorf("aborted")
			}
		}

		plain, _ := cmd.Flags().GetBool("plain")
		var report *seeder.Report

		run := func(progress seeder.ProgressFunc) error {
			runner, err := buildRunner(cmd, cfg, s, log, progress)
			if err != nil {
				return err
			}
			report, err = runner.Seed(cmd.Context())
			return err
		}

		if plain {
			err = run(ui.PlainProgress(os.Stdout))
		} else {
			err = ui.RunLive(run)
		}
		if err != nil {
			return err
		}

		fmt.Printf("\nSeeded %d students over %d working days:\n",
			report.Stats.Students, len(report.WorkingDays))
		fmt.Printf("  %d questions shown, %d answered\n",
			report.Stats.QuestionsShown, report.Stats.QuestionsAnswered)
		fmt.Printf("  %d lessons completed (%d split across days)\n",
			report.Stats.LessonsCompleted, report.Stats.SplitLessons)
		fmt.Printf("  %d mastery checks (%d delayed)\n",
			report.Stats.MasteryChecks, report.Stats.DelayedChecks)
		fmt.Printf("  %d point awards, %d attendance marks, %d assessment responses, %d feedback comments\n",
			report.Points, report.Attendance, report.Assessments, report.Feedback)
		if report.PacePushed {
			fmt.Println("  pacing configuration pushed")
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	seedCmd.Flags().Bool("keep", false, "Keep existing events instead of replacing them")
}
