package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paceseed/internal/config"
	"github.com/abhisek/paceseed/internal/feedback"
	"github.com/abhisek/paceseed/internal/llm"
	"github.com/abhisek/paceseed/internal/paceapi"
	"github.com/abhisek/paceseed/internal/seeder"
	"github.com/abhisek/paceseed/internal/store"
)

// buildRunner wires the seeder against the open store.
func buildRunner(cmd *cobra.Command, cfg config.Config, s *store.Store, log *zap.Logger, progress seeder.ProgressFunc) (*seeder.Runner, error) {
	events, err := s.EventRepo()
	if err != nil {
		return nil, err
	}

	keep, _ := cmd.Flags().GetBool("keep")
	opts := seeder.Options{
		GroupID:      cfg.GroupID,
		Students:     cfg.Students,
		LookbackDays: cfg.LookbackDays,
		KeepEvents:   keep,
	}

	ros := []seeder.RunnerOption{
		seeder.WithLogger(log),
		seeder.WithFeedback(feedbackGenerator(cmd.Context(), log)),
	}
	if progress != nil {
		ros = append(ros, seeder.WithProgress(progress))
	}
	if cfg.PaceAPIBaseURL != "" {
		client := paceapi.New(cfg.PaceAPIBaseURL, cfg.PaceAPIToken, paceapi.WithLogger(log))
		ros = append(ros, seeder.WithPace(client))
	}

	return seeder.New(events, s.RosterRepo(), opts, ros...), nil
}

// feedbackGenerator builds an LLM-backed comment generator when a
// provider is configured, falling back to the canned pool.
func feedbackGenerator(ctx context.Context, log *zap.Logger) feedback.Generator {
	cfg := llm.ConfigFromEnv()
	if os.Getenv("PACESEED_LLM_PROVIDER") == "" {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return feedback.NewCanned()
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("llm provider misconfigured, using canned feedback", zap.Error(err))
		return feedback.NewCanned()
	}

	provider, err := llm.NewProvider(ctx, cfg, log)
	if err != nil {
		log.Warn("llm provider unavailable, using canned feedback", zap.Error(err))
		return feedback.NewCanned()
	}
	return feedback.New(provider)
}
