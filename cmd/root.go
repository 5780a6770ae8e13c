package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paceseed/internal/config"
	"github.com/abhisek/paceseed/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "paceseed",
	Short: "Seed realistic longitudinal classroom activity for sandbox dashboards",
	Long: "Paceseed fills a sandbox group with synthetic students and weeks of " +
		"time-distributed activity events, so teacher-facing dashboards have " +
		"believable pacing, points, attendance and feedback data to demo against.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database DSN: postgres:// URL or SQLite path (overrides PACESEED_DB)")
	rootCmd.PersistentFlags().String("env", ".env", "Path to a .env file to load")
	rootCmd.PersistentFlags().String("group", "", "Sandbox group public ID (overrides PACESEED_GROUP)")
	rootCmd.PersistentFlags().Int("students", 0, "Synthetic roster size (overrides PACESEED_STUDENTS)")
	rootCmd.PersistentFlags().Int("lookback", 0, "History window in days (overrides PACESEED_LOOKBACK_DAYS)")
	rootCmd.PersistentFlags().Bool("allow-remote", false, "Allow a non-local Postgres host")
	rootCmd.PersistentFlags().Bool("plain", false, "Line output instead of the live view")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log internals to stderr")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(paceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges .env, environment and flags, highest priority last.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if envPath, _ := cmd.Flags().GetString("env"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return config.Config{}, fmt.Errorf("load %s: %w", envPath, err)
			}
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v, _ := cmd.Flags().GetString("group"); v != "" {
		cfg.GroupID = v
	}
	if v, _ := cmd.Flags().GetInt("students"); v > 0 {
		cfg.Students = v
	}
	if v, _ := cmd.Flags().GetInt("lookback"); v > 0 {
		cfg.LookbackDays = v
	}
	cfg.AllowRemote, _ = cmd.Flags().GetBool("allow-remote")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the database and enforces the schema-version gate.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	s, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	version, err := s.MetaValue(cmd.Context(), "version")
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := config.CheckSchemaVersion(version, store.SchemaVersion); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// newLogger returns a development logger with --verbose, a nop otherwise.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}

// confirm prompts before a destructive step. --yes skips the prompt.
func confirm(cmd *cobra.Command, prompt string) bool {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true
	}
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
