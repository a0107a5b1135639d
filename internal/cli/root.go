package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/WTuneSeeker/Pingo-Release-sub000/internal/arena"
	"github.com/WTuneSeeker/Pingo-Release-sub000/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile   string
	flagCfg   config.Config
	quietLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Run a headless Conquest Arena match",
	Long: `arena runs one Conquest Arena match on a 10x10 board: one human seat
and three AI rivals race to claim cells matching called numbers.

Run with defaults (the human seat is played by the autopilot)
	arena

Play a short, fast match and save the result
	arena --units 30 --time-unit 100ms --result result.yaml
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)

		logger, err := config.NewLogger(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cfg, logger)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional .env file with ARENA_* settings")
	rootCmd.Flags().IntVarP(&flagCfg.MatchUnits, "units", "u", 180, "Match length, in time units")
	rootCmd.Flags().IntVar(&flagCfg.CadenceUnits, "cadence", 4, "Time units between called events")
	rootCmd.Flags().DurationVar(&flagCfg.TimeUnit, "time-unit", 0, "Wall-clock length of one time unit (default 1s)")
	rootCmd.Flags().Uint64Var(&flagCfg.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&flagCfg.Autopilot, "autopilot", true, "Let the computer play the human seat")
	rootCmd.Flags().StringVarP(&flagCfg.ResultFile, "result", "r", "", "Write the final result as YAML to this path")
	rootCmd.Flags().StringVar(&flagCfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&quietLogs, "quiet", "q", false, "Do not print the match log as it happens")
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("units") {
		cfg.MatchUnits = flagCfg.MatchUnits
	}
	if flags.Changed("cadence") {
		cfg.CadenceUnits = flagCfg.CadenceUnits
	}
	if flags.Changed("time-unit") {
		cfg.TimeUnit = flagCfg.TimeUnit
	}
	if flags.Changed("seed") {
		cfg.Seed = flagCfg.Seed
	}
	if flags.Changed("autopilot") {
		cfg.Autopilot = flagCfg.Autopilot
	}
	if flags.Changed("result") {
		cfg.ResultFile = flagCfg.ResultFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
}

func run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	m, err := arena.NewMatch(cfg.Options(logger))
	if err != nil {
		return err
	}
	if cfg.Autopilot {
		arena.NewAutopilot(m, cfg.AutopilotDelay(), cfg.Seed+1, logger).Attach()
	}
	if !quietLogs {
		m.OnLogEvent(func(e arena.LogEntry) {
			logger.WithField("kind", e.Kind).Info(e.Message)
		})
	}

	if _, err := m.StartMatch(); err != nil {
		return err
	}

	select {
	case <-m.Done():
	case <-ctx.Done():
		logger.Warn("interrupted, closing match")
		m.Close()
	}

	res, ok := m.Result()
	if !ok {
		return fmt.Errorf("match %s finished without a result", m.ID)
	}
	printStandings(res)

	if cfg.ResultFile != "" {
		out, err := arena.EncodeResult(res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.ResultFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		logger.WithField("path", cfg.ResultFile).Info("result saved")
	}
	return nil
}

func printStandings(res arena.Result) {
	var b strings.Builder
	fmt.Fprintf(&b, "\nMatch %s\n", res.MatchID)
	for i, s := range res.Standings {
		fmt.Fprintf(&b, "%d. %-10s %5d pts  %3d cells  %2d forts\n", i+1, s.Name, s.Score, s.Cells, s.Forts)
	}
	fmt.Fprintf(&b, "Winner: %s\n", strings.Join(res.Winners, ", "))
	fmt.Print(b.String())
}
