package main

import (
	"encoding/json"
	"fmt"
	"os"
	"shapetrainer/internal/config"
	"shapetrainer/internal/server"
	"shapetrainer/internal/sim"
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath string
	servePort  string

	simSeed       int64
	simDuration   int
	simMinMs      int
	simMaxMs      int
	simMissRate   float64
	simIgnoreRate float64
	simJSON       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "shapetrainer",
		Short:        "Reaction-time shape clicking trainer",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to a TOML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSimulateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	return cmd
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	return server.Run(cfg)
}

func newSimulateCmd() *cobra.Command {
	def := sim.DefaultBot()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play one session headlessly with a scripted player",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed for spawns and the player")
	cmd.Flags().IntVar(&simDuration, "duration", 0, "session length in seconds (default from config)")
	cmd.Flags().IntVar(&simMinMs, "min-ms", int(def.MinReaction/time.Millisecond), "fastest reaction in ms")
	cmd.Flags().IntVar(&simMaxMs, "max-ms", int(def.MaxReaction/time.Millisecond), "slowest reaction in ms")
	cmd.Flags().Float64Var(&simMissRate, "miss-rate", def.MissRate, "chance of a stray click per shape (0-1)")
	cmd.Flags().Float64Var(&simIgnoreRate, "ignore-rate", def.IgnoreRate, "chance of ignoring a shape (0-1)")
	cmd.Flags().BoolVar(&simJSON, "json", false, "print the result as JSON")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if simDuration > 0 {
		cfg.SessionDuration = simDuration
	}
	if simMinMs < 0 || simMaxMs < simMinMs {
		return fmt.Errorf("invalid reaction range %d-%dms", simMinMs, simMaxMs)
	}
	if simMissRate < 0 || simMissRate > 1 || simIgnoreRate < 0 || simIgnoreRate > 1 {
		return fmt.Errorf("rates must be between 0 and 1")
	}

	bot := sim.Bot{
		MinReaction: time.Duration(simMinMs) * time.Millisecond,
		MaxReaction: time.Duration(simMaxMs) * time.Millisecond,
		MissRate:    simMissRate,
		IgnoreRate:  simIgnoreRate,
	}
	res := sim.Run(cfg.Session(), simSeed, bot)

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	st := res.Stats
	best := "-"
	if st.BestReactionMs != nil {
		best = fmt.Sprintf("%dms", *st.BestReactionMs)
	}
	fmt.Fprintf(out, "Session finished after %s\n", res.Elapsed)
	fmt.Fprintf(out, "  shapes:   %d seen, %d hit, %d expired\n", res.ShapesSeen, st.TotalHits, st.MissedShapes)
	fmt.Fprintf(out, "  clicks:   %d (%d missed)\n", res.Clicks, st.MissedClicks)
	fmt.Fprintf(out, "  reaction: avg %dms, best %s\n", st.AvgReactionMs, best)
	fmt.Fprintf(out, "  quality:  %d perfect, %d fast, %d normal\n", st.PerfectHits, st.FastHits, st.NormalHits)
	fmt.Fprintf(out, "  accuracy: %d%%, longest streak %d\n", st.AccuracyPct, st.LongestStreak)
	return nil
}
