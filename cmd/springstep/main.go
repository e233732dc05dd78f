package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/arjun-s/springstep/internal/config"
	"github.com/arjun-s/springstep/internal/driver"
	"github.com/arjun-s/springstep/internal/engine"
	"github.com/arjun-s/springstep/internal/trace"
	"github.com/arjun-s/springstep/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	stiffness   float64
	damping     float64
	rest        float64
	inverseMass float64
	start       float64

	durationMs int64
	frameRate  int
	jitterMs   int64
	save       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springstep",
		Short: "fixed-timestep spring animation engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springstep", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&stiffness, "stiffness", 0, "spring stiffness")
	rootCmd.PersistentFlags().Float64Var(&damping, "damping", 0, "spring damping")
	rootCmd.PersistentFlags().Float64Var(&rest, "rest", 0, "rest position")
	rootCmd.PersistentFlags().Float64Var(&inverseMass, "inverse-mass", 0, "body inverse mass")
	rootCmd.PersistentFlags().Float64Var(&start, "start", 0, "initial position")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless deterministic simulation",
		RunE:  runHeadless,
	}
	runCmd.Flags().Int64Var(&durationMs, "time", 5000, "simulated duration in milliseconds")
	runCmd.Flags().Int64Var(&jitterMs, "jitter", 0, "frame interval jitter in milliseconds")
	runCmd.Flags().BoolVar(&save, "save", false, "persist the run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s stiffness=%.2f damping=%.2f inverse_mass=%.2f\n",
					name, p.Stiffness, p.Damping, p.InverseMass)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicit flags, the
// later ones winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("stiffness") {
		cfg.Stiffness = stiffness
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("rest") {
		cfg.Rest = rest
	}
	if cmd.Flags().Changed("inverse-mass") {
		cfg.InverseMass = inverseMass
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = start
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := cfg.Engine()
	if err != nil {
		return err
	}
	state, err := cfg.InitialState()
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	rec.AddMetric(trace.NewPeakDisplacement())
	rec.AddMetric(trace.NewSettling(1.0))
	rec.AddMetric(trace.NewEnergyDrift())

	interval := int64(1000 / cfg.FrameRate)
	if interval < 1 {
		interval = 1
	}
	clock := driver.NewSyntheticClock(interval, jitterMs)

	fmt.Printf("simulating %dms at %dfps...\n", durationMs, cfg.FrameRate)
	started := time.Now()

	for {
		ts := clock.Next()
		if ts > durationMs {
			break
		}
		next, err := eng.Transition(state, engine.ClockTick{WallClock: ts})
		if err != nil {
			return err
		}
		state = next
		rec.Observe(state)
	}

	fmt.Printf("completed in %v (%d frames, %d steps)\n\n", time.Since(started), rec.Len(), state.StepCount)

	fmt.Println(asciigraph.Plot(rec.Positions(), asciigraph.Height(12), asciigraph.Width(70)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, val := range rec.Metrics() {
		fmt.Fprintf(w, "%s\t%.4f\n", name, val)
	}
	fmt.Fprintf(w, "final position\t%.4f\n", state.Position())
	fmt.Fprintf(w, "final velocity\t%.4f\n", state.Body.Velocity)
	w.Flush()

	if save {
		store := trace.NewStore(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(trace.RunMetadata{
			Stiffness:  cfg.Stiffness,
			Damping:    cfg.Damping,
			Rest:       cfg.Rest,
			StepMillis: cfg.StepMillis,
		}, rec)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := trace.NewStore(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTIFFNESS\tDAMPING\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stiffness, run.Damping, run.Samples)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := trace.NewStore(dataDir)
	positions, err := store.LoadPositions(args[0])
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(positions, asciigraph.Height(15), asciigraph.Width(70)))
	return nil
}
