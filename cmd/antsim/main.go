package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/antsim/internal/analysis"
	"github.com/san-kum/antsim/internal/automation"
	"github.com/san-kum/antsim/internal/config"
	"github.com/san-kum/antsim/internal/export"
	"github.com/san-kum/antsim/internal/gui"
	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/metrics"
	"github.com/san-kum/antsim/internal/sim"
	"github.com/san-kum/antsim/internal/viz"
)

var (
	logLevel   string
	configFile string
	preset     string
	size       int
	rules      string
	seed       int64
	ticks      int
	frameRate  int
	// run / analyze
	sampleEvery int
	logEvery    int
	jsonOut     bool
	csvFile     string
	// analyze
	period  int
	repeats int
	// export
	outFile  string
	svgScale int
	antColor string
	// gui
	guiScale int
	// sweep
	runs    int
	workers int
	numAnts int
	// rule-sweep
	ruleList []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "antsim",
		Short:        "multi-ant, multi-colour Langton's Ant on a torus",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			log.SetOutput(os.Stderr)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&size, "size", config.DefaultSize, "grid side length")
	pf.StringVar(&rules, "rules", config.DefaultRules, "rule string of 0s and 1s")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed for unplaced ants")
	pf.IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&sampleEvery, "sample", 10, "coverage sample interval in ticks")
	runCmd.Flags().IntVar(&logEvery, "log-every", 1000, "progress log interval in ticks (debug level)")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run report as json")
	runCmd.Flags().StringVar(&csvFile, "csv", "", "write the coverage series to a csv file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the colony in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the colony in a window (ebiten build)",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "ticks per second")
	guiCmd.Flags().IntVar(&guiScale, "scale", gui.DefaultOptions().Scale, "pixels per cell")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run headless and save the final grid as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "antsim.svg", "output file")
	exportCmd.Flags().IntVar(&svgScale, "scale", 4, "pixels per cell")
	exportCmd.Flags().StringVar(&antColor, "ant-color", "#ff3355", "ant marker colour, empty to hide")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "detect the highway and the symmetry of the final grid",
		Args:  cobra.NoArgs,
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&sampleEvery, "sample", 10, "coverage sample interval in ticks")
	analyzeCmd.Flags().IntVar(&period, "period", analysis.HighwayPeriod, "highway period in ticks")
	analyzeCmd.Flags().IntVar(&repeats, "repeats", 3, "periods the highway must last")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run colonies with randomly placed ants over a range of seeds",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 = unbounded)")
	sweepCmd.Flags().IntVar(&numAnts, "ants", 1, "randomly placed ants per colony")
	sweepCmd.Flags().IntVar(&sampleEvery, "sample", 10, "coverage sample interval in ticks")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of colonies from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	ruleSweepCmd := &cobra.Command{
		Use:   "rule-sweep",
		Short: "compare rule strings on the same configuration",
		Args:  cobra.NoArgs,
		RunE:  runRuleSweep,
	}
	ruleSweepCmd.Flags().StringSliceVar(&ruleList, "rule-list", []string{"10", "110", "1000", "1100"}, "rule strings to compare")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, presetsCmd, exportCmd, analyzeCmd, sweepCmd, initCmd, scenarioCmd, ruleSweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: defaults, then preset, then config
// file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("rules") {
		cfg.Rules = rules
		if len(cfg.Colors) != len(rules) {
			cfg.Colors = nil
		}
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	colony, err := cfg.Build()
	if err != nil {
		return err
	}

	s := sim.New(colony)
	s.AddMetric(metrics.NewCoverage())
	s.AddMetric(metrics.NewVisited())
	if len(colony.Ants()) > 0 {
		s.AddMetric(metrics.NewRightTurns(0))
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, err := s.Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: sampleEvery, LogEvery: logEvery})
	if result == nil {
		return err
	}

	if csvFile != "" {
		if werr := writeCoverageCSV(csvFile, result.Coverage); werr != nil {
			return werr
		}
	}
	if jsonOut {
		if werr := export.WriteJSON(os.Stdout, export.NewReport(colony, cfg.Seed, sampleEvery, result)); werr != nil {
			return werr
		}
		return err
	}

	printSummary(colony, result)
	plotCoverage(result.Coverage, fmt.Sprintf("coverage (every %d ticks)", sampleEvery))
	return err
}

func writeCoverageCSV(path string, coverage []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return export.WriteCoverageCSV(file, sampleEvery, coverage)
}

func printSummary(c *langton.Colony, result *sim.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "rules\t%s\n", c.Rules())
	fmt.Fprintf(w, "size\t%d\n", c.Size())
	fmt.Fprintf(w, "ticks\t%d\n", c.Ticks())
	fmt.Fprintf(w, "painted\t%d\n", result.Count)
	fmt.Fprintf(w, "checksum\t%016x\n", result.Checksum)
	for _, name := range []string{"coverage", "visited", "right_turns"} {
		if v, ok := result.Metrics[name]; ok {
			fmt.Fprintf(w, "%s\t%.4f\n", name, v)
		}
	}
	for i, a := range result.Ants {
		fmt.Fprintf(w, "ant %d\t%s (%d,%d)\n", i, a.Heading, a.Row, a.Col)
	}
	w.Flush()
}

func plotCoverage(data []float64, caption string) {
	if len(data) < 2 {
		return
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println()
	fmt.Println(graph)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Palette()
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.Build, p, cfg.FPS, cfg.Ticks)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Palette()
	if err != nil {
		return err
	}

	opts := gui.DefaultOptions()
	opts.Scale = guiScale
	opts.TPS = cfg.FPS
	opts.MaxTicks = cfg.Ticks

	err = gui.Run(cfg.Build, p, opts)
	if errors.Is(err, gui.ErrNoGUI) {
		return fmt.Errorf("%w; rebuild with: go build -tags ebiten ./cmd/antsim", err)
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tRULES\tANTS\tTICKS")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\n", name, cfg.Size, cfg.Rules, len(cfg.Ants), cfg.Ticks)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Palette()
	if err != nil {
		return err
	}
	colony, err := cfg.Build()
	if err != nil {
		return err
	}

	if cfg.Ticks > 0 {
		ctx, cancel := signalContext()
		defer cancel()
		if _, err := sim.New(colony).Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: cfg.Ticks}); err != nil {
			return err
		}
	}

	svg := export.GridToSVG(colony.Grid(), p, svgScale)
	if antColor != "" {
		svg = export.AntsToSVG(svg, colony.Ants(), colony.Size(), svgScale, antColor)
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": outFile, "tick": colony.Ticks()}).Info("grid exported")
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	colony, err := cfg.Build()
	if err != nil {
		return err
	}
	if len(colony.Ants()) == 0 {
		return errors.New("analyze needs at least one ant")
	}

	trail := sim.NewTrail(colony, 0)
	s := sim.New(colony)
	s.AddMetric(metrics.NewCoverage())
	s.AddObserver(trail)

	ctx, cancel := signalContext()
	defer cancel()

	result, err := s.Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: sampleEvery})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%d\n", colony.Ticks())
	fmt.Fprintf(w, "coverage\t%.4f\n", result.Metrics["coverage"])
	fmt.Fprintf(w, "symmetry\t%d-fold\n", analysis.Symmetry(colony.Grid()))

	if hw, ok := analysis.DetectHighway(trail.Points(), period, repeats); ok {
		fmt.Fprintf(w, "highway\tonset %d, period %d, shift (%d,%d)\n", hw.Onset, hw.Period, hw.Shift.Row, hw.Shift.Col)
	} else {
		fmt.Fprintf(w, "highway\tnone\n")
	}

	// Row displacement of the unwrapped path, one sample per tick.
	points := trail.Points()
	rows := make([]float64, 0, len(points))
	for i := 1; i < len(points); i++ {
		rows = append(rows, float64(points[i].Row-points[i-1].Row))
	}
	if p, ok := analysis.DominantPeriod(rows); ok {
		fmt.Fprintf(w, "dominant period\t%.1f ticks\n", p)
	}
	if p, ok := analysis.DominantPeriod(result.Coverage); ok {
		fmt.Fprintf(w, "coverage period\t%.1f ticks\n", p*float64(sampleEvery))
	}
	w.Flush()

	plotCoverage(result.Coverage, fmt.Sprintf("coverage (every %d ticks)", sampleEvery))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	factory := func(seed int64) (*langton.Colony, error) {
		c, err := langton.New(cfg.Size, cfg.Rules, langton.WithSeed(seed))
		if err != nil {
			return nil, err
		}
		for i := 0; i < numAnts; i++ {
			if _, err := c.AddAnt(); err != nil {
				return nil, err
			}
		}
		return c, nil
	}

	ens := sim.NewEnsemble(factory, runs, cfg.Seed).
		WithWorkers(workers).
		WithMetrics(func() []sim.Metric {
			return []sim.Metric{metrics.NewCoverage(), metrics.NewVisited()}
		})

	ctx, cancel := signalContext()
	defer cancel()

	results, err := ens.Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: sampleEvery})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tCOVERAGE\tVISITED\tCHECKSUM")
	mean := 0.0
	for i, r := range results {
		cov := r.Metrics["coverage"]
		mean += cov
		fmt.Fprintf(w, "%d\t%.4f\t%.0f\t%016x\n", cfg.Seed+int64(i), cov, r.Metrics["visited"], r.Checksum)
	}
	w.Flush()
	fmt.Printf("\nmean coverage: %.4f over %d runs\n", mean/float64(len(results)), len(results))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunScenario(ctx, sc, log.StandardLogger())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTICKS\tCOVERAGE\tCHECKSUM")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%016x\n", i+1, r.Ticks, r.Metrics["coverage"], r.Checksum)
	}
	w.Flush()
	return err
}

func runRuleSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunSweep(ctx, &automation.RuleSweep{Base: cfg, Rules: ruleList}, log.StandardLogger())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULES\tCOVERAGE\tVISITED\tCHECKSUM")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\t%.0f\t%016x\n", r.Rules, r.Coverage, r.Visited, r.Checksum)
	}
	return w.Flush()
}
