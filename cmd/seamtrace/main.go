package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/macma/seamtrace/internal/config"
	"github.com/macma/seamtrace/internal/signature"
	"github.com/macma/seamtrace/internal/store"
	"github.com/macma/seamtrace/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	driftMode   string
	amplitude   float64
	frequency   float64
	tMax        float64
	samples     int
	tolerance   float64
	u0, v0      float64
	x0, y0, z0  float64
	pitch       float64
	turnRate    float64
	climbRate   float64
	interpolate bool
	jsonOut     bool
	noPlot      bool
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	rootCmd := &cobra.Command{
		Use:   "seamtrace",
		Short: "topological signature explorer for low-dimensional manifolds",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".seamtrace", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [manifold]",
		Short: "integrate a trajectory and extract its signatures",
		Args:  cobra.ExactArgs(1),
		RunE:  runManifold,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&driftMode, "drift", "sinusoidal", "drift mode (constant|sinusoidal)")
	runCmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "drift amplitude")
	runCmd.Flags().Float64Var(&frequency, "frequency", config.DefaultFrequency, "drift frequency")
	runCmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "integration end time")
	runCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	runCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "solver tolerance")
	runCmd.Flags().Float64Var(&u0, "u0", 0.0, "initial primary coordinate")
	runCmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial transverse coordinate")
	runCmd.Flags().Float64Var(&x0, "x0", 1.0, "initial x (3D flows)")
	runCmd.Flags().Float64Var(&y0, "y0", 0.0, "initial y (3D flows)")
	runCmd.Flags().Float64Var(&z0, "z0", 0.0, "initial z (3D flows)")
	runCmd.Flags().Float64Var(&pitch, "pitch", config.DefaultPitch, "hopf poloidal pitch")
	runCmd.Flags().Float64Var(&turnRate, "turn-rate", config.DefaultTurnRate, "dna vortex turn rate")
	runCmd.Flags().Float64Var(&climbRate, "climb-rate", config.DefaultClimbRate, "dna vortex climb rate")
	runCmd.Flags().BoolVar(&interpolate, "interpolate", false, "repair degenerate samples from neighbors")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "write bundle JSON to stdout")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run every preset concurrently",
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "write a stored run's signatures to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [manifold]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, batchCmd, plotCmd, exportCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, manifoldName string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		p := config.GetPreset(manifoldName, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for manifold %q", preset, manifoldName)
		}
		clone := *p
		cfg = &clone
	default:
		cfg = config.DefaultConfig()
	}

	cfg.Manifold = manifoldName

	// Flags override file and preset values when set explicitly.
	if cmd.Flags().Changed("drift") {
		cfg.Drift.Mode = driftMode
	} else if cfg.Drift.Mode == "" {
		cfg.Drift.Mode = driftMode
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Drift.Amplitude = amplitude
	}
	if cmd.Flags().Changed("frequency") {
		cfg.Drift.Frequency = frequency
	}
	if cmd.Flags().Changed("tmax") {
		cfg.TMax = tMax
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("u0") {
		cfg.InitState.U = u0
	}
	if cmd.Flags().Changed("v0") {
		cfg.InitState.V = v0
	}
	if cmd.Flags().Changed("x0") {
		cfg.InitState.X = x0
	}
	if cmd.Flags().Changed("y0") {
		cfg.InitState.Y = y0
	}
	if cmd.Flags().Changed("z0") {
		cfg.InitState.Z = z0
	}
	if cmd.Flags().Changed("pitch") {
		cfg.Params.Pitch = pitch
	}
	if cmd.Flags().Changed("turn-rate") {
		cfg.Params.TurnRate = turnRate
	}
	if cmd.Flags().Changed("climb-rate") {
		cfg.Params.ClimbRate = climbRate
	}
	cfg.Interpolate = interpolate

	return cfg, nil
}

func runManifold(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	slog.Info("starting run",
		"manifold", cfg.Manifold, "drift", cfg.Drift.Mode,
		"tmax", cfg.TMax, "samples", cfg.Samples)

	start := time.Now()
	bundle, err := runPipeline(cfg)
	if err != nil {
		return err
	}
	slog.Info("run complete",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"parity_transitions", bundle.ParityTransitions())

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Drift:     cfg.Drift.Mode,
		TMax:      cfg.TMax,
		Tolerance: cfg.Tolerance,
	}, bundle)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", runID, "dir", dataDir)

	if jsonOut {
		return store.ExportJSONStdout(bundle)
	}
	if !noPlot {
		fmt.Println(viz.Render(bundle))
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	var jobs []signature.Job
	var metas []*config.Config

	for manifoldName, group := range config.Presets {
		for presetName, p := range group {
			cfg := *p
			cfgPtr := &cfg
			jobs = append(jobs, signature.Job{
				Name: fmt.Sprintf("%s/%s", manifoldName, presetName),
				Run:  func() (*signature.Bundle, error) { return runPipeline(cfgPtr) },
			})
			metas = append(metas, cfgPtr)
		}
	}

	slog.Info("starting batch", "jobs", len(jobs))
	start := time.Now()
	bundles, err := signature.Batch(jobs)
	if err != nil {
		return err
	}
	slog.Info("batch complete", "elapsed", time.Since(start).Round(time.Millisecond))

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for i, b := range bundles {
		runID, err := st.Save(store.RunMetadata{
			Drift:     metas[i].Drift.Mode,
			TMax:      metas[i].TMax,
			Tolerance: metas[i].Tolerance,
		}, b)
		if err != nil {
			return err
		}
		slog.Info("saved", "job", jobs[i].Name, "id", runID)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	export, err := st.LoadSignatures(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("seamtrace · %s (stored)", export.Manifold)))
	fmt.Println(viz.Series("theta (unwrapped phase)", export.Theta))
	fmt.Println(viz.Series("delta (distance to seam)", export.Delta))
	fmt.Println(viz.ParityStrip(export.W1))
	if len(export.Helicity) > 0 {
		fmt.Println(viz.Series("helicity (running winding)", export.Helicity))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(filepath.Join(dataDir, args[0], "signatures.json"))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMANIFOLD\tDRIFT\tT_MAX\tSAMPLES\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
			r.ID, r.Manifold, r.Drift, r.TMax, r.Samples,
			r.Timestamp.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MANIFOLD\tPRESET\tDRIFT\tT_MAX\tSAMPLES")

	show := func(manifoldName string) {
		for _, name := range config.ListPresets(manifoldName) {
			p := config.GetPreset(manifoldName, name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n",
				manifoldName, name, p.Drift.Mode, p.TMax, p.Samples)
		}
	}

	if len(args) == 1 {
		show(args[0])
	} else {
		for manifoldName := range config.Presets {
			show(manifoldName)
		}
	}
	return w.Flush()
}
