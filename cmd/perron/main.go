package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/perron/internal/analysis"
	"github.com/san-kum/perron/internal/config"
	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/experiment"
	"github.com/san-kum/perron/internal/logistic"
	"github.com/san-kum/perron/internal/storage"
	"github.com/san-kum/perron/internal/viz"
)

var (
	dataDir    string
	r          float64
	densName   string
	iterations int
	gridPoints int
	resample   bool
	configFile string
	preset     string
	// Forward-iteration parameters
	x0        float64
	transient int
	samples   int
	bins      int
	// Sweep parameters
	rMin   float64
	rMax   float64
	rSteps int
	width  int
	height int
	// Live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "perron",
		Short: "transfer operator lab for the logistic map",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".perron", "data directory")

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "push a density through the transfer operator",
		RunE:  runPush,
	}
	pushCmd.Flags().Float64Var(&r, "r", config.DefaultR, "map parameter")
	pushCmd.Flags().StringVar(&densName, "density", config.DefaultDensity, "seed density")
	pushCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "operator applications")
	pushCmd.Flags().IntVar(&gridPoints, "grid", config.DefaultGridPoints, "query grid points")
	pushCmd.Flags().BoolVar(&resample, "resample", false, "tabulate each iterate before the next")
	pushCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	pushCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run iterates",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	bifurcateCmd := &cobra.Command{
		Use:   "bifurcate",
		Short: "sweep r and plot the bifurcation diagram",
		RunE:  bifurcate,
	}
	bifurcateCmd.Flags().Float64Var(&rMin, "rmin", 2.5, "sweep start")
	bifurcateCmd.Flags().Float64Var(&rMax, "rmax", 4.0, "sweep end")
	bifurcateCmd.Flags().IntVar(&rSteps, "steps", 160, "parameter steps")
	bifurcateCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial point")
	bifurcateCmd.Flags().IntVar(&transient, "transient", config.DefaultTransient, "discarded iterations")
	bifurcateCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "recorded iterations")
	bifurcateCmd.Flags().IntVar(&width, "width", 160, "plot width")
	bifurcateCmd.Flags().IntVar(&height, "height", 40, "plot height")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate the Lyapunov exponent",
		RunE:  lyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&r, "r", config.DefaultR, "map parameter")
	lyapunovCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial point")
	lyapunovCmd.Flags().IntVar(&samples, "samples", 20000, "orbit length")
	lyapunovCmd.Flags().IntVar(&transient, "transient", config.DefaultTransient, "discarded iterations")

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "plot a forward orbit",
		RunE:  orbit,
	}
	orbitCmd.Flags().Float64Var(&r, "r", config.DefaultR, "map parameter")
	orbitCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial point")
	orbitCmd.Flags().IntVar(&samples, "samples", 200, "plotted iterations")
	orbitCmd.Flags().IntVar(&transient, "transient", 0, "discarded iterations")
	orbitCmd.Flags().IntVar(&bins, "bins", 0, "also plot an orbit histogram with this many buckets")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the operator chain evolve",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&r, "r", config.DefaultR, "map parameter")
	liveCmd.Flags().StringVar(&densName, "density", config.DefaultDensity, "seed density")
	liveCmd.Flags().IntVar(&gridPoints, "grid", config.DefaultGridPoints, "query grid points")
	liveCmd.Flags().IntVar(&frameRate, "fps", 4, "operator applications per second")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-12s r=%.2f density=%s iterations=%d\n",
					name, cfg.R, cfg.Density, cfg.Iterations)
			}
			return nil
		},
	}

	rootCmd.AddCommand(pushCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd,
		bifurcateCmd, lyapunovCmd, orbitCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPush(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		r = cfg.R
		densName = cfg.Density
		iterations = cfg.Iterations
		gridPoints = cfg.GridPoints
		resample = cfg.Resample
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config values.
		if !cmd.Flags().Changed("r") {
			r = cfg.R
		}
		if !cmd.Flags().Changed("density") {
			densName = cfg.Density
		}
		if !cmd.Flags().Changed("iterations") {
			iterations = cfg.Iterations
		}
		if !cmd.Flags().Changed("grid") {
			gridPoints = cfg.GridPoints
		}
		if !cmd.Flags().Changed("resample") {
			resample = cfg.Resample
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	seed, err := registry.GetDensity(densName)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		R:          r,
		Density:    densName,
		Iterations: iterations,
		GridPoints: gridPoints,
		Resample:   resample,
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(seed, registry.DefaultMetrics()); err != nil {
		return err
	}

	fmt.Printf("pushing %s density through T with r=%.4f...\n", densName, r)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(expCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("iterates: %d\n", len(result.Curves))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tR\tDENSITY\tITER\tGRID")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.R,
			run.Density,
			run.Iterations,
			run.GridPoints,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, curves, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}
	if len(curves) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("r: %.4f  density: %s\n\n", meta.R, meta.Density)
	fmt.Println(viz.PlotIterates(curves))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	grid, curves, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, grid, curves)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	grid, curves, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}
	if len(curves) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, grid, curves)
}

func bifurcate(cmd *cobra.Command, args []string) error {
	points := analysis.BifurcationDiagram(rMin, rMax, rSteps, x0, transient, samples)

	fmt.Printf("bifurcation diagram: r in [%.2f, %.2f], x0=%.2f\n\n", rMin, rMax, x0)
	fmt.Print(analysis.BifurcationToASCII(points, width, height))
	fmt.Printf("\n%-8.2f%*s%.2f\n", rMin, width-12, "r", rMax)

	return nil
}

func lyapunov(cmd *cobra.Command, args []string) error {
	m := logistic.New(r)
	exponent := analysis.LyapunovExponent(m, x0, samples, transient)

	fmt.Printf("r: %.4f\n", r)
	fmt.Printf("lyapunov exponent: %.6f\n", exponent)
	if exponent > 0 {
		fmt.Println("regime: chaotic")
	} else {
		fmt.Println("regime: stable")
	}

	return nil
}

func orbit(cmd *cobra.Command, args []string) error {
	m := logistic.New(r)
	values := m.Orbit(x0, samples, transient)

	fmt.Printf("orbit: r=%.4f x0=%.2f\n\n", r, x0)
	fmt.Println(viz.PlotCurve(values, "x_n vs n"))

	if bins > 0 {
		// Empirical invariant density estimated from the orbit itself,
		// for eyeballing against the operator iterates.
		h := density.FromSamples(values, bins)
		heights := make([]float64, h.Bins())
		for i := range heights {
			heights[i] = h.Eval((float64(i) + 0.5) / float64(h.Bins()))
		}
		fmt.Println(viz.PlotCurve(heights, "orbit histogram"))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	seed, err := registry.GetDensity(densName)
	if err != nil {
		return err
	}

	m := viz.NewModel(r, densName, seed, gridPoints, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
