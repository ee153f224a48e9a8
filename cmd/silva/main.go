package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/forestlab/silva/internal/forest"
	"github.com/forestlab/silva/internal/live"
	"github.com/forestlab/silva/internal/model"
	"github.com/forestlab/silva/internal/output"
	"github.com/forestlab/silva/internal/project"
	"github.com/forestlab/silva/internal/report"
	"github.com/forestlab/silva/internal/runner"
)

var (
	dataDir     string
	projectFile string
	preset      string
	seed        int64
	frameRate   int
)

const defaultYears = 10

func main() {
	rootCmd := &cobra.Command{
		Use:   "silva",
		Short: "forest landscape simulation runner",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".silva", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [years]",
		Short: "run the simulation for a number of years",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&projectFile, "project", "project.yaml", "project file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a built-in project preset")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "override the project seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [run_id]",
		Short: "final-year biomass and carbon totals",
		Args:  cobra.ExactArgs(1),
		RunE:  summarizeRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot carbon stock over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in project presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range project.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [years]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&projectFile, "project", "project.yaml", "project file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use a built-in project preset")
	liveCmd.Flags().IntVar(&frameRate, "fps", 5, "years per second")

	rootCmd.AddCommand(runCmd, listCmd, summaryCmd, plotCmd, exportCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseYears(args []string) (int, error) {
	if len(args) == 0 {
		return defaultYears, nil
	}
	years, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid years argument %q: %w", args[0], err)
	}
	return years, nil
}

// resolveProject picks the run configuration source: a preset beats the
// project file, and a --seed override forces the file to be loaded up
// front so the seed can be applied before the run.
func resolveProject(cmd *cobra.Command) (*project.Config, error) {
	if preset != "" {
		cfg := project.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, project.ListPresets())
		}
		c := *cfg
		cfg = &c
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		return cfg, nil
	}
	if cmd.Flags().Changed("seed") {
		cfg, err := project.Load(projectFile)
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
		return cfg, nil
	}
	// Defer loading (and validation) of the project file to the
	// controller's create phase.
	return nil, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	years, err := parseYears(args)
	if err != nil {
		return err
	}

	cfg, err := resolveProject(cmd)
	if err != nil {
		return err
	}

	st := output.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	// Keep hold of the controller the orchestrator constructs so the
	// collected result can be saved after the run.
	var ctrl *model.Controller
	factory := func() runner.Controller {
		ctrl = model.NewController()
		if cfg != nil {
			_ = ctrl.SetProjectConfig(cfg)
		}
		return ctrl
	}

	source := projectFile
	if cfg != nil {
		source = cfg.Name
	}

	rep := report.New(os.Stderr)
	orch := runner.New(source, factory, runner.NewRegistry(), rep)

	outcome := orch.Execute(context.Background(), years)
	if outcome.Status != runner.StatusCompleted {
		os.Exit(outcome.ExitCode())
	}

	bound := ctrl.Project()
	runID, err := st.Save(bound.Name, bound.Seed, ctrl.Result())
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("years recorded: %d\n", ctrl.Result().Years)
	fmt.Println("\nmetrics:")
	for name, val := range ctrl.Result().Metrics {
		fmt.Printf("  %s: %.2f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := output.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROJECT\tTIME\tYEARS\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Project,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Years,
			run.Seed,
		)
	}
	return w.Flush()
}

func summarizeRun(cmd *cobra.Command, args []string) error {
	st := output.New(dataDir)
	rows, err := st.LoadStand(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no stand data for run %s", args[0])
	}

	sum := output.Summarize(rows)
	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("final year: %d\n", sum.FinalYear)
	fmt.Printf("trees: %d\n", sum.TreeCount)
	fmt.Printf("total stem mass: %.2f kg\n", sum.StemMass)
	fmt.Printf("total branch mass: %.2f kg\n", sum.BranchMass)
	fmt.Printf("total coarse root mass: %.2f kg\n", sum.CoarseRootMass)
	fmt.Printf("total fine root mass: %.2f kg\n", sum.FineRootMass)
	fmt.Printf("total carbon: %.2f kg\n", sum.CarbonKg)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := output.New(dataDir)
	series, err := st.CarbonSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) < 2 {
		return fmt.Errorf("not enough data to plot")
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("carbon stock [kg] per year"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := output.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadStand(args[0])
	if err != nil {
		return err
	}
	return output.ExportJSON(os.Stdout, meta, rows)
}

func runLive(cmd *cobra.Command, args []string) error {
	years, err := parseYears(args)
	if err != nil {
		return err
	}
	if years < 0 {
		return fmt.Errorf("%d is an invalid number of years to run", years)
	}

	cfg, err := resolveProject(cmd)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg, err = project.Load(projectFile)
		if err != nil {
			return err
		}
	}

	land, err := forest.New(cfg.ForestParams())
	if err != nil {
		return err
	}

	m := live.NewModel(land, cfg.Name, years, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
