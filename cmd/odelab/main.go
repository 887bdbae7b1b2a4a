package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/eqn"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/plot"
	"github.com/san-kum/odelab/internal/solve"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/tui"
)

var (
	dataDir    string
	equation   string
	initial    string
	span       string
	paramFlags []string
	samples    int
	tolerance  float64
	integrator string
	preset     string
	configFile string
	noSave     bool
)

// main registers commands and flags, launches the interactive workbench when
// no subcommand is given, and executes the root command. It exits with
// status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "interactive first-order ODE workbench",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve an equation and plot the result",
		RunE:  solveEquation,
	}
	solveCmd.Flags().StringVar(&equation, "eq", config.DefaultEquation, "equation, dy/dt = f(t, y)")
	solveCmd.Flags().StringVar(&initial, "y0", config.DefaultInitial, "initial condition y(t0)")
	solveCmd.Flags().StringVar(&span, "span", config.DefaultSpan, "time span, t0, tf")
	solveCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "parameter value, name=value (repeatable)")
	solveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "output sample count")
	solveCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	solveCmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	solveCmd.Flags().StringVar(&preset, "preset", "", "start from a named example")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list example equations",
		RunE:  listPresetsCmd,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, presetsCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveEquation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	// Config file overrides preset, explicit flags override both.
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("eq") {
		cfg.Equation = equation
	}
	if cmd.Flags().Changed("y0") {
		cfg.Initial = initial
	}
	if cmd.Flags().Changed("span") {
		cfg.Span = span
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	for _, pf := range paramFlags {
		name, value, ok := strings.Cut(pf, "=")
		if !ok {
			return fmt.Errorf("invalid --param %q, want name=value", pf)
		}
		cfg.Params[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	t0, tf, err := solve.ParseSpan(cfg.Span)
	if err != nil {
		return err
	}
	y0, err := solve.ParseInitial(cfg.Initial)
	if err != nil {
		return err
	}
	values := make(map[string]float64)
	for name, text := range cfg.Params {
		if strings.TrimSpace(text) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return fmt.Errorf("parameter %s must be a number, got %q", name, text)
		}
		values[name] = v
	}

	f, err := eqn.Compile(cfg.Equation, config.ParamNames, values)
	if err != nil {
		return err
	}

	integ, err := integrators.ByName(cfg.Integrator)
	if err != nil {
		return err
	}

	fmt.Printf("solving %s ...\n", cfg.Equation)
	start := time.Now()

	sol, err := solve.New(integ).Solve(context.Background(), solve.Problem{
		RHS: f,
		T0:  t0, Tf: tf, Y0: y0,
		Samples:   cfg.Samples,
		Tolerance: cfg.Tolerance,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	r := plot.NewRenderer(80, 15)
	r.Draw(cfg.Equation, sol)
	fmt.Println(r.View())

	_, yFinal := sol.Final()
	fmt.Printf("\ncompleted in %v\n", elapsed)
	fmt.Printf("y(%g) = %.6g\n", tf, yFinal)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Equation:   cfg.Equation,
		Params:     cfg.Params,
		Initial:    y0,
		T0:         t0,
		Tf:         tf,
		Samples:    sol.Len(),
		Integrator: cfg.Integrator,
	}, sol)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)

	return nil
}

func listPresetsCmd(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEQUATION\tPARAMS\tY0\tSPAN")

	for _, p := range config.Presets {
		params := make([]string, 0, len(p.Params))
		for name, value := range p.Params {
			params = append(params, name+"="+value)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Equation, strings.Join(params, " "), p.Initial, p.Span)
	}

	return w.Flush()
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
	fmt.Fprintln(w, "ID\tEQUATION\tSPAN\tSAMPLES\tINTEG\tTIME\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g..%g\t%d\t%s\t%s\t%.6g\n",
			run.ID,
			run.Equation,
			run.T0, run.Tf,
			run.Samples,
			run.Integrator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FinalValue,
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
	sol, err := st.LoadSolution(runID)
	if err != nil {
		return err
	}
	if sol.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("equation: %s\n\n", meta.Equation)

	r := plot.NewRenderer(80, 15)
	r.Draw(meta.Equation, sol)
	fmt.Println(r.View())

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	sol, err := st.LoadSolution(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, sol)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	sol, err := st.LoadSolution(runID)
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, sol)
}
