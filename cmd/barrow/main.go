package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/barrow/internal/barrowman"
	"github.com/san-kum/barrow/internal/config"
	"github.com/san-kum/barrow/internal/geometry"
	"github.com/san-kum/barrow/internal/numerics"
	"github.com/san-kum/barrow/internal/slender"
	"github.com/san-kum/barrow/internal/storage"
	"github.com/san-kum/barrow/internal/units"
	"github.com/san-kum/barrow/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	preset  string
	save    bool
	plot    bool

	// nose flags
	noseType   string
	noseLength float64

	// fin flags
	rootChord   float64
	tipChord    float64
	span        float64
	sweepDist   float64
	finCount    int
	finPosition float64
	refDiameter float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "barrow",
		Short: "rocket center of pressure calculator (Barrowman method)",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".barrow", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute [config.yaml]",
		Short: "compute overall CoP for a rocket definition",
		Args:  cobra.MaximumNArgs(1),
		RunE:  computeRocket,
	}
	computeCmd.Flags().StringVar(&preset, "preset", "", "use a preset rocket instead of a config file")
	computeCmd.Flags().BoolVar(&save, "save", false, "persist the run under the data directory")
	computeCmd.Flags().BoolVar(&plot, "plot", false, "plot custom fairing profiles")

	noseCmd := &cobra.Command{
		Use:   "nose",
		Short: "contribution of a single nose cone",
		RunE:  computeNose,
	}
	noseCmd.Flags().StringVar(&noseType, "type", "ogive", "nose shape (ogive or cone)")
	noseCmd.Flags().Float64Var(&noseLength, "length", 0.3, "nose length in meters")

	finsCmd := &cobra.Command{
		Use:   "fins",
		Short: "contribution of a single fin set",
		RunE:  computeFins,
	}
	finsCmd.Flags().Float64Var(&rootChord, "root-chord", 0.25, "root chord in meters")
	finsCmd.Flags().Float64Var(&tipChord, "tip-chord", 0.0, "tip chord in meters")
	finsCmd.Flags().Float64Var(&span, "span", 0.13, "fin span in meters")
	finsCmd.Flags().Float64Var(&sweepDist, "sweep", 0.0, "sweep distance in meters")
	finsCmd.Flags().IntVar(&finCount, "count", 3, "number of fins")
	finsCmd.Flags().Float64Var(&finPosition, "position", 0.0, "root leading edge from nose tip in meters")
	finsCmd.Flags().Float64Var(&refDiameter, "ref-diameter", 0.1, "rocket reference diameter in meters")

	profileCmd := &cobra.Command{
		Use:   "profile [points.csv]",
		Short: "slender-body CoP of a custom profile (x,radius CSV in meters)",
		Args:  cobra.ExactArgs(1),
		RunE:  computeProfile,
	}
	profileCmd.Flags().BoolVar(&plot, "plot", false, "plot the resampled profile and area rate")

	sweepCmd := &cobra.Command{
		Use:   "sweep [dir]",
		Short: "compute CoP for every rocket definition in a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepConfigs,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset rockets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("%s\t%s\n", name, config.Presets[name].Name)
			}
		},
	}

	rootCmd.AddCommand(computeCmd, noseCmd, finsCmd, profileCmd, sweepCmd, listCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRocket(args []string) (geometry.Rocket, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return geometry.Rocket{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case len(args) == 1:
		loaded, err := config.Load(args[0])
		if err != nil {
			return geometry.Rocket{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	default:
		return geometry.Rocket{}, fmt.Errorf("either a config file or --preset is required")
	}
	return cfg.ToRocket()
}

func computeRocket(cmd *cobra.Command, args []string) error {
	rocket, err := loadRocket(args)
	if err != nil {
		return err
	}

	res, err := barrowman.ComputeOverall(rocket)
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderBreakdown(rocket.Name, res))

	if plot {
		plotCustomFairings(rocket)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(rocket.Name, res)
		if err != nil {
			return err
		}
		fmt.Printf("saved run: %s\n", runID)
	}

	return nil
}

func plotCustomFairings(rocket geometry.Rocket) {
	for _, comp := range rocket.Components {
		pf, ok := comp.(geometry.PayloadFairing)
		if !ok || pf.ShapeType != "custom" || len(pf.Profile) == 0 {
			continue
		}
		xs, ys, err := slender.Resample(pf.Profile, slender.FineSamples)
		if err != nil {
			fmt.Printf("cannot plot %s: %v\n", pf.Label(), err)
			continue
		}
		fmt.Println(viz.ProfileChart(ys, pf.Label()+": radius [m]"))
		fmt.Println()

		area := make([]float64, len(ys))
		for i, r := range ys {
			area[i] = math.Pi * r * r
		}
		fmt.Println(viz.ProfileChart(numerics.Gradient(area, xs), pf.Label()+": dA/dx"))
		fmt.Println()
	}
}

func computeNose(cmd *cobra.Command, args []string) error {
	contrib, err := barrowman.NoseConeContribution(geometry.NoseCone{
		Shape:  noseType,
		Length: noseLength,
	})
	if err != nil {
		return err
	}
	fmt.Printf("x_cp = %.4f m (%.2f in), CNa = %.3f\n",
		contrib.XCP, units.MToInches(contrib.XCP), contrib.CNAlpha)
	return nil
}

func computeFins(cmd *cobra.Command, args []string) error {
	contrib, err := barrowman.FinSetContribution(geometry.FinSet{
		Count:               finCount,
		RootChord:           rootChord,
		TipChord:            tipChord,
		Span:                span,
		Sweep:               sweepDist,
		PositionFromNoseTip: finPosition,
	}, refDiameter)
	if err != nil {
		return err
	}
	fmt.Printf("x_cp = %.4f m (%.2f in), CNa = %.3f\n",
		contrib.XCP, units.MToInches(contrib.XCP), contrib.CNAlpha)
	return nil
}

func computeProfile(cmd *cobra.Command, args []string) error {
	points, err := readProfileCSV(args[0])
	if err != nil {
		return err
	}

	xs, ys, err := slender.Resample(points, slender.FineSamples)
	if err != nil {
		return err
	}
	xcp, slope := slender.Integrate(xs, ys)

	fmt.Printf("x_cp = %.4f m, relative slope = %.6f\n", xcp, slope)

	if plot {
		fmt.Println(viz.ProfileChart(ys, "radius [m]"))
		fmt.Println()
		area := make([]float64, len(ys))
		for i, r := range ys {
			area[i] = math.Pi * r * r
		}
		fmt.Println(viz.ProfileChart(numerics.Gradient(area, xs), "dA/dx"))
	}

	return nil
}

func readProfileCSV(path string) ([]geometry.ProfilePoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var points []geometry.ProfilePoint
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: row %d has %d fields, want 2", path, i+1, len(rec))
		}
		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				// Allow a header row.
				continue
			}
			return nil, fmt.Errorf("%s: row %d is not numeric", path, i+1)
		}
		points = append(points, geometry.ProfilePoint{X: x, Y: y})
	}
	return points, nil
}

func sweepConfigs(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return fmt.Errorf("no rocket definitions in %s", dir)
	}

	rockets := make([]geometry.Rocket, len(paths))
	for i, path := range paths {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		rockets[i], err = cfg.ToRocket()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	results, err := barrowman.Sweep(rockets)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tROCKET\tCOP [m]\tCOP [in]\tWARNINGS")
	for i, res := range results {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.2f\t%d\n",
			filepath.Base(paths[i]),
			rockets[i].Name,
			res.XCP,
			units.MToInches(res.XCP),
			len(res.Warnings),
		)
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
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROCKET\tTIME\tCOP [m]\tCOMPONENTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\n",
			run.ID,
			run.Rocket,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.OverallCoP,
			len(run.Contributions),
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(meta)
}
