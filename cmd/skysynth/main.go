package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/astrogo/fitsio"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/export"
	"github.com/san-kum/skysynth/internal/fits"
	"github.com/san-kum/skysynth/internal/grid"
	"github.com/san-kum/skysynth/internal/noise"
	"github.com/san-kum/skysynth/internal/stats"
	"github.com/san-kum/skysynth/internal/storage"
	"github.com/san-kum/skysynth/internal/synth"
	"github.com/san-kum/skysynth/internal/tui"
	"github.com/san-kum/skysynth/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var (
	dataDir string
	width   int
	height  int
	seed    int64
	outPath string
	// Noise parameters
	distribution string
	mean         float64
	stddev       float64
	// Random catalog ranges
	count   int
	fluxMin float64
	fluxMax float64
	ampMin  float64
	ampMax  float64
	xMax    float64
	yMax    float64
	stdMin  float64
	stdMax  float64
	// Rendering
	oversample int
	withWCS    bool
	stretch    string
	scale      int
	// Scene selection
	configFile string
	preset     string
	// Ensemble size
	runs int
	// Stats and terminal view
	clipSigma float64
	bins      int
	viewCols  int
)

// main is the entry point for the skysynth CLI; it registers commands and flags, opens the interactive preview when no subcommand is given, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "skysynth",
		Short: "synthetic astronomical image lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive preview mode when no command given
			return tui.Run(config.DefaultScene())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".skysynth", "data directory")

	noiseCmd := &cobra.Command{
		Use:   "noise",
		Short: "generate a pure noise image",
		RunE:  makeNoise,
	}
	noiseCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	noiseCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	noiseCmd.Flags().StringVar(&distribution, "dist", "gaussian", "noise distribution (gaussian, poisson)")
	noiseCmd.Flags().Float64Var(&mean, "mean", 0.0, "noise mean")
	noiseCmd.Flags().Float64Var(&stddev, "stddev", 0.0, "gaussian standard deviation")
	noiseCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default derived from time)")
	noiseCmd.Flags().StringVar(&outPath, "out", "", "output file, .fits or .png (default noise.fits)")
	noiseCmd.Flags().BoolVar(&withWCS, "wcs", false, "attach a minimal TAN WCS header")
	noiseCmd.Flags().StringVar(&stretch, "stretch", "linear", "png stretch (linear, sqrt, log, asinh)")
	noiseCmd.Flags().IntVar(&scale, "scale", 1, "png magnification factor")

	poissonCmd := &cobra.Command{
		Use:   "poisson [image.fits]",
		Short: "apply poisson shot noise to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  applyPoisson,
	}
	poissonCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default derived from time)")
	poissonCmd.Flags().StringVar(&outPath, "out", "", "output file, .fits or .png (default poisson.fits)")

	sourcesCmd := &cobra.Command{
		Use:   "sources [catalog.csv]",
		Short: "render gaussian sources from a catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSources,
	}
	sourcesCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	sourcesCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	sourcesCmd.Flags().IntVar(&oversample, "oversample", 1, "subpixel sampling factor")
	sourcesCmd.Flags().StringVar(&outPath, "out", "", "output file, .fits or .png (default sources.fits)")
	sourcesCmd.Flags().BoolVar(&withWCS, "wcs", false, "attach a minimal TAN WCS header")
	sourcesCmd.Flags().StringVar(&stretch, "stretch", "linear", "png stretch (linear, sqrt, log, asinh)")
	sourcesCmd.Flags().IntVar(&scale, "scale", 1, "png magnification factor")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "draw a random source catalog",
		RunE:  makeCatalog,
	}
	catalogCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of sources")
	catalogCmd.Flags().Float64Var(&fluxMin, "flux-min", 500, "minimum total flux")
	catalogCmd.Flags().Float64Var(&fluxMax, "flux-max", 1000, "maximum total flux")
	catalogCmd.Flags().Float64Var(&ampMin, "amp-min", 0, "minimum peak amplitude (overrides flux range)")
	catalogCmd.Flags().Float64Var(&ampMax, "amp-max", 0, "maximum peak amplitude (overrides flux range)")
	catalogCmd.Flags().Float64Var(&xMax, "x-max", config.DefaultWidth, "maximum x center")
	catalogCmd.Flags().Float64Var(&yMax, "y-max", config.DefaultHeight, "maximum y center")
	catalogCmd.Flags().Float64Var(&stdMin, "std-min", 1, "minimum source sigma")
	catalogCmd.Flags().Float64Var(&stdMax, "std-max", 5, "maximum source sigma")
	catalogCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default derived from time)")
	catalogCmd.Flags().StringVar(&outPath, "out", "", "output csv (default stdout)")

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "build a dataset from a scene and store it",
		RunE:  buildScene,
	}
	sceneCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	sceneCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	sceneCmd.Flags().Int64Var(&seed, "seed", 0, "override scene seed")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "build many realizations of one scene",
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	ensembleCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	ensembleCmd.Flags().IntVar(&runs, "runs", 8, "number of realizations")
	ensembleCmd.Flags().Int64Var(&seed, "seed", 0, "seed of the first realization")

	exampleCmd := &cobra.Command{
		Use:   "example [name]",
		Short: "build a bundled example image (4gaussians, 100gaussians)",
		Args:  cobra.ExactArgs(1),
		RunE:  buildExample,
	}
	exampleCmd.Flags().StringVar(&outPath, "out", "", "write the image to a file instead of the store")
	exampleCmd.Flags().BoolVar(&withWCS, "wcs", false, "attach a minimal TAN WCS header")
	exampleCmd.Flags().StringVar(&stretch, "stretch", "linear", "png stretch (linear, sqrt, log, asinh)")
	exampleCmd.Flags().IntVar(&scale, "scale", 1, "png magnification factor")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored datasets",
		RunE:  listDatasets,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [dataset_id|image.fits]",
		Short: "image statistics and pixel histogram",
		Args:  cobra.ExactArgs(1),
		RunE:  statsDataset,
	}
	statsCmd.Flags().Float64Var(&clipSigma, "clip-sigma", 3.0, "sigma clipping threshold")
	statsCmd.Flags().IntVar(&bins, "bins", 30, "histogram bin count")

	viewCmd := &cobra.Command{
		Use:   "view [dataset_id|image.fits]",
		Short: "view an image as character art",
		Args:  cobra.ExactArgs(1),
		RunE:  viewDataset,
	}
	viewCmd.Flags().IntVar(&viewCols, "cols", 80, "output width in characters")
	viewCmd.Flags().StringVar(&stretch, "stretch", "linear", "stretch (linear, sqrt, log, asinh)")

	renderCmd := &cobra.Command{
		Use:   "render [dataset_id|image.fits]",
		Short: "render an image to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderDataset,
	}
	renderCmd.Flags().StringVar(&outPath, "out", "", "output png path (default image.png)")
	renderCmd.Flags().StringVar(&stretch, "stretch", "linear", "stretch (linear, sqrt, log, asinh)")
	renderCmd.Flags().IntVar(&scale, "scale", 1, "magnification factor")

	chartCmd := &cobra.Command{
		Use:   "chart [dataset_id|catalog.csv]",
		Short: "write an svg finder chart of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  chartCatalog,
	}
	chartCmd.Flags().StringVar(&outPath, "out", "", "output svg path (default chart.svg)")
	chartCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "chart width for csv catalogs")
	chartCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "chart height for csv catalogs")

	exportCmd := &cobra.Command{
		Use:   "export [dataset_id]",
		Short: "export dataset metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportMetadata,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [dataset_id]",
		Short: "export the source catalog to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCatalogCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [dataset_id]",
		Short: "export the full dataset to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportDatasetJSON,
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "interactive scene preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := resolveScene(cmd)
			if err != nil {
				return err
			}
			return tui.Run(scene)
		},
	}
	previewCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	previewCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	previewCmd.Flags().Int64Var(&seed, "seed", 0, "override scene seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSHAPE\tSEED\tSOURCES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				n := len(p.Sources)
				if p.Random != nil {
					n = p.Random.Count
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\n", name, p.Width, p.Height, p.Seed, n)
			}
			return w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark source rendering",
		RunE:  benchRender,
	}

	rootCmd.AddCommand(noiseCmd, poissonCmd, sourcesCmd, catalogCmd, sceneCmd, ensembleCmd, exampleCmd, listCmd, statsCmd, viewCmd, renderCmd, chartCmd, exportCmd, exportCSVCmd, exportJSONCmd, previewCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func makeNoise(cmd *cobra.Command, args []string) error {
	dist, err := noise.ParseDistribution(distribution)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("mean") {
		return fmt.Errorf("--mean is required")
	}
	if dist == noise.Gaussian && !cmd.Flags().Changed("stddev") {
		return fmt.Errorf("--stddev is required for gaussian noise")
	}
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	if outPath == "" {
		outPath = "noise.fits"
	}

	cfg := noise.Config{Distribution: dist, Mean: mean, StdDev: stddev}
	img, err := noise.Image(width, height, cfg, noise.NewSource(seed))
	if err != nil {
		return err
	}

	if err := writeImage(outPath, img, ""); err != nil {
		return err
	}

	sum := stats.Compute(img)
	fmt.Printf("wrote %s (%dx%d, mean %.3f, std %.3f)\n", outPath, width, height, sum.Mean, sum.StdDev)
	return nil
}

func applyPoisson(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	if outPath == "" {
		outPath = "poisson.fits"
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	img, err := fits.ReadImage(f)
	f.Close()
	if err != nil {
		return err
	}

	noisy, err := noise.ApplyPoisson(img, noise.NewSource(seed))
	if err != nil {
		return err
	}

	if err := writeImage(outPath, noisy, ""); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func renderSources(cmd *cobra.Command, args []string) error {
	if outPath == "" {
		outPath = "sources.fits"
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	cat, err := catalog.ReadCSV(f)
	f.Close()
	if err != nil {
		return err
	}

	img, err := synth.RenderCatalog(width, height, cat, oversample)
	if err != nil {
		return err
	}

	if err := writeImage(outPath, img, ""); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d sources)\n", outPath, len(cat.Sources))
	return nil
}

func makeCatalog(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	ranges := catalog.Ranges{
		X:       catalog.Range{Max: xMax},
		Y:       catalog.Range{Max: yMax},
		XStdDev: catalog.Range{Min: stdMin, Max: stdMax},
		YStdDev: catalog.Range{Min: stdMin, Max: stdMax},
	}
	if cmd.Flags().Changed("amp-min") || cmd.Flags().Changed("amp-max") {
		ranges.Amplitude = &catalog.Range{Min: ampMin, Max: ampMax}
	} else {
		ranges.Flux = &catalog.Range{Min: fluxMin, Max: fluxMax}
	}

	cat, err := catalog.Random(count, ranges, noise.NewSource(seed))
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return catalog.WriteCSV(out, cat)
}

func buildScene(cmd *cobra.Command, args []string) error {
	scene, err := resolveScene(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("building %s...\n", scene.Name)
	start := time.Now()

	ds, err := synth.Build(scene)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	id, err := st.Save(scene, ds)
	if err != nil {
		return err
	}

	sum := stats.Compute(ds.Image)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("dataset id: %s\n", id)
	fmt.Printf("sources: %d\n", len(ds.Catalog.Sources))
	fmt.Println("\nimage:")
	fmt.Printf("  mean: %.4f\n", sum.Mean)
	fmt.Printf("  median: %.4f\n", sum.Median)
	fmt.Printf("  std: %.4f\n", sum.StdDev)
	fmt.Printf("  range: [%.4f, %.4f]\n", sum.Min, sum.Max)

	return nil
}

// resolveScene builds the scene for a command from, in order of
// increasing precedence, the defaults, a named preset, a config file
// and explicit flags.
func resolveScene(cmd *cobra.Command) (*config.Scene, error) {
	scene := config.DefaultScene()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		s := *p
		scene = &s
	}

	if configFile != "" {
		s, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		scene = s
	}

	if cmd.Flags().Changed("seed") {
		scene.Seed = seed
	}

	return scene, nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	scene, err := resolveScene(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("building %d realizations of %s...\n", runs, scene.Name)
	start := time.Now()

	datasets, err := synth.NewEnsemble(scene, runs, scene.Seed).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tMEAN\tMEDIAN\tSTD\tMIN\tMAX")

	means := make([]float64, len(datasets))
	for i, ds := range datasets {
		sum := stats.Compute(ds.Image)
		means[i] = sum.Mean
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			scene.Seed+int64(i), sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(means) > 1 {
		fmt.Printf("\nensemble mean: %.4f +/- %.4f across %d runs\n",
			stat.Mean(means, nil), stat.StdDev(means, nil), len(means))
	}

	return nil
}

func buildExample(cmd *cobra.Command, args []string) error {
	var (
		ds  *synth.Dataset
		err error
	)
	switch args[0] {
	case "4gaussians":
		ds, err = synth.FourGaussians()
	case "100gaussians":
		ds, err = synth.HundredGaussians()
	default:
		return fmt.Errorf("unknown example: %s (use 4gaussians or 100gaussians)", args[0])
	}
	if err != nil {
		return err
	}

	scene := config.GetPreset(args[0])

	if outPath != "" {
		if err := writeImage(outPath, ds.Image, scene.Unit); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(scene, ds)
	if err != nil {
		return err
	}
	fmt.Printf("dataset id: %s\n", id)
	return nil
}

func listDatasets(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	datasets, err := st.List()
	if err != nil {
		return err
	}

	if len(datasets) == 0 {
		fmt.Println("no datasets found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSHAPE\tSEED\tSOURCES\tMEAN")

	for _, ds := range datasets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%.3f\n",
			ds.ID,
			ds.Name,
			ds.Timestamp.Format("2006-01-02 15:04:05"),
			ds.Width,
			ds.Height,
			ds.Seed,
			ds.Sources,
			ds.Mean,
		)
	}

	return w.Flush()
}

func statsDataset(cmd *cobra.Command, args []string) error {
	img, name, err := loadImageArg(args[0])
	if err != nil {
		return err
	}

	sum := stats.Compute(img)
	clipped, err := stats.SigmaClipped(img, clipSigma, 5)
	if err != nil {
		return err
	}

	fmt.Printf("image: %s (%dx%d)\n\n", name, img.Width, img.Height)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tMEAN\tMEDIAN\tSTD\tMIN\tMAX")
	fmt.Fprintf(w, "full\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
		sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max)
	fmt.Fprintf(w, "clipped\t%.4f\t%.4f\t%.4f\t\t\n",
		clipped.Mean, clipped.Median, clipped.StdDev)
	if err := w.Flush(); err != nil {
		return err
	}

	hist, err := stats.ComputeHistogram(img, bins)
	if err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(hist.Counts,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("pixel histogram [%.2f, %.2f]", hist.Edges[0], hist.Edges[len(hist.Edges)-1])),
	)
	fmt.Println(graph)

	fmt.Printf("\nsky estimate: %.4f +/- %.4f (%.0f sigma clip, %d of %d pixels kept, %d iters)\n",
		clipped.Median, clipped.StdDev, clipSigma, clipped.Kept, len(img.Pix), clipped.Iters)

	return nil
}

func viewDataset(cmd *cobra.Command, args []string) error {
	img, name, err := loadImageArg(args[0])
	if err != nil {
		return err
	}

	str, err := export.ParseStretch(stretch)
	if err != nil {
		return err
	}

	out, err := viz.Render(img, viewCols, str)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%dx%d, %s stretch)\n", name, img.Width, img.Height, str)
	fmt.Print(out)
	return nil
}

func renderDataset(cmd *cobra.Command, args []string) error {
	if outPath == "" {
		outPath = "image.png"
	}

	img, _, err := loadImageArg(args[0])
	if err != nil {
		return err
	}

	str, err := export.ParseStretch(stretch)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := export.WritePNG(f, img, str, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%dx%d, %s stretch)\n", outPath, img.Width*scale, img.Height*scale, str)
	return nil
}

func chartCatalog(cmd *cobra.Command, args []string) error {
	if outPath == "" {
		outPath = "chart.svg"
	}

	var cat *catalog.Catalog
	w, h := width, height

	if filepath.Ext(args[0]) == ".csv" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		cat, err = catalog.ReadCSV(f)
		f.Close()
		if err != nil {
			return err
		}
	} else {
		st := storage.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		cat, err = st.LoadCatalog(args[0])
		if err != nil {
			return err
		}
		w, h = meta.Width, meta.Height
	}

	svg := export.ChartSVG(cat, w, h)
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d sources)\n", outPath, len(cat.Sources))
	return nil
}

func exportMetadata(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCatalogCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	cat, err := st.LoadCatalog(args[0])
	if err != nil {
		return err
	}
	return catalog.WriteCSV(os.Stdout, cat)
}

func exportDatasetJSON(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := storage.New(dataDir)

	scene, err := st.LoadScene(id)
	if err != nil {
		return err
	}
	img, err := st.LoadImage(id)
	if err != nil {
		return err
	}
	cat, err := st.LoadCatalog(id)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, scene, img, cat)
}

func benchRender(cmd *cobra.Command, args []string) error {
	counts := []int{10, 100, 500}
	sizes := []int{128, 256, 512}

	fmt.Println("benchmarking source rendering")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSOURCES\tTIME\tSOURCES/SEC")

	for _, size := range sizes {
		for _, n := range counts {
			ranges := catalog.Ranges{
				Flux:    &catalog.Range{Min: 500, Max: 1000},
				X:       catalog.Range{Max: float64(size)},
				Y:       catalog.Range{Max: float64(size)},
				XStdDev: catalog.Range{Min: 1, Max: 5},
				YStdDev: catalog.Range{Min: 1, Max: 5},
			}
			cat, err := catalog.Random(n, ranges, noise.NewSource(42))
			if err != nil {
				return err
			}

			start := time.Now()
			if _, err := synth.RenderCatalog(size, size, cat, 1); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
				size, size, n, elapsed, float64(n)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

// writeImage writes g to path in the format named by the extension.
// WCS headers only exist in FITS, so --wcs with a png is an error.
func writeImage(path string, g *grid.Grid, unit string) error {
	switch filepath.Ext(path) {
	case ".fits":
		var cards []fitsio.Card
		if withWCS {
			cards = append(cards, fits.WCSCards(g.Width, g.Height)...)
		}
		if unit != "" {
			cards = append(cards, fits.UnitCard(unit))
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fits.WriteImage(f, g, cards...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		if withWCS {
			return fmt.Errorf("wcs headers only work with fits output")
		}
		str, err := export.ParseStretch(stretch)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.WritePNG(f, g, str, scale); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output format: %s (use .fits or .png)", path)
	}
}

// loadImageArg resolves either a stored dataset ID or a FITS file path.
func loadImageArg(arg string) (*grid.Grid, string, error) {
	if filepath.Ext(arg) == ".fits" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		img, err := fits.ReadImage(f)
		return img, arg, err
	}
	st := storage.New(dataDir)
	img, err := st.LoadImage(arg)
	return img, arg, err
}
