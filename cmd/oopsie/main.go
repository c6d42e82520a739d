// Command oopsie generates typed gomponents wrappers from daisyUI-style
// component documentation.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/config"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/modinfo"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/outfile"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/pipeline"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/source"
)

var (
	cfgFile string
	verbose bool

	docsDir string
	outDir  string
	pkgName string
	dryRun  bool

	fetchURL string
	fetchRef string
	fetchDir string
)

var rootCmd = &cobra.Command{
	Use:   "oopsie",
	Short: "Generate gomponents wrappers from daisyUI documentation",
	Long: `oopsie turns daisyUI-style component documentation (markdown files with
fenced HTML samples) into typed, variant-aware gomponents wrappers.

Each documentation file becomes one generated Go file with size/color/
style/modifier props inferred from the class tokens in its samples.`,
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate [components...]",
	Short: "Generate component wrappers (all components by default)",
	RunE:  runGenerate,
}

var listCmd = &cobra.Command{
	Use:   "list [components...]",
	Short: "Dry-run: report what would be generated without writing files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun = true
		return runGenerate(cmd, args)
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Clone or update the documentation repository",
	RunE:  runFetch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	for _, cmd := range []*cobra.Command{generateCmd, listCmd} {
		cmd.Flags().StringVar(&docsDir, "docs", "", "documentation directory (overrides config)")
		cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")
		cmd.Flags().StringVar(&pkgName, "package", "", "generated package name (default: detected from go.mod)")
	}
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute everything, write nothing")

	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "repository URL (overrides config)")
	fetchCmd.Flags().StringVar(&fetchRef, "ref", "", "branch to fetch (overrides config)")
	fetchCmd.Flags().StringVar(&fetchDir, "dir", ".oopsie-cache", "clone destination")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func loadConfig() (config.Config, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}
	return config.Load(path, explicit)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	docs := firstOf(docsDir, cfg.Source.Docs)
	out := firstOf(outDir, cfg.Out)
	ns := firstOf(pkgName, cfg.Package)
	if ns == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		ns, err = modinfo.DetectNamespace(cwd)
		if err != nil {
			log.Debug().Err(err).Msg("namespace detection failed, using fallback")
			ns = "components"
		}
	}
	components := args
	if len(components) == 0 {
		components = cfg.Components
	}

	paths, err := source.DocFiles(docs, components)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn().Str("docs", docs).Msg("no documentation files found")
		return nil
	}
	log.Debug().Int("files", len(paths)).Str("package", ns).Str("out", out).Msg("starting run")

	files := make([]pipeline.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files = append(files, pipeline.File{Path: p, Lines: strings.Split(string(data), "\n")})
	}

	runner := &pipeline.Runner{
		Notify: func(r pipeline.Result) {
			switch r.Status {
			case pipeline.StatusGenerated:
				log.Info().Str("component", r.Summary.Module).Str("out", r.OutPath).Msg("generated")
			case pipeline.StatusSkipped:
				log.Debug().Str("path", r.Path).Msg("no examples, skipped")
			case pipeline.StatusFailed:
				log.Error().Err(r.Err).Str("path", r.Path).Msg("failed")
			}
		},
	}
	if !dryRun {
		runner.Writer = outfile.DiskWriter{}
	}

	results := runner.Run(cmd.Context(), files, pipeline.Options{
		Namespace: ns,
		OutDir:    out,
	})

	if dryRun {
		printSummaries(results)
	}
	totals := pipeline.Tally(results)
	log.Info().
		Int("generated", totals.Generated).
		Int("skipped", totals.Skipped).
		Int("failed", totals.Failed).
		Msg("done")
	if totals.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", totals.Failed, len(results))
	}
	return nil
}

func printSummaries(results []pipeline.Result) {
	sorted := append([]pipeline.Result(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })
	for _, r := range sorted {
		if r.Status != pipeline.StatusGenerated {
			continue
		}
		dims := strings.Join(r.Summary.Dimensions, ",")
		if dims == "" {
			dims = "-"
		}
		fmt.Printf("%-30s base=%-12s dims=%-26s examples=%d\n",
			r.Summary.Module, r.Summary.BaseClass, dims, r.Summary.Examples)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := logger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	url := firstOf(fetchURL, cfg.Source.URL)
	ref := firstOf(fetchRef, cfg.Source.Ref)
	dir, err := filepath.Abs(fetchDir)
	if err != nil {
		return err
	}
	log.Info().Str("url", url).Str("ref", ref).Str("dir", dir).Msg("fetching documentation repository")
	if err := source.Fetch(cmd.Context(), url, ref, dir); err != nil {
		return err
	}
	log.Info().Msg("up to date")
	return nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
