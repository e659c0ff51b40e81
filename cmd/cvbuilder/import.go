package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cvera/cvbuilder/internal/config"
	"github.com/cvera/cvbuilder/internal/importer"
	"github.com/cvera/cvbuilder/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import [profile.json ...]",
	Short: "Normalize external profile files into canonical CV data",
	Long: "Normalize one or more external profile JSON files (any provider shape) into " +
		"canonical cv_data files. Normalization is best-effort and never fails: " +
		"unusable payloads produce an empty CV with placeholder sections.",
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var (
	importConfigPath  string
	importOutDir      string
	importLanguage    string
	importConcurrency int
	importVerbose     bool
)

func init() {
	importCmd.Flags().StringVarP(&importConfigPath, "config", "c", "", "Path to JSON config file")
	importCmd.Flags().StringVarP(&importOutDir, "out", "o", "", "Output directory (required)")
	importCmd.Flags().StringVar(&importLanguage, "language", "", "CV language: azerbaijani or english (default azerbaijani)")
	importCmd.Flags().IntVar(&importConcurrency, "concurrency", 0, "Parallel workers (default 4)")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print per-file import details")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		OutputDir:   importOutDir,
		Language:    importLanguage,
		Concurrency: importConcurrency,
		Verbose:     importVerbose,
	}
	if importConfigPath != "" {
		fileCfg, err := config.LoadConfig(importConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("--out directory is required")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	importerCfg := importer.DefaultConfig()
	if cfg.Language != "" {
		importerCfg.Language = types.CVLanguage(cfg.Language)
	}

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Concurrency)

	for _, path := range args {
		g.Go(func() error {
			outPath, err := importProfile(path, cfg.OutputDir, importerCfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if cfg.Verbose {
				fmt.Fprintf(os.Stdout, "Imported %s -> %s\n", path, outPath)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Successfully imported %d profile(s) into %s\n", len(args), cfg.OutputDir)
	return nil
}

// importProfile normalizes a single profile file and writes the canonical CV
// next to it in outDir as <name>.cv.json.
func importProfile(path, outDir string, cfg importer.Config) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read profile: %w", err)
	}

	cv := importer.NormalizeJSON(raw, cfg)

	encoded, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode cv: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+".cv.json")
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cv: %w", err)
	}
	return outPath, nil
}
