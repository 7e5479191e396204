// Package main is the entry point for the rgen resource accessor generator.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	internal "github.com/enosistudio/rgen/rgen"
	"github.com/enosistudio/rgen/rgen/config"
	"github.com/enosistudio/rgen/rgen/generator"
)

func main() {
	logger := internal.GetLogger()

	configPath := flag.String("config", "", "Path to a config file (default: ./rgen.yaml when present)")
	resourcesDir := flag.String("dir", "", "Directory containing resource files to scan")
	packageName := flag.String("pkg", "", "Package name for the generated source")
	outputFile := flag.String("out", "", "Path the generated source is written to")
	ignore := flag.String("ignore", "", "Comma-separated gitignore-style patterns to skip while scanning")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Flags override the config file.
	if *resourcesDir != "" {
		cfg.Generator.ResourcesDir = *resourcesDir
	}
	if *packageName != "" {
		cfg.Generator.PackageName = *packageName
	}
	if *outputFile != "" {
		cfg.Generator.OutputFile = *outputFile
	}
	if *ignore != "" {
		for _, p := range strings.Split(*ignore, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Generator.IgnorePatterns = append(cfg.Generator.IgnorePatterns, p)
			}
		}
	}
	if *verbose {
		cfg.Generator.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Generator.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	gen := generator.New(&cfg.Generator)
	if err := gen.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("resource generation failed")
	}
}
