// Package generator wires the scan, naming, and emission phases into one
// generation run.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/enosistudio/rgen/rgen/config"
	"github.com/enosistudio/rgen/rgen/emit"
	"github.com/enosistudio/rgen/rgen/naming"
	"github.com/enosistudio/rgen/rgen/tree"

	"github.com/ZanzyTHEbar/assert-lib"
	"github.com/google/uuid"
)

// Generator runs the full pipeline: filesystem scan, identifier
// resolution, source emission, and the atomic write of the output file.
// One run is single-threaded and owns its tree exclusively; nothing is
// shared across runs.
type Generator struct {
	cfg     *config.GeneratorConfig
	logger  *slog.Logger
	emitter *emit.Emitter
}

// Option allows for customization of Generator
type Option func(*Generator)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

func New(cfg *config.GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{
		cfg:     cfg,
		logger:  slog.Default(),
		emitter: emit.NewEmitter(assert.NewAssertHandler()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes one generation pass. Scan problems are recovered locally by
// the scanner; any failure past that point aborts the whole run with a
// single error and leaves no partial output file behind.
func (g *Generator) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := g.logger.With("runId", runID)
	start := time.Now()

	logger.Info("starting resource generation",
		"resourcesDir", g.cfg.ResourcesDir,
		"package", g.cfg.PackageName,
		"output", g.cfg.OutputFile)

	if err := ctx.Err(); err != nil {
		return err
	}

	scanner := tree.NewScanner(
		tree.WithLogger(logger),
		tree.WithIgnorePatterns(g.cfg.IgnorePatterns...),
	)
	root := scanner.Scan(g.cfg.ResourcesDir)

	naming.ResolveTree(root)

	if err := ctx.Err(); err != nil {
		return err
	}

	src := g.emitter.Emit(ctx, root, g.cfg.PackageName, g.cfg.ResourcesDir)

	if err := writeFileAtomic(g.cfg.OutputFile, []byte(src)); err != nil {
		return fmt.Errorf("write generated source to %s: %w", g.cfg.OutputFile, err)
	}

	logger.Info("resource generation complete",
		"files", root.CountFiles(),
		"folders", root.CountFolders(),
		"duration", time.Since(start))
	return nil
}
