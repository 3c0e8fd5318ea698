package pwaicon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Advisory is printed after a successful run.
const Advisory = "These are placeholder icons; replace them with professionally designed artwork for production."

// Result describes a finished run.
type Result struct {
	Dir     string
	Files   []string
	Font    string
	Elapsed time.Duration
}

// Generator renders and writes every configured icon size in order.
type Generator struct {
	cfg      Config
	renderer *Renderer
	writer   *Writer
	logger   *log.Logger
}

// NewGenerator validates cfg and returns a generator bound to it.
// The configuration is copied, later changes to cfg have no effect.
func NewGenerator(cfg Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg.Sizes = append([]int(nil), cfg.Sizes...)
	cfg.Fonts = append([]FontSource(nil), cfg.Fonts...)

	return &Generator{
		cfg:      cfg,
		renderer: NewRenderer(cfg, logger),
		writer:   NewWriter(cfg.OutputDir, logger),
		logger:   logger,
	}, nil
}

// Generate creates the output directory and writes one PNG per size.
// It stops at the first error; icons written before it are kept on disk.
// The context is checked between two icons.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	now := time.Now()

	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}

	g.logger.Info("Generating PWA icons", "count", len(g.cfg.Sizes), "label", g.cfg.Theme.Label)

	res := &Result{
		Dir:   g.cfg.OutputDir,
		Files: make([]string, 0, len(g.cfg.Sizes)),
	}
	for _, size := range g.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		img, err := g.renderer.Render(size)
		if err != nil {
			return res, fmt.Errorf("rendering %s: %w", IconName(size), err)
		}
		path, err := g.writer.Write(img, size)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
		res.Font = g.renderer.Font()

		g.logger.Info("Created", "file", filepath.Base(path), "font", res.Font)
	}
	res.Elapsed = time.Since(now)

	g.logger.Info(fmt.Sprintf("Generated %d icons in %s", len(res.Files), res.Dir))
	g.logger.Warn(Advisory)

	return res, nil
}
