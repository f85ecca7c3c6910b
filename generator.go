package score2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/yabed/go-score2pdf/internal/assets"
)

// Default rendering timings.
const (
	defaultTimeout     = 30 * time.Second
	defaultSettleDelay = 1 * time.Second // web-font load allowance before capture
)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout   time.Duration
	settle    time.Duration
	assetPath string
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the per-render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("score2pdf: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithSettleDelay sets the fixed post-load delay before PDF capture.
// Zero disables the delay; negative values panic.
func WithSettleDelay(d time.Duration) Option {
	if d < 0 {
		panic("score2pdf: WithSettleDelay duration must not be negative")
	}
	return func(g *Generator) {
		g.cfg.settle = d
	}
}

// WithAssetDir overrides template/style/image assets from a directory,
// falling back to the embedded defaults for anything not present there.
func WithAssetDir(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// Generator turns records into certificate PDFs. Create with
// NewGenerator, render with Generate or GenerateArchive, and Close when
// done to release the headless browser.
type Generator struct {
	cfg          generatorConfig
	loader       assets.Loader
	composer     certificateComposer
	pdfConverter pdfConverter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAssetDir).
// Returns error if the asset directory is invalid.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout: defaultTimeout,
			settle:  defaultSettleDelay,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	// Resolve assets: custom directory first, embedded fallback.
	if g.loader == nil {
		resolver, err := assets.NewResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("resolving asset path: %w", err)
		}
		g.loader = resolver
	}

	if g.composer == nil {
		g.composer = newAssetComposer(g.loader)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if g.pdfConverter == nil {
		g.pdfConverter = newRodConverter(g.cfg.timeout, g.cfg.settle)
	}

	return g, nil
}

// Generate validates one record, composes the certificate markup, and
// renders it to PDF bytes. The call blocks until the PDF is fully
// produced; the context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating.
func (g *Generator) Generate(ctx context.Context, rec Record) (pdf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	htmlContent, err := g.composer.Compose(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("composing certificate: %w", err)
	}

	pdfBytes, err := g.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdfConverter != nil {
		return g.pdfConverter.Close()
	}
	return nil
}
