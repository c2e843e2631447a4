// Package extract turns uploaded clearance documents into plain text. It is
// a total function over its inputs: any failure yields an empty Text plus
// Warnings rather than an error, so a bad scan never aborts a batch.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rtanga/clearance-tracker/constants"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

type Result struct {
	Text     string
	Pages    int
	Format   constants.Format
	Method   string // "pdf-text" | "pdf-ocr" | "docx" | "image-ocr" | "plain-text"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger

	// text-layer reader, swappable in tests
	pdfText func(path string, maxPages int) (string, int, error)
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger, pdfText: readPDFText}
}

// Extract picks a strategy based on file extension. It never returns an
// error: callers inspect Text and Warnings.
func (e *Extractor) Extract(ctx context.Context, path string) Result {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.MapExtToFormat(ext)
	e.logger.Debug("starting text extraction", "path", path, "ext", ext, "format", format)

	if _, err := os.Stat(path); err != nil {
		e.logger.Error("document unreadable", "path", path, "error", err)
		return Result{
			Format:   format,
			Duration: time.Since(start),
			Warnings: []string{fmt.Sprintf("stat %s: %v", path, err)},
		}
	}

	var res Result
	switch format {
	case constants.PDF:
		res = e.extractPDF(ctx, path)
	case constants.DOCX:
		res = e.extractDOCX(path)
	case constants.IMAGE:
		res = e.extractImage(ctx, path)
	default:
		res = e.extractText(path)
	}
	res.Format = format
	res.Duration = time.Since(start)

	if res.Text == "" {
		e.logger.Warn("extraction produced no text",
			"path", path, "method", res.Method, "warnings", res.Warnings)
	}
	return res
}
