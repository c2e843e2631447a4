package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF tries the embedded text layer first. Scanned PDFs have no text
// layer, so a whitespace-only result falls through to rasterize-and-OCR; if
// rasterization itself fails we retry the text layer on page 1 alone before
// giving up.
func (e *Extractor) extractPDF(ctx context.Context, path string) Result {
	var warns []string

	text, pages, err := e.pdfText(path, e.cfg.MaxPages)
	if err != nil {
		warns = append(warns, err.Error())
	} else if strings.TrimSpace(text) != "" {
		return Result{Text: text, Pages: pages, Method: "pdf-text"}
	}

	ocrText, ocrPages, ocrWarns, ocrErr := e.pdfOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if ocrErr == nil {
		return Result{Text: ocrText, Pages: ocrPages, Method: "pdf-ocr", Warnings: warns}
	}
	warns = append(warns, ocrErr.Error())

	if text, _, err := e.pdfText(path, 1); err == nil && strings.TrimSpace(text) != "" {
		return Result{Text: text, Pages: 1, Method: "pdf-text", Warnings: warns}
	}
	return Result{Method: "pdf-ocr", Warnings: warns}
}

// readPDFText reads the text layer page by page. Pages that fail to decode
// are skipped; a PDF with no text layer comes back as an empty string, not
// an error.
func readPDFText(path string, maxPages int) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	n := r.NumPage()
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}
	return b.String(), n, nil
}

func (e *Extractor) pdfOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "ct-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return b.String(), len(matches), warns, nil
}
