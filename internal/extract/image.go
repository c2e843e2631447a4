package extract

import (
	"context"
	"fmt"
	"regexp"
)

// lines of box-drawing or underline noise that tesseract emits on forms
var reBoxNoise = regexp.MustCompile(`(?m)^[\s|_\-=~]+$`)

func (e *Extractor) extractImage(ctx context.Context, path string) Result {
	txt, warn, err := e.tesseractOCR(ctx, path)
	if err != nil {
		warn = append(warn, err.Error())
		return Result{Method: "image-ocr", Warnings: warn}
	}
	return Result{Text: txt, Pages: 1, Method: "image-ocr", Warnings: warn}
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return reBoxNoise.ReplaceAllString(string(out), ""), nil, nil
}
