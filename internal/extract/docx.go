package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// DOCX is a zip archive; the document body lives in word/document.xml.
// Unmarshal picks up only direct children, so body-level paragraphs and
// tables land in separate slices and nested table paragraphs are not
// double-counted.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []string `xml:"t"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// extractDOCX emits body paragraphs in document order, then table cell text
// row-major in table order.
func (e *Extractor) extractDOCX(path string) Result {
	doc, err := readDOCX(path)
	if err != nil {
		return Result{Method: "docx", Warnings: []string{err.Error()}}
	}

	var lines []string
	for _, p := range doc.Body.Paragraphs {
		if s := p.text(); s != "" {
			lines = append(lines, s)
		}
	}
	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs {
					if s := p.text(); s != "" {
						lines = append(lines, s)
					}
				}
			}
		}
	}
	return Result{Text: strings.Join(lines, "\n"), Pages: 1, Method: "docx"}
}

func (p docxParagraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			b.WriteString(t)
		}
	}
	return strings.TrimSpace(b.String())
}

func readDOCX(path string) (*docxDocument, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()

		var doc docxDocument
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("docx %q has no word/document.xml", path)
}
