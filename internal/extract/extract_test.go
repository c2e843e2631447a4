package extract

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner stands in for pdftoppm and tesseract. The pdftoppm leg writes
// pageCount empty PNGs under the requested prefix; the tesseract leg answers
// per image basename.
type fakeRunner struct {
	pdftoppmErr error
	pageCount   int
	pageText    map[string]string
	pageErr     map[string]error
	calls       []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdftoppm":
		if f.pdftoppmErr != nil {
			return nil, []byte("rasterization failed"), f.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= f.pageCount; i++ {
			path := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		base := filepath.Base(args[0])
		if err := f.pageErr[base]; err != nil {
			return nil, []byte("ocr failed"), err
		}
		return []byte(f.pageText[base]), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestExtractor(t *testing.T, fr *fakeRunner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if fr != nil {
		e.runner = fr
	}
	return e
}

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExtractMissingFile(t *testing.T) {
	e := newTestExtractor(t, nil)
	res := e.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	if res.Text != "" {
		t.Errorf("missing file produced text %q", res.Text)
	}
	if len(res.Warnings) == 0 {
		t.Error("missing file produced no warning")
	}
}

func TestExtractPDFTextLayer(t *testing.T) {
	fr := &fakeRunner{}
	e := newTestExtractor(t, fr)
	e.pdfText = func(string, int) (string, int, error) {
		return "certificate of clearance", 2, nil
	}

	res := e.Extract(context.Background(), touch(t, "doc.pdf"))
	if res.Method != "pdf-text" || res.Text != "certificate of clearance" || res.Pages != 2 {
		t.Errorf("got %+v, want pdf-text result", res)
	}
	if len(fr.calls) != 0 {
		t.Errorf("text layer success must not invoke OCR, ran %v", fr.calls)
	}
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	fr := &fakeRunner{
		pageCount: 2,
		pageText:  map[string]string{"page-1.png": "page one", "page-2.png": "page two"},
	}
	e := newTestExtractor(t, fr)
	e.pdfText = func(string, int) (string, int, error) { return "  \n ", 2, nil }

	res := e.Extract(context.Background(), touch(t, "scan.pdf"))
	if res.Method != "pdf-ocr" {
		t.Fatalf("method = %q, want pdf-ocr", res.Method)
	}
	if want := "page one\n\f\npage two"; res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
}

func TestExtractPDFOCRSkipsFailedPage(t *testing.T) {
	fr := &fakeRunner{
		pageCount: 2,
		pageText:  map[string]string{"page-1.png": "page one"},
		pageErr:   map[string]error{"page-2.png": fmt.Errorf("exit status 1")},
	}
	e := newTestExtractor(t, fr)
	e.pdfText = func(string, int) (string, int, error) { return "", 2, nil }

	res := e.Extract(context.Background(), touch(t, "scan.pdf"))
	if res.Text != "page one" {
		t.Errorf("text = %q, want the surviving page only", res.Text)
	}
	if len(res.Warnings) == 0 {
		t.Error("failed page left no warning")
	}
}

func TestExtractPDFRetryFirstPageWhenRasterizationFails(t *testing.T) {
	fr := &fakeRunner{pdftoppmErr: fmt.Errorf("exit status 99")}
	e := newTestExtractor(t, fr)
	e.pdfText = func(_ string, maxPages int) (string, int, error) {
		if maxPages == 1 {
			return "first page only", 1, nil
		}
		return "", 3, nil
	}

	res := e.Extract(context.Background(), touch(t, "broken.pdf"))
	if res.Method != "pdf-text" || res.Text != "first page only" || res.Pages != 1 {
		t.Errorf("got %+v, want first-page text retry", res)
	}
	if len(res.Warnings) == 0 {
		t.Error("rasterization failure left no warning")
	}
}

func writeDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := io.WriteString(w, documentXML); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestExtractDOCXParagraphsThenTables(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>This is to certify</w:t></w:r><w:r><w:t> the clearance</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Library</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Cleared</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p><w:r><w:t>Signed by the registrar</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := newTestExtractor(t, nil)
	res := e.Extract(context.Background(), writeDOCX(t, doc))
	if res.Method != "docx" {
		t.Fatalf("method = %q, want docx", res.Method)
	}
	want := strings.Join([]string{
		"This is to certify the clearance",
		"Signed by the registrar",
		"Library",
		"Cleared",
	}, "\n")
	if res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
}

func TestExtractDOCXNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	e := newTestExtractor(t, nil)
	res := e.Extract(context.Background(), path)
	if res.Text != "" || len(res.Warnings) == 0 {
		t.Errorf("corrupt docx should yield empty text with warnings, got %+v", res)
	}
}

func TestExtractImage(t *testing.T) {
	fr := &fakeRunner{pageText: map[string]string{"stamp.png": "clearance approved"}}
	e := newTestExtractor(t, fr)

	res := e.Extract(context.Background(), touch(t, "stamp.png"))
	if res.Method != "image-ocr" || res.Text != "clearance approved" || res.Pages != 1 {
		t.Errorf("got %+v, want image-ocr result", res)
	}
}

func TestExtractPlainTextUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("all dues settled"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	e := newTestExtractor(t, nil)
	res := e.Extract(context.Background(), path)
	if res.Method != "plain-text" || res.Text != "all dues settled" {
		t.Errorf("got %+v, want plain-text result", res)
	}
}

func TestExtractPlainTextLegacyEncoding(t *testing.T) {
	// "café" in windows-1252 / latin-1
	raw := []byte{'c', 'a', 'f', 0xE9}
	path := filepath.Join(t.TempDir(), "legacy.txt")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	e := newTestExtractor(t, nil)
	res := e.Extract(context.Background(), path)
	if res.Text != "café" {
		t.Errorf("text = %q, want decoded latin text", res.Text)
	}
}
