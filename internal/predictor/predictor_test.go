package predictor

import (
	"archive/zip"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/internal/classify"
	"github.com/rtanga/clearance-tracker/internal/extract"
	"github.com/rtanga/clearance-tracker/internal/model"
)

type fakeExtractor struct {
	res  extract.Result
	wait bool
}

func (f fakeExtractor) Extract(ctx context.Context, _ string) extract.Result {
	if f.wait {
		<-ctx.Done()
	}
	return f.res
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPredictor(t *testing.T, ex TextExtractor, strategy Strategy, models *model.Store, timeout time.Duration) *Predictor {
	t.Helper()
	cl, err := classify.NewClassifier(discard())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return New(ex, cl, models, strategy, timeout, discard())
}

func trainedStore(t *testing.T) *model.Store {
	t.Helper()

	var b strings.Builder
	b.WriteString("document," + strings.Join(constants.LabelColumns, ",") + "\n")
	for li := range constants.LabelColumns {
		for r := 0; r < 12; r++ {
			cells := make([]string, len(constants.LabelColumns))
			for i := range cells {
				cells[i] = "0"
			}
			cells[li] = "1"
			b.WriteString("doc," + strings.Join(cells, ",") + "\n")
		}
	}
	csvPath := filepath.Join(t.TempDir(), "flags.csv")
	if err := os.WriteFile(csvPath, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	m, err := model.Train(csvPath, discard())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	s := model.NewStore(t.TempDir(), discard())
	s.Swap(m)
	return s
}

func TestPredictKeywordApproval(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{
		Text: "Library clearance APPROVED. All books returned.", Method: "docx", Format: constants.DOCX,
	}}
	p := newPredictor(t, ex, StrategyKeyword, nil, 0)

	got := p.Predict(context.Background(), "form.docx", "LIBRARY")
	if got.Status != constants.StatusApproved {
		t.Errorf("status = %s, want APPROVED", got.Status)
	}
	if got.Category != constants.Library || !got.HaveCategory {
		t.Errorf("category = %s/%v, want LIBRARY", got.Category, got.HaveCategory)
	}
	if got.Method != "docx" {
		t.Errorf("method = %q, want docx", got.Method)
	}
}

func TestPredictRejectionDominates(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{
		Text: "Clearance approved. However, fees are still outstanding.",
	}}
	p := newPredictor(t, ex, StrategyKeyword, nil, 0)

	got := p.Predict(context.Background(), "letter.pdf", "FINANCIAL")
	if got.Status != constants.StatusRejected {
		t.Errorf("status = %s, want REJECTED", got.Status)
	}
}

func TestPredictEmptyTextStaysPending(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{Text: "  \n\t "}}
	p := newPredictor(t, ex, StrategyKeyword, nil, 0)

	got := p.Predict(context.Background(), "blank.pdf", "ADMIN")
	if got.Status != constants.StatusPending {
		t.Errorf("status = %s, want PENDING", got.Status)
	}
	if got.Text != "" {
		t.Errorf("empty extraction must not be classified, got text %q", got.Text)
	}
}

func TestPredictUnknownDeclaredTypeFallsBackToDetection(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{
		Text: "The library confirms all borrowed books were returned and no fines remain.",
	}}
	p := newPredictor(t, ex, StrategyKeyword, nil, 0)

	got := p.Predict(context.Background(), "letter.pdf", "no-such-type")
	if got.Category != constants.Library || !got.HaveCategory {
		t.Errorf("category = %s/%v, want detected LIBRARY", got.Category, got.HaveCategory)
	}
}

func TestPredictTimeout(t *testing.T) {
	ex := fakeExtractor{wait: true, res: extract.Result{Text: "approved"}}
	p := newPredictor(t, ex, StrategyKeyword, nil, 10*time.Millisecond)

	got := p.Predict(context.Background(), "slow.pdf", "ADMIN")
	if got.Status != constants.StatusPending {
		t.Errorf("status = %s, want PENDING on timeout", got.Status)
	}
	if len(got.Warnings) == 0 {
		t.Error("timeout left no warning")
	}
}

func TestPredictModelStrategyUpgradesPending(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{
		Text: "Research clearance form for the department",
	}}
	p := newPredictor(t, ex, StrategyModel, trainedStore(t), 0)

	got := p.Predict(context.Background(), "form.pdf", "RESEARCH")
	if got.Status != constants.StatusApproved {
		t.Errorf("status = %s, want APPROVED via model", got.Status)
	}
}

func TestPredictModelStrategyUnfittedKeepsKeywordVerdict(t *testing.T) {
	ex := fakeExtractor{res: extract.Result{
		Text: "Research clearance form for the department",
	}}
	store := model.NewStore(t.TempDir(), discard())
	p := newPredictor(t, ex, StrategyModel, store, 0)

	got := p.Predict(context.Background(), "form.pdf", "RESEARCH")
	if got.Status != constants.StatusPending {
		t.Errorf("status = %s, want PENDING when model is unfitted", got.Status)
	}
}

// end-to-end: a real DOCX through the real extractor, normalizer and
// classifier.
func TestPredictDOCXEndToEnd(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Library Clearance Certificate</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Books returned</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Yes, all cleared</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`
	path := filepath.Join(t.TempDir(), "library.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := io.WriteString(w, doc); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	ex := extract.NewExtractor(extract.Config{}, discard())
	p := newPredictor(t, ex, StrategyKeyword, nil, 0)

	got := p.Predict(context.Background(), path, "LIBRARY")
	if got.Status != constants.StatusApproved {
		t.Errorf("status = %s, want APPROVED, text %q", got.Status, got.Text)
	}
	if got.Method != "docx" {
		t.Errorf("method = %q, want docx", got.Method)
	}
}

func TestEvaluate(t *testing.T) {
	required := constants.AllTypes()
	docs := []DocumentStatus{
		{Type: constants.Admin, Human: constants.StatusApproved, Predicted: constants.NoPrediction},
		{Type: constants.Academic, Human: constants.StatusPending, Predicted: constants.StatusApproved},
		{Type: constants.Financial, Human: constants.StatusPending, Predicted: constants.StatusRejected},
		{Type: constants.Research, Human: constants.StatusApproved, Predicted: constants.StatusPending},
		{Type: constants.Equipment, Human: constants.StatusApproved, Predicted: constants.NoPrediction},
	}

	ev := Evaluate(required, docs)
	if ev.Complete {
		t.Error("evaluation reported complete with missing categories")
	}
	want := []constants.ClearanceType{constants.Financial, constants.Library}
	if len(ev.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", ev.Missing, want)
	}
	for i := range want {
		if ev.Missing[i] != want[i] {
			t.Errorf("missing[%d] = %s, want %s", i, ev.Missing[i], want[i])
		}
	}
}

func TestEvaluateComplete(t *testing.T) {
	required := []constants.ClearanceType{constants.Library, constants.Library, constants.Admin}
	docs := []DocumentStatus{
		{Type: constants.Library, Predicted: constants.StatusApproved},
		{Type: constants.Admin, Human: constants.StatusApproved},
	}

	ev := Evaluate(required, docs)
	if !ev.Complete || len(ev.Missing) != 0 {
		t.Errorf("got %+v, want complete with no missing", ev)
	}
}
