package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/internal/classify"
	"github.com/rtanga/clearance-tracker/internal/entity"
	"github.com/rtanga/clearance-tracker/internal/extract"
	"github.com/rtanga/clearance-tracker/internal/predictor"
	"github.com/rtanga/clearance-tracker/internal/repository"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeFacultyRepo struct{ fac *ent.Faculty }

func (f *fakeFacultyRepo) GetByID(context.Context, uuid.UUID) (*ent.Faculty, error) {
	return f.fac, nil
}
func (f *fakeFacultyRepo) CreateFaculty(context.Context, *repository.Faculty) (*ent.Faculty, error) {
	return f.fac, nil
}
func (f *fakeFacultyRepo) ListFaculty(context.Context) ([]*ent.Faculty, error) {
	return []*ent.Faculty{f.fac}, nil
}
func (f *fakeFacultyRepo) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

type fakeSetRepo struct{ set *ent.ClearanceSet }

func (f *fakeSetRepo) GetByID(context.Context, uuid.UUID) (*ent.ClearanceSet, error) {
	return f.set, nil
}
func (f *fakeSetRepo) CreateSet(context.Context, *repository.ClearanceSet) (*ent.ClearanceSet, error) {
	return f.set, nil
}
func (f *fakeSetRepo) ListByFaculty(context.Context, uuid.UUID) ([]*ent.ClearanceSet, error) {
	return []*ent.ClearanceSet{f.set}, nil
}
func (f *fakeSetRepo) RequiredTypes(context.Context, uuid.UUID) ([]constants.ClearanceType, error) {
	return constants.AllTypes(), nil
}

type fakeDocRepo struct {
	mu             sync.Mutex
	docs           []*ent.Document
	humanWrites    int
	predWrites     int
	predStatuses   map[uuid.UUID]string
}

func (f *fakeDocRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("document %s not found", id)
}
func (f *fakeDocRepo) GetBySetAndHash(context.Context, uuid.UUID, []byte) (*ent.Document, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeDocRepo) Create(context.Context, uuid.UUID, string, string, string, string, []byte, time.Time) (*ent.Document, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) UpsertByHash(context.Context, uuid.UUID, string, string, string, string, []byte, time.Time) (*ent.Document, bool, error) {
	return nil, false, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) ListBySet(context.Context, uuid.UUID) ([]*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*ent.Document, len(f.docs))
	copy(out, f.docs)
	return out, nil
}
func (f *fakeDocRepo) SetClearanceStatus(context.Context, uuid.UUID, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.humanWrites++
	return nil
}
func (f *fakeDocRepo) SetPredictedStatus(_ context.Context, id uuid.UUID, status string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.predWrites++
	if f.predStatuses == nil {
		f.predStatuses = make(map[uuid.UUID]string)
	}
	f.predStatuses[id] = status
	for _, d := range f.docs {
		if d.ID == id {
			s := status
			d.PredictedStatus = &s
		}
	}
	return nil
}

type fakeJobRepo struct {
	mu      sync.Mutex
	started int
	textOK  int
	done    int
	failed  int
}

func (f *fakeJobRepo) Start(_ context.Context, docID uuid.UUID, format string) (*ent.PredictJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return &ent.PredictJob{ID: uuid.New(), DocumentID: docID, Format: format}, nil
}
func (f *fakeJobRepo) MarkTextExtracted(context.Context, uuid.UUID, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textOK++
	return nil
}
func (f *fakeJobRepo) FinishSuccess(context.Context, uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done++
	return nil
}
func (f *fakeJobRepo) FinishFailure(context.Context, uuid.UUID, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed++
	return nil
}

type fakeNotifier struct {
	mu            sync.Mutex
	statusNotices int
	digests       int
	lastMissing   []constants.ClearanceType
}

func (f *fakeNotifier) NotifyMissing(_ context.Context, _ *entity.Faculty, _ *entity.ClearanceSet, missing []constants.ClearanceType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.digests++
	f.lastMissing = missing
	return nil
}
func (f *fakeNotifier) NotifyStatusChange(context.Context, *entity.Faculty, *entity.Document, constants.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusNotices++
	return nil
}

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newService(t *testing.T, docs *fakeDocRepo, jobs *fakeJobRepo, n *fakeNotifier) (*Service, uuid.UUID) {
	t.Helper()
	cl, err := classify.NewClassifier(discard())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	pred := predictor.New(extract.NewExtractor(extract.Config{}, discard()), cl, nil, predictor.StrategyKeyword, 0, discard())

	setID := uuid.New()
	facID := uuid.New()
	faculty := &fakeFacultyRepo{fac: &ent.Faculty{ID: facID, Name: "R. Tanga", Email: "rtanga@example.edu"}}
	sets := &fakeSetRepo{set: &ent.ClearanceSet{ID: setID, FacultyID: facID, Name: "Year-end", AcademicYear: "2025-2026"}}

	return NewService(faculty, sets, docs, jobs, pred, n, 2, discard()), setID
}

func TestPredictSet(t *testing.T) {
	dir := t.TempDir()
	libPath := writeDoc(t, dir, "lib.txt", "Library clearance approved. All books returned.")
	finPath := writeDoc(t, dir, "fin.txt", "Fees are still outstanding and not settled in full.")

	setID := uuid.New()
	libDoc := &ent.Document{ID: uuid.New(), ClearanceSetID: setID, ClearanceType: "LIBRARY", SourcePath: libPath, FileName: "lib.txt", FileExt: "txt", ClearanceStatus: "PENDING"}
	finDoc := &ent.Document{ID: uuid.New(), ClearanceSetID: setID, ClearanceType: "FINANCIAL", SourcePath: finPath, FileName: "fin.txt", FileExt: "txt", ClearanceStatus: "PENDING"}
	goneDoc := &ent.Document{ID: uuid.New(), ClearanceSetID: setID, ClearanceType: "ADMIN", SourcePath: filepath.Join(dir, "gone.pdf"), FileName: "gone.pdf", FileExt: "pdf", ClearanceStatus: "PENDING"}

	docs := &fakeDocRepo{docs: []*ent.Document{libDoc, finDoc, goneDoc}}
	jobs := &fakeJobRepo{}
	n := &fakeNotifier{}
	svc, _ := newService(t, docs, jobs, n)

	outcomes, ev, err := svc.PredictSet(context.Background(), setID)
	if err != nil {
		t.Fatalf("PredictSet: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Err != nil {
			t.Errorf("document %s failed: %v", o.DocumentID, o.Err)
		}
	}

	if got := docs.predStatuses[libDoc.ID]; got != "APPROVED" {
		t.Errorf("library predicted = %q, want APPROVED", got)
	}
	if got := docs.predStatuses[finDoc.ID]; got != "REJECTED" {
		t.Errorf("financial predicted = %q, want REJECTED", got)
	}
	if got := docs.predStatuses[goneDoc.ID]; got != "PENDING" {
		t.Errorf("missing file predicted = %q, want PENDING", got)
	}
	if docs.humanWrites != 0 {
		t.Errorf("prediction path wrote clearance_status %d times", docs.humanWrites)
	}

	if jobs.started != 3 || jobs.done != 3 || jobs.failed != 0 {
		t.Errorf("jobs started/done/failed = %d/%d/%d, want 3/3/0", jobs.started, jobs.done, jobs.failed)
	}
	// the unreadable pdf extracts no text, so only two jobs reach TEXT_OK
	if jobs.textOK != 2 {
		t.Errorf("jobs textOK = %d, want 2", jobs.textOK)
	}

	if ev.Complete {
		t.Error("evaluation reported complete")
	}
	for _, m := range ev.Missing {
		if m == constants.Library {
			t.Error("LIBRARY reported missing despite approved document")
		}
	}

	if n.statusNotices != 3 {
		t.Errorf("status notices = %d, want one per document", n.statusNotices)
	}
	if n.digests != 1 {
		t.Errorf("missing digests = %d, want exactly 1 per batch", n.digests)
	}
	if len(n.lastMissing) != len(ev.Missing) {
		t.Errorf("digest missing list = %v, evaluation said %v", n.lastMissing, ev.Missing)
	}
}

func TestPredictDocumentSkipsNoticeWhenUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "lib.txt", "Library clearance approved. All books returned.")

	prev := "APPROVED"
	doc := &ent.Document{ID: uuid.New(), ClearanceType: "LIBRARY", SourcePath: path, FileName: "lib.txt", FileExt: "txt", ClearanceStatus: "PENDING", PredictedStatus: &prev}

	docs := &fakeDocRepo{docs: []*ent.Document{doc}}
	jobs := &fakeJobRepo{}
	n := &fakeNotifier{}
	svc, _ := newService(t, docs, jobs, n)

	p, err := svc.PredictDocument(context.Background(), doc, &ent.Faculty{Email: "x@example.edu"})
	if err != nil {
		t.Fatalf("PredictDocument: %v", err)
	}
	if p.Status != constants.StatusApproved {
		t.Fatalf("status = %s, want APPROVED", p.Status)
	}
	if n.statusNotices != 0 {
		t.Errorf("unchanged prediction sent %d notices", n.statusNotices)
	}
}
