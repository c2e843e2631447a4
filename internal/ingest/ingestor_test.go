package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/internal/repository"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSetRepo struct {
	set *ent.ClearanceSet
	err error
}

func (f *fakeSetRepo) GetByID(context.Context, uuid.UUID) (*ent.ClearanceSet, error) {
	return f.set, f.err
}
func (f *fakeSetRepo) CreateSet(context.Context, *repository.ClearanceSet) (*ent.ClearanceSet, error) {
	return f.set, f.err
}
func (f *fakeSetRepo) ListByFaculty(context.Context, uuid.UUID) ([]*ent.ClearanceSet, error) {
	return []*ent.ClearanceSet{f.set}, f.err
}
func (f *fakeSetRepo) RequiredTypes(context.Context, uuid.UUID) ([]constants.ClearanceType, error) {
	return constants.AllTypes(), f.err
}

type fakeDocRepo struct {
	byHash map[string]*ent.Document
}

func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) GetBySetAndHash(context.Context, uuid.UUID, []byte) (*ent.Document, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) Create(context.Context, uuid.UUID, string, string, string, string, []byte, time.Time) (*ent.Document, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) UpsertByHash(_ context.Context, setID uuid.UUID, ctype, sourcePath, fileName, ext string, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if f.byHash == nil {
		f.byHash = make(map[string]*ent.Document)
	}
	if d, ok := f.byHash[string(hash)]; ok {
		return d, true, nil
	}
	d := &ent.Document{
		ID:             uuid.New(),
		ClearanceSetID: setID,
		ClearanceType:  ctype,
		SourcePath:     sourcePath,
		FileName:       fileName,
		FileExt:        ext,
		ContentHash:    hash,
		UploadedAt:     uploadedAt,
	}
	f.byHash[string(hash)] = d
	return d, false, nil
}
func (f *fakeDocRepo) ListBySet(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) SetClearanceStatus(context.Context, uuid.UUID, string) error {
	return fmt.Errorf("not implemented")
}
func (f *fakeDocRepo) SetPredictedStatus(context.Context, uuid.UUID, string, time.Time) error {
	return fmt.Errorf("not implemented")
}

func newIngestor(sets *fakeSetRepo, docs *fakeDocRepo) *FSIngestor {
	return NewFSIngestor(sets, docs, discard())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "all books returned")
	writeFile(t, filepath.Join(root, "b.pdf"), "%PDF-1.4 stub")
	writeFile(t, filepath.Join(root, "skip.exe"), "binary")
	// same content as a.txt, nested one level down
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "all books returned")

	setID := uuid.New()
	sets := &fakeSetRepo{set: &ent.ClearanceSet{ID: setID}}
	docs := &fakeDocRepo{}
	ing := newIngestor(sets, docs)

	results, stats, err := ing.IngestDirectory(context.Background(), setID, "LIBRARY", root)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 3 || stats.Succeeded != 3 || stats.Failed != 0 {
		t.Fatalf("stats matched/succeeded/failed = %d/%d/%d, want 3/3/0",
			stats.Matched, stats.Succeeded, stats.Failed)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("deduplicated = %d, want 1 (c.txt repeats a.txt)", stats.Deduplicated)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if len(docs.byHash) != 2 {
		t.Errorf("stored %d distinct documents, want 2", len(docs.byHash))
	}
	for _, r := range results {
		if filepath.Base(r.SourcePath) == "skip.exe" {
			t.Errorf("disallowed extension was ingested: %s", r.SourcePath)
		}
		if r.Deduplicated && filepath.Base(r.SourcePath) != "c.txt" {
			t.Errorf("unexpected dedup on %s", r.SourcePath)
		}
	}
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	ing := newIngestor(&fakeSetRepo{set: &ent.ClearanceSet{}}, &fakeDocRepo{})
	if _, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "LIBRARY", "  "); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestIngestPathRejectsUnknownType(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	writeFile(t, path, "text")

	ing := newIngestor(&fakeSetRepo{set: &ent.ClearanceSet{}}, &fakeDocRepo{})
	if _, _, err := ing.IngestPath(context.Background(), uuid.New(), "PARKING", path); err == nil {
		t.Fatal("expected error for unknown clearance type")
	}
}

func TestIngestPathMissingSet(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	writeFile(t, path, "text")

	ing := newIngestor(&fakeSetRepo{err: fmt.Errorf("not found")}, &fakeDocRepo{})
	if _, _, err := ing.IngestPath(context.Background(), uuid.New(), "LIBRARY", path); err == nil {
		t.Fatal("expected error for missing clearance set")
	}
}
