package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
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

type fakeDocRepo struct{ docs []*ent.Document }

func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, nil
}
func (f *fakeDocRepo) GetBySetAndHash(context.Context, uuid.UUID, []byte) (*ent.Document, error) {
	return nil, nil
}
func (f *fakeDocRepo) Create(context.Context, uuid.UUID, string, string, string, string, []byte, time.Time) (*ent.Document, error) {
	return nil, nil
}
func (f *fakeDocRepo) UpsertByHash(context.Context, uuid.UUID, string, string, string, string, []byte, time.Time) (*ent.Document, bool, error) {
	return nil, false, nil
}
func (f *fakeDocRepo) ListBySet(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return f.docs, nil
}
func (f *fakeDocRepo) SetClearanceStatus(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeDocRepo) SetPredictedStatus(context.Context, uuid.UUID, string, time.Time) error {
	return nil
}

func TestExportSetXLSX(t *testing.T) {
	setID := uuid.New()
	facID := uuid.New()
	approved := "APPROVED"

	faculty := &fakeFacultyRepo{fac: &ent.Faculty{ID: facID, Name: "R. Tanga", Department: "Physics"}}
	sets := &fakeSetRepo{set: &ent.ClearanceSet{ID: setID, FacultyID: facID, Name: "Year-end", AcademicYear: "2025-2026"}}
	docs := &fakeDocRepo{docs: []*ent.Document{
		{ID: uuid.New(), ClearanceSetID: setID, ClearanceType: "LIBRARY", FileName: "lib.pdf", ClearanceStatus: "PENDING", PredictedStatus: &approved, UploadedAt: time.Now()},
		{ID: uuid.New(), ClearanceSetID: setID, ClearanceType: "ADMIN", FileName: "admin.docx", ClearanceStatus: "PENDING", UploadedAt: time.Now()},
	}}

	svc := NewService(faculty, sets, docs, discard())
	raw, err := svc.ExportSetXLSX(context.Background(), setID)
	if err != nil {
		t.Fatalf("ExportSetXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Clearance" {
		t.Fatalf("sheets = %v, want exactly [Clearance]", sheets)
	}

	cells := map[string]string{
		"B1": "R. Tanga",
		"B2": "Physics",
		"B3": "Year-end (2025-2026)",
		"A5": "Clearance Type",
		"A6": "LIBRARY",
		"D6": "APPROVED",
		"A7": "ADMIN",
		"D7": "NO_PREDICTION",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("Clearance", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
