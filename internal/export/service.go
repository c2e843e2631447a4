// Package export produces XLSX clearance reports.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rtanga/clearance-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for a
// clearance set report.
type Service struct {
	faculty repository.FacultyRepository
	sets    repository.ClearanceSetRepository
	docs    repository.DocumentRepository
	logger  *slog.Logger
}

func NewService(faculty repository.FacultyRepository, sets repository.ClearanceSetRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{faculty: faculty, sets: sets, docs: docs, logger: logger}
}

// ExportSetXLSX returns an XLSX workbook (as bytes) listing every document in
// the set with its human and predicted statuses.
func (s *Service) ExportSetXLSX(ctx context.Context, setID uuid.UUID) ([]byte, error) {
	start := time.Now()

	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("query clearance set: %w", err)
	}
	fac, err := s.faculty.GetByID(ctx, set.FacultyID)
	if err != nil {
		return nil, fmt.Errorf("query faculty: %w", err)
	}
	docs, err := s.docs.ListBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Clearance"
	// rename the default sheet so the workbook holds exactly one sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// report header block
	write(1, 1, "Faculty")
	write(2, 1, fac.Name)
	write(1, 2, "Department")
	write(2, 2, fac.Department)
	write(1, 3, "Clearance Set")
	write(2, 3, fmt.Sprintf("%s (%s)", set.Name, set.AcademicYear))

	headers := []string{
		"Clearance Type",
		"File Name",
		"Status",
		"Predicted Status",
		"Predicted At",
		"Uploaded At",
		"Source Path",
	}
	const headerRow = 5
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, d := range docs {
		write(1, row, d.ClearanceType)
		write(2, row, d.FileName)
		write(3, row, d.ClearanceStatus)

		predicted := "NO_PREDICTION"
		if d.PredictedStatus != nil {
			predicted = *d.PredictedStatus
		}
		write(4, row, predicted)
		if d.PredictedAt != nil {
			write(5, row, d.PredictedAt.Format("2006-01-02 15:04"))
		} else {
			write(5, row, "")
		}
		write(6, row, d.UploadedAt.Format("2006-01-02 15:04"))
		write(7, row, d.SourcePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // type
	_ = f.SetColWidth(sheet, "B", "B", 32) // file
	_ = f.SetColWidth(sheet, "C", "D", 18) // statuses
	_ = f.SetColWidth(sheet, "E", "F", 18) // timestamps
	_ = f.SetColWidth(sheet, "G", "G", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"set_id", setID.String(),
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
