package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
)

type ClearanceSet struct {
	FacultyID     uuid.UUID
	Name          string
	AcademicYear  string
	RequiredTypes []string
}

type ClearanceSetRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ClearanceSet, error)
	CreateSet(ctx context.Context, s *ClearanceSet) (*ent.ClearanceSet, error)
	ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*ent.ClearanceSet, error)
	RequiredTypes(ctx context.Context, id uuid.UUID) ([]constants.ClearanceType, error)
}

type clearanceSetRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewClearanceSetRepository(client *ent.Client, logger *slog.Logger) ClearanceSetRepository {
	return &clearanceSetRepository{
		client: client,
		logger: logger,
	}
}

func (r *clearanceSetRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.ClearanceSet, error) {
	return r.client.ClearanceSet.
		Query().
		Where(clearanceset.ID(id)).
		Only(ctx)
}

func (r *clearanceSetRepository) CreateSet(ctx context.Context, s *ClearanceSet) (*ent.ClearanceSet, error) {
	row, err := r.client.ClearanceSet.Create().
		SetFacultyID(s.FacultyID).
		SetName(s.Name).
		SetAcademicYear(s.AcademicYear).
		SetRequiredTypes(s.RequiredTypes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create clearance set",
			"faculty_id", s.FacultyID, "name", s.Name, "academic_year", s.AcademicYear, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *clearanceSetRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*ent.ClearanceSet, error) {
	rows, err := r.client.ClearanceSet.Query().
		Where(clearanceset.FacultyID(facultyID)).
		Order(clearanceset.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list clearance sets", "faculty_id", facultyID, "error", err)
		return nil, err
	}
	return rows, nil
}

// RequiredTypes resolves the set's required category list, defaulting to the
// full category set when the row carries none.
func (r *clearanceSetRepository) RequiredTypes(ctx context.Context, id uuid.UUID) ([]constants.ClearanceType, error) {
	row, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(row.RequiredTypes) == 0 {
		return constants.AllTypes(), nil
	}
	out := make([]constants.ClearanceType, 0, len(row.RequiredTypes))
	for _, s := range row.RequiredTypes {
		t, ok := constants.Canonicalize(s)
		if !ok {
			r.logger.Warn("unknown required type on clearance set", "set_id", id, "value", s)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
