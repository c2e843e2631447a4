package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
)

type Faculty struct {
	Name       string
	Email      string
	Department string
}

type FacultyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Faculty, error)
	CreateFaculty(ctx context.Context, f *Faculty) (*ent.Faculty, error)
	ListFaculty(ctx context.Context) ([]*ent.Faculty, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type facultyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFacultyRepository(client *ent.Client, logger *slog.Logger) FacultyRepository {
	return &facultyRepository{
		client: client,
		logger: logger,
	}
}

func (r *facultyRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Faculty, error) {
	return r.client.Faculty.
		Query().
		Where(faculty.ID(id)).
		Only(ctx)
}

func (r *facultyRepository) CreateFaculty(ctx context.Context, f *Faculty) (*ent.Faculty, error) {
	row, err := r.client.Faculty.Create().
		SetName(f.Name).
		SetEmail(f.Email).
		SetDepartment(f.Department).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create faculty", "name", f.Name, "email", f.Email, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *facultyRepository) ListFaculty(ctx context.Context) ([]*ent.Faculty, error) {
	rows, err := r.client.Faculty.Query().Order(faculty.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list faculty", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *facultyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Faculty.Query().Where(faculty.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check faculty existence", "faculty_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
