package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/gen/ent"
	entdoc "github.com/rtanga/clearance-tracker/gen/ent/document"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetBySetAndHash(ctx context.Context, setID uuid.UUID, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, setID uuid.UUID, clearanceType, sourcePath, fileName, ext string, hash []byte, uploadedAt time.Time) (*ent.Document, error)
	UpsertByHash(ctx context.Context, setID uuid.UUID, clearanceType, sourcePath, fileName, ext string, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error)
	ListBySet(ctx context.Context, setID uuid.UUID) ([]*ent.Document, error)
	SetClearanceStatus(ctx context.Context, id uuid.UUID, status string) error
	SetPredictedStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetBySetAndHash(ctx context.Context, setID uuid.UUID, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.ClearanceSetID(setID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		r.logger.Error("failed to get document by set and hash", "set_id", setID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, setID uuid.UUID, clearanceType, sourcePath, fileName, ext string, hash []byte, uploadedAt time.Time) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetClearanceSetID(setID).
		SetClearanceType(clearanceType).
		SetSourcePath(sourcePath).
		SetFileName(fileName).
		SetFileExt(ext).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document",
			"set_id", setID, "source_path", sourcePath, "file_name", fileName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, setID uuid.UUID, clearanceType, sourcePath, fileName, ext string, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if existing, err := r.GetBySetAndHash(ctx, setID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, setID, clearanceType, sourcePath, fileName, ext, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) ListBySet(ctx context.Context, setID uuid.UUID) ([]*ent.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.ClearanceSetID(setID)).
		Order(entdoc.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "set_id", setID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *documentRepo) SetClearanceStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetClearanceStatus(status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set clearance status", "document_id", id, "status", status, "error", err)
	}
	return err
}

// SetPredictedStatus touches only the prediction columns. The human-entered
// clearance_status is never written from the prediction path.
func (r *documentRepo) SetPredictedStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetPredictedStatus(status).
		SetPredictedAt(at).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set predicted status", "document_id", id, "status", status, "error", err)
	}
	return err
}
