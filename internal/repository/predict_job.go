package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
)

type PredictJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.PredictJob, error)
	MarkTextExtracted(ctx context.Context, jobID uuid.UUID, text, method string) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type predictJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPredictJobRepository(entc *ent.Client, log *slog.Logger) PredictJobRepository {
	return &predictJobRepo{ent: entc, log: log}
}

func (r *predictJobRepo) Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.PredictJob, error) {
	job, err := r.ent.PredictJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("predict_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("predict_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *predictJobRepo) MarkTextExtracted(ctx context.Context, jobID uuid.UUID, text, method string) error {
	_, err := r.ent.PredictJob.
		UpdateOneID(jobID).
		SetExtractedText(text).
		SetMethod(method).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("predict_job text stage failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *predictJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.PredictJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusDone)).
		Save(ctx)
	if err != nil {
		r.log.Error("predict_job finish(DONE) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("predict_job finished", "job_id", jobID)
	return nil
}

func (r *predictJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.PredictJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("predict_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("predict_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
