// Package pipeline orchestrates batch prediction over a clearance set:
// fan-out per document, write-back of predictions and audit rows, set
// evaluation and notification.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/internal/notify"
	"github.com/rtanga/clearance-tracker/internal/predictor"
	"github.com/rtanga/clearance-tracker/internal/repository"
	"github.com/rtanga/clearance-tracker/internal/utils"
)

const defaultWorkers = 4

type Service struct {
	faculty  repository.FacultyRepository
	sets     repository.ClearanceSetRepository
	docs     repository.DocumentRepository
	jobs     repository.PredictJobRepository
	pred     *predictor.Predictor
	notifier notify.Notifier
	workers  int
	logger   *slog.Logger
}

func NewService(
	faculty repository.FacultyRepository,
	sets repository.ClearanceSetRepository,
	docs repository.DocumentRepository,
	jobs repository.PredictJobRepository,
	pred *predictor.Predictor,
	notifier notify.Notifier,
	workers int,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{
		faculty:  faculty,
		sets:     sets,
		docs:     docs,
		jobs:     jobs,
		pred:     pred,
		notifier: notifier,
		workers:  workers,
		logger:   logger,
	}
}

// DocumentOutcome is the per-document result of a batch run.
type DocumentOutcome struct {
	DocumentID uuid.UUID
	Prediction predictor.Prediction
	Err        error
}

// PredictDocument runs the pipeline for one stored document and writes back
// the prediction plus an audit row. The human-entered clearance_status is
// never touched. A status notice goes out only when the predicted status
// actually changed.
func (s *Service) PredictDocument(ctx context.Context, doc *ent.Document, fac *ent.Faculty) (predictor.Prediction, error) {
	format := constants.MapExtToFormat(doc.FileExt)
	job, err := s.jobs.Start(ctx, doc.ID, string(format))
	if err != nil {
		return predictor.Prediction{Status: constants.StatusPending}, err
	}

	p := s.pred.Predict(ctx, doc.SourcePath, doc.ClearanceType)

	if p.Text != "" {
		if err := s.jobs.MarkTextExtracted(ctx, job.ID, p.Text, p.Method); err != nil {
			_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
			return p, err
		}
	}

	if err := s.docs.SetPredictedStatus(ctx, doc.ID, string(p.Status), time.Now()); err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return p, err
	}
	if err := s.jobs.FinishSuccess(ctx, job.ID); err != nil {
		return p, err
	}

	if fac != nil && statusChanged(doc, p.Status) {
		if err := s.notifier.NotifyStatusChange(ctx, utils.ToFaculty(fac), utils.ToDocument(doc), p.Status); err != nil {
			s.logger.Warn("status notification failed", "document_id", doc.ID, "error", err)
		}
	}
	return p, nil
}

// statusChanged reports whether the new prediction differs from the one on
// record. A first-ever prediction counts as a change.
func statusChanged(doc *ent.Document, status constants.Status) bool {
	if doc.PredictedStatus == nil {
		return true
	}
	return *doc.PredictedStatus != string(status)
}

// PredictSet runs PredictDocument over every document in the set with a
// bounded worker pool, then evaluates completion and sends at most one
// missing-documents digest for the whole batch.
func (s *Service) PredictSet(ctx context.Context, setID uuid.UUID) ([]DocumentOutcome, predictor.Evaluation, error) {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return nil, predictor.Evaluation{}, err
	}
	fac, err := s.faculty.GetByID(ctx, set.FacultyID)
	if err != nil {
		return nil, predictor.Evaluation{}, err
	}
	docs, err := s.docs.ListBySet(ctx, setID)
	if err != nil {
		return nil, predictor.Evaluation{}, err
	}

	outcomes := make([]DocumentOutcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, doc := range docs {
		g.Go(func() error {
			p, err := s.PredictDocument(gctx, doc, fac)
			outcomes[i] = DocumentOutcome{DocumentID: doc.ID, Prediction: p, Err: err}
			// a single bad document never aborts the batch
			return nil
		})
	}
	_ = g.Wait()

	ev, err := s.EvaluateSet(ctx, setID)
	if err != nil {
		return outcomes, predictor.Evaluation{}, err
	}
	return outcomes, ev, nil
}

// EvaluateSet recomputes completion from the stored statuses and sends the
// missing-documents digest when categories are still open.
func (s *Service) EvaluateSet(ctx context.Context, setID uuid.UUID) (predictor.Evaluation, error) {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return predictor.Evaluation{}, err
	}
	required, err := s.sets.RequiredTypes(ctx, setID)
	if err != nil {
		return predictor.Evaluation{}, err
	}
	docs, err := s.docs.ListBySet(ctx, setID)
	if err != nil {
		return predictor.Evaluation{}, err
	}

	statuses := make([]predictor.DocumentStatus, 0, len(docs))
	for _, d := range docs {
		ds := predictor.DocumentStatus{
			Type:      constants.ClearanceType(d.ClearanceType),
			Human:     constants.Status(d.ClearanceStatus),
			Predicted: constants.NoPrediction,
		}
		if d.PredictedStatus != nil {
			ds.Predicted = constants.Status(*d.PredictedStatus)
		}
		statuses = append(statuses, ds)
	}

	ev := predictor.Evaluate(required, statuses)
	s.logger.Info("clearance set evaluated",
		"set_id", setID, "complete", ev.Complete, "missing", len(ev.Missing))

	if !ev.Complete {
		fac, err := s.faculty.GetByID(ctx, set.FacultyID)
		if err != nil {
			return ev, err
		}
		if err := s.notifier.NotifyMissing(ctx, utils.ToFaculty(fac), utils.ToClearanceSet(set), ev.Missing); err != nil {
			s.logger.Warn("missing digest failed", "set_id", setID, "error", err)
		}
	}
	return ev, nil
}
