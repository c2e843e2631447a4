// Package predictor ties extraction, normalization and classification into a
// single total prediction step, and evaluates clearance set completion.
package predictor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/internal/classify"
	"github.com/rtanga/clearance-tracker/internal/extract"
	"github.com/rtanga/clearance-tracker/internal/model"
	"github.com/rtanga/clearance-tracker/internal/normalize"
)

// Strategy selects how a document's status is decided.
type Strategy string

const (
	// StrategyKeyword uses the keyword rule set alone.
	StrategyKeyword Strategy = "keyword"
	// StrategyModel lets the trained multi-label model upgrade an otherwise
	// PENDING verdict; rejection and approval keywords still rule first.
	StrategyModel Strategy = "model"
)

// TextExtractor is the extraction dependency; *extract.Extractor satisfies it.
type TextExtractor interface {
	Extract(ctx context.Context, path string) extract.Result
}

// Prediction is the outcome for one document. Predict never fails: anything
// that goes wrong surfaces as StatusPending plus Warnings.
type Prediction struct {
	Status       constants.Status
	Category     constants.ClearanceType
	HaveCategory bool
	Text         string // normalized
	Method       string
	Format       constants.Format
	Warnings     []string
}

type Predictor struct {
	extractor  TextExtractor
	classifier *classify.Classifier
	models     *model.Store
	strategy   Strategy
	timeout    time.Duration
	logger     *slog.Logger
}

func New(extractor TextExtractor, classifier *classify.Classifier, models *model.Store, strategy Strategy, timeout time.Duration, logger *slog.Logger) *Predictor {
	if logger == nil {
		logger = slog.Default()
	}
	if strategy != StrategyModel {
		strategy = StrategyKeyword
	}
	return &Predictor{
		extractor:  extractor,
		classifier: classifier,
		models:     models,
		strategy:   strategy,
		timeout:    timeout,
		logger:     logger,
	}
}

// Predict runs the full pipeline for one document. declaredType is the
// category the uploader claimed, if any; an unrecognized or empty value
// falls back to keyword detection.
func (p *Predictor) Predict(ctx context.Context, path, declaredType string) Prediction {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	res := p.extractor.Extract(ctx, path)
	out := Prediction{
		Status:   constants.StatusPending,
		Method:   res.Method,
		Format:   res.Format,
		Warnings: res.Warnings,
	}

	if err := ctx.Err(); err != nil {
		out.Warnings = append(out.Warnings, err.Error())
		p.logger.Error("prediction timed out", "path", path, "error", err)
		return out
	}
	if strings.TrimSpace(res.Text) == "" {
		// nothing to classify; stays PENDING for human review
		return out
	}

	text := normalize.Normalize(res.Text)
	out.Text = text

	if t, ok := constants.Canonicalize(declaredType); ok {
		out.Category, out.HaveCategory = t, true
	} else {
		out.Category, out.HaveCategory = p.classifier.DetectCategory(text)
	}

	out.Status = p.classifier.DetectStatus(text, out.Category, out.HaveCategory)

	if out.Status == constants.StatusPending && p.strategy == StrategyModel && out.HaveCategory {
		out.Status = p.modelStatus(text, out.Category)
	}
	return out
}

// modelStatus consults the trained model for documents the keyword rules
// left PENDING. The category's label showing up in the predicted label set
// counts as approval; an unfitted model keeps the keyword verdict.
func (p *Predictor) modelStatus(text string, category constants.ClearanceType) constants.Status {
	label, ok := constants.LabelForType(category)
	if !ok || p.models == nil {
		return constants.StatusPending
	}

	flags := p.classifier.DetectFlags(text)
	labels, err := p.models.Get().PredictFlags(flags)
	if err != nil {
		p.logger.Warn("model strategy unavailable, keeping keyword verdict", "error", err)
		return constants.StatusPending
	}
	for _, l := range labels {
		if l == label {
			return constants.StatusApproved
		}
	}
	return constants.StatusPending
}
