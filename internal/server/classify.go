package server

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rtanga/clearance-tracker/constants"
	v1 "github.com/rtanga/clearance-tracker/gen/proto/clearance/v1"
	"github.com/rtanga/clearance-tracker/internal/common"
	"github.com/rtanga/clearance-tracker/internal/model"
)

// ClassifyService answers flag-based label predictions from the trained
// multi-label model.
type ClassifyService struct {
	v1.UnimplementedClassifyServiceServer
	models *model.Store
	logger *slog.Logger
}

func NewClassifyService(models *model.Store, logger *slog.Logger) *ClassifyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassifyService{models: models, logger: logger}
}

func (s *ClassifyService) ClassifyFlags(_ context.Context, req *v1.ClassifyFlagsRequest) (*v1.ClassifyFlagsResponse, error) {
	flags := map[string]bool{
		constants.LabelAdminClearance:    req.GetAdminClearance(),
		constants.LabelResearchClearance: req.GetResearchClearance(),
		constants.LabelGradeSubmission:   req.GetGradeSubmission(),
		constants.LabelLibraryClearance:  req.GetLibraryClearance(),
		constants.LabelEquipmentReturned: req.GetEquipmentReturned(),
	}

	labels, err := s.models.Get().PredictFlags(flags)
	if err != nil {
		if errors.Is(err, model.ErrNotFitted) {
			return nil, status.Error(codes.FailedPrecondition, "model not trained")
		}
		s.logger.Error("flags classification failed", "error", err)
		return nil, common.InternalError("classification failed")
	}
	return &v1.ClassifyFlagsResponse{Labels: labels}, nil
}
