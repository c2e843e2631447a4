package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/gen/ent"
	v1 "github.com/rtanga/clearance-tracker/gen/proto/clearance/v1"
	"github.com/rtanga/clearance-tracker/internal/common"
	"github.com/rtanga/clearance-tracker/internal/export"
	"github.com/rtanga/clearance-tracker/internal/ingest"
	"github.com/rtanga/clearance-tracker/internal/pipeline"
	"github.com/rtanga/clearance-tracker/internal/predictor"
	"github.com/rtanga/clearance-tracker/internal/repository"
)

type ClearanceService struct {
	v1.UnimplementedClearanceServiceServer
	facultyRepo repository.FacultyRepository
	setsRepo    repository.ClearanceSetRepository
	docsRepo    repository.DocumentRepository
	ingestor    *ingest.FSIngestor
	svc         *pipeline.Service
	exporter    *export.Service
	logger      *slog.Logger
}

func NewClearanceService(
	facultyRepo repository.FacultyRepository,
	setsRepo repository.ClearanceSetRepository,
	docsRepo repository.DocumentRepository,
	ingestor *ingest.FSIngestor,
	svc *pipeline.Service,
	exporter *export.Service,
	logger *slog.Logger,
) *ClearanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClearanceService{
		facultyRepo: facultyRepo,
		setsRepo:    setsRepo,
		docsRepo:    docsRepo,
		ingestor:    ingestor,
		svc:         svc,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *ClearanceService) CreateFaculty(ctx context.Context, req *v1.CreateFacultyRequest) (*v1.CreateFacultyResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	email := strings.TrimSpace(req.GetEmail())
	if email == "" || !strings.Contains(email, "@") {
		return nil, common.InvalidArgumentError("a valid email is required")
	}
	department := strings.TrimSpace(req.GetDepartment())
	if department == "" {
		return nil, common.InvalidArgumentError("department is required")
	}

	row, err := s.facultyRepo.CreateFaculty(ctx, &repository.Faculty{
		Name:       name,
		Email:      email,
		Department: department,
	})
	if err != nil {
		s.logger.Error("create faculty failed", "name", name, "error", err)
		return nil, common.InternalError("create faculty failed")
	}
	return &v1.CreateFacultyResponse{Faculty: toPBFaculty(row)}, nil
}

func (s *ClearanceService) CreateClearanceSet(ctx context.Context, req *v1.CreateClearanceSetRequest) (*v1.CreateClearanceSetResponse, error) {
	facultyID, err := parseUUID(req.GetFacultyId(), "faculty_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	year := strings.TrimSpace(req.GetAcademicYear())
	if year == "" {
		return nil, common.InvalidArgumentError("academic_year is required")
	}
	for _, rt := range req.GetRequiredTypes() {
		if _, ok := constants.Canonicalize(rt); !ok {
			return nil, common.InvalidArgumentErrorf("unknown required type %q", rt)
		}
	}

	if exists, _ := s.facultyRepo.Exists(ctx, facultyID); !exists {
		return nil, common.NotFoundError("faculty not found")
	}

	row, err := s.setsRepo.CreateSet(ctx, &repository.ClearanceSet{
		FacultyID:     facultyID,
		Name:          name,
		AcademicYear:  year,
		RequiredTypes: req.GetRequiredTypes(),
	})
	if err != nil {
		s.logger.Error("create clearance set failed", "faculty_id", facultyID, "name", name, "error", err)
		return nil, common.InternalError("create clearance set failed")
	}
	return &v1.CreateClearanceSetResponse{ClearanceSet: toPBSet(row)}, nil
}

// UploadDocument ingests a file into the set and immediately runs the
// prediction pipeline over it. A pipeline failure is reported in the outcome
// rather than failing the upload.
func (s *ClearanceService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting document upload", "set_id", setID, "path", path)
	res, row, err := s.ingestor.IngestPath(ctx, setID, req.GetClearanceType(), path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("upload: %v", err)
	}
	s.logger.Info("document upload succeeded",
		"set_id", setID, "document_id", res.DocumentID, "deduplicated", res.Deduplicated)

	resp := &v1.UploadDocumentResponse{
		Document:       toPBDocument(row),
		Deduplicated:   res.Deduplicated,
		ContentHashHex: res.HashHex,
		Outcome:        &v1.DocumentOutcome{DocumentId: res.DocumentID},
	}

	set, err := s.setsRepo.GetByID(ctx, setID)
	if err != nil {
		resp.Outcome.Error = err.Error()
		return resp, nil
	}
	fac, err := s.facultyRepo.GetByID(ctx, set.FacultyID)
	if err != nil {
		resp.Outcome.Error = err.Error()
		return resp, nil
	}

	p, err := s.svc.PredictDocument(ctx, row, fac)
	if err != nil {
		s.logger.Error("pipeline failed after upload", "document_id", res.DocumentID, "error", err)
		resp.Outcome.Error = err.Error()
		return resp, nil
	}
	fillOutcome(resp.Outcome, p)
	return resp, nil
}

// UploadDirectory walks a server-local directory and ingests every allowed
// file into the set. Per-file failures are reported in the results; prediction
// runs in a subsequent PredictSet call.
func (s *ClearanceService) UploadDirectory(ctx context.Context, req *v1.UploadDirectoryRequest) (*v1.UploadDirectoryResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRoot())
	if root == "" {
		return nil, common.InvalidArgumentError("root is required")
	}

	s.logger.Info("starting directory upload", "set_id", setID, "root", root)
	results, stats, err := s.ingestor.IngestDirectory(ctx, setID, req.GetClearanceType(), root)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("upload directory: %v", err)
	}
	s.logger.Info("directory upload finished",
		"set_id", setID, "matched", stats.Matched, "succeeded", stats.Succeeded, "failed", stats.Failed)

	resp := &v1.UploadDirectoryResponse{
		Results: make([]*v1.IngestionResult, 0, len(results)),
		Stats: &v1.DirStats{
			Scanned:      int32(stats.Scanned),
			Matched:      int32(stats.Matched),
			Succeeded:    int32(stats.Succeeded),
			Failed:       int32(stats.Failed),
			Deduplicated: int32(stats.Deduplicated),
		},
	}
	for _, r := range results {
		resp.Results = append(resp.Results, &v1.IngestionResult{
			DocumentId:     r.DocumentID,
			SourcePath:     r.SourcePath,
			ContentHashHex: r.HashHex,
			Deduplicated:   r.Deduplicated,
			Error:          r.Err,
		})
	}
	return resp, nil
}

func (s *ClearanceService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.docsRepo.ListBySet(ctx, setID)
	if err != nil {
		s.logger.Error("list documents failed", "set_id", setID, "error", err)
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*v1.Document, 0, len(rows))
	for _, d := range rows {
		out = append(out, toPBDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *ClearanceService) PredictSet(ctx context.Context, req *v1.PredictSetRequest) (*v1.PredictSetResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}

	outcomes, ev, err := s.svc.PredictSet(ctx, setID)
	if err != nil {
		s.logger.Error("predict set failed", "set_id", setID, "error", err)
		return nil, common.InternalError("predict set failed")
	}

	resp := &v1.PredictSetResponse{
		Outcomes:   make([]*v1.DocumentOutcome, 0, len(outcomes)),
		Evaluation: toPBEvaluation(ev),
	}
	for _, o := range outcomes {
		pb := &v1.DocumentOutcome{DocumentId: o.DocumentID.String()}
		if o.Err != nil {
			pb.Error = o.Err.Error()
		}
		fillOutcome(pb, o.Prediction)
		resp.Outcomes = append(resp.Outcomes, pb)
	}
	return resp, nil
}

func (s *ClearanceService) EvaluateSet(ctx context.Context, req *v1.EvaluateSetRequest) (*v1.EvaluateSetResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}
	ev, err := s.svc.EvaluateSet(ctx, setID)
	if err != nil {
		s.logger.Error("evaluate set failed", "set_id", setID, "error", err)
		return nil, common.InternalError("evaluate set failed")
	}
	return &v1.EvaluateSetResponse{Evaluation: toPBEvaluation(ev)}, nil
}

func (s *ClearanceService) ExportSetReport(ctx context.Context, req *v1.ExportSetReportRequest) (*v1.ExportSetReportResponse, error) {
	setID, err := parseUUID(req.GetClearanceSetId(), "clearance_set_id")
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportSetXLSX(ctx, setID)
	if err != nil {
		s.logger.Error("export failed", "set_id", setID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportSetReportResponse{Xlsx: xlsx}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func fillOutcome(pb *v1.DocumentOutcome, p predictor.Prediction) {
	pb.PredictedStatus = string(p.Status)
	if p.HaveCategory {
		pb.Category = string(p.Category)
	}
	pb.Method = p.Method
	pb.Warnings = p.Warnings
}

func toPBFaculty(row *ent.Faculty) *v1.Faculty {
	return &v1.Faculty{
		Id:         row.ID.String(),
		Name:       row.Name,
		Email:      row.Email,
		Department: row.Department,
		CreatedAt:  row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  row.UpdatedAt.Format(time.RFC3339),
	}
}

func toPBSet(row *ent.ClearanceSet) *v1.ClearanceSet {
	return &v1.ClearanceSet{
		Id:            row.ID.String(),
		FacultyId:     row.FacultyID.String(),
		Name:          row.Name,
		AcademicYear:  row.AcademicYear,
		RequiredTypes: row.RequiredTypes,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     row.UpdatedAt.Format(time.RFC3339),
	}
}

func toPBDocument(row *ent.Document) *v1.Document {
	out := &v1.Document{
		Id:              row.ID.String(),
		ClearanceSetId:  row.ClearanceSetID.String(),
		ClearanceType:   row.ClearanceType,
		SourcePath:      row.SourcePath,
		FileName:        row.FileName,
		ClearanceStatus: row.ClearanceStatus,
		PredictedStatus: string(constants.NoPrediction),
		UploadedAt:      row.UploadedAt.Format(time.RFC3339),
	}
	if row.PredictedStatus != nil {
		out.PredictedStatus = *row.PredictedStatus
	}
	if row.PredictedAt != nil {
		out.PredictedAt = row.PredictedAt.Format(time.RFC3339)
	}
	return out
}

func toPBEvaluation(ev predictor.Evaluation) *v1.Evaluation {
	out := &v1.Evaluation{Complete: ev.Complete}
	for _, t := range ev.Missing {
		out.MissingTypes = append(out.MissingTypes, string(t))
	}
	return out
}
