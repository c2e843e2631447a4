// Package utils holds the row-to-entity converters shared by the service and
// server layers.
package utils

import (
	"github.com/rtanga/clearance-tracker/gen/ent"
	"github.com/rtanga/clearance-tracker/internal/entity"
)

func ToFaculty(row *ent.Faculty) *entity.Faculty {
	if row == nil {
		return nil
	}
	return &entity.Faculty{
		ID:         row.ID,
		Name:       row.Name,
		Email:      row.Email,
		Department: row.Department,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func ToClearanceSet(row *ent.ClearanceSet) *entity.ClearanceSet {
	if row == nil {
		return nil
	}
	return &entity.ClearanceSet{
		ID:            row.ID,
		FacultyID:     row.FacultyID,
		Name:          row.Name,
		AcademicYear:  row.AcademicYear,
		RequiredTypes: row.RequiredTypes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func ToDocument(row *ent.Document) *entity.Document {
	if row == nil {
		return nil
	}
	return &entity.Document{
		ID:              row.ID,
		ClearanceSetID:  row.ClearanceSetID,
		ClearanceType:   row.ClearanceType,
		SourcePath:      row.SourcePath,
		FileName:        row.FileName,
		FileExt:         row.FileExt,
		ClearanceStatus: row.ClearanceStatus,
		PredictedStatus: row.PredictedStatus,
		PredictedAt:     row.PredictedAt,
		UploadedAt:      row.UploadedAt,
	}
}
