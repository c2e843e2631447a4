package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded clearance document. ClearanceStatus is the
// human-entered decision; PredictedStatus is the pipeline's call and never
// overwrites it.
type Document struct {
	ID              uuid.UUID  `json:"id"`
	ClearanceSetID  uuid.UUID  `json:"clearance_set_id"`
	ClearanceType   string     `json:"clearance_type"`
	SourcePath      string     `json:"source_path"`
	FileName        string     `json:"file_name"`
	FileExt         string     `json:"file_ext"`
	ClearanceStatus string     `json:"clearance_status"`
	PredictedStatus *string    `json:"predicted_status,omitempty"`
	PredictedAt     *time.Time `json:"predicted_at,omitempty"`
	UploadedAt      time.Time  `json:"uploaded_at"`
}
