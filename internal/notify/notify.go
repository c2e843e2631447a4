// Package notify builds and delivers the email payloads the pipeline emits:
// a missing-documents digest per clearance set and a per-document status
// change notice.
package notify

import (
	"context"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/internal/entity"
)

type Notifier interface {
	NotifyMissing(ctx context.Context, faculty *entity.Faculty, set *entity.ClearanceSet, missing []constants.ClearanceType) error
	NotifyStatusChange(ctx context.Context, faculty *entity.Faculty, doc *entity.Document, status constants.Status) error
}

// Nop drops every notification. Used when no SMTP host is configured.
type Nop struct{}

func (Nop) NotifyMissing(context.Context, *entity.Faculty, *entity.ClearanceSet, []constants.ClearanceType) error {
	return nil
}

func (Nop) NotifyStatusChange(context.Context, *entity.Faculty, *entity.Document, constants.Status) error {
	return nil
}
