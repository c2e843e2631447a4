package server

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rtanga/clearance-tracker/constants"
	v1 "github.com/rtanga/clearance-tracker/gen/proto/clearance/v1"
	"github.com/rtanga/clearance-tracker/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// trainedStore fits a model on twelve single-label rows per clearance label,
// enough that every label survives the train/test split.
func trainedStore(t *testing.T) *model.Store {
	t.Helper()

	var b strings.Builder
	b.WriteString("document," + strings.Join(constants.LabelColumns, ",") + "\n")
	for li := range constants.LabelColumns {
		for r := 0; r < 12; r++ {
			cells := make([]string, len(constants.LabelColumns))
			for i := range cells {
				cells[i] = "0"
			}
			cells[li] = "1"
			b.WriteString("doc," + strings.Join(cells, ",") + "\n")
		}
	}
	path := filepath.Join(t.TempDir(), "flags.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	m, err := model.Train(path, discardLogger())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	s := model.NewStore(t.TempDir(), discardLogger())
	s.Swap(m)
	return s
}

func TestClassifyFlags(t *testing.T) {
	svc := NewClassifyService(trainedStore(t), discardLogger())

	resp, err := svc.ClassifyFlags(context.Background(), &v1.ClassifyFlagsRequest{
		GradeSubmission: true,
	})
	if err != nil {
		t.Fatalf("ClassifyFlags: %v", err)
	}
	if len(resp.Labels) != 1 || resp.Labels[0] != constants.LabelGradeSubmission {
		t.Fatalf("labels = %v, want [%s]", resp.Labels, constants.LabelGradeSubmission)
	}
}

func TestClassifyFlagsUnfitted(t *testing.T) {
	svc := NewClassifyService(model.NewStore(t.TempDir(), discardLogger()), discardLogger())

	_, err := svc.ClassifyFlags(context.Background(), &v1.ClassifyFlagsRequest{LibraryClearance: true})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("err = %v, want FailedPrecondition", err)
	}
}
