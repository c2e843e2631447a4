package model

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtanga/clearance-tracker/constants"
)

// writeFlagsCSV builds a training CSV with twelve single-label rows per
// clearance label, enough that every label survives the train/test split.
func writeFlagsCSV(t *testing.T) string {
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
	return path
}

func TestTrainAndPredictSingleLabels(t *testing.T) {
	m, err := Train(writeFlagsCSV(t), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if !m.Fitted() {
		t.Fatal("model not fitted after Train")
	}
	if len(m.Binarizer.Classes) != len(constants.LabelColumns) {
		t.Fatalf("got %d classes, want %d", len(m.Binarizer.Classes), len(constants.LabelColumns))
	}

	for _, label := range constants.LabelColumns {
		got, err := m.Predict(label)
		if err != nil {
			t.Fatalf("Predict(%q): %v", label, err)
		}
		if len(got) != 1 || got[0] != label {
			t.Errorf("Predict(%q) = %v, want [%s]", label, got, label)
		}
	}
}

func TestPredictFlags(t *testing.T) {
	m, err := Train(writeFlagsCSV(t), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	got, err := m.PredictFlags(map[string]bool{constants.LabelLibraryClearance: true})
	if err != nil {
		t.Fatalf("PredictFlags: %v", err)
	}
	if len(got) != 1 || got[0] != constants.LabelLibraryClearance {
		t.Errorf("PredictFlags = %v, want [%s]", got, constants.LabelLibraryClearance)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := Train(writeFlagsCSV(t), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	dir := t.TempDir()
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for _, name := range []string{vectorizerFile, classifierFile, labelsFile, manifestFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, label := range constants.LabelColumns {
		want, err := m.Predict(label)
		if err != nil {
			t.Fatalf("Predict on trained: %v", err)
		}
		got, err := loaded.Predict(label)
		if err != nil {
			t.Fatalf("Predict on loaded: %v", err)
		}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("loaded Predict(%q) = %v, trained gave %v", label, got, want)
		}
	}
}

func TestPredictUnfitted(t *testing.T) {
	var m *Model
	if _, err := m.Predict("anything"); !errors.Is(err, ErrNotFitted) {
		t.Errorf("nil model Predict err = %v, want ErrNotFitted", err)
	}

	empty := &Model{}
	if _, err := empty.PredictFlags(nil); !errors.Is(err, ErrNotFitted) {
		t.Errorf("unfitted PredictFlags err = %v, want ErrNotFitted", err)
	}
	if err := empty.Save(t.TempDir()); !errors.Is(err, ErrNotFitted) {
		t.Errorf("unfitted Save err = %v, want ErrNotFitted", err)
	}
}

func TestLoadRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, manifestFile), []byte(`{"version": 0}`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load accepted a manifest missing required fields")
	}
}

func TestStoreSwapAndMissingArtifact(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if err := s.Load(); err == nil {
		t.Error("Load from empty dir should fail")
	}
	if s.Get() != nil {
		t.Error("failed Load must not install a model")
	}

	m, err := Train(writeFlagsCSV(t), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	s.Swap(m)
	if got := s.Get(); got != m {
		t.Error("Get did not return the swapped model")
	}
}

func TestStoreReloadPicksUpNewArtifacts(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)
	if err := s.Load(); err == nil {
		t.Fatal("Load from empty dir should fail")
	}

	// artifacts appear after a trainmodel run; a reload must install them
	m, err := Train(writeFlagsCSV(t), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	got := s.Get()
	if got == nil || !got.Fitted() {
		t.Fatal("Reload did not install the saved model")
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("document,Admin_Clearance\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if _, err := LoadDataset(empty); err == nil {
		t.Error("LoadDataset accepted a header-only file")
	}

	noLabels := filepath.Join(dir, "nolabels.csv")
	if err := os.WriteFile(noLabels, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if _, err := LoadDataset(noLabels); err == nil {
		t.Error("LoadDataset accepted a file without label columns")
	}
}
