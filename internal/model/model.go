// Package model implements the trained multi-label clearance classifier:
// a TF-IDF vectorizer, a label binarizer and one-vs-rest multinomial naive
// Bayes estimators, with save/load/predict lifecycle and a process-wide
// store.
package model

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/rtanga/clearance-tracker/constants"
)

// ErrNotFitted is returned by Predict when no model has been trained or
// loaded. Callers are expected to degrade to the keyword heuristic path.
var ErrNotFitted = errors.New("model not fitted")

const (
	testFraction = 0.2
	splitSeed    = 42 // fixed for reproducible training runs
)

// Model is the trained artifact triple. It is immutable after Train/Load;
// concurrent readers need no locking.
type Model struct {
	Vectorizer *Vectorizer
	Binarizer  *Binarizer
	Estimators []*BinaryNB

	fitted bool
}

// Fitted reports whether the model can predict.
func (m *Model) Fitted() bool {
	return m != nil && m.fitted
}

// Train fits a new model from the flags CSV at csvPath. On any failure the
// returned model is nil and the caller's previously loaded model, if any,
// must be left untouched.
func Train(csvPath string, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ds, err := LoadDataset(csvPath)
	if err != nil {
		return nil, err
	}
	logger.Info("training clearance model", "csv", csvPath, "rows", len(ds.Texts))

	m := &Model{Vectorizer: &Vectorizer{}, Binarizer: &Binarizer{}}
	m.Vectorizer.Fit(ds.Texts)
	m.Binarizer.Fit(ds.LabelSets)
	if len(m.Binarizer.Classes) == 0 {
		return nil, fmt.Errorf("dataset has no positive labels")
	}

	x := m.Vectorizer.TransformAll(ds.Texts)
	y := make([][]int, len(ds.LabelSets))
	for i, set := range ds.LabelSets {
		y[i] = m.Binarizer.Transform(set)
	}

	trainIdx, testIdx := split(len(x))

	nFeatures := len(m.Vectorizer.IDF)
	m.Estimators = make([]*BinaryNB, len(m.Binarizer.Classes))
	for j := range m.Binarizer.Classes {
		xs := make([][]float64, len(trainIdx))
		ys := make([]int, len(trainIdx))
		for k, i := range trainIdx {
			xs[k] = x[i]
			ys[k] = y[i][j]
		}
		m.Estimators[j] = trainBinaryNB(xs, ys, nFeatures)
	}
	m.fitted = true

	if len(testIdx) > 0 {
		correct := 0
		for _, i := range testIdx {
			pred := m.predictRow(x[i])
			if equalRows(pred, y[i]) {
				correct++
			}
		}
		logger.Info("model evaluation",
			"test_rows", len(testIdx),
			"subset_accuracy", float64(correct)/float64(len(testIdx)),
			"labels", strings.Join(m.Binarizer.Classes, ","),
		)
	}
	return m, nil
}

// split shuffles row indices with the fixed seed and carves off the test
// fraction, mirroring the original training procedure.
func split(n int) (train, test []int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r := rand.New(rand.NewSource(splitSeed))
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(float64(n) * testFraction)
	return idx[nTest:], idx[:nTest]
}

func (m *Model) predictRow(x []float64) []int {
	row := make([]int, len(m.Estimators))
	for j, est := range m.Estimators {
		row[j] = est.Predict(x)
	}
	return row
}

func equalRows(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Predict vectorizes text and returns the predicted label names.
func (m *Model) Predict(text string) ([]string, error) {
	if !m.Fitted() {
		return nil, ErrNotFitted
	}
	x := m.Vectorizer.Transform(text)
	return m.Binarizer.Inverse(m.predictRow(x)), nil
}

// PredictFlags converts a boolean flags mapping to the joined-text
// representation used in training and predicts from it.
func (m *Model) PredictFlags(flags map[string]bool) ([]string, error) {
	if !m.Fitted() {
		return nil, ErrNotFitted
	}
	var parts []string
	for _, label := range constants.LabelColumns {
		if flags[label] {
			parts = append(parts, label)
		}
	}
	return m.Predict(strings.Join(parts, " "))
}
