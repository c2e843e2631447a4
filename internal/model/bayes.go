package model

import "math"

// BinaryNB is a two-class multinomial naive Bayes estimator. One instance is
// trained per label in the one-vs-rest scheme.
type BinaryNB struct {
	// index 0 = label absent, 1 = label present
	ClassLogPrior  [2]float64
	FeatureLogProb [2][]float64
}

const smoothing = 1.0 // Laplace

// trainBinaryNB fits the estimator on TF-IDF rows X and binary targets y.
func trainBinaryNB(x [][]float64, y []int, nFeatures int) *BinaryNB {
	var classCount [2]float64
	var featureSum [2][]float64
	featureSum[0] = make([]float64, nFeatures)
	featureSum[1] = make([]float64, nFeatures)

	for i, row := range x {
		c := y[i]
		classCount[c]++
		for j, v := range row {
			featureSum[c][j] += v
		}
	}

	m := &BinaryNB{}
	total := classCount[0] + classCount[1]
	for c := 0; c < 2; c++ {
		if classCount[c] == 0 {
			// class never observed; it can never win at predict time
			m.ClassLogPrior[c] = math.Inf(-1)
			m.FeatureLogProb[c] = make([]float64, nFeatures)
			continue
		}
		m.ClassLogPrior[c] = math.Log(classCount[c] / total)
		var sum float64
		for _, v := range featureSum[c] {
			sum += v
		}
		m.FeatureLogProb[c] = make([]float64, nFeatures)
		denom := sum + smoothing*float64(nFeatures)
		for j := range m.FeatureLogProb[c] {
			m.FeatureLogProb[c][j] = math.Log((featureSum[c][j] + smoothing) / denom)
		}
	}
	return m
}

// Predict returns 1 when the label is more likely present than absent.
func (m *BinaryNB) Predict(x []float64) int {
	var score [2]float64
	for c := 0; c < 2; c++ {
		score[c] = m.ClassLogPrior[c]
		if math.IsInf(score[c], -1) {
			continue
		}
		for j, v := range x {
			if v != 0 {
				score[c] += v * m.FeatureLogProb[c][j]
			}
		}
	}
	if score[1] > score[0] {
		return 1
	}
	return 0
}
