package model

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer maps a short clearance text to a term-frequency/inverse-document
// frequency vector over the vocabulary seen at fit time. Unknown terms are
// ignored at transform time.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
}

func tokenize(doc string) []string {
	return strings.Fields(strings.ToLower(doc))
}

// Fit builds the vocabulary and IDF weights from the training documents.
func (v *Vectorizer) Fit(docs []string) {
	seen := make(map[string]struct{})
	df := make(map[string]int)
	for _, doc := range docs {
		inDoc := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			seen[tok] = struct{}{}
			inDoc[tok] = struct{}{}
		}
		for tok := range inDoc {
			df[tok]++
		}
	}

	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, tok := range terms {
		v.Vocabulary[tok] = i
		// smoothed IDF: every term behaves as if seen in one extra document
		v.IDF[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}
}

// Transform converts one document to an L2-normalized TF-IDF vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	x := make([]float64, len(v.IDF))
	for _, tok := range tokenize(doc) {
		if i, ok := v.Vocabulary[tok]; ok {
			x[i]++
		}
	}
	var norm float64
	for i := range x {
		x[i] *= v.IDF[i]
		norm += x[i] * x[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range x {
			x[i] /= norm
		}
	}
	return x
}

// TransformAll vectorizes a batch of documents.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}
