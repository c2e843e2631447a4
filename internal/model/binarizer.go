package model

import "sort"

// Binarizer converts between label-name sets and fixed-order indicator rows.
type Binarizer struct {
	Classes []string
}

// Fit collects the sorted union of all label names.
func (b *Binarizer) Fit(labelSets [][]string) {
	seen := make(map[string]struct{})
	for _, set := range labelSets {
		for _, l := range set {
			seen[l] = struct{}{}
		}
	}
	b.Classes = make([]string, 0, len(seen))
	for l := range seen {
		b.Classes = append(b.Classes, l)
	}
	sort.Strings(b.Classes)
}

// Transform returns the indicator row for one label set. Labels unseen at
// fit time are dropped.
func (b *Binarizer) Transform(set []string) []int {
	row := make([]int, len(b.Classes))
	for _, l := range set {
		for i, c := range b.Classes {
			if c == l {
				row[i] = 1
				break
			}
		}
	}
	return row
}

// Inverse maps an indicator row back to label names.
func (b *Binarizer) Inverse(row []int) []string {
	var out []string
	for i, v := range row {
		if i < len(b.Classes) && v == 1 {
			out = append(out, b.Classes[i])
		}
	}
	return out
}
