package model

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rtanga/clearance-tracker/constants"
)

// Dataset is the preprocessed training data: one label set and its
// space-joined text representation per historical row.
type Dataset struct {
	LabelSets [][]string
	Texts     []string
}

// LoadDataset reads the flags CSV. The file carries one boolean column per
// clearance label (see constants.LabelColumns); any other columns are
// ignored. A row's label set is the list of columns whose flag is truthy.
func LoadDataset(csvPath string) (*Dataset, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %q is empty", csvPath)
	}

	header := records[0]
	colIdx := make(map[string]int)
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	var labelCols []string
	for _, label := range constants.LabelColumns {
		if _, ok := colIdx[label]; ok {
			labelCols = append(labelCols, label)
		}
	}
	if len(labelCols) == 0 {
		return nil, fmt.Errorf("dataset %q has none of the expected label columns", csvPath)
	}

	ds := &Dataset{}
	for _, rec := range records[1:] {
		var set []string
		for _, label := range labelCols {
			i := colIdx[label]
			if i >= len(rec) {
				continue
			}
			if truthy(rec[i]) {
				set = append(set, label)
			}
		}
		ds.LabelSets = append(ds.LabelSets, set)
		ds.Texts = append(ds.Texts, strings.Join(set, " "))
	}
	return ds, nil
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
