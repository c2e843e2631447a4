package predictor

import "github.com/rtanga/clearance-tracker/constants"

// DocumentStatus is the per-document input to set evaluation. Predicted is
// NoPrediction for documents that never went through the pipeline.
type DocumentStatus struct {
	Type      constants.ClearanceType
	Human     constants.Status
	Predicted constants.Status
}

// Evaluation reports which required categories still lack an approved
// document.
type Evaluation struct {
	Missing  []constants.ClearanceType
	Complete bool
}

// Evaluate is a pure set difference: required minus the categories holding at
// least one document approved by either a human or the pipeline. Missing
// preserves the order of required.
func Evaluate(required []constants.ClearanceType, docs []DocumentStatus) Evaluation {
	approved := make(map[constants.ClearanceType]bool, len(docs))
	for _, d := range docs {
		if d.Human == constants.StatusApproved || d.Predicted == constants.StatusApproved {
			approved[d.Type] = true
		}
	}

	var missing []constants.ClearanceType
	seen := make(map[constants.ClearanceType]bool, len(required))
	for _, t := range required {
		if seen[t] {
			continue
		}
		seen[t] = true
		if !approved[t] {
			missing = append(missing, t)
		}
	}
	return Evaluation{Missing: missing, Complete: len(missing) == 0}
}
