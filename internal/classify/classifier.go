// Package classify detects the clearance category and approval status of a
// normalized document text using curated keyword phrase sets.
package classify

import (
	"log/slog"
	"strings"

	"github.com/rtanga/clearance-tracker/constants"
)

// minCategoryMatches is the minimum keyword hits needed to accept a category.
// One generic word ("records", "materials") is shared across categories too
// often to be trusted on its own.
const minCategoryMatches = 2

// categoryOrder fixes the detection scan order so that score ties resolve
// deterministically to the earliest category in keyword table order.
var categoryOrder = []constants.ClearanceType{
	constants.Academic,
	constants.Financial,
	constants.Library,
	constants.Research,
	constants.Equipment,
	constants.Admin,
}

type Classifier struct {
	table  *KeywordTable
	logger *slog.Logger
}

func NewClassifier(logger *slog.Logger) (*Classifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t, err := LoadTable()
	if err != nil {
		return nil, err
	}
	return &Classifier{table: t, logger: logger}, nil
}

// DetectCategory counts, per category, how many of its keyword phrases occur
// in text, and returns the category with the most hits. Returns false when no
// category reaches minCategoryMatches.
func (c *Classifier) DetectCategory(text string) (constants.ClearanceType, bool) {
	var best constants.ClearanceType
	bestCount := 0
	for _, t := range categoryOrder {
		count := 0
		for _, kw := range c.table.Categories[t] {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = t, count
		}
	}
	if bestCount < minCategoryMatches {
		c.logger.Debug("no clearance category reached the match threshold", "best_count", bestCount)
		return "", false
	}
	c.logger.Debug("clearance category detected", "category", best, "matches", bestCount)
	return best, true
}

// DetectStatus applies the ordered decision rules to a normalized text.
// category is the document's declared type or the detector's best guess;
// haveCategory is false when neither is available.
//
// Rule order matters: a single rejection phrase outweighs any number of
// approval phrases, and ambiguous text falls through to PENDING so that a
// human reviewer, not the classifier, clears the record.
func (c *Classifier) DetectStatus(text string, category constants.ClearanceType, haveCategory bool) constants.Status {
	approvals := c.matchAll(text, c.table.Approval)
	rejections := c.matchAll(text, c.table.Rejection)

	if len(approvals) > 0 {
		c.logger.Debug("approval phrases found", "phrases", strings.Join(approvals, ", "))
	}
	if len(rejections) > 0 {
		c.logger.Debug("rejection phrases found", "phrases", strings.Join(rejections, ", "))
	}

	switch {
	case len(approvals) > 0 && len(rejections) == 0:
		return constants.StatusApproved
	case len(rejections) > 0:
		return constants.StatusRejected
	case strings.Contains(text, "this is to confirm") && strings.Contains(text, "received"):
		// confirmation letters carry no explicit approval wording
		return constants.StatusApproved
	case haveCategory:
		for _, phrase := range c.table.Corroboration[category] {
			if strings.Contains(text, phrase) {
				return constants.StatusApproved
			}
		}
		return constants.StatusPending
	default:
		return constants.StatusPending
	}
}

// DetectFlags derives the boolean clearance flags the multi-label model was
// trained on from document text.
func (c *Classifier) DetectFlags(text string) map[string]bool {
	flags := make(map[string]bool, len(constants.LabelColumns))
	for _, label := range constants.LabelColumns {
		flags[label] = false
		for _, kw := range c.table.Flags[label] {
			if strings.Contains(text, kw) {
				flags[label] = true
				break
			}
		}
	}
	return flags
}

func (c *Classifier) matchAll(text string, phrases []string) []string {
	var found []string
	for _, p := range phrases {
		if strings.Contains(text, p) {
			found = append(found, p)
		}
	}
	return found
}
