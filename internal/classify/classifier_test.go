package classify

import (
	"log/slog"
	"testing"

	"github.com/rtanga/clearance-tracker/constants"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(slog.Default())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func TestDetectCategoryEachType(t *testing.T) {
	c := newTestClassifier(t)

	// Each text contains at least two keywords of exactly one category and
	// none of any other.
	cases := []struct {
		text string
		want constants.ClearanceType
	}{
		{"grades for the semester", constants.Academic},
		{"cashier noted fees", constants.Financial},
		{"lending and circulation", constants.Library},
		{"thesis and dissertation", constants.Research},
		{"laboratory apparatus", constants.Equipment},
		{"personnel and administration", constants.Admin},
	}
	for _, tc := range cases {
		t.Run(string(tc.want), func(t *testing.T) {
			got, ok := c.DetectCategory(tc.text)
			if !ok {
				t.Fatalf("DetectCategory(%q) found nothing, want %s", tc.text, tc.want)
			}
			if got != tc.want {
				t.Fatalf("DetectCategory(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectCategoryThresholdOfTwo(t *testing.T) {
	c := newTestClassifier(t)

	// Exactly one keyword hit per category: below the threshold everywhere.
	text := "grades cashier lending thesis apparatus personnel"
	got, ok := c.DetectCategory(text)
	if ok {
		t.Fatalf("DetectCategory(%q) = %s, want none", text, got)
	}
}

func TestDetectCategoryTieResolvesToTableOrder(t *testing.T) {
	c := newTestClassifier(t)

	// "requirements" and "records" appear in both the ACADEMIC and ADMIN
	// keyword lists, scoring 2-2; the earlier table entry must win.
	got, ok := c.DetectCategory("requirements and records")
	if !ok {
		t.Fatal("DetectCategory found nothing on a 2-2 tie")
	}
	if got != constants.Academic {
		t.Fatalf("DetectCategory tie = %s, want ACADEMIC", got)
	}
}

func TestDetectStatusRejectionDominates(t *testing.T) {
	c := newTestClassifier(t)

	// An approval phrase together with any rejection phrase must reject.
	text := "approved. however fees are still outstanding."
	if got := c.DetectStatus(text, constants.Financial, true); got != constants.StatusRejected {
		t.Fatalf("DetectStatus = %s, want REJECTED", got)
	}
}

func TestDetectStatusApproval(t *testing.T) {
	c := newTestClassifier(t)

	text := "your clearance has been approved and verified"
	if got := c.DetectStatus(text, constants.Academic, true); got != constants.StatusApproved {
		t.Fatalf("DetectStatus = %s, want APPROVED", got)
	}
}

func TestDetectStatusSubmissionIndicators(t *testing.T) {
	c := newTestClassifier(t)

	// Each text carries exactly one approval phrase from the submission and
	// receipt group and no rejection phrase.
	cases := []struct {
		name string
		text string
	}{
		{"submitted", "grades submitted for the semester"},
		{"processed", "payment processed by the cashier"},
		{"i have received", "i have received the clearance form"},
		{"i am satisfied", "i am satisfied with the unit records"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.DetectStatus(tc.text, "", false); got != constants.StatusApproved {
				t.Fatalf("DetectStatus(%q) = %s, want APPROVED", tc.text, got)
			}
		})
	}
}

func TestDetectStatusConfirmationLetter(t *testing.T) {
	c := newTestClassifier(t)

	// No general approval or rejection phrase, only the confirmation pattern.
	text := "this is to confirm that the office received the course file"
	if got := c.DetectStatus(text, "", false); got != constants.StatusApproved {
		t.Fatalf("DetectStatus = %s, want APPROVED", got)
	}
}

func TestDetectStatusCorroboration(t *testing.T) {
	c := newTestClassifier(t)

	cases := []struct {
		name     string
		text     string
		category constants.ClearanceType
		want     constants.Status
	}{
		{"academic course file", "course file received and reviewed", constants.Academic, constants.StatusApproved},
		{"library books returned", "all books returned in good condition", constants.Library, constants.StatusApproved},
		{"academic without corroboration", "regular semester teaching notes", constants.Academic, constants.StatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.DetectStatus(tc.text, tc.category, true); got != tc.want {
				t.Fatalf("DetectStatus(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectStatusDefaultsToPending(t *testing.T) {
	c := newTestClassifier(t)

	if got := c.DetectStatus("memo regarding upcoming schedule", "", false); got != constants.StatusPending {
		t.Fatalf("DetectStatus = %s, want PENDING", got)
	}
}

func TestDetectFlags(t *testing.T) {
	c := newTestClassifier(t)

	flags := c.DetectFlags("grade clearance and library dues cleared")
	want := map[string]bool{
		constants.LabelAdminClearance:    false,
		constants.LabelResearchClearance: false,
		constants.LabelGradeSubmission:   true,
		constants.LabelLibraryClearance:  true,
		constants.LabelEquipmentReturned: false,
	}
	for label, w := range want {
		if flags[label] != w {
			t.Errorf("flag %s = %t, want %t", label, flags[label], w)
		}
	}
}
