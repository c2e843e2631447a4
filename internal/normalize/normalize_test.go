package normalize

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Grade Clearance APPROVED", "grade clearance approved"},
		{"ocr digit fixes", "c1earance 0bligations 5ettled", "ciearance obligations settled"},
		{"at and ampersand", "records @ registrar & bursar", "records a registrar and bursar"},
		{"strips specials keeps punctuation", "cleared: yes; (see memo) — done!", "cleared yes see memo done!"},
		{"collapses whitespace", "  library \t dues \n\n cleared  ", "library dues cleared"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"This is to CONFIRM that 1 have received the c0urse file.",
		"Fees PAID in full — balance 0.00 & no dues",
		"  mixed © symbols → here  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent: first %q, second %q", once, twice)
		}
	}
}
