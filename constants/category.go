package constants

import (
	"strings"
)

// ClearanceType is one of the fixed administrative clearance categories a
// faculty member has to clear before the end of an academic year.
type ClearanceType string

const (
	Admin     ClearanceType = "ADMIN"
	Academic  ClearanceType = "ACADEMIC"
	Financial ClearanceType = "FINANCIAL"
	Library   ClearanceType = "LIBRARY"
	Research  ClearanceType = "RESEARCH"
	Equipment ClearanceType = "EQUIPMENT"
)

var allTypes = []ClearanceType{
	Admin,
	Academic,
	Financial,
	Library,
	Research,
	Equipment,
}

// AllTypes returns the fixed category set in declaration order.
func AllTypes() []ClearanceType {
	out := make([]ClearanceType, len(allTypes))
	copy(out, allTypes)
	return out
}

func TypesAsStringSlice() []string {
	result := make([]string, len(allTypes))
	for i, t := range allTypes {
		result[i] = string(t)
	}
	return result
}

// Canonicalize maps free-form user input to a ClearanceType.
func Canonicalize(input string) (ClearanceType, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]ClearanceType{
		"administrative":  Admin,
		"admin clearance": Admin,
		"grade clearance": Academic,
		"grade":           Academic,
		"grades":          Academic,
		"finance":         Financial,
		"fees":            Financial,
		"books":           Library,
		"thesis":          Research,
		"lab":             Equipment,
		"laboratory":      Equipment,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	// check if it matches any category string
	for _, t := range allTypes {
		if normalized == strings.ToLower(string(t)) {
			return t, true
		}
	}

	return "", false
}
