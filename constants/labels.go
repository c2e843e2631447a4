package constants

// Model label columns. These are the boolean column headers of the historical
// training CSV; the multi-label model predicts exactly this set of names.
const (
	LabelAdminClearance    = "Admin_Clearance"
	LabelResearchClearance = "Research_Clearance"
	LabelGradeSubmission   = "Grade_Submission"
	LabelLibraryClearance  = "Library_Clearance"
	LabelEquipmentReturned = "Equipment_Returned"
)

// LabelColumns lists the label columns in CSV header order.
var LabelColumns = []string{
	LabelAdminClearance,
	LabelResearchClearance,
	LabelGradeSubmission,
	LabelLibraryClearance,
	LabelEquipmentReturned,
}

// labelByType maps a clearance category to its model label column. FINANCIAL
// has no counterpart in the historical dataset and is absent on purpose.
var labelByType = map[ClearanceType]string{
	Admin:     LabelAdminClearance,
	Research:  LabelResearchClearance,
	Academic:  LabelGradeSubmission,
	Library:   LabelLibraryClearance,
	Equipment: LabelEquipmentReturned,
}

// LabelForType returns the model label column for a category, if one exists.
func LabelForType(t ClearanceType) (string, bool) {
	l, ok := labelByType[t]
	return l, ok
}
