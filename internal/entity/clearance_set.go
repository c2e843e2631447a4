package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClearanceSet is one faculty member's clearance campaign for an academic
// year. RequiredTypes lists the categories that must each carry an APPROVED
// document before the set counts as complete.
type ClearanceSet struct {
	ID            uuid.UUID `json:"id"`
	FacultyID     uuid.UUID `json:"faculty_id"`
	Name          string    `json:"name"`
	AcademicYear  string    `json:"academic_year"` // "2025-2026"
	RequiredTypes []string  `json:"required_types"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
