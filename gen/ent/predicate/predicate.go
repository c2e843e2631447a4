// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClearanceSet is the predicate function for clearanceset builders.
type ClearanceSet func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Faculty is the predicate function for faculty builders.
type Faculty func(*sql.Selector)

// PredictJob is the predicate function for predictjob builders.
type PredictJob func(*sql.Selector)
