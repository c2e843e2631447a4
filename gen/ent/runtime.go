// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/db/ent/schema"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predictjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clearancesetFields := schema.ClearanceSet{}.Fields()
	_ = clearancesetFields
	// clearancesetDescName is the schema descriptor for name field.
	clearancesetDescName := clearancesetFields[2].Descriptor()
	// clearanceset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clearanceset.NameValidator = clearancesetDescName.Validators[0].(func(string) error)
	// clearancesetDescAcademicYear is the schema descriptor for academic_year field.
	clearancesetDescAcademicYear := clearancesetFields[3].Descriptor()
	// clearanceset.AcademicYearValidator is a validator for the "academic_year" field. It is called by the builders before save.
	clearanceset.AcademicYearValidator = func() func(string) error {
		validators := clearancesetDescAcademicYear.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(academic_year string) error {
			for _, fn := range fns {
				if err := fn(academic_year); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clearancesetDescCreatedAt is the schema descriptor for created_at field.
	clearancesetDescCreatedAt := clearancesetFields[5].Descriptor()
	// clearanceset.DefaultCreatedAt holds the default value on creation for the created_at field.
	clearanceset.DefaultCreatedAt = clearancesetDescCreatedAt.Default.(func() time.Time)
	// clearancesetDescUpdatedAt is the schema descriptor for updated_at field.
	clearancesetDescUpdatedAt := clearancesetFields[6].Descriptor()
	// clearanceset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clearanceset.DefaultUpdatedAt = clearancesetDescUpdatedAt.Default.(func() time.Time)
	// clearanceset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clearanceset.UpdateDefaultUpdatedAt = clearancesetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clearancesetDescID is the schema descriptor for id field.
	clearancesetDescID := clearancesetFields[0].Descriptor()
	// clearanceset.DefaultID holds the default value on creation for the id field.
	clearanceset.DefaultID = clearancesetDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescClearanceType is the schema descriptor for clearance_type field.
	documentDescClearanceType := documentFields[2].Descriptor()
	// document.ClearanceTypeValidator is a validator for the "clearance_type" field. It is called by the builders before save.
	document.ClearanceTypeValidator = func() func(string) error {
		validators := documentDescClearanceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(clearance_type string) error {
			for _, fn := range fns {
				if err := fn(clearance_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[3].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[4].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[5].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[6].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescClearanceStatus is the schema descriptor for clearance_status field.
	documentDescClearanceStatus := documentFields[7].Descriptor()
	// document.DefaultClearanceStatus holds the default value on creation for the clearance_status field.
	document.DefaultClearanceStatus = documentDescClearanceStatus.Default.(string)
	// document.ClearanceStatusValidator is a validator for the "clearance_status" field. It is called by the builders before save.
	document.ClearanceStatusValidator = documentDescClearanceStatus.Validators[0].(func(string) error)
	// documentDescPredictedStatus is the schema descriptor for predicted_status field.
	documentDescPredictedStatus := documentFields[8].Descriptor()
	// document.PredictedStatusValidator is a validator for the "predicted_status" field. It is called by the builders before save.
	document.PredictedStatusValidator = documentDescPredictedStatus.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	facultyFields := schema.Faculty{}.Fields()
	_ = facultyFields
	// facultyDescName is the schema descriptor for name field.
	facultyDescName := facultyFields[1].Descriptor()
	// faculty.NameValidator is a validator for the "name" field. It is called by the builders before save.
	faculty.NameValidator = facultyDescName.Validators[0].(func(string) error)
	// facultyDescEmail is the schema descriptor for email field.
	facultyDescEmail := facultyFields[2].Descriptor()
	// faculty.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	faculty.EmailValidator = facultyDescEmail.Validators[0].(func(string) error)
	// facultyDescDepartment is the schema descriptor for department field.
	facultyDescDepartment := facultyFields[3].Descriptor()
	// faculty.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	faculty.DepartmentValidator = facultyDescDepartment.Validators[0].(func(string) error)
	// facultyDescCreatedAt is the schema descriptor for created_at field.
	facultyDescCreatedAt := facultyFields[4].Descriptor()
	// faculty.DefaultCreatedAt holds the default value on creation for the created_at field.
	faculty.DefaultCreatedAt = facultyDescCreatedAt.Default.(func() time.Time)
	// facultyDescUpdatedAt is the schema descriptor for updated_at field.
	facultyDescUpdatedAt := facultyFields[5].Descriptor()
	// faculty.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	faculty.DefaultUpdatedAt = facultyDescUpdatedAt.Default.(func() time.Time)
	// faculty.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	faculty.UpdateDefaultUpdatedAt = facultyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// facultyDescID is the schema descriptor for id field.
	facultyDescID := facultyFields[0].Descriptor()
	// faculty.DefaultID holds the default value on creation for the id field.
	faculty.DefaultID = facultyDescID.Default.(func() uuid.UUID)
	predictjobFields := schema.PredictJob{}.Fields()
	_ = predictjobFields
	// predictjobDescFormat is the schema descriptor for format field.
	predictjobDescFormat := predictjobFields[2].Descriptor()
	// predictjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	predictjob.FormatValidator = func() func(string) error {
		validators := predictjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// predictjobDescStatus is the schema descriptor for status field.
	predictjobDescStatus := predictjobFields[3].Descriptor()
	// predictjob.DefaultStatus holds the default value on creation for the status field.
	predictjob.DefaultStatus = predictjobDescStatus.Default.(string)
	// predictjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	predictjob.StatusValidator = func() func(string) error {
		validators := predictjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// predictjobDescStartedAt is the schema descriptor for started_at field.
	predictjobDescStartedAt := predictjobFields[7].Descriptor()
	// predictjob.DefaultStartedAt holds the default value on creation for the started_at field.
	predictjob.DefaultStartedAt = predictjobDescStartedAt.Default.(func() time.Time)
	// predictjobDescID is the schema descriptor for id field.
	predictjobDescID := predictjobFields[0].Descriptor()
	// predictjob.DefaultID holds the default value on creation for the id field.
	predictjob.DefaultID = predictjobDescID.Default.(func() uuid.UUID)
}
