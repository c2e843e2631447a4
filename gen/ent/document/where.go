// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// ClearanceSetID applies equality check predicate on the "clearance_set_id" field. It's identical to ClearanceSetIDEQ.
func ClearanceSetID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceSetID, v))
}

// ClearanceType applies equality check predicate on the "clearance_type" field. It's identical to ClearanceTypeEQ.
func ClearanceType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceType, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ClearanceStatus applies equality check predicate on the "clearance_status" field. It's identical to ClearanceStatusEQ.
func ClearanceStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceStatus, v))
}

// PredictedStatus applies equality check predicate on the "predicted_status" field. It's identical to PredictedStatusEQ.
func PredictedStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictedStatus, v))
}

// PredictedAt applies equality check predicate on the "predicted_at" field. It's identical to PredictedAtEQ.
func PredictedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictedAt, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// ClearanceSetIDEQ applies the EQ predicate on the "clearance_set_id" field.
func ClearanceSetIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceSetID, v))
}

// ClearanceSetIDNEQ applies the NEQ predicate on the "clearance_set_id" field.
func ClearanceSetIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldClearanceSetID, v))
}

// ClearanceSetIDIn applies the In predicate on the "clearance_set_id" field.
func ClearanceSetIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldClearanceSetID, vs...))
}

// ClearanceSetIDNotIn applies the NotIn predicate on the "clearance_set_id" field.
func ClearanceSetIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldClearanceSetID, vs...))
}

// ClearanceTypeEQ applies the EQ predicate on the "clearance_type" field.
func ClearanceTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceType, v))
}

// ClearanceTypeNEQ applies the NEQ predicate on the "clearance_type" field.
func ClearanceTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldClearanceType, v))
}

// ClearanceTypeIn applies the In predicate on the "clearance_type" field.
func ClearanceTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldClearanceType, vs...))
}

// ClearanceTypeNotIn applies the NotIn predicate on the "clearance_type" field.
func ClearanceTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldClearanceType, vs...))
}

// ClearanceTypeGT applies the GT predicate on the "clearance_type" field.
func ClearanceTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldClearanceType, v))
}

// ClearanceTypeGTE applies the GTE predicate on the "clearance_type" field.
func ClearanceTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldClearanceType, v))
}

// ClearanceTypeLT applies the LT predicate on the "clearance_type" field.
func ClearanceTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldClearanceType, v))
}

// ClearanceTypeLTE applies the LTE predicate on the "clearance_type" field.
func ClearanceTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldClearanceType, v))
}

// ClearanceTypeContains applies the Contains predicate on the "clearance_type" field.
func ClearanceTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldClearanceType, v))
}

// ClearanceTypeHasPrefix applies the HasPrefix predicate on the "clearance_type" field.
func ClearanceTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldClearanceType, v))
}

// ClearanceTypeHasSuffix applies the HasSuffix predicate on the "clearance_type" field.
func ClearanceTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldClearanceType, v))
}

// ClearanceTypeEqualFold applies the EqualFold predicate on the "clearance_type" field.
func ClearanceTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldClearanceType, v))
}

// ClearanceTypeContainsFold applies the ContainsFold predicate on the "clearance_type" field.
func ClearanceTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldClearanceType, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileName, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ClearanceStatusEQ applies the EQ predicate on the "clearance_status" field.
func ClearanceStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClearanceStatus, v))
}

// ClearanceStatusNEQ applies the NEQ predicate on the "clearance_status" field.
func ClearanceStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldClearanceStatus, v))
}

// ClearanceStatusIn applies the In predicate on the "clearance_status" field.
func ClearanceStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldClearanceStatus, vs...))
}

// ClearanceStatusNotIn applies the NotIn predicate on the "clearance_status" field.
func ClearanceStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldClearanceStatus, vs...))
}

// ClearanceStatusGT applies the GT predicate on the "clearance_status" field.
func ClearanceStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldClearanceStatus, v))
}

// ClearanceStatusGTE applies the GTE predicate on the "clearance_status" field.
func ClearanceStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldClearanceStatus, v))
}

// ClearanceStatusLT applies the LT predicate on the "clearance_status" field.
func ClearanceStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldClearanceStatus, v))
}

// ClearanceStatusLTE applies the LTE predicate on the "clearance_status" field.
func ClearanceStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldClearanceStatus, v))
}

// ClearanceStatusContains applies the Contains predicate on the "clearance_status" field.
func ClearanceStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldClearanceStatus, v))
}

// ClearanceStatusHasPrefix applies the HasPrefix predicate on the "clearance_status" field.
func ClearanceStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldClearanceStatus, v))
}

// ClearanceStatusHasSuffix applies the HasSuffix predicate on the "clearance_status" field.
func ClearanceStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldClearanceStatus, v))
}

// ClearanceStatusEqualFold applies the EqualFold predicate on the "clearance_status" field.
func ClearanceStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldClearanceStatus, v))
}

// ClearanceStatusContainsFold applies the ContainsFold predicate on the "clearance_status" field.
func ClearanceStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldClearanceStatus, v))
}

// PredictedStatusEQ applies the EQ predicate on the "predicted_status" field.
func PredictedStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictedStatus, v))
}

// PredictedStatusNEQ applies the NEQ predicate on the "predicted_status" field.
func PredictedStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPredictedStatus, v))
}

// PredictedStatusIn applies the In predicate on the "predicted_status" field.
func PredictedStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPredictedStatus, vs...))
}

// PredictedStatusNotIn applies the NotIn predicate on the "predicted_status" field.
func PredictedStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPredictedStatus, vs...))
}

// PredictedStatusGT applies the GT predicate on the "predicted_status" field.
func PredictedStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPredictedStatus, v))
}

// PredictedStatusGTE applies the GTE predicate on the "predicted_status" field.
func PredictedStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPredictedStatus, v))
}

// PredictedStatusLT applies the LT predicate on the "predicted_status" field.
func PredictedStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPredictedStatus, v))
}

// PredictedStatusLTE applies the LTE predicate on the "predicted_status" field.
func PredictedStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPredictedStatus, v))
}

// PredictedStatusContains applies the Contains predicate on the "predicted_status" field.
func PredictedStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPredictedStatus, v))
}

// PredictedStatusHasPrefix applies the HasPrefix predicate on the "predicted_status" field.
func PredictedStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPredictedStatus, v))
}

// PredictedStatusHasSuffix applies the HasSuffix predicate on the "predicted_status" field.
func PredictedStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPredictedStatus, v))
}

// PredictedStatusIsNil applies the IsNil predicate on the "predicted_status" field.
func PredictedStatusIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPredictedStatus))
}

// PredictedStatusNotNil applies the NotNil predicate on the "predicted_status" field.
func PredictedStatusNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPredictedStatus))
}

// PredictedStatusEqualFold applies the EqualFold predicate on the "predicted_status" field.
func PredictedStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPredictedStatus, v))
}

// PredictedStatusContainsFold applies the ContainsFold predicate on the "predicted_status" field.
func PredictedStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPredictedStatus, v))
}

// PredictedAtEQ applies the EQ predicate on the "predicted_at" field.
func PredictedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictedAt, v))
}

// PredictedAtNEQ applies the NEQ predicate on the "predicted_at" field.
func PredictedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPredictedAt, v))
}

// PredictedAtIn applies the In predicate on the "predicted_at" field.
func PredictedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPredictedAt, vs...))
}

// PredictedAtNotIn applies the NotIn predicate on the "predicted_at" field.
func PredictedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPredictedAt, vs...))
}

// PredictedAtGT applies the GT predicate on the "predicted_at" field.
func PredictedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPredictedAt, v))
}

// PredictedAtGTE applies the GTE predicate on the "predicted_at" field.
func PredictedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPredictedAt, v))
}

// PredictedAtLT applies the LT predicate on the "predicted_at" field.
func PredictedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPredictedAt, v))
}

// PredictedAtLTE applies the LTE predicate on the "predicted_at" field.
func PredictedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPredictedAt, v))
}

// PredictedAtIsNil applies the IsNil predicate on the "predicted_at" field.
func PredictedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPredictedAt))
}

// PredictedAtNotNil applies the NotNil predicate on the "predicted_at" field.
func PredictedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPredictedAt))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// HasClearanceSet applies the HasEdge predicate on the "clearance_set" edge.
func HasClearanceSet() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClearanceSetTable, ClearanceSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClearanceSetWith applies the HasEdge predicate on the "clearance_set" edge with a given conditions (other predicates).
func HasClearanceSetWith(preds ...predicate.ClearanceSet) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newClearanceSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.PredictJob) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
