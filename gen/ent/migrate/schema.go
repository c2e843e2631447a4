// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClearanceSetsColumns holds the columns for the "clearance_sets" table.
	ClearanceSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "academic_year", Type: field.TypeString},
		{Name: "required_types", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "faculty_id", Type: field.TypeUUID},
	}
	// ClearanceSetsTable holds the schema information for the "clearance_sets" table.
	ClearanceSetsTable = &schema.Table{
		Name:       "clearance_sets",
		Columns:    ClearanceSetsColumns,
		PrimaryKey: []*schema.Column{ClearanceSetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clearance_sets_faculty_clearance_sets",
				Columns:    []*schema.Column{ClearanceSetsColumns[6]},
				RefColumns: []*schema.Column{FacultyColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clearanceset_faculty_id_name",
				Unique:  true,
				Columns: []*schema.Column{ClearanceSetsColumns[6], ClearanceSetsColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "clearance_type", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "clearance_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "predicted_status", Type: field.TypeString, Nullable: true},
		{Name: "predicted_at", Type: field.TypeTime, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "clearance_set_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_clearance_sets_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{ClearanceSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_clearance_set_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[5]},
			},
			{
				Name:    "document_clearance_set_id_clearance_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[1]},
			},
		},
	}
	// FacultyColumns holds the columns for the "faculty" table.
	FacultyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "department", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FacultyTable holds the schema information for the "faculty" table.
	FacultyTable = &schema.Table{
		Name:       "faculty",
		Columns:    FacultyColumns,
		PrimaryKey: []*schema.Column{FacultyColumns[0]},
	}
	// PredictJobColumns holds the columns for the "predict_job" table.
	PredictJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// PredictJobTable holds the schema information for the "predict_job" table.
	PredictJobTable = &schema.Table{
		Name:       "predict_job",
		Columns:    PredictJobColumns,
		PrimaryKey: []*schema.Column{PredictJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "predict_job_documents_jobs",
				Columns:    []*schema.Column{PredictJobColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "predictjob_document_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{PredictJobColumns[8], PredictJobColumns[2], PredictJobColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClearanceSetsTable,
		DocumentsTable,
		FacultyTable,
		PredictJobTable,
	}
)

func init() {
	ClearanceSetsTable.ForeignKeys[0].RefTable = FacultyTable
	ClearanceSetsTable.Annotation = &entsql.Annotation{
		Table: "clearance_sets",
	}
	DocumentsTable.ForeignKeys[0].RefTable = ClearanceSetsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	FacultyTable.Annotation = &entsql.Annotation{
		Table: "faculty",
	}
	PredictJobTable.ForeignKeys[0].RefTable = DocumentsTable
	PredictJobTable.Annotation = &entsql.Annotation{
		Table: "predict_job",
	}
}
