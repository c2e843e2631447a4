package constants

// Status is a clearance decision for a single document. The same enumeration
// is used for the human-entered status and for the system prediction.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"

	// NoPrediction marks a document that has never been through a successful
	// extraction+classification pass.
	NoPrediction Status = "NO_PREDICTION"
)

// Statuses holds the values allowed in the documents.clearance_status column.
var Statuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// PredictedStatuses additionally allows the NO_PREDICTION sentinel.
var PredictedStatuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(NoPrediction),
}

// JobStatus is the canonical status for rows in predict_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // queued for processing
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK" // stage 1 completed (text extracted)
	JobStatusDone    JobStatus = "DONE"    // prediction written back
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)

// JobStatuses holds the values allowed in the predict_job.status column.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusTextOK),
	string(JobStatusDone),
	string(JobStatusFailed),
}
