package constants

// ScanStatus is the canonical status for rows in document_scans.
type ScanStatus string

// Stable values (store these exact strings in DB).
// Transitions are monotonic: pending -> processing -> {completed | failed}.
const (
	ScanStatusPending    ScanStatus = "pending"
	ScanStatusProcessing ScanStatus = "processing"
	ScanStatusCompleted  ScanStatus = "completed"
	ScanStatusFailed     ScanStatus = "failed"
)

// GenerationStatus is the canonical status for rows in generated_cvs.
type GenerationStatus string

const (
	GenerationStatusPending    GenerationStatus = "pending"
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// JobStatus is the canonical status for rows in processing_jobs.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	// JobStatusCancelled is reserved; nothing transitions into it yet.
	JobStatusCancelled JobStatus = "cancelled"
)

// JobType names one async unit of work.
type JobType string

const (
	JobTypeScan       JobType = "scan"
	JobTypeExtract    JobType = "extract"
	JobTypeGenerateCV JobType = "generate_cv"
	JobTypeMerge      JobType = "merge_documents"
)

var JobTypes = []string{
	string(JobTypeScan),
	string(JobTypeExtract),
	string(JobTypeGenerateCV),
	string(JobTypeMerge),
}

// DocumentType tags the kind of uploaded document.
type DocumentType string

const (
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeID          DocumentType = "id_document"
	DocumentTypeApplication DocumentType = "application"
	DocumentTypeOther       DocumentType = "other"
)

var DocumentTypes = []string{
	string(DocumentTypeResume),
	string(DocumentTypeCertificate),
	string(DocumentTypeID),
	string(DocumentTypeApplication),
	string(DocumentTypeOther),
}

var ScanStatuses = []string{
	string(ScanStatusPending),
	string(ScanStatusProcessing),
	string(ScanStatusCompleted),
	string(ScanStatusFailed),
}

var GenerationStatuses = []string{
	string(GenerationStatusPending),
	string(GenerationStatusGenerating),
	string(GenerationStatusCompleted),
	string(GenerationStatusFailed),
}

var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}
