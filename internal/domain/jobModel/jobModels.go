package jobModel

import (
	"time"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	AnalyzeInit     InternalStatus = "Init"
	StorageCall     InternalStatus = "Storage"
	TextExtraction  InternalStatus = "TextExtraction"
	PatternScan     InternalStatus = "PatternScan"
	AICall          InternalStatus = "AI"
	PersistenceCall InternalStatus = "Persistence"
	Error           InternalStatus = "Error"
	Complete        InternalStatus = "Complete"
)

// Job is one queued batch-analysis unit: a single document id to run through
// the pipeline. Batch processing works through these instead of the service
// calling its own HTTP endpoint per document.
type Job struct {
	Id          string         `json:"id"`
	DocumentId  string         `json:"document_id"`
	TraceId     string         `json:"trace_id"`
	Force       bool           `json:"force,omitempty"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}
