package api

import (
	"time"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// requests---------------------

// AnalyzeRequest carries at least one text source: a stored document id, a
// storage path, or inline text.
type AnalyzeRequest struct {
	DocumentId  string `json:"document_id,omitempty" example:"doc_550"`
	StoragePath string `json:"storage_path,omitempty" example:"cases/1042/denial.pdf"`
	Text        string `json:"text,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

type BatchAnalyzeRequest struct {
	DocumentIds []string `json:"document_ids" validate:"required"`
	Force       bool     `json:"force,omitempty"`
}

// responses--------------------

type AnalyzeResponse struct {
	Success             bool               `json:"success"`
	DocumentId          string             `json:"document_id,omitempty" example:"doc_550"`
	DocType             string             `json:"doc_type" example:"denial_letter"`
	AICategory          string             `json:"ai_category,omitempty"`
	Summary             string             `json:"summary"`
	Metadata            *docmodel.Metadata `json:"metadata,omitempty"`
	ClaimDetailsUpdated []string           `json:"claim_details_updated,omitempty"`
	Error               string             `json:"error,omitempty"`
}

type DocumentResponse struct {
	Id         string             `json:"id"`
	CaseId     string             `json:"case_id,omitempty"`
	Filename   string             `json:"filename"`
	AIStatus   string             `json:"ai_status"`
	DocType    string             `json:"doc_type,omitempty"`
	AICategory string             `json:"ai_category,omitempty"`
	AISummary  string             `json:"ai_summary,omitempty"`
	AIMetadata *docmodel.Metadata `json:"ai_metadata,omitempty"`
	AnalyzedAt time.Time          `json:"analyzed_at,omitempty"`
}

type BatchAnalyzeResponse struct {
	JobIds    []string `json:"job_ids"`
	Queued    int      `json:"queued"`
	StatusURL string   `json:"status_url"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    int    `json:"code" example:"404"`
	Error   string `json:"error" example:"Document not found"`
	Detail  string `json:"detail,omitempty" example:"Document may be a scanned image and require OCR"`
}
