package docmodel

import (
	"context"
	"time"
)

type AIStatus string

const (
	AIStatusPending    AIStatus = "pending"
	AIStatusProcessing AIStatus = "processing"
	AIStatusCompleted  AIStatus = "completed"
	AIStatusFailed     AIStatus = "failed"
)

// Document is one uploaded case file. The upload flow creates it in
// "pending"; only the analysis pipeline moves it forward.
type Document struct {
	Id          string `json:"id"`
	CaseId      string `json:"case_id,omitempty"`
	StoragePath string `json:"storage_path"`
	Filename    string `json:"filename"`
	Extension   string `json:"extension"`
	MimeType    string `json:"mime_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`

	AIStatus        AIStatus  `json:"ai_status"`
	AIExtractedText string    `json:"ai_extracted_text,omitempty"`
	AISummary       string    `json:"ai_summary,omitempty"`
	AIMetadata      *Metadata `json:"ai_metadata,omitempty"`
	AICategory      string    `json:"ai_category,omitempty"`
	DocType         string    `json:"doc_type,omitempty"`
	AnalyzedAt      time.Time `json:"analyzed_at,omitempty"`
}

// ClaimDetail holds the claim facts for a case. Fields already populated are
// immutable from the pipeline's perspective; extraction only fills blanks.
type ClaimDetail struct {
	CaseId                 string  `json:"case_id"`
	PolicyNumber           string  `json:"policy_number,omitempty"`
	ClaimNumber            string  `json:"claim_number,omitempty"`
	AdjusterName           string  `json:"adjuster_name,omitempty"`
	AdjusterPhone          string  `json:"adjuster_phone,omitempty"`
	AdjusterEmail          string  `json:"adjuster_email,omitempty"`
	PropertyAddress        string  `json:"property_address,omitempty"`
	DateDenied             string  `json:"date_denied,omitempty"`
	CoverageDwelling       float64 `json:"coverage_dwelling,omitempty"`
	CoverageOtherStructure float64 `json:"coverage_other_structure,omitempty"`
	CoverageContents       float64 `json:"coverage_contents,omitempty"`
	CoverageALE            float64 `json:"coverage_ale,omitempty"`
	Deductible             float64 `json:"deductible,omitempty"`
	PolicyLimits           string  `json:"policy_limits,omitempty"`
}

// Metadata is the merged extraction result stored on the document. It is
// built by pure merges: pattern output first, AI output last under the
// confidence gate.
type Metadata struct {
	DocType          string           `json:"doc_type,omitempty"`
	ExtractionMethod string           `json:"extraction_method,omitempty"` //"text-layer" or "fallback"
	Amounts          []float64        `json:"amounts,omitempty"`
	AmountStrings    []string         `json:"amount_strings,omitempty"`
	Dates            []string         `json:"dates,omitempty"`
	Parties          []string         `json:"parties,omitempty"`
	PolicyNumber     string           `json:"policy_number,omitempty"`
	ClaimNumber      string           `json:"claim_number,omitempty"`
	Insurer          string           `json:"insurer,omitempty"`
	PropertyAddress  string           `json:"property_address,omitempty"`
	Adjuster         *AdjusterContact `json:"adjuster,omitempty"`
	KeyDates         *KeyDates        `json:"key_dates,omitempty"`
	Coverage         *CoverageAmounts `json:"coverage,omitempty"`
	DenialInfo       *DenialInfo      `json:"denial_info,omitempty"`
	EstimateInfo     *EstimateInfo    `json:"estimate_info,omitempty"`

	AIPowered     bool      `json:"ai_powered,omitempty"`
	AISummary     string    `json:"ai_summary,omitempty"`
	AIKeyFindings []string  `json:"ai_key_findings,omitempty"`
	AIKeyDates    []string  `json:"ai_key_dates,omitempty"`
	AIAmounts     []float64 `json:"ai_amounts,omitempty"`

	Error string `json:"error,omitempty"`
}

type AdjusterContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type KeyDates struct {
	DateOfLoss     string `json:"date_of_loss,omitempty"`
	DenialDate     string `json:"denial_date,omitempty"`
	InspectionDate string `json:"inspection_date,omitempty"`
	PolicyPeriod   string `json:"policy_period,omitempty"`
}

type CoverageAmounts struct {
	Dwelling        float64 `json:"dwelling,omitempty"`
	OtherStructures float64 `json:"other_structures,omitempty"`
	Contents        float64 `json:"contents,omitempty"`
	LossOfUse       float64 `json:"loss_of_use,omitempty"`
	Deductible      float64 `json:"deductible,omitempty"`
}

type DenialInfo struct {
	DenialReasons   []string `json:"denial_reasons"`
	PolicyCitations []string `json:"policy_citations,omitempty"`
}

type EstimateInfo struct {
	TotalAmount    float64   `json:"total_amount"`
	Amounts        []float64 `json:"amounts,omitempty"`
	LineItemCount  int       `json:"line_item_count,omitempty"`
	ContractorName string    `json:"contractor_name,omitempty"`
}

type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (Document, bool)
	SaveDocument(ctx context.Context, doc Document) error
	DeleteDocument(ctx context.Context, id string)
}

type ClaimStore interface {
	GetClaimDetail(ctx context.Context, caseId string) (ClaimDetail, bool)
	SaveClaimDetail(ctx context.Context, claim ClaimDetail) error
}
