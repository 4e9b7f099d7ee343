package adapter

import (
	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/api"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

func ToAnalyzeResponse(outcome *analysis.Outcome) api.AnalyzeResponse {
	metaCopy := outcome.Metadata
	res := api.AnalyzeResponse{
		Success:             outcome.PersistenceErr == nil,
		DocumentId:          outcome.DocumentId,
		DocType:             outcome.DocType,
		AICategory:          outcome.AICategory,
		Summary:             outcome.Summary,
		Metadata:            &metaCopy,
		ClaimDetailsUpdated: outcome.ClaimDetailsUpdated,
	}
	if outcome.PersistenceErr != nil {
		res.Error = "Analysis complete but results could not be saved"
	}
	return res
}

func ToDocumentResponse(doc docmodel.Document) api.DocumentResponse {
	return api.DocumentResponse{
		Id:         doc.Id,
		CaseId:     doc.CaseId,
		Filename:   doc.Filename,
		AIStatus:   string(doc.AIStatus),
		DocType:    doc.DocType,
		AICategory: doc.AICategory,
		AISummary:  doc.AISummary,
		AIMetadata: doc.AIMetadata,
		AnalyzedAt: doc.AnalyzedAt,
	}
}

func BadRequest(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Success: false,
		Code:    code,
		Error:   message,
	}
}

func BadRequestDetail(code int, message string, detail string) api.ErrorResponse {
	res := BadRequest(code, message)
	res.Detail = detail
	return res
}
