package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bart800/Denham-cms-sub000/internal/adapter"
	"github.com/bart800/Denham-cms-sub000/internal/adapter/utils"
	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/api"
	"github.com/bart800/Denham-cms-sub000/internal/config"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// AnalyzeDocumentHandler godoc
// @Summary      Analyze a document
// @Description  Runs the full analysis pipeline (extraction, classification, summary, AI augmentation, persistence) on a stored document, a storage path, or inline text.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.AnalyzeRequest   true  "Document id, storage path or inline text"
// @Success      200      {object}  api.AnalyzeResponse  "Analysis complete"
// @Failure      400      {object}  api.ErrorResponse    "No text source in request"
// @Failure      404      {object}  api.ErrorResponse    "Document not found"
// @Failure      409      {object}  api.ErrorResponse    "Document already processing or analyzed without force"
// @Failure      422      {object}  api.ErrorResponse    "No text content to analyze"
// @Failure      500      {object}  api.AnalyzeResponse  "Analysis ran but persistence failed; results included"
// @Router       /documents/analyze [post]
func AnalyzeDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.AnalyzeRequest
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logRH.Error("Couldn't close the Analyze handler reader :", err)
		}
	}(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !validateAnalyzeRequest(requestData) {
		logRH.Warn("Bad Analyze Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Provide document_id, storage_path or text")
		return
	}

	outcome, err := handlerInstance.analysisService.AnalyzeDocument(request.Context(), analysis.Request{
		DocumentId:  requestData.DocumentId,
		StoragePath: requestData.StoragePath,
		Text:        requestData.Text,
		Force:       requestData.Force,
	})
	if err != nil {
		writeAnalyzeError(w, requestData.DocumentId, err)
		return
	}

	status := http.StatusOK
	if outcome.PersistenceErr != nil {
		// analysis results are still in the body; only the save failed
		status = http.StatusInternalServerError
	}
	writeJsonResponse(w, status, adapter.ToAnalyzeResponse(outcome))
}

// GetDocumentHandler godoc
// @Summary      Get a document
// @Description  Retrieves a stored document with its analysis state and metadata.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.DocumentResponse  "The stored document"
// @Failure      404  {object}  api.ErrorResponse     "Document not found"
// @Router       /documents/{id} [get]
func GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	idString := utils.GetChiURLParam(r, "id")
	logRH.Debug("Get Document Request:", "URL path", r.URL.Path)

	doc, isFound := handlerInstance.documents.GetDocument(r.Context(), idString)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponse(doc))
}

// BatchAnalyzeHandler godoc
// @Summary      Queue documents for analysis
// @Description  Accepts a list of document ids and queues a background analysis job per document.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.BatchAnalyzeRequest   true  "Document ids to analyze"
// @Success      202      {object}  api.BatchAnalyzeResponse  "Jobs queued"
// @Failure      400      {object}  api.ErrorResponse         "Empty document list"
// @Router       /documents/batch [post]
func BatchAnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.BatchAnalyzeRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || len(requestData.DocumentIds) == 0 {
		logRH.Warn("Bad Batch Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "document_ids is required")
		return
	}

	traceId := r.Context().Value(config.TRACE_ID_KEY).(string)
	jobIds := make([]string, 0, len(requestData.DocumentIds))
	for _, docId := range requestData.DocumentIds {
		jobIds = append(jobIds, handlerInstance.queueAnalysisJob(docId, traceId, requestData.Force))
	}

	writeJsonResponse(w, http.StatusAccepted, api.BatchAnalyzeResponse{
		JobIds:    jobIds,
		Queued:    len(jobIds),
		StatusURL: "documents/{id}",
	})
}

func validateAnalyzeRequest(req api.AnalyzeRequest) bool {
	if handlerInstance == nil {
		return false
	}
	return req.DocumentId != "" || req.StoragePath != "" || req.Text != ""
}

func writeAnalyzeError(w http.ResponseWriter, documentId string, err error) {
	switch {
	case errors.Is(err, analysis.ErrDocumentNotFound):
		WriteErrorResponse(w, http.StatusNotFound, "Document not found")
	case errors.Is(err, analysis.ErrNoExtractableContent):
		writeErrorDetailResponse(w, http.StatusUnprocessableEntity, "No text content to analyze",
			"Document may be a scanned image and require OCR")
	case errors.Is(err, analysis.ErrAlreadyProcessing):
		WriteErrorResponse(w, http.StatusConflict, "Document analysis already in progress")
	case errors.Is(err, analysis.ErrAlreadyAnalyzed):
		WriteErrorResponse(w, http.StatusConflict, "Document already analyzed, re-run with force")
	default:
		logRH.Error("Analyze failed", "documentId", documentId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
