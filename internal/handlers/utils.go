package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bart800/Denham-cms-sub000/internal/adapter"
	"github.com/bart800/Denham-cms-sub000/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, error))
}

func writeErrorDetailResponse(w http.ResponseWriter, httpCode int, error string, detail string) {
	writeJsonResponse(w, httpCode, adapter.BadRequestDetail(httpCode, error, detail))
}
