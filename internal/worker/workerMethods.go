package worker

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	jobmodel "github.com/bart800/Denham-cms-sub000/internal/domain/jobModel"
	"github.com/bart800/Denham-cms-sub000/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, 2*time.Minute)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id, "document Id:", job.DocumentId)

	job.Status = jobmodel.JobStatusRunning

	_, err := _analysisService.AnalyzeDocument(ctx, analysis.Request{
		DocumentId: job.DocumentId,
		Force:      job.Force,
	})
	if err != nil {
		job = analysisError(job, err)
	} else {
		job.Status = jobmodel.JobStatusComplete
		job.CurrentStep = jobmodel.Complete
	}

	job.EndTime = time.Now()
	logger.Debug("Job finished", "job Id:", job.Id, "status", job.Status)
}

func analysisError(job jobmodel.Job, err error) jobmodel.Job {
	logger.Error("Analysis job failed", "job Id:", job.Id, "error", err)

	code := http.StatusInternalServerError
	retry := true
	switch {
	case errors.Is(err, analysis.ErrDocumentNotFound):
		code = http.StatusNotFound
		retry = false
	case errors.Is(err, analysis.ErrNoExtractableContent):
		code = http.StatusUnprocessableEntity
		retry = false
	case errors.Is(err, analysis.ErrAlreadyProcessing):
		code = http.StatusConflict
	case errors.Is(err, analysis.ErrAlreadyAnalyzed):
		code = http.StatusConflict
		retry = false
	}

	job.Status = jobmodel.JobStatusError
	job.CurrentStep = jobmodel.Error
	job.Error = jobmodel.JobError{
		Code:    code,
		Message: err.Error(),
		Retry:   retry,
	}
	return job
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}
