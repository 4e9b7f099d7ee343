package handlers

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bart800/Denham-cms-sub000/internal/adapter/utils"
	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/internal/domain/jobModel"
	"github.com/bart800/Denham-cms-sub000/internal/job"
	"github.com/bart800/Denham-cms-sub000/internal/metrics"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

var (
	handlerInstance *AnalysisHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
	logRH           *logger_i.Logger
)

type AnalysisHandler struct {
	jobService      *job.Service
	analysisService analysis.Service
	documents       docmodel.DocumentStore
}

func InitHandlers(jobService *job.Service, analysisService analysis.Service, documents docmodel.DocumentStore) {
	once.Do(func() {
		handlerInstance = &AnalysisHandler{
			jobService:      jobService,
			analysisService: analysisService,
			documents:       documents,
		}

		logJH = logger_i.NewLogger("BatchHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting analysis handlers")
	})
}

// queueAnalysisJob pushes one document onto the batch channel. Blocking send:
// back-pressure on the producer beats an unbounded queue.
func (h *AnalysisHandler) queueAnalysisJob(documentId string, traceId string, force bool) string {
	_job := jobModel.Job{
		Id:          utils.GetNewUUID(),
		DocumentId:  documentId,
		TraceId:     traceId,
		Force:       force,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusQueued,
		CurrentStep: jobModel.AnalyzeInit,
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.jobService.JobChannel <- _job
	logJH.Debug("Queued analysis job", "jobId", _job.Id, "documentId", documentId)

	//we will start a new worker every N requests
	//worker will be removed if it has idle time, so most of the time only the
	//minimum pool is running
	accurateCount := atomic.AddInt64(&h.jobService.RequestCount, 1)
	if accurateCount%config.RequestsPerNewWorkerCount == 0 {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.jobService.DispatcherChannel <- true
	}
	return _job.Id
}
