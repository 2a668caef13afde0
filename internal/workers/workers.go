package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/dravis-client/internal/service"
	"github.com/MKhiriev/dravis-client/models"
)

// Workers runs a fixed set of workers.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate of ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	out := &Workers{}
	for _, w := range ws {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type healthWorker struct {
	job      service.HealthJob
	interval time.Duration
	onUpdate func(models.Health)
}

// NewHealthWorker returns a [Worker] that re-probes the backend every interval
// and passes each result to onUpdate.
func NewHealthWorker(job service.HealthJob, interval time.Duration, onUpdate func(models.Health)) Worker {
	return &healthWorker{job: job, interval: interval, onUpdate: onUpdate}
}

func (h *healthWorker) Start(ctx context.Context) {
	h.job.Start(ctx, h.interval, h.onUpdate)
}

func (h *healthWorker) Stop() {
	h.job.Stop()
}
