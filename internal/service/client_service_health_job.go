package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/dravis-client/models"
)

const defaultHealthInterval = 30 * time.Second

type healthJob struct {
	healthService HealthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthJob creates a healthJob that calls healthService.Probe on a
// ticker. The job is idle until Start is called.
func NewHealthJob(healthService HealthService) HealthJob {
	return &healthJob{healthService: healthService}
}

// Start implements HealthJob. It stops any previously running job, then
// launches a background goroutine that probes every interval. If interval is
// zero or negative it defaults to 30 seconds. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *healthJob) Start(ctx context.Context, interval time.Duration, onUpdate func(models.Health)) {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				health := j.healthService.Probe(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if onUpdate != nil {
					onUpdate(health)
				}
			}
		}
	}()
}

// Stop implements HealthJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *healthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
