// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/dravis-client/internal/mock"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingWorker appends its id to a shared log on Start and Stop.
type recordingWorker struct {
	id  int
	log *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start", string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop", string(rune('0'+r.id)))
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"start", "1", "start", "2", "start", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	var log []string
	ws := NewWorkers(nil, &recordingWorker{id: 1, log: &log}, nil)

	assert.Len(t, ws.workers, 1)
}

func TestHealthWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockHealthJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 15*time.Second, gomock.Any()).Do(
			func(_ context.Context, _ time.Duration, onUpdate func(models.Health)) {
				onUpdate(models.Health{Status: models.HealthOffline})
			}),
		job.EXPECT().Stop(),
	)

	var got models.Health
	w := NewHealthWorker(job, 15*time.Second, func(h models.Health) { got = h })
	w.Start(ctx)
	w.Stop()

	assert.Equal(t, models.HealthOffline, got.Status)
}
