package tui

import (
	"github.com/MKhiriev/dravis-client/internal/orchestrator"
	"github.com/MKhiriev/dravis-client/models"
)

type startedMsg struct {
	notice models.Notice
}

type intentDoneMsg struct {
	intent orchestrator.Intent
	result orchestrator.Result
	err    error
}

type healthUpdatedMsg struct {
	health models.Health
}

type clearNoticeMsg struct {
	notice models.Notice
}
