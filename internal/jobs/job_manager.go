package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	probes []*GatewayProbeJob
}

// NewJobManager creates one probe job per target, all on the same schedule.
func NewJobManager(schedule string, timeout time.Duration, logger *slog.Logger, targets ...Pinger) *JobManager {
	probes := make([]*GatewayProbeJob, 0, len(targets))
	for _, t := range targets {
		probes = append(probes, NewGatewayProbeJob(t, schedule, timeout, logger))
	}
	return &JobManager{probes: probes}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, p := range jm.probes {
		if err := p.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.probes[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start %s probe job: %w", p.target.Name(), err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, p := range jm.probes {
		p.Stop()
	}
}

// Statuses returns the latest outcome of every probe in target order.
func (jm *JobManager) Statuses() []ProbeStatus {
	statuses := make([]ProbeStatus, 0, len(jm.probes))
	for _, p := range jm.probes {
		statuses = append(statuses, p.Status())
	}
	return statuses
}

// Ready reports whether every probed service answered its latest probe.
func (jm *JobManager) Ready() bool {
	for _, p := range jm.probes {
		if !p.Status().Healthy {
			return false
		}
	}
	return true
}
