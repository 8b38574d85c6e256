package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger is an external service that can be probed.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// ProbeStatus is the outcome of the latest probe. CheckedAt is zero until the
// first probe completes.
type ProbeStatus struct {
	Service   string
	Healthy   bool
	CheckedAt time.Time
	Error     string
}

// GatewayProbeJob pings one service on a cron schedule.
type GatewayProbeJob struct {
	target   Pinger
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	mu     sync.RWMutex
	status ProbeStatus

	// first tracks the probe Start runs outside the schedule.
	first  sync.WaitGroup
	cancel context.CancelFunc
}

// NewGatewayProbeJob creates a probe for target. schedule accepts standard
// five-field cron expressions and descriptors such as "@every 30s".
func NewGatewayProbeJob(target Pinger, schedule string, timeout time.Duration, logger *slog.Logger) *GatewayProbeJob {
	return &GatewayProbeJob{
		target:   target,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(),
		logger:   logger.With("component", "gateway_probe_job", "service", target.Name()),
		status:   ProbeStatus{Service: target.Name()},
	}
}

// Start schedules the probe and runs a first one in the background. The
// status stays unhealthy until that first probe completes.
func (j *GatewayProbeJob) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Probe(ctx)
	})
	if err != nil {
		cancel()
		return err
	}
	j.cancel = cancel

	j.cron.Start()
	j.first.Add(1)
	go func() {
		defer j.first.Done()
		j.Probe(ctx)
	}()
	j.logger.InfoContext(ctx, "Gateway probe job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule, cancels running probes and waits for them to
// finish, including the first one.
func (j *GatewayProbeJob) Stop() {
	cronDone := j.cron.Stop().Done()
	if j.cancel != nil {
		j.cancel()
	}
	<-cronDone
	j.first.Wait()
	j.logger.InfoContext(context.Background(), "Gateway probe job stopped")
}

// Probe pings the target once and records the result.
func (j *GatewayProbeJob) Probe(ctx context.Context) ProbeStatus {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	status := ProbeStatus{Service: j.target.Name(), Healthy: true}
	if err := j.target.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
		j.logger.WarnContext(ctx, "Gateway probe failed", "error", err)
	}
	status.CheckedAt = time.Now().UTC()

	j.mu.Lock()
	previous := j.status
	j.status = status
	j.mu.Unlock()

	if status.Healthy && !previous.Healthy && !previous.CheckedAt.IsZero() {
		j.logger.InfoContext(ctx, "Gateway recovered")
	}
	return status
}

// Status returns the latest recorded probe outcome.
func (j *GatewayProbeJob) Status() ProbeStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.status
}
