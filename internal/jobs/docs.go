// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// GatewayProbeJob - pings one external service (Orders, Identity) on a schedule
// and records whether it answered. The readiness endpoint reports the recorded
// statuses.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager("@every 30s", 5*time.Second, logger, ordersClient, identityClient)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
//	ready := jobManager.Ready()
//
// # Error Handling
//
// A failed probe is logged and recorded; the next attempt happens on the next
// scheduled run. Failed job starts stop any already running jobs.
package jobs
