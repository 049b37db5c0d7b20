package scheduler

import (
	"context"
	"time"

	"atlas-marina/reservation"
	"atlas-marina/retry"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OverdueSweepScheduler periodically flags reservations whose date has
// passed without check-in
type OverdueSweepScheduler struct {
	log      logrus.FieldLogger
	ctx      context.Context
	db       *gorm.DB
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewOverdueSweepScheduler creates a new overdue sweep scheduler
func NewOverdueSweepScheduler(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) *OverdueSweepScheduler {
	return &OverdueSweepScheduler{
		log:      log.WithField("component", "overdue-sweep-scheduler"),
		ctx:      ctx,
		db:       db,
		interval: 30 * time.Minute,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithInterval sets the sweep interval
func (s *OverdueSweepScheduler) WithInterval(interval time.Duration) *OverdueSweepScheduler {
	s.interval = interval
	return s
}

// Start begins the background overdue sweeping
func (s *OverdueSweepScheduler) Start() {
	s.log.WithField("interval", s.interval).Info("Starting overdue sweep scheduler")

	go s.run()
}

// Stop gracefully stops the scheduler
func (s *OverdueSweepScheduler) Stop() {
	s.log.Info("Stopping overdue sweep scheduler")
	close(s.stop)
	<-s.done
	s.log.Info("Overdue sweep scheduler stopped")
}

// run is the main loop for the scheduler
func (s *OverdueSweepScheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Sweep immediately on start
	s.processOverdueReservations()

	for {
		select {
		case <-ticker.C:
			s.processOverdueReservations()
		case <-s.stop:
			return
		case <-s.ctx.Done():
			s.log.Info("Context cancelled, stopping overdue sweep scheduler")
			return
		}
	}
}

// processOverdueReservations sweeps overdue reservations for all tenants
func (s *OverdueSweepScheduler) processOverdueReservations() {
	s.log.Debug("Sweeping overdue reservations for all tenants")

	tenantIds, err := s.getTenantsWithActiveReservations()
	if err != nil {
		s.log.WithError(err).Error("Failed to get tenants with active reservations")
		return
	}

	if len(tenantIds) == 0 {
		s.log.Debug("No tenants with active reservations found")
		return
	}

	s.log.WithField("tenantCount", len(tenantIds)).Debug("Sweeping overdue reservations for tenants")

	for _, tenantId := range tenantIds {
		s.processOverdueReservationsForTenant(tenantId)
	}
}

// getTenantsWithActiveReservations retrieves all tenant IDs that hold a
// non-terminal reservation
func (s *OverdueSweepScheduler) getTenantsWithActiveReservations() ([]uuid.UUID, error) {
	var tenantIds []uuid.UUID

	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithField("operation", "get-tenants-with-active-reservations")).
		WithContext(s.ctx).
		WithMaxRetries(2).
		WithInitialDelay(500 * time.Millisecond)

	err := retry.ExecuteWithRetry(retryConfig, func() error {
		found, err := reservation.GetTenantsWithActiveReservationsProvider(s.db, s.log)()
		if err != nil {
			return err
		}
		tenantIds = found
		return nil
	})

	return tenantIds, err
}

// processOverdueReservationsForTenant sweeps overdue reservations for a specific tenant
func (s *OverdueSweepScheduler) processOverdueReservationsForTenant(tenantId uuid.UUID) {
	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithFields(logrus.Fields{
			"operation": "process-overdue-reservations",
			"tenantId":  tenantId,
		})).
		WithContext(s.ctx).
		WithMaxRetries(3).
		WithInitialDelay(1 * time.Second).
		WithMaxDelay(10 * time.Second)

	err := retry.ExecuteWithRetry(retryConfig, func() error {
		tenantModel, err := tenant.Create(tenantId, "background-scheduler", 1, 0)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"tenantId": tenantId,
				"error":    err,
			}).Error("Failed to create tenant model")
			return err
		}

		tenantCtx := tenant.WithContext(s.ctx, tenantModel)

		processor := reservation.NewProcessor(s.log, tenantCtx, s.db)

		flagged, err := processor.ProcessOverdueReservations()
		if err != nil {
			return err
		}

		if flagged > 0 {
			s.log.WithFields(logrus.Fields{
				"tenantId": tenantId,
				"flagged":  flagged,
			}).Info("Flagged overdue reservations")
		}

		return nil
	})

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"tenantId": tenantId,
			"error":    err,
		}).Error("Failed to sweep overdue reservations for tenant after retries")
		return
	}

	s.log.WithField("tenantId", tenantId).Debug("Successfully swept overdue reservations for tenant")
}
