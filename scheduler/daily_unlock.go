package scheduler

import (
	"context"
	"time"

	"atlas-marina/calendar"
	"atlas-marina/reservation"
	"atlas-marina/retry"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DailyUnlockScheduler announces the opening of same-day booking once the
// configured cutoff passes each day
type DailyUnlockScheduler struct {
	log         logrus.FieldLogger
	ctx         context.Context
	db          *gorm.DB
	interval    time.Duration
	announcedOn calendar.Date
	stop        chan struct{}
	done        chan struct{}
}

// NewDailyUnlockScheduler creates a new daily unlock scheduler
func NewDailyUnlockScheduler(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) *DailyUnlockScheduler {
	return &DailyUnlockScheduler{
		log:      log.WithField("component", "daily-unlock-scheduler"),
		ctx:      ctx,
		db:       db,
		interval: 1 * time.Minute,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithInterval sets the check interval
func (s *DailyUnlockScheduler) WithInterval(interval time.Duration) *DailyUnlockScheduler {
	s.interval = interval
	return s
}

// Start begins the background unlock checking
func (s *DailyUnlockScheduler) Start() {
	s.log.WithField("interval", s.interval).Info("Starting daily unlock scheduler")

	go s.run()
}

// Stop gracefully stops the scheduler
func (s *DailyUnlockScheduler) Stop() {
	s.log.Info("Stopping daily unlock scheduler")
	close(s.stop)
	<-s.done
	s.log.Info("Daily unlock scheduler stopped")
}

// run is the main loop for the scheduler
func (s *DailyUnlockScheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.checkUnlock(time.Now())

	for {
		select {
		case <-ticker.C:
			s.checkUnlock(time.Now())
		case <-s.stop:
			return
		case <-s.ctx.Done():
			s.log.Info("Context cancelled, stopping daily unlock scheduler")
			return
		}
	}
}

// checkUnlock announces the unlock once per day after the cutoff passes
func (s *DailyUnlockScheduler) checkUnlock(now time.Time) {
	if !calendar.Unlocked(now) {
		return
	}

	today := calendar.Today(now)
	if s.announcedOn == today {
		return
	}

	tenantIds, err := s.getTenants()
	if err != nil {
		s.log.WithError(err).Error("Failed to get tenants for unlock announcement")
		return
	}

	for _, tenantId := range tenantIds {
		s.announceForTenant(tenantId, today)
	}

	s.announcedOn = today
	s.log.WithField("date", today).Info("Daily unlock announced")
}

// getTenants retrieves the tenant IDs holding active reservations
func (s *DailyUnlockScheduler) getTenants() ([]uuid.UUID, error) {
	var tenantIds []uuid.UUID

	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithField("operation", "get-tenants-for-unlock")).
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

// announceForTenant emits the unlock event for a specific tenant
func (s *DailyUnlockScheduler) announceForTenant(tenantId uuid.UUID, date calendar.Date) {
	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithFields(logrus.Fields{
			"operation": "announce-daily-unlock",
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

		return processor.AnnounceDayUnlocked(date)
	})

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"tenantId": tenantId,
			"error":    err,
		}).Error("Failed to announce daily unlock for tenant after retries")
		return
	}

	s.log.WithField("tenantId", tenantId).Debug("Daily unlock announced for tenant")
}
