// Package jobs runs the scheduled background tasks.
package jobs

import (
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler owns the cron runner. Currently the only job is the monthly
// reset of per-wallet purchase quotas.
type Scheduler struct {
	cron       *cron.Cron
	walletRepo *repository.WalletRepository
	log        *logrus.Logger
}

func NewScheduler(walletRepo *repository.WalletRepository, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		walletRepo: walletRepo,
		log:        log,
	}
}

// Start registers the jobs and launches the cron runner. Midnight on the
// first of each month every wallet's orders_used counter goes back to zero.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 1 * *", s.resetMonthlyQuotas); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) resetMonthlyQuotas() {
	n, err := s.walletRepo.ResetMonthlyUsage()
	if err != nil {
		s.log.WithError(err).Error("monthly quota reset failed")
		return
	}
	s.log.WithField("wallets", n).Info("monthly purchase quotas reset")
}
