package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/kaamkar-app/kaamkar-lambda/internal/finance"
)

// nightlySchedule runs the budget sweep at 02:30 local time, outside peak
// traffic.
const nightlySchedule = "30 2 * * *"

// Reconciler owns the background sweep that recomputes budget spent
// aggregates, catching any drift left by interrupted writes.
type Reconciler struct {
	cron    *cron.Cron
	finance finance.FinanceService
}

func NewReconciler(financeService finance.FinanceService) *Reconciler {
	return &Reconciler{
		cron:    cron.New(),
		finance: financeService,
	}
}

func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(nightlySchedule, func() {
		logrus.Info("Running nightly budget reconciliation")
		if err := r.finance.ReconcileSpent(context.Background()); err != nil {
			logrus.WithError(err).Error("Nightly budget reconciliation failed")
			return
		}
		logrus.Info("Nightly budget reconciliation finished")
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
}
