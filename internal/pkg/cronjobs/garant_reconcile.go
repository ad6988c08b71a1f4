package cronjobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"dispatch/pkg/logger"
)

type GarantService interface {
	Reconcile(ctx context.Context) error
}

// GarantReconcileJob запускает сверку гаранта по cron-расписанию
// (обычно сразу после часа закрытия смены).
type GarantReconcileJob struct {
	service GarantService
	cron    *cron.Cron
	log     logger.Logger
	spec    string
}

func NewGarantReconcileJob(service GarantService, log logger.Logger, spec string) *GarantReconcileJob {
	return &GarantReconcileJob{
		service: service,
		cron:    cron.New(),
		log:     log.With(),
		spec:    spec,
	}
}

func (j *GarantReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.service.Reconcile(ctx); err != nil {
			j.log.With(
				logger.NewField("error", err),
			).Error("garant reconcile job failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.With(logger.NewField("spec", j.spec)).Info("garant reconcile job started")
	return nil
}

func (j *GarantReconcileJob) Stop() {
	j.cron.Stop()
	j.log.Info("garant reconcile job stopped")
}
