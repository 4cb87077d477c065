package usecase

import (
	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/report/repository"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.ReportRepository
	scheduleUC schedule.UseCase
	emitter    activity.Emitter
	l          log.Logger
}

// New creates a new report UseCase implementation.
func New(
	repo repository.ReportRepository,
	scheduleUC schedule.UseCase,
	emitter activity.Emitter,
	l log.Logger,
) report.UseCase {
	return &implUseCase{
		repo:       repo,
		scheduleUC: scheduleUC,
		emitter:    emitter,
		l:          l,
	}
}
