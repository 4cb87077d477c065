package usecase

import (
	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/schedule/repository"
	"market-intel-srv/pkg/log"
)

type implUseCase struct {
	repo    repository.ScheduleRepository
	emitter activity.Emitter
	l       log.Logger
}

// New creates a new schedule UseCase implementation.
func New(repo repository.ScheduleRepository, emitter activity.Emitter, l log.Logger) schedule.UseCase {
	return &implUseCase{
		repo:    repo,
		emitter: emitter,
		l:       l,
	}
}
