package usecase

import (
	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/webhook"
	"market-intel-srv/internal/webhook/repository"
	pkgHTTP "market-intel-srv/pkg/http"
	"market-intel-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.WebhookRepository
	cache      repository.CacheRepository
	client     pkgHTTP.IClient
	reportUC   report.UseCase
	scheduleUC schedule.UseCase
	emitter    activity.Emitter
	l          log.Logger
}

// New creates a new webhook UseCase implementation.
func New(
	repo repository.WebhookRepository,
	cache repository.CacheRepository,
	client pkgHTTP.IClient,
	reportUC report.UseCase,
	scheduleUC schedule.UseCase,
	emitter activity.Emitter,
	l log.Logger,
) webhook.UseCase {
	return &implUseCase{
		repo:       repo,
		cache:      cache,
		client:     client,
		reportUC:   reportUC,
		scheduleUC: scheduleUC,
		emitter:    emitter,
		l:          l,
	}
}
