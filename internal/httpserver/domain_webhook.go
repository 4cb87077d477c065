package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
	webhookHTTP "market-intel-srv/internal/webhook/delivery/http"
	webhookPostgre "market-intel-srv/internal/webhook/repository/postgre"
	webhookRedis "market-intel-srv/internal/webhook/repository/redis"
	webhookUsecase "market-intel-srv/internal/webhook/usecase"
	pkgHTTP "market-intel-srv/pkg/http"
)

func (srv *HTTPServer) setupWebhookDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := webhookPostgre.New(srv.db, srv.l)
	cache := webhookRedis.New(srv.redisClient, srv.l)

	// Research webhooks run long, the per-endpoint timeout comes from config.
	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   time.Duration(srv.config.Webhook.Timeout) * time.Second,
		Retries:   srv.config.Webhook.Retries,
		RetryWait: time.Second,
	})

	uc := webhookUsecase.New(repo, cache, client, srv.reportUC, srv.scheduleUC, srv.emitter, srv.l)

	handler := webhookHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Webhook domain registered")
	return nil
}
