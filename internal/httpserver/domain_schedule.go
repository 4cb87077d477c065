package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
	scheduleHTTP "market-intel-srv/internal/schedule/delivery/http"
	schedulePostgre "market-intel-srv/internal/schedule/repository/postgre"
	scheduleUsecase "market-intel-srv/internal/schedule/usecase"
)

func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := schedulePostgre.New(srv.db, srv.l)

	srv.scheduleUC = scheduleUsecase.New(repo, srv.emitter, srv.l)

	handler := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
