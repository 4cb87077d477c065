package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"market-intel-srv/internal/middleware"
	reportHTTP "market-intel-srv/internal/report/delivery/http"
	reportPostgre "market-intel-srv/internal/report/repository/postgre"
	reportUsecase "market-intel-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.db, srv.l)

	srv.reportUC = reportUsecase.New(repo, srv.scheduleUC, srv.emitter, srv.l)

	handler := reportHTTP.New(srv.l, srv.reportUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
