package httpserver

import (
	"context"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(
		srv.l,
		srv.jwtManager,
		srv.config.Cookie,
		srv.config.InternalConfig.InternalKey,
		srv.config.AccessControl.AdminEmails,
	)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Activity events flow to Kafka; without a producer they are dropped.
	if srv.producer != nil {
		srv.emitter = activity.NewKafkaEmitter(srv.producer, srv.l)
	} else {
		srv.l.Warnf(ctx, "Kafka producer not configured, activity events disabled")
		srv.emitter = activity.NewNoop()
	}

	root := srv.gin.Group("")

	// Schedule first, report and webhook build on top of it.
	if err := srv.setupScheduleDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupReportDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupWebhookDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(srv.config.HTTPServer.AllowOrigins))

	ctx := context.Background()
	if len(srv.config.HTTPServer.AllowOrigins) > 0 {
		srv.l.Infof(ctx, "CORS mode: restricted to %d origins", len(srv.config.HTTPServer.AllowOrigins))
	} else {
		srv.l.Infof(ctx, "CORS mode: permissive (all origins allowed)")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
