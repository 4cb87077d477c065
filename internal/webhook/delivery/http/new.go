package http

import (
	"market-intel-srv/internal/middleware"
	"market-intel-srv/internal/webhook"
	"market-intel-srv/pkg/discord"
	"market-intel-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      webhook.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc webhook.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
