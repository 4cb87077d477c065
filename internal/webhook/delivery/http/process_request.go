package http

import (
	"market-intel-srv/internal/model"
	"market-intel-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func scopeFrom(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processResearchRequest(c *gin.Context) (researchReq, model.Scope, error) {
	var req researchReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.processResearchRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processWebhookRequest(c *gin.Context) (webhookReq, model.Scope, error) {
	var req webhookReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.processWebhookRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processWebhookIDRequest(c *gin.Context) (string, model.Scope, error) {
	id := c.Param("webhook_id")
	if id == "" {
		return "", model.Scope{}, errWebhookIDRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, sc, nil
}
