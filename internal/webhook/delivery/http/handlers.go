package http

import (
	"market-intel-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a research request
// @Description Fan the request out to the configured automation webhooks, wait for all of them and persist the first usable report
// @Tags Research
// @Accept json
// @Produce json
// @Param body body researchReq true "Research request"
// @Success 200 {object} researchResp
// @Failure 400 {object} response.ErrResp
// @Failure 401 {object} response.ErrResp
// @Failure 422 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Failure 502 {object} response.ErrResp
// @Router /api/v1/research [post]
func (h *handler) Research(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processResearchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Dispatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.Research: usecase Dispatch failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResearchResp(o))
}

// @Summary List webhook configs
// @Description Return registered webhook endpoints, optionally filtered by type. Admin only.
// @Tags Webhook
// @Produce json
// @Param type query string false "on-demand or recurring"
// @Success 200 {object} listWebhooksResp
// @Failure 401 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Router /api/v1/webhooks [get]
func (h *handler) ListWebhooks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scopeFrom(c)

	whs, err := h.uc.ListConfigs(ctx, sc, c.Query("type"))
	if err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.ListWebhooks: usecase ListConfigs failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListWebhooksResp(whs))
}

// @Summary Register a webhook
// @Description Create a webhook endpoint config. Admin only.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param body body webhookReq true "Webhook config"
// @Success 200 {object} mutateWebhookResp
// @Failure 400 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Router /api/v1/webhooks [post]
func (h *handler) CreateWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWebhookRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	wh, err := h.uc.CreateConfig(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.CreateWebhook: usecase CreateConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, mutateWebhookResp{Success: true, Webhook: h.newWebhookResp(wh)})
}

// @Summary Update a webhook
// @Description Partial update of a webhook endpoint config. Admin only.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param webhook_id path string true "Webhook ID"
// @Param body body webhookReq true "Fields to update"
// @Success 200 {object} mutateWebhookResp
// @Failure 400 {object} response.ErrResp
// @Failure 403 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Router /api/v1/webhooks/{webhook_id} [put]
func (h *handler) UpdateWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processWebhookIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	req, _, err := h.processWebhookRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	wh, err := h.uc.UpdateConfig(ctx, sc, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.UpdateWebhook: usecase UpdateConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, mutateWebhookResp{Success: true, Webhook: h.newWebhookResp(wh)})
}

// @Summary Delete a webhook
// @Description Remove a webhook endpoint config. Admin only.
// @Tags Webhook
// @Produce json
// @Param webhook_id path string true "Webhook ID"
// @Success 200 {object} deleteWebhookResp
// @Failure 403 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Router /api/v1/webhooks/{webhook_id} [delete]
func (h *handler) DeleteWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processWebhookIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeleteConfig(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "webhook.delivery.http.DeleteWebhook: usecase DeleteConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, deleteWebhookResp{Success: true, Message: "Webhook deleted"})
}
