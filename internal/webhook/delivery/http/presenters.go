package http

import (
	"time"

	"market-intel-srv/internal/model"
	"market-intel-srv/internal/webhook"
)

type researchReq struct {
	ResearchType string `json:"research_type" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
	SubNiche     string `json:"sub_niche" binding:"required"`
	Geography    string `json:"geography,omitempty"`
	Email        string `json:"email,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
}

func (r researchReq) toInput() webhook.DispatchInput {
	return webhook.DispatchInput{
		ResearchType: r.ResearchType,
		Industry:     r.Industry,
		SubNiche:     r.SubNiche,
		Geography:    r.Geography,
		Email:        r.Email,
		Notes:        r.Notes,
		Frequency:    r.Frequency,
	}
}

type webhookReq struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Active      *bool  `json:"active,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r webhookReq) toInput() webhook.ConfigInput {
	return webhook.ConfigInput{
		Name:        r.Name,
		URL:         r.URL,
		Type:        r.Type,
		Active:      r.Active,
		Description: r.Description,
	}
}

type researchResp struct {
	Success     bool   `json:"success"`
	ExecutionID string `json:"execution_id"`
	ScheduleID  string `json:"schedule_id,omitempty"`
	WebhookName string `json:"webhook_name"`
	Report      string `json:"report"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
}

type webhookResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Active      bool   `json:"active"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type listWebhooksResp struct {
	Success  bool          `json:"success"`
	Total    int           `json:"total"`
	Webhooks []webhookResp `json:"webhooks"`
}

type mutateWebhookResp struct {
	Success bool        `json:"success"`
	Webhook webhookResp `json:"webhook"`
}

type deleteWebhookResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newResearchResp(o webhook.DispatchOutput) researchResp {
	return researchResp{
		Success:     true,
		ExecutionID: o.ExecutionID,
		ScheduleID:  o.ScheduleID,
		WebhookName: o.WebhookName,
		Report:      o.Report,
		Message:     o.Message,
		Timestamp:   o.Timestamp.Format(time.RFC3339),
	}
}

func (h *handler) newWebhookResp(w model.Webhook) webhookResp {
	return webhookResp{
		ID:          w.ID,
		Name:        w.Name,
		URL:         w.URL,
		Type:        w.Type,
		Active:      w.Active,
		Description: w.Description,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListWebhooksResp(whs []model.Webhook) listWebhooksResp {
	items := make([]webhookResp, 0, len(whs))
	for _, w := range whs {
		items = append(items, h.newWebhookResp(w))
	}
	return listWebhooksResp{
		Success:  true,
		Total:    len(items),
		Webhooks: items,
	}
}
