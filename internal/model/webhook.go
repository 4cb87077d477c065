package model

import "time"

const (
	WebhookTypeOnDemand  = "on-demand"
	WebhookTypeRecurring = "recurring"
)

// Webhook is a registered dispatch endpoint. Only rows with Active=true
// and a matching Type are considered by the dispatcher.
type Webhook struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	URL         string    `gorm:"column:url"`
	Type        string    `gorm:"column:type;index"`
	Active      bool      `gorm:"column:active"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Webhook) TableName() string {
	return "webhooks"
}

// IsValidWebhookType reports whether t is a known webhook type.
func IsValidWebhookType(t string) bool {
	return t == WebhookTypeOnDemand || t == WebhookTypeRecurring
}
