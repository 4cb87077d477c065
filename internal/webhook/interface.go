package webhook

import (
	"context"

	"market-intel-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch fans a research request out to every active endpoint of
	// the requested type, waits for all of them, reconciles the first
	// usable response and hands it to the report service for
	// persistence.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) (DispatchOutput, error)

	// Config management. Admin only; enforced by the route middleware
	// and re-checked here.
	ListConfigs(ctx context.Context, sc model.Scope, typeFilter string) ([]model.Webhook, error)
	CreateConfig(ctx context.Context, sc model.Scope, input ConfigInput) (model.Webhook, error)
	UpdateConfig(ctx context.Context, sc model.Scope, id string, input ConfigInput) (model.Webhook, error)
	DeleteConfig(ctx context.Context, sc model.Scope, id string) error
}
