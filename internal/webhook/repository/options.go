package repository

type CreateWebhookOptions struct {
	ID          string
	Name        string
	URL         string
	Type        string
	Active      bool
	Description string
}

type ListWebhooksOptions struct {
	// Type narrows the listing when non-empty.
	Type string
}

type UpdateWebhookOptions struct {
	ID          string
	Name        *string
	URL         *string
	Type        *string
	Active      *bool
	Description *string
}
