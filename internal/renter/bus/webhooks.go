package bus

import "context"

// Webhook modules and events the daemon can notify about.
const (
	WebhookModuleAlerts = "alerts"

	WebhookEventRegister = "register"
	WebhookEventDismiss  = "dismiss"
)

// Webhook subscribes a URL to events of one module. An empty Event matches
// every event of the module. Headers, when set, are attached to each
// delivery.
type Webhook struct {
	Module  string            `json:"module"`
	Event   string            `json:"event"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// WebhookQueue reports the undelivered events backed up for one URL.
type WebhookQueue struct {
	URL  string `json:"url"`
	Size uint64 `json:"size"`
}

// WebhookAction is an event broadcast to all matching webhooks.
type WebhookAction struct {
	Module  string   `json:"module"`
	Event   string   `json:"event"`
	Payload []string `json:"payload,omitempty"`
}

// Webhooks returns the registered webhooks and their delivery queues. Nil
// lists from the daemon come back as empty slices.
func (c *Client) Webhooks(ctx context.Context) ([]Webhook, []WebhookQueue, error) {
	var out struct {
		Webhooks []Webhook      `json:"webhooks"`
		Queues   []WebhookQueue `json:"queues"`
	}
	if err := c.api.Get(ctx, "/bus/webhooks", nil, &out); err != nil {
		return nil, nil, err
	}
	if out.Webhooks == nil {
		out.Webhooks = []Webhook{}
	}
	if out.Queues == nil {
		out.Queues = []WebhookQueue{}
	}
	return out.Webhooks, out.Queues, nil
}

// RegisterWebhook registers webhook with the daemon.
func (c *Client) RegisterWebhook(ctx context.Context, webhook Webhook) error {
	return c.api.Post(ctx, "/bus/webhooks", nil, &webhook, nil)
}

// DeleteWebhook removes the webhook matching module, event and URL.
func (c *Client) DeleteWebhook(ctx context.Context, webhook Webhook) error {
	return c.api.Post(ctx, "/bus/webhook/delete", nil, &webhook, nil)
}

// BroadcastAction hands an event to the daemon for delivery to all
// matching webhooks.
func (c *Client) BroadcastAction(ctx context.Context, action WebhookAction) error {
	return c.api.Post(ctx, "/bus/webhooks/action", nil, &action, nil)
}
