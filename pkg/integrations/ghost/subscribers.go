package ghostintegration

import (
	"context"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

type CreateSubscriberParams struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type DeleteSubscriberParams struct {
	Email string `json:"email"`
}

// CreateSubscriber adds a subscriber on pre-3.0 sites. Ghost 3.0 removed the
// subscriber routes, so the gate refuses the call with a halting message
// instead of letting the 404 surface as a retryable failure.
func (i *GhostIntegration) CreateSubscriber(ctx context.Context, params domain.IntegrationInput, item domain.Item) (domain.Item, error) {
	p := CreateSubscriberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	if _, err := i.gate.CheckCapability(ctx, CapabilitySubscribers); err != nil {
		return nil, err
	}

	payload := map[string]any{"email": p.Email}
	if p.Name != "" {
		payload["name"] = p.Name
	}
	if p.Status != "" {
		payload["status"] = p.Status
	}

	return i.v2Client.AddSubscriber(ctx, payload)
}

// DeleteSubscriber removes a subscriber by email. Ghost 3.0 removed every
// subscriber route, so the gate refuses the call before it is sent. The
// delete endpoint returns no body, so the bound input is echoed back to keep
// the action's output non-empty.
func (i *GhostIntegration) DeleteSubscriber(ctx context.Context, params domain.IntegrationInput, item domain.Item) (domain.Item, error) {
	p := DeleteSubscriberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	if _, err := i.gate.CheckCapability(ctx, CapabilitySubscribers); err != nil {
		return nil, err
	}

	if err := i.v2Client.DeleteSubscriberByEmail(ctx, p.Email); err != nil {
		return nil, err
	}

	return map[string]any{"email": p.Email}, nil
}
