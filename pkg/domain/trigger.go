package domain

import "context"

// TriggerSubscription is the remote system's record of a registered webhook.
// The platform stores only the ID so the hook can be torn down when the
// trigger is deactivated; the remote system stays authoritative for the rest.
type TriggerSubscription struct {
	ID        string `json:"id"`
	TargetURL string `json:"target_url"`
	Event     string `json:"event"`
}

type SubscribeTriggerParams struct {
	EventType    IntegrationTriggerEventType
	TargetURL    string
	CredentialID string
}

type UnsubscribeTriggerParams struct {
	EventType    IntegrationTriggerEventType
	Subscription TriggerSubscription
	CredentialID string
}

// TriggerEventParams carries one webhook delivery: the pre-parsed JSON body
// plus the raw query string of the callback URL.
type TriggerEventParams struct {
	EventType IntegrationTriggerEventType
	Payload   map[string]any
	RawQuery  string
}

type ListTriggerItemsParams struct {
	EventType    IntegrationTriggerEventType
	CredentialID string

	// IsFillingDropdown distinguishes "populate a dynamic selection list"
	// (fetch the whole collection ordered by name) from "fetch test data for
	// this trigger" (most recent record only).
	IsFillingDropdown bool
}

// IntegrationTriggerLifecycle is the resthook bridge contract: register a
// remote webhook on activation, remove it on deactivation, reshape each
// delivery into the array-of-records result the platform expects, and provide
// a polling fallback so users can preview trigger output before any real
// event has fired.
type IntegrationTriggerLifecycle interface {
	SubscribeTrigger(ctx context.Context, params SubscribeTriggerParams) (TriggerSubscription, error)
	UnsubscribeTrigger(ctx context.Context, params UnsubscribeTriggerParams) error
	HandleTriggerEvent(ctx context.Context, params TriggerEventParams) ([]Item, error)
	ListTriggerItems(ctx context.Context, params ListTriggerItemsParams) ([]Item, error)
}
