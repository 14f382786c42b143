package ghostintegration

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

// GhostTriggerLifecycle is the resthook bridge. Every call resolves the
// credential and builds a fresh client: there is no cached state between
// invocations, so arbitrary concurrency across them is safe.
type GhostTriggerLifecycle struct {
	credentialGetter domain.CredentialGetter[GhostCredential]
}

type GhostTriggerLifecycleDeps struct {
	CredentialGetter domain.CredentialGetter[GhostCredential]
}

func NewGhostTriggerLifecycle(deps GhostTriggerLifecycleDeps) *GhostTriggerLifecycle {
	return &GhostTriggerLifecycle{
		credentialGetter: deps.CredentialGetter,
	}
}

func (l *GhostTriggerLifecycle) clients(ctx context.Context, credentialID string, version APIVersion) (*AdminClient, *VersionGate, error) {
	credential, err := l.credentialGetter.GetDecryptedCredential(ctx, credentialID)
	if err != nil {
		return nil, nil, err
	}

	client, err := NewAdminClient(credential, version)
	if err != nil {
		return nil, nil, err
	}

	gate, err := NewVersionGate(credential)
	if err != nil {
		return nil, nil, err
	}

	return client, gate, nil
}

// SubscribeTrigger registers a remote webhook for the trigger's event. The
// integration id sent along is the identifier half of the admin API key, which
// ties the webhook to the custom integration that owns the credential.
func (l *GhostTriggerLifecycle) SubscribeTrigger(ctx context.Context, params domain.SubscribeTriggerParams) (domain.TriggerSubscription, error) {
	cfg, ok := triggerConfigs[params.EventType]
	if !ok {
		return domain.TriggerSubscription{}, fmt.Errorf("unknown trigger event type %q", params.EventType)
	}

	client, gate, err := l.clients(ctx, params.CredentialID, APIVersionV2)
	if err != nil {
		return domain.TriggerSubscription{}, err
	}

	if cfg.RequiredRange != "" {
		if _, err := gate.CheckVersion(ctx, cfg.RequiredRange, cfg.CapabilityName); err != nil {
			return domain.TriggerSubscription{}, err
		}
	}

	webhook, err := client.AddWebhook(ctx, map[string]any{
		"integration_id": client.KeyID(),
		"target_url":     params.TargetURL,
		"event":          cfg.Event,
	})
	if err != nil {
		return domain.TriggerSubscription{}, err
	}

	id, _ := webhook["id"].(string)

	return domain.TriggerSubscription{
		ID:        id,
		TargetURL: params.TargetURL,
		Event:     cfg.Event,
	}, nil
}

// UnsubscribeTrigger deletes the remote webhook by its stored id. A webhook
// that was already removed out-of-band must not fail trigger deactivation, so
// a not-found response is treated as a successful no-op.
func (l *GhostTriggerLifecycle) UnsubscribeTrigger(ctx context.Context, params domain.UnsubscribeTriggerParams) error {
	cfg, ok := triggerConfigs[params.EventType]
	if !ok {
		return fmt.Errorf("unknown trigger event type %q", params.EventType)
	}

	client, gate, err := l.clients(ctx, params.CredentialID, APIVersionV2)
	if err != nil {
		return err
	}

	if cfg.RequiredRange != "" {
		if _, err := gate.CheckVersion(ctx, cfg.RequiredRange, cfg.CapabilityName); err != nil {
			return err
		}
	}

	if err := client.DeleteWebhook(ctx, params.Subscription.ID); err != nil {
		if isNotFoundHalted(err) {
			log.Debug().
				Str("webhook_id", params.Subscription.ID).
				Str("event", cfg.Event).
				Msg("webhook already removed, treating unsubscribe as no-op")

			return nil
		}

		return err
	}

	return nil
}

// HandleTriggerEvent reshapes one webhook delivery into the one-element array
// of records the platform expects. Deliveries arrive keyed by resource name
// with current and previous sub-objects; creation events emit the current
// side, deletions the previous side, and updates the whole envelope so the
// automation can diff the fields itself.
func (l *GhostTriggerLifecycle) HandleTriggerEvent(ctx context.Context, params domain.TriggerEventParams) ([]domain.Item, error) {
	cfg, ok := triggerConfigs[params.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown trigger event type %q", params.EventType)
	}

	envelope, ok := params.Payload[cfg.Resource].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("webhook payload missing %q envelope", cfg.Resource)
	}

	switch cfg.Side {
	case sidePrevious:
		return []domain.Item{envelope["previous"]}, nil
	case sideEnvelope:
		return []domain.Item{envelope}, nil
	default:
		return []domain.Item{envelope["current"]}, nil
	}
}

// ListTriggerItems is the polling fallback behind trigger previews and
// dynamic dropdowns. Previews fetch the most recently created record;
// dropdowns fetch the whole collection ordered by name. An empty collection
// yields an empty list, never an error.
func (l *GhostTriggerLifecycle) ListTriggerItems(ctx context.Context, params domain.ListTriggerItemsParams) ([]domain.Item, error) {
	cfg, ok := triggerConfigs[params.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown trigger event type %q", params.EventType)
	}

	client, gate, err := l.clients(ctx, params.CredentialID, cfg.APIVersion)
	if err != nil {
		return nil, err
	}

	var version string
	if cfg.RequiredRange != "" {
		checked, err := gate.CheckVersion(ctx, cfg.RequiredRange, cfg.CapabilityName)
		if err != nil {
			return nil, err
		}

		version = checked.String()
	}

	if cfg.List == listVersionedSample {
		return []domain.Item{memberUpdatedSample(version)}, nil
	}

	query := url.Values{}

	switch {
	case params.IsFillingDropdown && cfg.SupportsLookup:
		query.Set("order", "name DESC")
		query.Set("limit", "all")
	case cfg.List == listLatestPublished:
		query.Set("formats", "mobiledoc,html,plaintext")
		query.Set("filter", "status:published")
		query.Set("order", "published_at DESC")
		query.Set("limit", "1")
	default:
		query.Set("order", "created_at DESC")
		query.Set("limit", "1")
	}

	records, err := l.browseResource(ctx, client, cfg.Resource, query)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(records))
	for _, record := range records {
		items = append(items, record)
	}

	return items, nil
}

func (l *GhostTriggerLifecycle) browseResource(ctx context.Context, client *AdminClient, resource string, query url.Values) ([]map[string]any, error) {
	switch resource {
	case "member":
		return client.BrowseMembers(ctx, query)
	case "post":
		return client.BrowsePosts(ctx, query)
	case "page":
		return client.BrowsePages(ctx, query)
	case "subscriber":
		return client.BrowseSubscribers(ctx, query)
	case "user":
		return client.BrowseUsers(ctx, query)
	case "tag":
		return client.BrowseTags(ctx, query)
	case "newsletter":
		return client.BrowseNewsletters(ctx, query)
	default:
		return nil, fmt.Errorf("unknown trigger resource %q", resource)
	}
}
