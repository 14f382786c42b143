package ghostintegration

import "github.com/flowbaker/ghost-connector/pkg/domain"

const (
	IntegrationTrigger_MemberCreated     domain.IntegrationTriggerEventType = "ghost_member_created"
	IntegrationTrigger_MemberUpdated     domain.IntegrationTriggerEventType = "ghost_member_updated"
	IntegrationTrigger_MemberDeleted     domain.IntegrationTriggerEventType = "ghost_member_deleted"
	IntegrationTrigger_PostPublished     domain.IntegrationTriggerEventType = "ghost_post_published"
	IntegrationTrigger_PagePublished     domain.IntegrationTriggerEventType = "ghost_page_published"
	IntegrationTrigger_SubscriberCreated domain.IntegrationTriggerEventType = "ghost_subscriber_created"
	IntegrationTrigger_SubscriberDeleted domain.IntegrationTriggerEventType = "ghost_subscriber_deleted"
	IntegrationTrigger_AuthorCreated     domain.IntegrationTriggerEventType = "ghost_author_created"
	IntegrationTrigger_TagCreated        domain.IntegrationTriggerEventType = "ghost_tag_created"
	IntegrationTrigger_NewsletterCreated domain.IntegrationTriggerEventType = "ghost_newsletter_created"
)

// payloadSide selects which half of a webhook delivery envelope a trigger
// emits.
type payloadSide int

const (
	sideCurrent payloadSide = iota
	sidePrevious
	sideEnvelope
)

// listStrategy decides how ListTriggerItems fetches preview data for a
// trigger that has not fired yet.
type listStrategy int

const (
	listLatest listStrategy = iota
	listLatestPublished
	listVersionedSample
)

// triggerConfig describes one webhook-backed trigger: the remote event it
// subscribes to, the resource key its deliveries arrive under, which side of
// the envelope to emit, an optional version requirement, and how to fetch
// preview data. Version ranges and capability names are carried verbatim so
// gate failure messages match across subscribe, unsubscribe and list.
type triggerConfig struct {
	Event          string
	Resource       string
	Side           payloadSide
	RequiredRange  string
	CapabilityName string
	APIVersion     APIVersion
	List           listStrategy
	SupportsLookup bool
}

var triggerConfigs = map[domain.IntegrationTriggerEventType]triggerConfig{
	IntegrationTrigger_MemberCreated: {
		Event:          "member.added",
		Resource:       "member",
		Side:           sideCurrent,
		RequiredRange:  ">=3.0.0",
		CapabilityName: "members",
		APIVersion:     APIVersionV3,
		List:           listLatest,
	},
	IntegrationTrigger_MemberUpdated: {
		Event:          "member.edited",
		Resource:       "member",
		Side:           sideEnvelope,
		RequiredRange:  ">=3.0.3",
		CapabilityName: "members",
		APIVersion:     APIVersionV3,
		List:           listVersionedSample,
	},
	IntegrationTrigger_MemberDeleted: {
		Event:          "member.deleted",
		Resource:       "member",
		Side:           sidePrevious,
		RequiredRange:  ">=3.0.3",
		CapabilityName: "members",
		APIVersion:     APIVersionV3,
		List:           listLatest,
	},
	IntegrationTrigger_PostPublished: {
		Event:      "post.published",
		Resource:   "post",
		Side:       sideCurrent,
		APIVersion: APIVersionV2,
		List:       listLatestPublished,
	},
	IntegrationTrigger_PagePublished: {
		Event:      "page.published",
		Resource:   "page",
		Side:       sideCurrent,
		APIVersion: APIVersionV2,
		List:       listLatestPublished,
	},
	IntegrationTrigger_SubscriberCreated: {
		Event:      "subscriber.added",
		Resource:   "subscriber",
		Side:       sideCurrent,
		APIVersion: APIVersionV2,
		List:       listLatest,
	},
	IntegrationTrigger_SubscriberDeleted: {
		Event:      "subscriber.deleted",
		Resource:   "subscriber",
		Side:       sidePrevious,
		APIVersion: APIVersionV2,
		List:       listLatest,
	},
	IntegrationTrigger_AuthorCreated: {
		Event:          "user.added",
		Resource:       "user",
		Side:           sideCurrent,
		APIVersion:     APIVersionV2,
		List:           listLatest,
		SupportsLookup: true,
	},
	IntegrationTrigger_TagCreated: {
		Event:          "tag.added",
		Resource:       "tag",
		Side:           sideCurrent,
		APIVersion:     APIVersionV2,
		List:           listLatest,
		SupportsLookup: true,
	},
	IntegrationTrigger_NewsletterCreated: {
		Event:          "newsletter.added",
		Resource:       "newsletter",
		Side:           sideCurrent,
		APIVersion:     APIVersionV2,
		List:           listLatest,
		SupportsLookup: true,
	},
}
