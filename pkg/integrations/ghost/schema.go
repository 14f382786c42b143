package ghostintegration

import (
	"github.com/flowbaker/ghost-connector/pkg/domain"
)

var (
	GhostSchema = domain.Integration{
		ID:          domain.IntegrationType_Ghost,
		Name:        "Ghost",
		Description: "Manage members, posts and subscribers on a Ghost site through its Admin API.",
		CredentialProperties: []domain.NodeProperty{
			{
				Key:         "admin_api_url",
				Name:        "Admin API URL",
				Description: "The Admin API URL shown on your Ghost custom integration, e.g. https://example.ghost.io",
				Required:    true,
				Type:        domain.NodePropertyType_String,
			},
			{
				Key:         "admin_api_key",
				Name:        "Admin API Key",
				Description: "The Admin API key from the same custom integration, in id:secret format",
				Required:    true,
				Type:        domain.NodePropertyType_String,
				IsSecret:    true,
			},
		},
		CanTestConnection: true,
		Actions: []domain.IntegrationAction{
			{
				ID:          "create_member",
				Name:        "Create Member",
				Description: "Creates a new member.",
				ActionType:  IntegrationActionType_CreateMember,
				Properties: []domain.NodeProperty{
					{
						Key:         "email",
						Name:        "Email",
						Description: "The email address of the member",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "name",
						Name:        "Name",
						Description: "The full name of the member",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "note",
						Name:        "Note",
						Description: "A note about the member, only visible to site staff",
						Type:        domain.NodePropertyType_Text,
					},
					{
						Key:         "labels",
						Name:        "Labels",
						Description: "Labels to attach to the member (requires Ghost 3.6.0 or later)",
						Type:        domain.NodePropertyType_TagInput,
					},
					{
						Key:         "subscribed",
						Name:        "Subscribed to emails",
						Description: "Whether the member receives emails (sites with a single newsletter)",
						Type:        domain.NodePropertyType_Boolean,
						ShowIf: &domain.ShowIf{
							PropertyKey: "newsletter_count",
							Values:      []any{newsletterCountSingle},
						},
					},
					{
						Key:         "newsletter_count",
						Name:        "Newsletters",
						Description: "How the site's newsletters are configured",
						Type:        domain.NodePropertyType_String,
						Options: []domain.NodePropertyOption{
							{Label: "Single newsletter", Value: newsletterCountSingle},
							{Label: "Multiple newsletters", Value: newsletterCountMultiple},
						},
					},
					{
						Key:          "newsletters",
						Name:         "Subscribed newsletters",
						Description:  "Newsletters the member is subscribed to (requires Ghost 4.46.0 or later)",
						Type:         domain.NodePropertyType_TagInput,
						Peekable:     true,
						PeekableType: IntegrationPeekable_Newsletters,
						ShowIf: &domain.ShowIf{
							PropertyKey: "newsletter_count",
							Values:      []any{newsletterCountMultiple},
						},
					},
					{
						Key:         "comped",
						Name:        "Complimentary plan",
						Description: "Give the member a complimentary paid plan (requires Ghost 3.36.0 or later)",
						Type:        domain.NodePropertyType_Boolean,
					},
					{
						Key:         "send_email",
						Name:        "Send welcome email",
						Description: "Send the standard signup email to the new member",
						Type:        domain.NodePropertyType_Boolean,
						Default:     true,
					},
					{
						Key:         "email_type",
						Name:        "Email type",
						Description: "Which signup email to send",
						Type:        domain.NodePropertyType_String,
						Options: []domain.NodePropertyOption{
							{Label: "Signup", Value: "signup"},
							{Label: "Subscribe", Value: "subscribe"},
						},
						ShowIf: &domain.ShowIf{
							PropertyKey: "send_email",
							Values:      []any{true},
						},
					},
				},
			},
			{
				ID:          "update_member",
				Name:        "Update Member",
				Description: "Updates an existing member.",
				ActionType:  IntegrationActionType_UpdateMember,
				Properties: []domain.NodeProperty{
					{
						Key:          "member_id",
						Name:         "Member",
						Description:  "The member to update",
						Required:     true,
						Type:         domain.NodePropertyType_String,
						Peekable:     true,
						PeekableType: IntegrationPeekable_Members,
					},
					{
						Key:         "email",
						Name:        "Email",
						Description: "The new email address of the member",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "name",
						Name:        "Name",
						Description: "The full name of the member",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "note",
						Name:        "Note",
						Description: "A note about the member, only visible to site staff",
						Type:        domain.NodePropertyType_Text,
					},
					{
						Key:         "labels",
						Name:        "Labels",
						Description: "Labels to attach to the member, replacing the existing set (requires Ghost 3.6.0 or later)",
						Type:        domain.NodePropertyType_TagInput,
					},
					{
						Key:         "subscribed",
						Name:        "Subscribed to emails",
						Description: "Whether the member receives emails (sites with a single newsletter)",
						Type:        domain.NodePropertyType_Boolean,
						ShowIf: &domain.ShowIf{
							PropertyKey: "newsletter_count",
							Values:      []any{newsletterCountSingle},
						},
					},
					{
						Key:         "newsletters_keep_same",
						Name:        "Keep newsletter subscriptions",
						Description: "Leave the member's newsletter subscriptions untouched",
						Type:        domain.NodePropertyType_Boolean,
						Default:     true,
					},
					{
						Key:         "newsletter_count",
						Name:        "Newsletters",
						Description: "How the site's newsletters are configured",
						Type:        domain.NodePropertyType_String,
						Options: []domain.NodePropertyOption{
							{Label: "Single newsletter", Value: newsletterCountSingle},
							{Label: "Multiple newsletters", Value: newsletterCountMultiple},
						},
						HideIf: &domain.HideIf{
							PropertyKey: "newsletters_keep_same",
							Values:      []any{true},
						},
					},
					{
						Key:          "newsletters",
						Name:         "Subscribed newsletters",
						Description:  "Newsletters the member is subscribed to (requires Ghost 4.46.0 or later)",
						Type:         domain.NodePropertyType_TagInput,
						Peekable:     true,
						PeekableType: IntegrationPeekable_Newsletters,
						ShowIf: &domain.ShowIf{
							PropertyKey: "newsletter_count",
							Values:      []any{newsletterCountMultiple},
						},
					},
					{
						Key:         "comped",
						Name:        "Complimentary plan",
						Description: "Give the member a complimentary paid plan (requires Ghost 3.36.0 or later)",
						Type:        domain.NodePropertyType_Boolean,
					},
				},
			},
			{
				ID:          "create_post",
				Name:        "Create Post",
				Description: "Creates a post.",
				ActionType:  IntegrationActionType_CreatePost,
				Properties: []domain.NodeProperty{
					{
						Key:         "title",
						Name:        "Title",
						Description: "The title of the post",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "slug",
						Name:        "Slug",
						Description: "The URL slug, generated from the title when left empty",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "status",
						Name:        "Status",
						Description: "The publication status of the post",
						Required:    true,
						Type:        domain.NodePropertyType_String,
						Default:     "draft",
						Options: []domain.NodePropertyOption{
							{Label: "Draft", Value: "draft"},
							{Label: "Published", Value: "published"},
							{Label: "Scheduled", Value: "scheduled"},
						},
					},
					{
						Key:         "published_at",
						Name:        "Published at",
						Description: "The publication date, required when the post is scheduled",
						Type:        domain.NodePropertyType_Date,
						ShowIf: &domain.ShowIf{
							PropertyKey: "status",
							Values:      []any{"published", "scheduled"},
						},
					},
					{
						Key:         "content_format",
						Name:        "Content Format",
						Description: "The format of the content you are inserting into the post body",
						Required:    true,
						Type:        domain.NodePropertyType_String,
						Default:     "html",
						Options: []domain.NodePropertyOption{
							{Label: "HTML", Value: "html"},
							{Label: "Mobiledoc", Value: "mobiledoc"},
						},
					},
					{
						Key:         "content",
						Name:        "Content",
						Description: "The post body. HTML is converted to rich text on the server; Mobiledoc is stored as-is",
						Type:        domain.NodePropertyType_Text,
					},
					{
						Key:         "custom_excerpt",
						Name:        "Custom Excerpt",
						Description: "A short summary shown in post lists",
						Type:        domain.NodePropertyType_Text,
					},
					{
						Key:         "feature_image",
						Name:        "Feature Image",
						Description: "URL of the post's feature image",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:          "tags",
						Name:         "Tags",
						Description:  "Tag slugs to attach to the post",
						Type:         domain.NodePropertyType_TagInput,
						Peekable:     true,
						PeekableType: IntegrationPeekable_Tags,
					},
					{
						Key:          "authors",
						Name:         "Authors",
						Description:  "Author slugs for the post",
						Required:     true,
						Type:         domain.NodePropertyType_TagInput,
						Peekable:     true,
						PeekableType: IntegrationPeekable_Authors,
					},
					{
						Key:         "featured",
						Name:        "Featured",
						Description: "Mark the post as featured",
						Type:        domain.NodePropertyType_Boolean,
					},
					{
						Key:         "canonical_url",
						Name:        "Canonical URL",
						Description: "The canonical URL when the post was originally published elsewhere",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:  "meta_title",
						Name: "Meta Title",
						Type: domain.NodePropertyType_String,
					},
					{
						Key:  "meta_description",
						Name: "Meta Description",
						Type: domain.NodePropertyType_Text,
					},
					{
						Key:  "og_title",
						Name: "Facebook Title",
						Type: domain.NodePropertyType_String,
					},
					{
						Key:  "og_description",
						Name: "Facebook Description",
						Type: domain.NodePropertyType_Text,
					},
					{
						Key:  "og_image",
						Name: "Facebook Image",
						Type: domain.NodePropertyType_String,
					},
					{
						Key:  "twitter_title",
						Name: "Twitter Title",
						Type: domain.NodePropertyType_String,
					},
					{
						Key:  "twitter_description",
						Name: "Twitter Description",
						Type: domain.NodePropertyType_Text,
					},
					{
						Key:  "twitter_image",
						Name: "Twitter Image",
						Type: domain.NodePropertyType_String,
					},
					{
						Key:         "codeinjection_head",
						Name:        "Code Injection Head",
						Description: "Custom styles or scripts included with the post",
						Type:        domain.NodePropertyType_CodeEditor,
					},
					{
						Key:         "codeinjection_foot",
						Name:        "Code Injection Foot",
						Description: "Custom styles or scripts included with the post",
						Type:        domain.NodePropertyType_CodeEditor,
					},
				},
			},
			{
				ID:          "create_subscriber",
				Name:        "Create Subscriber (Deprecated)",
				Description: "Creates a subscriber. Subscribers no longer function in Ghost 3.0 or later.",
				ActionType:  IntegrationActionType_CreateSubscriber,
				Properties: []domain.NodeProperty{
					{
						Key:         "email",
						Name:        "Email",
						Description: "The email address of the subscriber",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "name",
						Name:        "Name",
						Description: "The name of the subscriber",
						Type:        domain.NodePropertyType_String,
					},
					{
						Key:         "status",
						Name:        "Status",
						Description: "The subscription status",
						Type:        domain.NodePropertyType_String,
						Options: []domain.NodePropertyOption{
							{Label: "Pending", Value: "pending"},
							{Label: "Subscribed", Value: "subscribed"},
							{Label: "Unsubscribed", Value: "unsubscribed"},
						},
					},
				},
			},
			{
				ID:          "delete_subscriber",
				Name:        "Delete Subscriber (Deprecated)",
				Description: "Deletes a subscriber by email address. Subscribers no longer function in Ghost 3.0 or later.",
				ActionType:  IntegrationActionType_DeleteSubscriber,
				Properties: []domain.NodeProperty{
					{
						Key:         "email",
						Name:        "Email",
						Description: "The email address of the subscriber to delete",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
				},
			},
			{
				ID:          "find_member",
				Name:        "Find a Member",
				Description: "Search for a member by email address.",
				ActionType:  IntegrationActionType_FindMember,
				Properties: []domain.NodeProperty{
					{
						Key:         "email",
						Name:        "Email",
						Description: "The email address to search for",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
				},
			},
			{
				ID:          "find_author",
				Name:        "Find an Author",
				Description: "Search for an author by email address or slug.",
				ActionType:  IntegrationActionType_FindAuthor,
				Properties: []domain.NodeProperty{
					{
						Key:         "search_by",
						Name:        "Search by",
						Description: "Which field to search on",
						Required:    true,
						Type:        domain.NodePropertyType_String,
						Default:     "email",
						Options: []domain.NodePropertyOption{
							{Label: "Email address", Value: "email"},
							{Label: "Slug", Value: "slug"},
						},
					},
					{
						Key:         "email",
						Name:        "Email address",
						Description: "The author's email address",
						Type:        domain.NodePropertyType_String,
						ShowIf: &domain.ShowIf{
							PropertyKey: "search_by",
							Values:      []any{"email"},
						},
					},
					{
						Key:         "slug",
						Name:        "Slug",
						Description: "The author's slug",
						Type:        domain.NodePropertyType_String,
						ShowIf: &domain.ShowIf{
							PropertyKey: "search_by",
							Values:      []any{"slug"},
						},
					},
				},
			},
			{
				ID:          "find_subscriber",
				Name:        "Find a Subscriber (Deprecated)",
				Description: "Search for a subscriber by email address. Subscribers no longer function in Ghost 3.0 or later.",
				ActionType:  IntegrationActionType_FindSubscriber,
				Properties: []domain.NodeProperty{
					{
						Key:         "email",
						Name:        "Email",
						Description: "The email address to search for",
						Required:    true,
						Type:        domain.NodePropertyType_String,
					},
				},
			},
		},
		Triggers: []domain.IntegrationTrigger{
			{
				ID:          "member_created",
				Name:        "Member Created",
				Description: "Triggers when a new member is added (requires Ghost 3.0.0 or later).",
				EventType:   IntegrationTrigger_MemberCreated,
			},
			{
				ID:          "member_updated",
				Name:        "Member Updated",
				Description: "Triggers when a member is updated (requires Ghost 3.0.3 or later).",
				EventType:   IntegrationTrigger_MemberUpdated,
			},
			{
				ID:          "member_deleted",
				Name:        "Member Deleted",
				Description: "Triggers when a member is deleted (requires Ghost 3.0.3 or later).",
				EventType:   IntegrationTrigger_MemberDeleted,
			},
			{
				ID:          "post_published",
				Name:        "Post Published",
				Description: "Triggers when a post is published.",
				EventType:   IntegrationTrigger_PostPublished,
			},
			{
				ID:          "page_published",
				Name:        "Page Published",
				Description: "Triggers when a page is published.",
				EventType:   IntegrationTrigger_PagePublished,
			},
			{
				ID:          "subscriber_created",
				Name:        "Subscriber Created (Deprecated)",
				Description: "Triggers when a new subscriber is added. Subscribers no longer function in Ghost 3.0 or later.",
				EventType:   IntegrationTrigger_SubscriberCreated,
			},
			{
				ID:          "subscriber_deleted",
				Name:        "Subscriber Deleted (Deprecated)",
				Description: "Triggers when a subscriber is deleted. Subscribers no longer function in Ghost 3.0 or later.",
				EventType:   IntegrationTrigger_SubscriberDeleted,
			},
			{
				ID:          "author_created",
				Name:        "Author Created",
				Description: "Triggers when a new author is added.",
				EventType:   IntegrationTrigger_AuthorCreated,
				Hidden:      true,
			},
			{
				ID:          "tag_created",
				Name:        "Tag Created",
				Description: "Triggers when a new tag is added.",
				EventType:   IntegrationTrigger_TagCreated,
				Hidden:      true,
			},
			{
				ID:          "newsletter_created",
				Name:        "Newsletter Created",
				Description: "Triggers when a new newsletter is added.",
				EventType:   IntegrationTrigger_NewsletterCreated,
				Hidden:      true,
			},
		},
	}
)
