package ghostintegration

import (
	"context"
	"fmt"
	"net/url"

	"github.com/flowbaker/ghost-connector/internal/managers"
	"github.com/flowbaker/ghost-connector/pkg/domain"
)

const (
	IntegrationActionType_CreateMember     domain.IntegrationActionType = "create_member"
	IntegrationActionType_UpdateMember     domain.IntegrationActionType = "update_member"
	IntegrationActionType_CreatePost       domain.IntegrationActionType = "create_post"
	IntegrationActionType_CreateSubscriber domain.IntegrationActionType = "create_subscriber"
	IntegrationActionType_DeleteSubscriber domain.IntegrationActionType = "delete_subscriber"
	IntegrationActionType_FindMember       domain.IntegrationActionType = "find_member"
	IntegrationActionType_FindAuthor       domain.IntegrationActionType = "find_author"
	IntegrationActionType_FindSubscriber   domain.IntegrationActionType = "find_subscriber"

	IntegrationPeekable_Authors     domain.IntegrationPeekableType = "authors"
	IntegrationPeekable_Tags        domain.IntegrationPeekableType = "tags"
	IntegrationPeekable_Newsletters domain.IntegrationPeekableType = "newsletters"
	IntegrationPeekable_Members     domain.IntegrationPeekableType = "members"
)

type GhostIntegrationCreator struct {
	binder           domain.IntegrationParameterBinder
	credentialGetter domain.CredentialGetter[GhostCredential]
}

func NewGhostIntegrationCreator(deps domain.IntegrationDeps) domain.IntegrationCreator {
	return &GhostIntegrationCreator{
		binder:           deps.ParameterBinder,
		credentialGetter: managers.NewCredentialGetter[GhostCredential](deps.CredentialManager),
	}
}

func (c *GhostIntegrationCreator) CreateIntegration(ctx context.Context, p domain.CreateIntegrationParams) (domain.IntegrationExecutor, error) {
	return NewGhostIntegration(ctx, GhostIntegrationDependencies{
		CredentialID:     p.CredentialID,
		ParameterBinder:  c.binder,
		CredentialGetter: c.credentialGetter,
	})
}

// GhostIntegration executes actions against one Ghost site. Member and post
// operations go through the v3 namespace while the deprecated subscriber
// operations stay on v2, so the executor keeps a client for each.
type GhostIntegration struct {
	client   *AdminClient
	v2Client *AdminClient
	gate     *VersionGate

	binder           domain.IntegrationParameterBinder
	credentialGetter domain.CredentialGetter[GhostCredential]

	actionManager *domain.IntegrationActionManager
	peekFuncs     map[domain.IntegrationPeekableType]func(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error)
}

type GhostIntegrationDependencies struct {
	CredentialID     string
	ParameterBinder  domain.IntegrationParameterBinder
	CredentialGetter domain.CredentialGetter[GhostCredential]
}

func NewGhostIntegration(ctx context.Context, deps GhostIntegrationDependencies) (*GhostIntegration, error) {
	credential, err := deps.CredentialGetter.GetDecryptedCredential(ctx, deps.CredentialID)
	if err != nil {
		return nil, err
	}

	client, err := NewAdminClient(credential, APIVersionV3)
	if err != nil {
		return nil, err
	}

	v2Client, err := NewAdminClient(credential, APIVersionV2)
	if err != nil {
		return nil, err
	}

	gate, err := NewVersionGate(credential)
	if err != nil {
		return nil, err
	}

	integration := &GhostIntegration{
		client:           client,
		v2Client:         v2Client,
		gate:             gate,
		binder:           deps.ParameterBinder,
		credentialGetter: deps.CredentialGetter,
	}

	integration.actionManager = domain.NewIntegrationActionManager().
		AddPerItem(IntegrationActionType_CreateMember, integration.CreateMember).
		AddPerItem(IntegrationActionType_UpdateMember, integration.UpdateMember).
		AddPerItem(IntegrationActionType_CreatePost, integration.CreatePost).
		AddPerItem(IntegrationActionType_CreateSubscriber, integration.CreateSubscriber).
		AddPerItem(IntegrationActionType_DeleteSubscriber, integration.DeleteSubscriber).
		AddPerItemMulti(IntegrationActionType_FindMember, integration.FindMember).
		AddPerItemMulti(IntegrationActionType_FindAuthor, integration.FindAuthor).
		AddPerItemMulti(IntegrationActionType_FindSubscriber, integration.FindSubscriber)

	integration.peekFuncs = map[domain.IntegrationPeekableType]func(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error){
		IntegrationPeekable_Authors:     integration.PeekAuthors,
		IntegrationPeekable_Tags:        integration.PeekTags,
		IntegrationPeekable_Newsletters: integration.PeekNewsletters,
		IntegrationPeekable_Members:     integration.PeekMembers,
	}

	return integration, nil
}

func (i *GhostIntegration) Execute(ctx context.Context, params domain.IntegrationInput) (domain.IntegrationOutput, error) {
	return i.actionManager.Run(ctx, params.ActionType, params)
}

func (c *GhostIntegrationCreator) Peek(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	integration, err := NewGhostIntegration(ctx, GhostIntegrationDependencies{
		CredentialID:     params.CredentialID,
		ParameterBinder:  c.binder,
		CredentialGetter: c.credentialGetter,
	})
	if err != nil {
		return domain.PeekResult{}, err
	}

	return integration.Peek(ctx, params)
}

func (i *GhostIntegration) Peek(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	peekFunc, ok := i.peekFuncs[params.PeekableType]
	if !ok {
		return domain.PeekResult{}, fmt.Errorf("peek function not found")
	}

	return peekFunc(ctx, params)
}

// browseByName fetches a whole collection ordered by name for dropdowns.
func browseByName(ctx context.Context, browse func(context.Context, url.Values) ([]map[string]any, error)) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("order", "name DESC")
	query.Set("limit", "all")

	return browse(ctx, query)
}

func peekResultFrom(records []map[string]any, keyField, contentField string) domain.PeekResult {
	results := make([]domain.PeekResultItem, 0, len(records))

	for _, record := range records {
		key, _ := record[keyField].(string)
		content, _ := record[contentField].(string)

		results = append(results, domain.PeekResultItem{
			Key:     key,
			Value:   key,
			Content: content,
		})
	}

	return domain.PeekResult{Result: results}
}

// PeekAuthors lists authors by slug so post authors can be picked from a
// dropdown instead of typed by hand.
func (i *GhostIntegration) PeekAuthors(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	users, err := browseByName(ctx, i.v2Client.BrowseUsers)
	if err != nil {
		return domain.PeekResult{}, err
	}

	return peekResultFrom(users, "slug", "name"), nil
}

func (i *GhostIntegration) PeekTags(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	tags, err := browseByName(ctx, i.v2Client.BrowseTags)
	if err != nil {
		return domain.PeekResult{}, err
	}

	return peekResultFrom(tags, "slug", "name"), nil
}

func (i *GhostIntegration) PeekNewsletters(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	if _, err := i.gate.CheckCapability(ctx, CapabilityMemberNewsletters); err != nil {
		return domain.PeekResult{}, err
	}

	newsletters, err := browseByName(ctx, i.client.BrowseNewsletters)
	if err != nil {
		return domain.PeekResult{}, err
	}

	return peekResultFrom(newsletters, "id", "name"), nil
}

func (i *GhostIntegration) PeekMembers(ctx context.Context, params domain.PeekParams) (domain.PeekResult, error) {
	if _, err := i.gate.CheckCapability(ctx, CapabilityMembers); err != nil {
		return domain.PeekResult{}, err
	}

	query := url.Values{}
	query.Set("order", "created_at DESC")
	query.Set("limit", "all")

	members, err := i.client.BrowseMembers(ctx, query)
	if err != nil {
		return domain.PeekResult{}, err
	}

	return peekResultFrom(members, "id", "email"), nil
}
