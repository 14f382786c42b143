package ghostintegration

import (
	"context"
	"fmt"
	"net/url"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

type FindMemberParams struct {
	Email string `json:"email"`
}

type FindAuthorParams struct {
	SearchBy string `json:"search_by"`
	Email    string `json:"email"`
	Slug     string `json:"slug"`
}

type FindSubscriberParams struct {
	Email string `json:"email"`
}

// emptyOnNotFound converts a halting not-found failure into an empty result
// set. Searches treat "no match" as a valid outcome, not an error.
func emptyOnNotFound(err error) ([]domain.Item, error) {
	if isNotFoundHalted(err) {
		return []domain.Item{}, nil
	}

	return nil, err
}

func (i *GhostIntegration) FindMember(ctx context.Context, params domain.IntegrationInput, item domain.Item) ([]domain.Item, error) {
	p := FindMemberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	if _, err := i.gate.CheckCapability(ctx, CapabilityMemberSearch); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("filter", fmt.Sprintf("email:'%s'", p.Email))

	members, err := i.client.BrowseMembers(ctx, query)
	if err != nil {
		return emptyOnNotFound(err)
	}

	results := make([]domain.Item, 0, len(members))
	for _, member := range members {
		results = append(results, member)
	}

	return results, nil
}

func (i *GhostIntegration) FindAuthor(ctx context.Context, params domain.IntegrationInput, item domain.Item) ([]domain.Item, error) {
	p := FindAuthorParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	var (
		author map[string]any
		err    error
	)

	if p.SearchBy == "slug" {
		author, err = i.client.ReadUserBySlug(ctx, p.Slug)
	} else {
		author, err = i.client.ReadUserByEmail(ctx, p.Email)
	}
	if err != nil {
		return emptyOnNotFound(err)
	}

	return []domain.Item{author}, nil
}

func (i *GhostIntegration) FindSubscriber(ctx context.Context, params domain.IntegrationInput, item domain.Item) ([]domain.Item, error) {
	p := FindSubscriberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	if _, err := i.gate.CheckCapability(ctx, CapabilitySubscribers); err != nil {
		return nil, err
	}

	subscriber, err := i.v2Client.ReadSubscriberByEmail(ctx, p.Email)
	if err != nil {
		return emptyOnNotFound(err)
	}

	return []domain.Item{subscriber}, nil
}
