package ghostintegration

import (
	"context"
	"net/url"
	"strconv"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

type CreateMemberParams struct {
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Note            string   `json:"note"`
	Labels          []string `json:"labels"`
	Subscribed      *bool    `json:"subscribed"`
	Comped          *bool    `json:"comped"`
	NewsletterCount string   `json:"newsletter_count"`
	Newsletters     []string `json:"newsletters"`
	SendEmail       *bool    `json:"send_email"`
	EmailType       string   `json:"email_type"`
}

type UpdateMemberParams struct {
	MemberID            string   `json:"member_id"`
	Email               string   `json:"email"`
	Name                string   `json:"name"`
	Note                string   `json:"note"`
	Labels              []string `json:"labels"`
	Subscribed          *bool    `json:"subscribed"`
	Comped              *bool    `json:"comped"`
	NewslettersKeepSame *bool    `json:"newsletters_keep_same"`
	NewsletterCount     string   `json:"newsletter_count"`
	Newsletters         []string `json:"newsletters"`
}

const (
	newsletterCountSingle   = "single"
	newsletterCountMultiple = "multiple"
)

// memberFields carries the subset of member params both actions share, so
// create and update run through one mapper.
type memberFields struct {
	Email           string
	Name            string
	Note            string
	Labels          []string
	Subscribed      *bool
	Comped          *bool
	NewsletterCount string
	Newsletters     []string
	SkipNewsletters bool
}

// mapMemberPayload builds the member record and reports the strictest
// capability the supplied fields require. It is a pure function: calling it
// twice with the same input yields byte-identical request bodies.
func mapMemberPayload(fields memberFields) (map[string]any, Capability) {
	payload := map[string]any{}
	capabilities := []Capability{}

	if fields.Email != "" {
		payload["email"] = fields.Email
	}
	if fields.Name != "" {
		payload["name"] = fields.Name
	}
	if fields.Note != "" {
		payload["note"] = fields.Note
	}

	if len(fields.Labels) > 0 {
		payload["labels"] = fields.Labels
		capabilities = append(capabilities, CapabilityMemberLabels)
	}

	if fields.Comped != nil {
		payload["comped"] = *fields.Comped
		capabilities = append(capabilities, CapabilityMemberComplimentary)
	}

	// A member carries exactly one subscription shape: multi-newsletter sites
	// get a newsletters list, everything else keeps the legacy subscribed
	// boolean. They never mix.
	if fields.NewsletterCount == newsletterCountMultiple {
		if !fields.SkipNewsletters {
			newsletters := make([]map[string]any, 0, len(fields.Newsletters))
			for _, id := range fields.Newsletters {
				newsletters = append(newsletters, map[string]any{"id": id})
			}

			payload["newsletters"] = newsletters
			capabilities = append(capabilities, CapabilityMemberNewsletters)
		}
	} else if fields.Subscribed != nil {
		payload["subscribed"] = *fields.Subscribed
	}

	return payload, strictestCapability(CapabilityMembers, capabilities...)
}

// memberQueryParams returns the query string for member mutations. Ghost
// sends a signup email unless told otherwise, so send_email is always
// explicit.
func memberQueryParams(sendEmail *bool, emailType string) url.Values {
	send := true
	if sendEmail != nil {
		send = *sendEmail
	}

	query := url.Values{}
	query.Set("send_email", strconv.FormatBool(send))

	if emailType != "" {
		query.Set("email_type", emailType)
	}

	return query
}

func (i *GhostIntegration) CreateMember(ctx context.Context, params domain.IntegrationInput, item domain.Item) (domain.Item, error) {
	p := CreateMemberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	payload, capability := mapMemberPayload(memberFields{
		Email:           p.Email,
		Name:            p.Name,
		Note:            p.Note,
		Labels:          p.Labels,
		Subscribed:      p.Subscribed,
		Comped:          p.Comped,
		NewsletterCount: p.NewsletterCount,
		Newsletters:     p.Newsletters,
	})

	if _, err := i.gate.CheckCapability(ctx, capability); err != nil {
		return nil, err
	}

	return i.client.AddMember(ctx, payload, memberQueryParams(p.SendEmail, p.EmailType))
}

func (i *GhostIntegration) UpdateMember(ctx context.Context, params domain.IntegrationInput, item domain.Item) (domain.Item, error) {
	p := UpdateMemberParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	skipNewsletters := p.NewslettersKeepSame != nil && *p.NewslettersKeepSame

	payload, capability := mapMemberPayload(memberFields{
		Email:           p.Email,
		Name:            p.Name,
		Note:            p.Note,
		Labels:          p.Labels,
		Subscribed:      p.Subscribed,
		Comped:          p.Comped,
		NewsletterCount: p.NewsletterCount,
		Newsletters:     p.Newsletters,
		SkipNewsletters: skipNewsletters,
	})

	if _, err := i.gate.CheckCapability(ctx, capability); err != nil {
		return nil, err
	}

	return i.client.EditMember(ctx, p.MemberID, payload, nil)
}
