package ghostintegration

import (
	"context"
	"net/url"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

type CreatePostParams struct {
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Status             string   `json:"status"`
	PublishedAt        string   `json:"published_at"`
	ContentFormat      string   `json:"content_format"`
	Content            string   `json:"content"`
	CustomExcerpt      string   `json:"custom_excerpt"`
	FeatureImage       string   `json:"feature_image"`
	Tags               []string `json:"tags"`
	Authors            []string `json:"authors"`
	Featured           *bool    `json:"featured"`
	CanonicalURL       string   `json:"canonical_url"`
	MetaTitle          string   `json:"meta_title"`
	MetaDescription    string   `json:"meta_description"`
	OGTitle            string   `json:"og_title"`
	OGDescription      string   `json:"og_description"`
	OGImage            string   `json:"og_image"`
	TwitterTitle       string   `json:"twitter_title"`
	TwitterDescription string   `json:"twitter_description"`
	TwitterImage       string   `json:"twitter_image"`
	CodeinjectionHead  string   `json:"codeinjection_head"`
	CodeinjectionFoot  string   `json:"codeinjection_foot"`
}

const (
	contentFormatHTML      = "html"
	contentFormatMobiledoc = "mobiledoc"
)

// buildPostRequest maps the flat input onto the post record. Tag and author
// slugs become minimal `{slug}` objects so the API performs the lookups.
// HTML content rides in the body with a `source=html` query flag telling
// Ghost to convert it.
func buildPostRequest(p CreatePostParams) (map[string]any, url.Values) {
	payload := map[string]any{
		"title":  p.Title,
		"status": p.Status,
	}
	query := url.Values{}

	if p.Slug != "" {
		payload["slug"] = p.Slug
	}
	if p.PublishedAt != "" {
		payload["published_at"] = p.PublishedAt
	}

	if p.ContentFormat == contentFormatHTML {
		payload["html"] = p.Content
		query.Set("source", "html")
	} else {
		payload["mobiledoc"] = p.Content
	}

	tags := make([]map[string]any, 0, len(p.Tags))
	for _, slug := range p.Tags {
		tags = append(tags, map[string]any{"slug": slug})
	}
	payload["tags"] = tags

	authors := make([]map[string]any, 0, len(p.Authors))
	for _, slug := range p.Authors {
		authors = append(authors, map[string]any{"slug": slug})
	}
	payload["authors"] = authors

	setIfPresent := func(key, value string) {
		if value != "" {
			payload[key] = value
		}
	}

	setIfPresent("custom_excerpt", p.CustomExcerpt)
	setIfPresent("feature_image", p.FeatureImage)
	setIfPresent("canonical_url", p.CanonicalURL)
	setIfPresent("meta_title", p.MetaTitle)
	setIfPresent("meta_description", p.MetaDescription)
	setIfPresent("og_title", p.OGTitle)
	setIfPresent("og_description", p.OGDescription)
	setIfPresent("og_image", p.OGImage)
	setIfPresent("twitter_title", p.TwitterTitle)
	setIfPresent("twitter_description", p.TwitterDescription)
	setIfPresent("twitter_image", p.TwitterImage)
	setIfPresent("codeinjection_head", p.CodeinjectionHead)
	setIfPresent("codeinjection_foot", p.CodeinjectionFoot)

	if p.Featured != nil {
		payload["featured"] = *p.Featured
	}

	return payload, query
}

func (i *GhostIntegration) CreatePost(ctx context.Context, params domain.IntegrationInput, item domain.Item) (domain.Item, error) {
	p := CreatePostParams{}
	if err := i.binder.BindToStruct(ctx, item, &p, params.IntegrationParams.Settings); err != nil {
		return nil, err
	}

	payload, query := buildPostRequest(p)

	return i.client.AddPost(ctx, payload, query)
}
