package ghostintegration

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	clientUserAgent = "ghost-connector/1.0"

	adminTokenTTL = 5 * time.Minute
)

type APIVersion string

const (
	APIVersionV2 APIVersion = "v2"
	APIVersionV3 APIVersion = "v3"
)

// GhostCredential is the decrypted payload of a Ghost connection. The admin
// API key is the `id:secret` pair shown in Ghost Admin under Integrations.
type GhostCredential struct {
	AdminAPIURL string `json:"admin_api_url"`
	AdminAPIKey string `json:"admin_api_key"`
}

// AdminClient issues authenticated requests against one versioned namespace
// of a Ghost site's admin API. Construction configures a closure only; no
// network call happens until an operation is invoked.
type AdminClient struct {
	baseURL    string
	keyID      string
	secret     []byte
	version    APIVersion
	httpClient *http.Client
}

type AdminClientOption func(*AdminClient)

func WithHTTPClient(httpClient *http.Client) AdminClientOption {
	return func(c *AdminClient) {
		c.httpClient = httpClient
	}
}

func NewAdminClient(credential GhostCredential, version APIVersion, opts ...AdminClientOption) (*AdminClient, error) {
	if credential.AdminAPIURL == "" {
		return nil, fmt.Errorf("admin API URL is required")
	}

	keyID, secret, err := splitAPIKey(credential.AdminAPIKey)
	if err != nil {
		return nil, err
	}

	secretBytes, err := hex.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("admin API key secret is not valid hex: %w", err)
	}

	// Ghost Admin shows the URL with a trailing /ghost/ path; strip it so the
	// API path can be appended cleanly.
	host := strings.TrimSuffix(strings.TrimSuffix(credential.AdminAPIURL, "/"), "/ghost")

	client := &AdminClient{
		baseURL:    fmt.Sprintf("%s/ghost/api/%s/admin", host, version),
		keyID:      keyID,
		secret:     secretBytes,
		version:    version,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// splitAPIKey breaks an admin API key into its identifier and secret halves.
// The identifier doubles as the integration id when registering webhooks.
func splitAPIKey(apiKey string) (string, string, error) {
	keyID, secret, ok := strings.Cut(apiKey, ":")
	if !ok || keyID == "" || secret == "" {
		return "", "", fmt.Errorf("admin API key must be in id:secret format")
	}

	return keyID, secret, nil
}

// KeyID returns the identifier half of the admin API key.
func (c *AdminClient) KeyID() string {
	return c.keyID
}

// token mints a short-lived Ghost admin JWT for a single request.
func (c *AdminClient) token() (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(adminTokenTTL).Unix(),
		"aud": fmt.Sprintf("/%s/admin/", c.version),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = c.keyID

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}

	return signed, nil
}

// do performs one HTTP call and decodes the response into out. Structured
// error bodies are classified before the status code is consulted because
// Ghost reports errors with bodies on a range of statuses.
func (c *AdminClient) do(ctx context.Context, method, endpoint string, queryParams url.Values, body any, out any) error {
	requestURL := c.baseURL + endpoint
	if len(queryParams) > 0 {
		requestURL = requestURL + "?" + queryParams.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.token()
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Ghost "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// Client signature and request id are support diagnostics only.
	req.Header.Set("User-Agent", clientUserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var errorBody apiErrorBody
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &errorBody); err == nil && len(errorBody.Errors) > 0 {
			return classifyAPIError(errorBody.Errors[0], resp.StatusCode, method, requestURL)
		}
	}

	if resp.StatusCode >= 300 {
		return &RequestError{
			Message:    fmt.Sprintf("Got %d calling %s %s, expected 2xx.", resp.StatusCode, method, requestURL),
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        requestURL,
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// browse fetches a collection endpoint and unwraps its collection key.
func (c *AdminClient) browse(ctx context.Context, endpoint, collection string, queryParams url.Values) ([]map[string]any, error) {
	var out map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, endpoint, queryParams, nil, &out); err != nil {
		return nil, err
	}

	raw, ok := out[collection]
	if !ok {
		return []map[string]any{}, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s collection: %w", collection, err)
	}

	return records, nil
}

// mutate sends a record wrapped in its collection key and unwraps the echoed
// record from the response.
func (c *AdminClient) mutate(ctx context.Context, method, endpoint, collection string, queryParams url.Values, record map[string]any) (map[string]any, error) {
	body := map[string]any{
		collection: []any{record},
	}

	var out map[string]json.RawMessage
	if err := c.do(ctx, method, endpoint, queryParams, body, &out); err != nil {
		return nil, err
	}

	raw, ok := out[collection]
	if !ok {
		return map[string]any{}, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s collection: %w", collection, err)
	}

	if len(records) == 0 {
		return map[string]any{}, nil
	}

	return records[0], nil
}

// read fetches a single-record endpoint and unwraps the record.
func (c *AdminClient) read(ctx context.Context, endpoint, collection string, queryParams url.Values) (map[string]any, error) {
	records, err := c.browse(ctx, endpoint, collection, queryParams)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return map[string]any{}, nil
	}

	return records[0], nil
}

// Site is the self-description record served by /site/.
type Site struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Version string `json:"version"`
}

func (c *AdminClient) ReadSite(ctx context.Context) (Site, error) {
	var out struct {
		Site Site `json:"site"`
	}

	if err := c.do(ctx, http.MethodGet, "/site/", nil, nil, &out); err != nil {
		return Site{}, err
	}

	return out.Site, nil
}

// ReadConfig hits an endpoint that rejects invalid keys. Some Ghost versions
// accept any key on unauthenticated endpoints, so the connection test needs
// an authenticated read beyond /site/.
func (c *AdminClient) ReadConfig(ctx context.Context) (map[string]any, error) {
	var out map[string]any

	if err := c.do(ctx, http.MethodGet, "/config/", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *AdminClient) AddMember(ctx context.Context, member map[string]any, queryParams url.Values) (map[string]any, error) {
	return c.mutate(ctx, http.MethodPost, "/members/", "members", queryParams, member)
}

func (c *AdminClient) EditMember(ctx context.Context, id string, member map[string]any, queryParams url.Values) (map[string]any, error) {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/members/%s/", id), "members", queryParams, member)
}

func (c *AdminClient) BrowseMembers(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/members/", "members", queryParams)
}

func (c *AdminClient) AddPost(ctx context.Context, post map[string]any, queryParams url.Values) (map[string]any, error) {
	return c.mutate(ctx, http.MethodPost, "/posts/", "posts", queryParams, post)
}

func (c *AdminClient) BrowsePosts(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/posts/", "posts", queryParams)
}

func (c *AdminClient) BrowsePages(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/pages/", "pages", queryParams)
}

func (c *AdminClient) BrowseUsers(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/users/", "users", queryParams)
}

func (c *AdminClient) ReadUserByEmail(ctx context.Context, email string) (map[string]any, error) {
	return c.read(ctx, fmt.Sprintf("/users/email/%s/", url.PathEscape(email)), "users", nil)
}

func (c *AdminClient) ReadUserBySlug(ctx context.Context, slug string) (map[string]any, error) {
	return c.read(ctx, fmt.Sprintf("/users/slug/%s/", url.PathEscape(slug)), "users", nil)
}

func (c *AdminClient) BrowseTags(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/tags/", "tags", queryParams)
}

func (c *AdminClient) BrowseNewsletters(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/newsletters/", "newsletters", queryParams)
}

func (c *AdminClient) AddSubscriber(ctx context.Context, subscriber map[string]any) (map[string]any, error) {
	return c.mutate(ctx, http.MethodPost, "/subscribers/", "subscribers", nil, subscriber)
}

func (c *AdminClient) ReadSubscriberByEmail(ctx context.Context, email string) (map[string]any, error) {
	return c.read(ctx, fmt.Sprintf("/subscribers/email/%s/", url.PathEscape(email)), "subscribers", nil)
}

func (c *AdminClient) DeleteSubscriberByEmail(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/subscribers/email/%s/", url.PathEscape(email)), nil, nil, nil)
}

func (c *AdminClient) BrowseSubscribers(ctx context.Context, queryParams url.Values) ([]map[string]any, error) {
	return c.browse(ctx, "/subscribers/", "subscribers", queryParams)
}

func (c *AdminClient) AddWebhook(ctx context.Context, webhook map[string]any) (map[string]any, error) {
	return c.mutate(ctx, http.MethodPost, "/webhooks/", "webhooks", nil, webhook)
}

func (c *AdminClient) DeleteWebhook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/webhooks/%s/", id), nil, nil, nil)
}
