package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/game-club/library/internal/transport"
	"github.com/game-club/library/pkg/errors"
)

// AppDetailsURL is the Steam storefront appdetails endpoint.
const AppDetailsURL = "https://store.steampowered.com/api/appdetails/"

// appDetailsLanguage requests localized text fields.
const appDetailsLanguage = "de"

// Client fetches app details from the Steam storefront API.
type Client struct {
	// APIURL may be overridden in tests.
	APIURL string

	client *transport.Client
}

// NewClient creates a Steam appdetails client. The endpoint is public and
// unauthenticated.
func NewClient() *Client {
	return &Client{
		APIURL: AppDetailsURL,
		client: transport.New(&transport.NoAuth{}),
	}
}

// appEnvelope is the per-app wrapper of the appdetails response.
type appEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// AppDetails fetches the detail payload for one app id. An unknown id or a
// malformed detail object yields ErrNotFound.
func (c *Client) AppDetails(ctx context.Context, appID string) (*Details, error) {
	endpoint := fmt.Sprintf("%s?appids=%s&l=%s", c.APIURL, url.QueryEscape(appID), appDetailsLanguage)

	resp, err := c.client.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.WrapAPI("steam", 0, err)
	}

	var envelope map[string]appEnvelope
	if err := transport.DecodeResponse(resp, "steam", &envelope); err != nil {
		return nil, err
	}

	app, ok := envelope[appID]
	if !ok || !app.Success {
		return nil, errors.WrapResource("fetch", "appdetails", appID, errors.ErrNotFound)
	}

	var details Details
	if err := json.Unmarshal(app.Data, &details); err != nil {
		return nil, errors.WrapParse("json", "appdetails "+appID, err)
	}
	return &details, nil
}

// Cache memoizes appdetails lookups for the lifetime of one build run.
// Each distinct app id is fetched at most once; failures and unknown ids
// are memoized as absent, logged, and never surfaced to the caller.
type Cache struct {
	client  *Client
	logger  zerolog.Logger
	details map[string]*Details
}

// NewCache creates a per-run lookup cache around the given client.
func NewCache(client *Client, logger zerolog.Logger) *Cache {
	return &Cache{
		client:  client,
		logger:  logger,
		details: make(map[string]*Details),
	}
}

// Lookup returns the memoized details for an app id, fetching on first use.
// A nil result means the id is unknown or the lookup failed this run. Blank
// ids short-circuit to nil without a cache entry.
func (c *Cache) Lookup(ctx context.Context, appID string) *Details {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil
	}

	if details, seen := c.details[appID]; seen {
		return details
	}

	details, err := c.client.AppDetails(ctx, appID)
	if err != nil {
		c.logger.Warn().Err(err).Str("app_id", appID).Msg("Failed to fetch Steam appdetails")
		details = nil
	}
	c.details[appID] = details
	return details
}
