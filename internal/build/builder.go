// Package build assembles canonical game records from discussion
// submissions and runs the catalog build pipeline: load persisted records,
// build fresh ones, merge, normalize, and write the output files.
package build

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/game-club/library/internal/sources/discussions"
	"github.com/game-club/library/internal/sources/steam"
	"github.com/game-club/library/pkg/catalog"
	"github.com/game-club/library/pkg/reconcile"
)

// Builder turns one discussion submission into a canonical game record,
// reconciling the embedded payload with store metadata.
type Builder struct {
	steam  *steam.Cache
	logger zerolog.Logger
}

// NewBuilder creates a builder sharing the given per-run metadata cache.
func NewBuilder(cache *steam.Cache, logger zerolog.Logger) *Builder {
	return &Builder{steam: cache, logger: logger}
}

// Build constructs a record from a submission. It returns nil when the
// submission is not buildable: no fenced JSON block, a malformed block, or
// a payload without an id. Such submissions are logged and skipped.
func (b *Builder) Build(ctx context.Context, submission discussions.Discussion) *catalog.Record {
	payload, ok := ExtractJSONBlock(submission.Body)
	if !ok {
		b.logger.Warn().Str("title", submission.Title).Msg("Invalid or missing JSON block in discussion body")
		return nil
	}

	id := reconcile.Text(textValue(payload["id"]))
	if id == "" {
		b.logger.Warn().Str("title", submission.Title).Msg("Submission payload has no id")
		return nil
	}

	appID := extractAppID(payload)
	steamLink := steamLinkFrom(appID, payload)

	var details *steam.Details
	if !appID.IsZero() {
		details = b.steam.Lookup(ctx, appID.String())
	}

	var steamDescription, steamWebsite, steamHeader, steamCapsule string
	var steamMovies any
	if details != nil {
		steamDescription = details.ShortDescription
		steamWebsite = details.Website
		steamHeader = details.HeaderImage
		steamCapsule = details.CapsuleImage
		steamMovies = details.Movies
	}

	media := mapValue(payload["media"])
	homepage := reconcile.Text(steamWebsite, stringValue(payload["homepage"]))

	record := &catalog.Record{
		ID:          id,
		Name:        reconcile.Text(stringValue(payload["name"]), submission.Title),
		Description: reconcile.Text(steamDescription, stringValue(payload["description"])),
		Genres:      reconcile.List(details.GenreNames(), stringList(payload["genres"])),
		Categories:  reconcile.List(details.CategoryNames(), stringList(payload["categories"]), stringList(payload["tags"])),
		Players:     playersFrom(payload["players"]),
		AddedAt:     reconcile.Text(stringValue(payload["addedAt"]), truncateDay(submission.CreatedAt)),
		UpdatedAt:   truncateDay(submission.UpdatedAt),
		Homepage:    &homepage,
		StartLink:   stringValue(payload["startLink"]),
		Downloads:   downloadsFrom(payload["downloads"]),
		Steam:       steamLink,
		Media: catalog.Media{
			Cover:       reconcile.Image(reconcile.PlaceholderCover, stringValue(media["cover"]), steamHeader),
			Hero:        reconcile.Image(reconcile.PlaceholderHero, stringValue(media["hero"])),
			Icon:        reconcile.Image(reconcile.PlaceholderIcon, stringValue(media["icon"]), steamCapsule),
			Screenshots: reconcile.Screenshots(reconcile.PlaceholderScreenshot, stringList(media["screenshots"]), details.ScreenshotPaths()),
			Video:       reconcile.Video(stringValue(media["video"]), media["movies"], payload["movies"], steamMovies),
		},
	}

	// The media fallback pass also applies to freshly built records so the
	// templated store assets qualify before placeholders do.
	b.Normalize(ctx, record)
	return record
}

// Normalize folds the legacy tags alias into categories and re-resolves the
// media fallbacks for one record. It runs on every record of the merged
// catalog, including persisted ones untouched this run, so placeholder
// and fallback policy applies retroactively to old data.
func (b *Builder) Normalize(ctx context.Context, record *catalog.Record) {
	if !reconcile.MeaningfulList(record.Categories) {
		record.Categories = record.Tags
	}
	record.Categories = reconcile.CleanList(record.Categories)
	record.Tags = nil

	if record.Genres == nil {
		record.Genres = []string{}
	}
	if record.Downloads == nil {
		record.Downloads = map[string]any{}
	}

	appID := record.AppID()

	var assets steam.Assets
	var details *steam.Details
	if !appID.IsZero() {
		assets = steam.MediaAssets(appID.String())
		details = b.steam.Lookup(ctx, appID.String())
	}

	var steamHeader, steamCapsule string
	var steamMovies any
	if details != nil {
		steamHeader = details.HeaderImage
		steamCapsule = details.CapsuleImage
		steamMovies = details.Movies
	}

	media := &record.Media
	media.Cover = reconcile.Image(reconcile.PlaceholderCover, media.Cover, steamHeader, assets.Cover)
	media.Hero = reconcile.Image(reconcile.PlaceholderHero, media.Hero, assets.Hero)
	media.Icon = reconcile.Image(reconcile.PlaceholderIcon, media.Icon, steamCapsule, assets.Icon)
	media.Screenshots = reconcile.Screenshots(reconcile.PlaceholderScreenshot, media.Screenshots, details.ScreenshotPaths())
	media.Video = reconcile.Video(media.Video, media.Movies, record.Movies, steamMovies)
	media.Movies = nil
}

// extractAppID derives the store identifier from the payload: the top-level
// steamAppId field, falling back to steam.appid.
func extractAppID(payload map[string]any) catalog.AppID {
	if appID := catalog.AppIDFrom(payload["steamAppId"]); !appID.IsZero() {
		return appID
	}
	if steamMap := mapValue(payload["steam"]); steamMap != nil {
		return catalog.AppIDFrom(steamMap["appid"])
	}
	return catalog.AppID{}
}

// steamLinkFrom builds the canonical store linkage when an app id is known,
// else passes the submitted steam object through.
func steamLinkFrom(appID catalog.AppID, payload map[string]any) *catalog.SteamLink {
	if !appID.IsZero() {
		return &catalog.SteamLink{
			AppID:   appID,
			SteamDB: steam.SteamDBLink(appID.String()),
			Store:   steam.StoreLink(appID.String()),
		}
	}

	steamMap := mapValue(payload["steam"])
	if len(steamMap) == 0 {
		return nil
	}
	link := &catalog.SteamLink{
		AppID:   catalog.AppIDFrom(steamMap["appid"]),
		SteamDB: stringValue(steamMap["steamdb"]),
		Store:   stringValue(steamMap["store"]),
	}
	if link.AppID.IsZero() && link.SteamDB == "" && link.Store == "" {
		return nil
	}
	return link
}

// playersFrom reads the player capacity object, defaulting to solo play.
func playersFrom(v any) catalog.Players {
	players := mapValue(v)
	if len(players) == 0 {
		return catalog.DefaultPlayers()
	}
	return catalog.Players{
		Min: intValue(players["min"], 1),
		Max: intValue(players["max"], 1),
	}
}

// downloadsFrom passes the downloads object through, defaulting to empty.
func downloadsFrom(v any) map[string]any {
	if downloads := mapValue(v); downloads != nil {
		return downloads
	}
	return map[string]any{}
}
