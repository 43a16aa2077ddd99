package steam

import "fmt"

// URL templates keyed by app id. Media assets follow the store's static
// asset naming convention and need no network access to derive.
const (
	assetBaseURL  = "https://shared.akamai.steamstatic.com/store_item_assets/steam/apps/%s"
	steamDBAppURL = "https://steamdb.info/app/%s/"
	storeAppURL   = "https://store.steampowered.com/app/%s/"
)

// Assets is the deterministic media triple derived from an app id.
type Assets struct {
	Cover string
	Hero  string
	Icon  string
}

// MediaAssets derives the cover/hero/icon URLs for an app id. The result is
// meaningless for an empty id; callers must guard.
func MediaAssets(appID string) Assets {
	base := fmt.Sprintf(assetBaseURL, appID)
	return Assets{
		Cover: base + "/header.jpg",
		Hero:  base + "/library_hero.jpg",
		Icon:  base + "/capsule_231x87.jpg",
	}
}

// SteamDBLink returns the SteamDB page URL for an app id.
func SteamDBLink(appID string) string {
	return fmt.Sprintf(steamDBAppURL, appID)
}

// StoreLink returns the store page URL for an app id.
func StoreLink(appID string) string {
	return fmt.Sprintf(storeAppURL, appID)
}
