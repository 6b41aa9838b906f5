package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"steamlens/models"
	"steamlens/utils"
)

const defaultAPIBaseURL = "https://api.steampowered.com"

const (
	playerSummariesPath    = "/ISteamUser/GetPlayerSummaries/v0002/"
	ownedGamesPath         = "/IPlayerService/GetOwnedGames/v0001/"
	recentlyPlayedPath     = "/IPlayerService/GetRecentlyPlayedGames/v0001/"
	badgesPath             = "/IPlayerService/GetBadges/v1/"
	playerBansPath         = "/ISteamUser/GetPlayerBans/v1/"
	profileItemsPath       = "/IPlayerService/GetProfileItemsEquipped/v1/"
	friendListPath         = "/ISteamUser/GetFriendList/v0001/"
	playerAchievementsPath = "/ISteamUserStats/GetPlayerAchievements/v0001/"
	resolveVanityPath      = "/ISteamUser/ResolveVanityURL/v0001/"
)

// Client is a thin typed wrapper over the Steam Web API. APIBaseURL and
// HTTPClient are exposed so tests can point it at a local server.
type Client struct {
	APIBaseURL string
	HTTPClient *http.Client
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIBaseURL: defaultAPIBaseURL,
		HTTPClient: utils.NewHTTPClient(),
		apiKey:     apiKey,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("key", c.apiKey)
	requestURL := fmt.Sprintf("%s%s?%s", c.APIBaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("steam: unexpected status %s for %s", res.Status, path)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// GetPlayerSummaries accepts up to 100 ids in a single call, which also
// serves the batched friend detail lookup.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs []string) ([]models.Player, error) {
	query := url.Values{"steamids": {strings.Join(steamIDs, ",")}}
	var out models.PlayerSummaryResponse
	if err := c.getJSON(ctx, playerSummariesPath, query, &out); err != nil {
		return nil, err
	}
	return out.Response.Players, nil
}

func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]models.OwnedGame, error) {
	query := url.Values{
		"steamid":                   {steamID},
		"format":                    {"json"},
		"include_appinfo":           {"true"},
		"include_played_free_games": {"false"},
	}
	var out models.OwnedGamesResponse
	if err := c.getJSON(ctx, ownedGamesPath, query, &out); err != nil {
		return nil, err
	}
	return out.Response.Games, nil
}

func (c *Client) GetRecentlyPlayed(ctx context.Context, steamID string, count int) ([]models.RecentGame, error) {
	query := url.Values{
		"steamid": {steamID},
		"format":  {"json"},
		"count":   {strconv.Itoa(count)},
	}
	var out models.RecentlyPlayedResponse
	if err := c.getJSON(ctx, recentlyPlayedPath, query, &out); err != nil {
		return nil, err
	}
	return out.Response.Games, nil
}

func (c *Client) GetBadges(ctx context.Context, steamID string) (models.Badges, error) {
	query := url.Values{"steamid": {steamID}}
	var out models.BadgesResponse
	if err := c.getJSON(ctx, badgesPath, query, &out); err != nil {
		return models.Badges{}, err
	}
	return out.Response, nil
}

func (c *Client) GetPlayerBans(ctx context.Context, steamID string) (models.PlayerBan, error) {
	query := url.Values{"steamids": {steamID}}
	var out models.PlayerBansResponse
	if err := c.getJSON(ctx, playerBansPath, query, &out); err != nil {
		return models.PlayerBan{}, err
	}
	if len(out.Players) == 0 {
		return models.PlayerBan{}, nil
	}
	return out.Players[0], nil
}

func (c *Client) GetEquippedProfileItems(ctx context.Context, steamID string) (models.ProfileItems, error) {
	query := url.Values{"steamid": {steamID}}
	var out models.ProfileItemsResponse
	if err := c.getJSON(ctx, profileItemsPath, query, &out); err != nil {
		return models.ProfileItems{}, err
	}
	return out.Response, nil
}

func (c *Client) GetFriendList(ctx context.Context, steamID string) ([]models.Friend, error) {
	query := url.Values{
		"steamid":      {steamID},
		"relationship": {"friend"},
	}
	var out models.FriendListResponse
	if err := c.getJSON(ctx, friendListPath, query, &out); err != nil {
		return nil, err
	}
	return out.FriendsList.Friends, nil
}

// GetPlayerAchievements returns a 400 with success=false for titles that
// have no achievement schema, which surfaces as an error here and degrades
// to a null summary upstream.
func (c *Client) GetPlayerAchievements(ctx context.Context, appID int, steamID string) ([]models.Achievement, error) {
	query := url.Values{
		"appid":   {strconv.Itoa(appID)},
		"steamid": {steamID},
	}
	var out models.PlayerAchievementsResponse
	if err := c.getJSON(ctx, playerAchievementsPath, query, &out); err != nil {
		return nil, err
	}
	return out.PlayerStats.Achievements, nil
}

func (c *Client) ResolveVanityURL(ctx context.Context, vanityName string) (models.VanityURL, error) {
	query := url.Values{"vanityurl": {vanityName}}
	var out models.VanityURLResponse
	if err := c.getJSON(ctx, resolveVanityPath, query, &out); err != nil {
		return models.VanityURL{}, err
	}
	return out.Response, nil
}
