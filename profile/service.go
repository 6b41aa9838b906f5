package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/singleflight"

	"steamlens/cache"
	"steamlens/models"
	"steamlens/rates"
	"steamlens/stats"
	"steamlens/steam"
)

var (
	ErrInvalidIdentifier   = errors.New("identifier is not a 17 digit steam id")
	ErrIdentifierNotFound  = errors.New("identifier could not be resolved")
	ErrProfilePrivate      = errors.New("profile is private")
	ErrUpstreamUnavailable = errors.New("steam api is unavailable")
)

const (
	// friendDetailLimit caps the second friend lookup to bound its URL
	// length and cost, not to approximate the friend count.
	friendDetailLimit = 12

	topGameLimit       = 5
	achievementSamples = 5
	recentGameCount    = 3
)

const (
	heroImageTemplate = "https://steamcdn-a.akamaihd.net/steam/apps/%d/library_hero.jpg"
	gameIconTemplate  = "http://media.steampowered.com/steamcommunity/public/images/apps/%d/%s.jpg"
	frameImageBaseURL = "https://community.cloudflare.steamstatic.com/economy/image/"
)

const (
	statusOK      = "ok"
	statusPrivate = "private"
)

// envelope is the cached representation of a lookup outcome. A private
// profile is a stable fact for the TTL window so it is cached too; hard
// upstream failures are never written.
type envelope struct {
	Status string         `json:"status"`
	Result *models.Result `json:"result,omitempty"`
}

// Service wires identifier resolution, the aggregation pipeline and the
// read-through cache behind a single query surface.
type Service struct {
	client *steam.Client
	store  cache.Store
	table  rates.Table
	group  singleflight.Group
	now    func() time.Time
}

func New(client *steam.Client, store cache.Store, table rates.Table) *Service {
	return &Service{
		client: client,
		store:  store,
		table:  table,
		now:    time.Now,
	}
}

// ResolveIdentifier normalises free-form input (raw ID, vanity name or a
// full profile URL) into a 64 bit Steam ID. 17 digit numeric input is
// returned as-is without touching the network.
func (s *Service) ResolveIdentifier(ctx context.Context, raw string) (string, error) {
	clean := cleanIdentifier(raw)
	if clean == "" {
		return "", ErrInvalidIdentifier
	}
	if isSteamID64(clean) {
		return clean, nil
	}

	key := cache.VanityKey(clean)
	if cached, ok := s.store.Get(ctx, key); ok {
		return cached, nil
	}

	resolved, err := s.client.ResolveVanityURL(ctx, clean)
	if err != nil {
		slog.Warn("Vanity resolution failed",
			slog.String("error", err.Error()),
			slog.String("input", clean),
		)
		return "", ErrIdentifierNotFound
	}
	if resolved.Success != 1 || resolved.SteamID == "" {
		return "", ErrIdentifierNotFound
	}

	s.store.Set(ctx, key, resolved.SteamID, cache.VanityTTL)
	return resolved.SteamID, nil
}

// GetProfile returns the aggregated snapshot for a resolved ID, serving
// repeat lookups from the cache. Concurrent misses on the same key collapse
// into a single upstream computation.
func (s *Service) GetProfile(ctx context.Context, steamID, currencyCode string) (*models.Result, error) {
	if !isSteamID64(steamID) {
		return nil, ErrInvalidIdentifier
	}
	code, rate := s.table.Lookup(currencyCode)
	key := cache.ProfileKey(steamID, code)

	// The shared computation runs on a detached context so one caller
	// hanging up doesn't fail everyone waiting on the same key. The HTTP
	// client timeout still bounds the detached work.
	ch := s.group.DoChan(key, func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), key, steamID, code, rate)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Result), nil
	}
}

// lookup is the single-flight body: serve from the cache when possible,
// otherwise aggregate and cache the outcome.
func (s *Service) lookup(ctx context.Context, key, steamID, code string, rate rates.Rate) (*models.Result, error) {
	if raw, ok := s.store.Get(ctx, key); ok {
		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err == nil {
			if env.Status == statusPrivate {
				return nil, ErrProfilePrivate
			}
			if env.Status == statusOK && env.Result != nil {
				return env.Result, nil
			}
		}
		// unreadable entry, fall through and recompute
	}

	result, err := s.aggregate(ctx, steamID, code, rate)
	if errors.Is(err, ErrProfilePrivate) {
		if raw, encErr := json.Marshal(envelope{Status: statusPrivate}); encErr == nil {
			s.store.Set(ctx, key, string(raw), cache.ProfileTTL)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if raw, encErr := json.Marshal(envelope{Status: statusOK, Result: result}); encErr == nil {
		s.store.Set(ctx, key, string(raw), cache.ProfileTTL)
	}
	return result, nil
}

// aggregate runs the full pipeline: validate the profile, fan out over the
// independent attribute endpoints, fetch friend details, enrich the top
// games with achievements and assemble the snapshot.
func (s *Service) aggregate(ctx context.Context, steamID, code string, rate rates.Rate) (*models.Result, error) {
	players, err := s.client.GetPlayerSummaries(ctx, []string{steamID})
	if err != nil {
		slog.Error("Profile summary fetch failed",
			slog.String("error", err.Error()),
			slog.String("steam_id", steamID),
		)
		return nil, ErrUpstreamUnavailable
	}
	if len(players) == 0 {
		return nil, ErrProfilePrivate
	}
	player := players[0]

	attrs := s.fetchAttributes(ctx, steamID)
	friendsList := s.fetchFriendDetails(ctx, attrs.friends)
	topGames, heroImage := s.enrichTopGames(ctx, steamID, attrs.games)

	return s.assemble(player, attrs, friendsList, topGames, heroImage, steamID, code, rate), nil
}

// attributes holds the results of the first concurrent wave. Every member
// is optional and degrades to its zero value.
type attributes struct {
	games   []models.OwnedGame
	recent  []models.RecentGame
	badges  models.Badges
	bans    models.PlayerBan
	items   models.ProfileItems
	friends []models.Friend
}

func (s *Service) fetchAttributes(ctx context.Context, steamID string) attributes {
	var (
		attrs attributes
		wg    sync.WaitGroup
	)

	// Each task writes a distinct field so no lock is needed.
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				slog.Warn("Attribute fetch degraded",
					slog.String("attribute", name),
					slog.String("error", err.Error()),
					slog.String("steam_id", steamID),
				)
			}
		}()
	}

	fetch("owned_games", func() error {
		games, err := s.client.GetOwnedGames(ctx, steamID)
		if err != nil {
			return err
		}
		attrs.games = games
		return nil
	})
	fetch("recent_games", func() error {
		recent, err := s.client.GetRecentlyPlayed(ctx, steamID, recentGameCount)
		if err != nil {
			return err
		}
		attrs.recent = recent
		return nil
	})
	fetch("badges", func() error {
		badges, err := s.client.GetBadges(ctx, steamID)
		if err != nil {
			return err
		}
		attrs.badges = badges
		return nil
	})
	fetch("bans", func() error {
		bans, err := s.client.GetPlayerBans(ctx, steamID)
		if err != nil {
			return err
		}
		attrs.bans = bans
		return nil
	})
	fetch("profile_items", func() error {
		items, err := s.client.GetEquippedProfileItems(ctx, steamID)
		if err != nil {
			return err
		}
		attrs.items = items
		return nil
	})
	fetch("friend_ids", func() error {
		friends, err := s.client.GetFriendList(ctx, steamID)
		if err != nil {
			return err
		}
		attrs.friends = friends
		return nil
	})

	wg.Wait()
	return attrs
}

// fetchFriendDetails looks up summaries for the first friends in upstream
// order. A failure degrades to an empty list; the overall friend count is
// carried separately.
func (s *Service) fetchFriendDetails(ctx context.Context, friends []models.Friend) []models.FriendInfo {
	if len(friends) == 0 {
		return []models.FriendInfo{}
	}

	ids := make([]string, 0, friendDetailLimit)
	for _, friend := range friends {
		if len(ids) == friendDetailLimit {
			break
		}
		ids = append(ids, friend.SteamID)
	}

	players, err := s.client.GetPlayerSummaries(ctx, ids)
	if err != nil {
		slog.Warn("Friend detail fetch degraded",
			slog.String("error", err.Error()),
		)
		return []models.FriendInfo{}
	}

	details := make([]models.FriendInfo, 0, len(players))
	for _, player := range players {
		details = append(details, models.FriendInfo{
			SteamID:      player.SteamID,
			PersonaName:  player.PersonaName,
			Avatar:       player.AvatarMedium,
			ProfileURL:   player.ProfileURL,
			PersonaState: player.PersonaState,
			StatusLabel:  friendStatusLabel(player),
		})
	}
	return details
}

func friendStatusLabel(player models.Player) string {
	switch {
	case player.GameExtraInfo != "":
		return "In-Game"
	case player.PersonaState == 1:
		return "Online"
	case player.PersonaState > 1:
		return "Busy"
	default:
		return "Offline"
	}
}

// enrichTopGames ranks the library by playtime, keeps the top titles and
// fans out one achievement lookup per title. The hero background comes from
// the single most played title.
func (s *Service) enrichTopGames(ctx context.Context, steamID string, games []models.OwnedGame) ([]models.TopGameInfo, *string) {
	if len(games) == 0 {
		return []models.TopGameInfo{}, nil
	}

	ranked := make([]models.OwnedGame, len(games))
	copy(ranked, games)
	// Stable so ties keep the upstream ordering.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PlaytimeForever > ranked[j].PlaytimeForever
	})
	if len(ranked) > topGameLimit {
		ranked = ranked[:topGameLimit]
	}

	hero := fmt.Sprintf(heroImageTemplate, ranked[0].AppID)

	tasks := make(map[int]steam.Task[[]models.Achievement], len(ranked))
	for _, game := range ranked {
		appID := game.AppID
		tasks[appID] = func(ctx context.Context) ([]models.Achievement, error) {
			return s.client.GetPlayerAchievements(ctx, appID, steamID)
		}
	}
	achievements := steam.Pool(ctx, tasks)

	topGames := make([]models.TopGameInfo, 0, len(ranked))
	for _, game := range ranked {
		topGames = append(topGames, models.TopGameInfo{
			Name:          game.Name,
			AppID:         game.AppID,
			PlaytimeHours: stats.Hours(game.PlaytimeForever),
			IconURL:       fmt.Sprintf(gameIconTemplate, game.AppID, game.ImgIconURL),
			Achievement:   summarizeAchievements(achievements[game.AppID]),
		})
	}
	return topGames, &hero
}

func summarizeAchievements(list []models.Achievement) *models.AchievementSummary {
	if len(list) == 0 {
		return nil
	}
	unlocked := 0
	samples := make([]string, 0, achievementSamples)
	for _, achievement := range list {
		if achievement.Achieved != 1 {
			continue
		}
		unlocked++
		if len(samples) < achievementSamples {
			samples = append(samples, achievement.APIName)
		}
	}
	percentage := int(math.Round(float64(unlocked) / float64(len(list)) * 100))
	return &models.AchievementSummary{
		Total:      len(list),
		Unlocked:   unlocked,
		Percentage: percentage,
		Samples:    samples,
	}
}

func (s *Service) assemble(player models.Player, attrs attributes, friendsList []models.FriendInfo, topGames []models.TopGameInfo, heroImage *string, steamID, code string, rate rates.Rate) *models.Result {
	totalHours := stats.TotalHours(attrs.games)
	totalGames := len(attrs.games)

	creationDate := "N/A"
	accountAge := "N/A"
	if player.TimeCreated > 0 {
		created := time.Unix(player.TimeCreated, 0).UTC()
		creationDate = created.Format("02 Jan 2006")
		accountAge = stats.AccountAge(created, s.now())
	}

	statusLabel := presenceLabel(player.PersonaState)
	statusText := statusLabel
	if player.PersonaState == 0 {
		lastSeen := "Unknown"
		if player.LastLogoff > 0 {
			lastSeen = humanize.Time(time.Unix(player.LastLogoff, 0))
		}
		statusText = fmt.Sprintf("Offline (%s)", lastSeen)
	}
	if player.GameExtraInfo != "" {
		statusText = "Playing: " + player.GameExtraInfo
		statusLabel = "In-Game"
	}

	country := player.LocCountryCode
	if country == "" {
		country = "World"
	}

	var frameURL *string
	if hash := frameImageHash(attrs.items); hash != "" {
		frame := frameImageBaseURL + hash
		frameURL = &frame
	}

	economyBan := attrs.bans.EconomyBan
	if economyBan == "" {
		economyBan = "none"
	}

	recentGames := make([]models.RecentGameInfo, 0, len(attrs.recent))
	for _, game := range attrs.recent {
		recentGames = append(recentGames, models.RecentGameInfo{
			Name:           game.Name,
			Playtime2Weeks: stats.Hours(game.Playtime2Weeks),
			IconURL:        fmt.Sprintf(gameIconTemplate, game.AppID, game.ImgIconURL),
		})
	}

	// steamID is already validated as purely numeric.
	id64, _ := strconv.ParseUint(steamID, 10, 64)
	id3, id2 := stats.LegacyIDs(id64)

	return &models.Result{
		Profile: models.ProfileInfo{
			Name:        player.PersonaName,
			Avatar:      player.AvatarFull,
			URL:         player.ProfileURL,
			CreatedAt:   creationDate,
			Country:     country,
			StatusText:  statusText,
			StatusLabel: statusLabel,
			HeroImage:   heroImage,
			FrameURL:    frameURL,
		},
		IDs: models.IDSet{
			ID64: steamID,
			ID3:  id3,
			ID2:  id2,
		},
		LevelInfo: models.LevelInfo{
			Level:       attrs.badges.PlayerLevel,
			XP:          attrs.badges.PlayerXP,
			XPNeeded:    attrs.badges.PlayerXPNeededToLevelUp,
			TotalBadges: len(attrs.badges.Badges),
		},
		FriendsCount: len(attrs.friends),
		Bans: models.BanInfo{
			VACBanned:        attrs.bans.VACBanned,
			CommunityBanned:  attrs.bans.CommunityBanned,
			EconomyBan:       economyBan,
			GameBanCount:     attrs.bans.NumberOfGameBans,
			DaysSinceLastBan: attrs.bans.DaysSinceLastBan,
		},
		Stats: models.Stats{
			TotalGames:       totalGames,
			TotalHours:       totalHours,
			EstimatedValue:   stats.EstimatedValue(totalGames, code, rate),
			AccountAge:       accountAge,
			NeverPlayedCount: stats.NeverPlayed(attrs.games),
			PlayedPercentage: stats.PlayedPercentage(attrs.games),
			AvgPlaytime:      stats.AverageHours(totalHours, totalGames),
			PricePerHour:     stats.PricePerHour(totalGames, totalHours, code, rate),
			GamerClass:       stats.GamerClass(totalHours),
			CurrencyCode:     code,
		},
		RecentGames: recentGames,
		TopGames:    topGames,
		FriendsList: friendsList,
	}
}

func presenceLabel(state int) string {
	switch state {
	case 0:
		return "Offline"
	case 1:
		return "Online"
	case 2:
		return "Busy"
	case 3:
		return "Away"
	case 4:
		return "Snooze"
	default:
		return "Online"
	}
}

func frameImageHash(items models.ProfileItems) string {
	if items.AvatarFrame.ImageLarge != "" {
		return items.AvatarFrame.ImageLarge
	}
	return items.AvatarFrame.ImageSmall
}

// cleanIdentifier trims whitespace and keeps the last path segment so full
// profile URLs and trailing slashes resolve the same as bare input.
func cleanIdentifier(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimRight(clean, "/")
	if i := strings.LastIndexByte(clean, '/'); i >= 0 {
		clean = clean[i+1:]
	}
	return clean
}

func isSteamID64(input string) bool {
	if len(input) != 17 {
		return false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
