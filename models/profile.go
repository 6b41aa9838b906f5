package models

// Result is the full profile snapshot served to callers, assembled from one
// validated summary plus two waves of optional attribute fetches.
type Result struct {
	Profile      ProfileInfo      `json:"profile"`
	IDs          IDSet            `json:"ids"`
	LevelInfo    LevelInfo        `json:"level_info"`
	FriendsCount int              `json:"friends_count"`
	Bans         BanInfo          `json:"bans"`
	Stats        Stats            `json:"stats"`
	RecentGames  []RecentGameInfo `json:"recent_games"`
	TopGames     []TopGameInfo    `json:"top_games"`
	FriendsList  []FriendInfo     `json:"friends_list"`
}

type ProfileInfo struct {
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar"`
	URL         string  `json:"url"`
	CreatedAt   string  `json:"created_at"`
	Country     string  `json:"country"`
	StatusText  string  `json:"status_text"`
	StatusLabel string  `json:"status_label"`
	HeroImage   *string `json:"hero_image"`
	FrameURL    *string `json:"frame_url"`
}

type IDSet struct {
	ID64 string `json:"id64"`
	ID3  string `json:"id3"`
	ID2  string `json:"id2"`
}

type LevelInfo struct {
	Level       int `json:"level"`
	XP          int `json:"xp"`
	XPNeeded    int `json:"xp_needed"`
	TotalBadges int `json:"total_badges"`
}

type BanInfo struct {
	VACBanned        bool   `json:"vac_banned"`
	CommunityBanned  bool   `json:"community_banned"`
	EconomyBan       string `json:"economy_ban"`
	GameBanCount     int    `json:"game_ban_count"`
	DaysSinceLastBan int    `json:"days_since_last_ban"`
}

type Stats struct {
	TotalGames       int     `json:"total_games"`
	TotalHours       float64 `json:"total_hours"`
	EstimatedValue   string  `json:"estimated_value"`
	AccountAge       string  `json:"account_age"`
	NeverPlayedCount int     `json:"never_played_count"`
	PlayedPercentage int     `json:"played_percentage"`
	AvgPlaytime      float64 `json:"avg_playtime"`
	PricePerHour     string  `json:"price_per_hour"`
	GamerClass       string  `json:"gamer_class"`
	CurrencyCode     string  `json:"currency_code"`
}

type RecentGameInfo struct {
	Name           string  `json:"name"`
	Playtime2Weeks float64 `json:"playtime_2weeks"`
	IconURL        string  `json:"icon_url"`
}

type TopGameInfo struct {
	Name          string              `json:"name"`
	AppID         int                 `json:"appid"`
	PlaytimeHours float64             `json:"playtime_hours"`
	IconURL       string              `json:"icon_url"`
	Achievement   *AchievementSummary `json:"achievement"`
}

// Achievement is nil when the stats call failed or the title has no
// achievement schema, so the field renders as JSON null.
type AchievementSummary struct {
	Total      int      `json:"total"`
	Unlocked   int      `json:"unlocked"`
	Percentage int      `json:"percentage"`
	Samples    []string `json:"samples"`
}

type FriendInfo struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	Avatar       string `json:"avatar"`
	ProfileURL   string `json:"profileurl"`
	PersonaState int    `json:"personastate"`
	StatusLabel  string `json:"status_label"`
}
