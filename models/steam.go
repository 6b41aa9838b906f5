package models

// Response shapes for the Steam Web API endpoints we consume. Only the
// fields we actually read are declared.

type PlayerSummaryResponse struct {
	Response PlayerList `json:"response"`
}

type PlayerList struct {
	Players []Player `json:"players"`
}

type Player struct {
	SteamID        string `json:"steamid"`
	PersonaName    string `json:"personaname"`
	ProfileURL     string `json:"profileurl"`
	Avatar         string `json:"avatar"`
	AvatarMedium   string `json:"avatarmedium"`
	AvatarFull     string `json:"avatarfull"`
	PersonaState   int    `json:"personastate"`
	GameExtraInfo  string `json:"gameextrainfo"`
	TimeCreated    int64  `json:"timecreated"`
	LastLogoff     int64  `json:"lastlogoff"`
	LocCountryCode string `json:"loccountrycode"`
}

type OwnedGamesResponse struct {
	Response OwnedGames `json:"response"`
}

type OwnedGames struct {
	GameCount int         `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url"`
}

type RecentlyPlayedResponse struct {
	Response RecentlyPlayed `json:"response"`
}

type RecentlyPlayed struct {
	TotalCount int          `json:"total_count"`
	Games      []RecentGame `json:"games"`
}

type RecentGame struct {
	AppID          int    `json:"appid"`
	Name           string `json:"name"`
	Playtime2Weeks int    `json:"playtime_2weeks"`
	ImgIconURL     string `json:"img_icon_url"`
}

type BadgesResponse struct {
	Response Badges `json:"response"`
}

type Badges struct {
	Badges                  []Badge `json:"badges"`
	PlayerLevel             int     `json:"player_level"`
	PlayerXP                int     `json:"player_xp"`
	PlayerXPNeededToLevelUp int     `json:"player_xp_needed_to_level_up"`
}

type Badge struct {
	BadgeID int `json:"badgeid"`
	Level   int `json:"level"`
}

// GetPlayerBans uses PascalCase keys unlike every other endpoint.
type PlayerBansResponse struct {
	Players []PlayerBan `json:"players"`
}

type PlayerBan struct {
	SteamID          string `json:"SteamId"`
	CommunityBanned  bool   `json:"CommunityBanned"`
	VACBanned        bool   `json:"VACBanned"`
	NumberOfVACBans  int    `json:"NumberOfVACBans"`
	DaysSinceLastBan int    `json:"DaysSinceLastBan"`
	NumberOfGameBans int    `json:"NumberOfGameBans"`
	EconomyBan       string `json:"EconomyBan"`
}

type ProfileItemsResponse struct {
	Response ProfileItems `json:"response"`
}

type ProfileItems struct {
	AvatarFrame ProfileItem `json:"avatar_frame"`
}

type ProfileItem struct {
	ImageLarge string `json:"image_large"`
	ImageSmall string `json:"image_small"`
}

type FriendListResponse struct {
	FriendsList FriendList `json:"friendslist"`
}

type FriendList struct {
	Friends []Friend `json:"friends"`
}

type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
}

type PlayerAchievementsResponse struct {
	PlayerStats PlayerStats `json:"playerstats"`
}

type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Achievements []Achievement `json:"achievements"`
	Success      bool          `json:"success"`
}

type Achievement struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}

type VanityURLResponse struct {
	Response VanityURL `json:"response"`
}

// Success is 1 when the vanity name matched an account and 42 when it did
// not, per the Steam API convention.
type VanityURL struct {
	SteamID string `json:"steamid"`
	Success int    `json:"success"`
	Message string `json:"message"`
}
