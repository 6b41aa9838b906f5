package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"steamlens/models"
	"steamlens/rates"
)

const (
	// BaseID is subtracted from a 64 bit Steam ID to derive the account
	// offset used by the legacy ID formats.
	BaseID uint64 = 76561197960265728

	// BasePriceUSD is the fixed per-title price used for library valuation.
	BasePriceUSD = 10
)

// Hours converts playtime minutes to hours rounded to one decimal.
func Hours(minutes int) float64 {
	return round1(float64(minutes) / 60)
}

func TotalHours(games []models.OwnedGame) float64 {
	total := 0
	for _, game := range games {
		total += game.PlaytimeForever
	}
	return Hours(total)
}

func NeverPlayed(games []models.OwnedGame) int {
	count := 0
	for _, game := range games {
		if game.PlaytimeForever == 0 {
			count++
		}
	}
	return count
}

// PlayedPercentage is 0 for an empty library rather than a division by zero.
func PlayedPercentage(games []models.OwnedGame) int {
	if len(games) == 0 {
		return 0
	}
	played := len(games) - NeverPlayed(games)
	return int(math.Round(float64(played) / float64(len(games)) * 100))
}

func AverageHours(totalHours float64, totalGames int) float64 {
	if totalGames == 0 {
		return 0
	}
	return round1(totalHours / float64(totalGames))
}

func EstimatedValue(totalGames int, code string, rate rates.Rate) string {
	total := float64(totalGames) * BasePriceUSD * rate.Rate
	return rate.Symbol + formatNumber(total, 0, code)
}

// PricePerHour is rendered with two decimals except for IDR, whose amounts
// are large enough that whole units suffice.
func PricePerHour(totalGames int, totalHours float64, code string, rate rates.Rate) string {
	total := float64(totalGames) * BasePriceUSD * rate.Rate
	var perHour float64
	if totalHours > 0 {
		perHour = total / totalHours
	}
	if code == rates.DefaultCode {
		return rate.Symbol + formatNumber(perHour, 0, code)
	}
	return rate.Symbol + formatNumber(perHour, 2, code)
}

func AccountAge(created time.Time, now time.Time) string {
	if created.IsZero() {
		return "N/A"
	}
	years := now.Sub(created).Hours() / 24 / 365.25
	return strconv.FormatFloat(round1(years), 'f', 1, 64) + " Years"
}

// GamerClass maps total hours to a tier, the highest matching threshold
// winning.
func GamerClass(totalHours float64) string {
	switch {
	case totalHours > 10000:
		return "No Life"
	case totalHours > 5000:
		return "Elite"
	case totalHours > 2000:
		return "Hardcore"
	case totalHours > 500:
		return "Gamer"
	default:
		return "Casual"
	}
}

// LegacyIDs derives the bracketed steamID3 and two-part steamID2 formats
// from a 64 bit ID. IDs below the individual-account base have no legacy
// form, so they map to the zero offset rather than wrapping around.
func LegacyIDs(steamID64 uint64) (string, string) {
	if steamID64 < BaseID {
		return "[U:1:0]", "STEAM_0:0:0"
	}
	offset := steamID64 - BaseID
	id3 := fmt.Sprintf("[U:1:%d]", offset)
	id2 := fmt.Sprintf("STEAM_0:%d:%d", offset%2, offset/2)
	return id3, id2
}

// formatNumber renders an amount with explicit digit grouping: IDR uses
// dot-grouped thousands with a comma decimal mark, every other currency the
// reverse. Grouping is enforced here instead of relying on locale detection
// so output is stable across environments.
func formatNumber(value float64, decimals int, code string) string {
	group, point := ",", "."
	if code == rates.DefaultCode {
		group, point = ".", ","
	}

	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	intPart, fracPart := formatted, ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart, fracPart = formatted[:i], formatted[i+1:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteByte(intPart[i])
	}
	if fracPart != "" {
		b.WriteString(point)
		b.WriteString(fracPart)
	}
	return b.String()
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
