package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"steamlens/models"
	"steamlens/rates"
)

func usd() rates.Rate {
	return rates.Rate{Rate: 1, Symbol: "$", Locale: "en_US"}
}

func idr() rates.Rate {
	return rates.Rate{Rate: 16000, Symbol: "Rp ", Locale: "id_ID"}
}

func TestTotalHours(t *testing.T) {
	games := []models.OwnedGame{
		{PlaytimeForever: 120},
		{PlaytimeForever: 60},
	}
	assert.Equal(t, 3.0, TotalHours(games))
}

func TestTotalHours_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalHours(nil))
}

func TestTotalHours_RoundsToOneDecimal(t *testing.T) {
	games := []models.OwnedGame{{PlaytimeForever: 50}}
	assert.Equal(t, 0.8, TotalHours(games))
}

func TestNeverPlayed(t *testing.T) {
	games := []models.OwnedGame{
		{PlaytimeForever: 0},
		{PlaytimeForever: 10},
		{PlaytimeForever: 0},
	}
	assert.Equal(t, 2, NeverPlayed(games))
}

func TestPlayedPercentage(t *testing.T) {
	games := []models.OwnedGame{
		{PlaytimeForever: 100},
		{PlaytimeForever: 30},
		{PlaytimeForever: 5},
		{PlaytimeForever: 0},
	}
	assert.Equal(t, 75, PlayedPercentage(games))
}

func TestPlayedPercentage_EmptyLibrary(t *testing.T) {
	assert.Equal(t, 0, PlayedPercentage(nil))
}

func TestAverageHours(t *testing.T) {
	assert.Equal(t, 2.5, AverageHours(10, 4))
	assert.Equal(t, 0.0, AverageHours(0, 0))
}

func TestGamerClass(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "Casual"},
		{500.0, "Casual"},
		{500.01, "Gamer"},
		{2000.0, "Gamer"},
		{2000.01, "Hardcore"},
		{5000.01, "Elite"},
		{10000.0, "Elite"},
		{10000.01, "No Life"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GamerClass(tc.hours), "hours=%v", tc.hours)
	}
}

func TestEstimatedValue_USD(t *testing.T) {
	assert.Equal(t, "$100", EstimatedValue(10, "USD", usd()))
}

func TestEstimatedValue_USDGrouping(t *testing.T) {
	assert.Equal(t, "$12,500", EstimatedValue(1250, "USD", usd()))
}

func TestEstimatedValue_IDRGrouping(t *testing.T) {
	assert.Equal(t, "Rp 1.600.000", EstimatedValue(10, "IDR", idr()))
}

func TestPricePerHour_ZeroHours(t *testing.T) {
	assert.Equal(t, "$0.00", PricePerHour(10, 0, "USD", usd()))
}

func TestPricePerHour_USD(t *testing.T) {
	assert.Equal(t, "$2.00", PricePerHour(10, 50, "USD", usd()))
}

func TestPricePerHour_IDRWholeUnits(t *testing.T) {
	// 10 games * $10 * 16000 = 1,600,000 over 50 hours
	assert.Equal(t, "Rp 32.000", PricePerHour(10, 50, "IDR", idr()))
}

func TestAccountAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.Add(-time.Duration(2*365.25*24) * time.Hour)
	assert.Equal(t, "2.0 Years", AccountAge(created, now))
}

func TestAccountAge_MissingTimestamp(t *testing.T) {
	assert.Equal(t, "N/A", AccountAge(time.Time{}, time.Now()))
}

func TestLegacyIDs(t *testing.T) {
	id3, id2 := LegacyIDs(76561197960265729)
	assert.Equal(t, "[U:1:1]", id3)
	assert.Equal(t, "STEAM_0:1:0", id2)
}

func TestLegacyIDs_BelowBase(t *testing.T) {
	// 17 digits but predates the individual-account ID space
	id3, id2 := LegacyIDs(10000000000000000)
	assert.Equal(t, "[U:1:0]", id3)
	assert.Equal(t, "STEAM_0:0:0", id2)
}

func TestLegacyIDs_EvenOffset(t *testing.T) {
	id3, id2 := LegacyIDs(76561198046402538)
	assert.Equal(t, "[U:1:86136810]", id3)
	assert.Equal(t, "STEAM_0:0:43068405", id2)
}
