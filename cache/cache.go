package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// ProfileTTL is short so repeat lookups within a burst are absorbed
	// without serving stale presence data for long.
	ProfileTTL = 60 * time.Second

	// VanityTTL is long because vanity name mappings rarely change.
	VanityTTL = 24 * time.Hour
)

// Store is a TTL key-value store fronting the aggregation pipeline. The
// pipeline never touches a concrete backend directly so it can be exercised
// with an in-process store in tests.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}

func ProfileKey(steamID, currencyCode string) string {
	return fmt.Sprintf("steam_profile_%s_%s", steamID, currencyCode)
}

func VanityKey(cleanInput string) string {
	return fmt.Sprintf("vanity_%s", cleanInput)
}
