package shared

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"campushub/shared/cache"
	"campushub/shared/constant"
)

// BuildCacheKey joins key segments with the conventional ":" separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix. Callers run
// this in the background after mutations; a failed invalidation is logged and
// otherwise ignored because the entries expire by TTL anyway.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}
