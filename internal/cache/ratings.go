package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/UpServices02/service-booking/internal/domain/review"
	"github.com/UpServices02/service-booking/internal/events"
)

const ratingTTL = 24 * time.Hour

type ProviderRating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingCache: média corrente do prestador, recalculada no banco
// no miss e invalidada a cada avaliação de cliente.
type RatingCache struct {
	rdb  *redis.Client
	repo review.Repository
}

func NewRatingCache(rdb *redis.Client, repo review.Repository) *RatingCache {
	return &RatingCache{rdb: rdb, repo: repo}
}

func ratingKey(providerID uint) string {
	return fmt.Sprintf("rating:provider:%d", providerID)
}

func (c *RatingCache) Get(ctx context.Context, providerID uint) (ProviderRating, error) {
	if raw, err := c.rdb.Get(ctx, ratingKey(providerID)).Result(); err == nil {
		var pr ProviderRating
		if jsonErr := json.Unmarshal([]byte(raw), &pr); jsonErr == nil {
			return pr, nil
		}
	}

	avg, count, err := c.repo.AverageForProvider(ctx, providerID)
	if err != nil {
		return ProviderRating{}, err
	}

	pr := ProviderRating{Average: avg, Count: count}
	if b, err := json.Marshal(pr); err == nil {
		c.rdb.Set(ctx, ratingKey(providerID), b, ratingTTL)
	}

	return pr, nil
}

func (c *RatingCache) Invalidate(ctx context.Context, providerID uint) {
	c.rdb.Del(ctx, ratingKey(providerID))
}

// --------------------------------------------------
// Sink de eventos: review_submitted derruba o cache
// --------------------------------------------------

type ratingMeta struct {
	ProviderID uint `json:"provider_id"`
}

type RatingInvalidationSink struct {
	cache *RatingCache
}

func NewRatingInvalidationSink(cache *RatingCache) *RatingInvalidationSink {
	return &RatingInvalidationSink{cache: cache}
}

func (s *RatingInvalidationSink) Handle(ev events.Event) error {
	if ev.Action != events.ReviewSubmitted {
		return nil
	}

	b, err := json.Marshal(ev.Metadata)
	if err != nil {
		return err
	}

	var meta ratingMeta
	if err := json.Unmarshal(b, &meta); err != nil {
		return err
	}

	if meta.ProviderID != 0 {
		s.cache.Invalidate(context.Background(), meta.ProviderID)
	}
	return nil
}
