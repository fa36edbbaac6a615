// Package cache keeps market sentiment answers between requests.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "sentiment:"

// Sentiment is a two level cache: process memory first, then Redis when a
// client is given. Redis failures degrade to a miss.
type Sentiment struct {
	local *gocache.Cache
	redis redis.Cmdable
	ttl   time.Duration
}

func NewSentiment(ttl time.Duration, redisClient redis.Cmdable) *Sentiment {
	return &Sentiment{
		local: gocache.New(ttl, 2*ttl),
		redis: redisClient,
		ttl:   ttl,
	}
}

func (s *Sentiment) Get(ctx context.Context, key string) (entity.MarketSentiment, bool) {
	if v, ok := s.local.Get(key); ok {
		if sentiment, ok := v.(entity.MarketSentiment); ok {
			return sentiment, true
		}
	}

	if s.redis == nil {
		return entity.MarketSentiment{}, false
	}

	raw, err := s.redis.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("redis.Get", logx.Error(err), slog.String(logx.FieldLocation, key))
		}

		return entity.MarketSentiment{}, false
	}

	var sentiment entity.MarketSentiment

	if err = json.Unmarshal(raw, &sentiment); err != nil {
		logger(ctx).Warn("json.Unmarshal", logx.Error(err), slog.String(logx.FieldLocation, key))

		return entity.MarketSentiment{}, false
	}

	s.local.Set(key, sentiment, gocache.DefaultExpiration)

	return sentiment, true
}

func (s *Sentiment) Set(ctx context.Context, key string, sentiment entity.MarketSentiment) {
	s.local.Set(key, sentiment, gocache.DefaultExpiration)

	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(sentiment)
	if err != nil {
		logger(ctx).Warn("json.Marshal", logx.Error(err))

		return
	}

	if err = s.redis.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		logger(ctx).Warn("redis.Set", logx.Error(err), slog.String(logx.FieldLocation, key))
	}
}
