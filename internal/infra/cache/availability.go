package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShuttleService/pkg/metrics"
)

const (
	departuresPrefix = "shuttle:departures:"
	generationKey    = departuresPrefix + "gen"
)

// AvailabilityCache кэш списков рейсов с доступностью мест.
// Ключи списков принадлежат поколению; любое изменение мест на рейсах начинает новое поколение
type AvailabilityCache struct {
	client  redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewAvailabilityCache создает кэш поверх клиента Redis
func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration, m *metrics.Metrics) *AvailabilityCache {
	return &AvailabilityCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

// DeparturesKey ключ списка рейсов за период в текущем поколении кэша.
// Ключ берется до чтения из базы: если кэш сбросили между чтением и записью,
// запоздавший Set попадет в старое поколение, которое никто уже не читает
func (c *AvailabilityCache) DeparturesKey(ctx context.Context, from, to string, routeID *int64) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: generation: %w", ErrCacheRead, err)
	}
	return departuresKey(gen, from, to, routeID), nil
}

func departuresKey(gen int64, from, to string, routeID *int64) string {
	route := "all"
	if routeID != nil {
		route = strconv.FormatInt(*routeID, 10)
	}
	return departuresPrefix + "v" + strconv.FormatInt(gen, 10) + ":" + from + ":" + to + ":" + route
}

// Get читает JSON значение. false без ошибки означает промах
func (c *AvailabilityCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncCacheLookup(false)
		return false, nil
	}
	if err != nil {
		c.metrics.IncCacheLookup(false)
		return false, fmt.Errorf("%w: Get %s: %w", ErrCacheRead, key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.metrics.IncCacheLookup(false)
		return false, fmt.Errorf("%w: Get %s - decode: %w", ErrCacheRead, key, err)
	}

	c.metrics.IncCacheLookup(true)
	return true, nil
}

// Set сохраняет значение в JSON с TTL кэша
func (c *AvailabilityCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set %s - encode: %w", ErrCacheWrite, key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set %s: %w", ErrCacheWrite, key, err)
	}

	return nil
}

// InvalidateDepartures начинает новое поколение ключей. Списки старых поколений
// становятся недостижимы и истекают по TTL
func (c *AvailabilityCache) InvalidateDepartures(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("%w: incr generation: %w", ErrCacheInvalidate, err)
	}
	return nil
}

// Noop используется, когда Redis выключен в конфигурации: всегда промах
type Noop struct{}

func (Noop) DeparturesKey(_ context.Context, from, to string, routeID *int64) (string, error) {
	return departuresKey(0, from, to, routeID), nil
}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Set(context.Context, string, interface{}) error { return nil }

func (Noop) InvalidateDepartures(context.Context) error { return nil }
