package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
)

var _ appointment.SlotCache = (*RedisSlotCache)(nil)

const (
	defaultPrefix = "slots"
	generationTTL = 7 * 24 * time.Hour
)

var errStaleGeneration = errors.New("slot cache generation changed")

// RedisSlotCache guarda um hash por barbeiro/dia; cada campo é uma
// combinação duração:exclusão e o valor leva a geração em que foi
// calculado ("geração|10:00,10:30").
//
// A geração é "epoch.dia": o dia é um INCR por barbeiro/data feito em
// Invalidate e o epoch é global, incrementado em InvalidateAll.
type RedisSlotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

func NewRedisSlotCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *RedisSlotCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &RedisSlotCache{rdb: rdb, ttl: ttl, prefix: defaultPrefix, log: log}
}

// NewRedisClient abre o cliente a partir de uma URL redis://.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (c *RedisSlotCache) Get(ctx context.Context, key appointment.SlotKey) ([]string, string, bool) {
	pipe := c.rdb.Pipeline()
	gens := pipe.MGet(ctx, epochKey(c.prefix), generationKey(c.prefix, key.EmployeeID, key.Date))
	entry := pipe.HGet(ctx, hashKey(c.prefix, key.EmployeeID, key.Date), fieldKey(key))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn("slot cache get failed", "error", err)
		return nil, "", false
	}

	generation := joinGeneration(gens.Val())

	raw, err := entry.Result()
	if err != nil {
		return nil, generation, false
	}
	occupied, ok := decodeEntry(raw, generation)
	return occupied, generation, ok
}

func (c *RedisSlotCache) Set(ctx context.Context, key appointment.SlotKey, generation string, occupied []string) {
	if generation == "" {
		return
	}

	k := hashKey(c.prefix, key.EmployeeID, key.Date)
	watched := []string{epochKey(c.prefix), generationKey(c.prefix, key.EmployeeID, key.Date)}

	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		vals, err := tx.MGet(ctx, watched...).Result()
		if err != nil {
			return err
		}
		if joinGeneration(vals) != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, fieldKey(key), encodeEntry(generation, occupied))
			pipe.Expire(ctx, k, c.ttl)
			return nil
		})
		return err
	}, watched...)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.log.Debug("slot cache set skipped, day changed meanwhile", "key", k)
	default:
		c.log.Warn("slot cache set failed", "key", k, "error", err)
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, employeeID uint, date string) {
	gk := generationKey(c.prefix, employeeID, date)

	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, gk)
	pipe.Expire(ctx, gk, generationTTL)
	pipe.Del(ctx, hashKey(c.prefix, employeeID, date))
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn("slot cache invalidate failed", "key", gk, "error", err)
	}
}

// InvalidateAll é usado quando a duração de um serviço muda. O INCR do
// epoch já invalida tudo; o DEL dos hashes só libera memória.
func (c *RedisSlotCache) InvalidateAll(ctx context.Context) {
	if err := c.rdb.Incr(ctx, epochKey(c.prefix)).Err(); err != nil {
		c.log.Warn("slot cache epoch bump failed", "error", err)
	}

	iter := c.rdb.Scan(ctx, 0, c.prefix+":*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("slot cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("slot cache flush failed", "keys", len(keys), "error", err)
	}
}

func hashKey(prefix string, employeeID uint, date string) string {
	return fmt.Sprintf("%s:%d:%s", prefix, employeeID, date)
}

// as chaves de geração ficam fora de prefix:* para o SCAN não apagá-las
func generationKey(prefix string, employeeID uint, date string) string {
	return fmt.Sprintf("%sgen:%d:%s", prefix, employeeID, date)
}

func epochKey(prefix string) string {
	return prefix + "gen:epoch"
}

func fieldKey(key appointment.SlotKey) string {
	return fmt.Sprintf("%d:%d", key.Duration, key.ExcludingID)
}

// joinGeneration monta "epoch.dia" a partir do MGET; chave ausente vale 0.
func joinGeneration(vals []interface{}) string {
	parts := []string{"0", "0"}
	for i, v := range vals {
		if i >= len(parts) {
			break
		}
		if s, ok := v.(string); ok && s != "" {
			parts[i] = s
		}
	}
	return parts[0] + "." + parts[1]
}

func encodeEntry(generation string, occupied []string) string {
	return generation + "|" + strings.Join(occupied, ",")
}

func decodeEntry(raw, generation string) ([]string, bool) {
	gen, slots, ok := strings.Cut(raw, "|")
	if !ok || gen != generation {
		return nil, false
	}
	if slots == "" {
		return []string{}, true
	}
	return strings.Split(slots, ","), true
}
