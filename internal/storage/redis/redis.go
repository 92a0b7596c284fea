package redis

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Client typed wrapper above redis with an async saver
type Client[V any] struct {
	rdb       *goredis.Client
	prefix    string
	ttl       time.Duration
	marshal   func(V) (string, error)
	unmarshal func(string) (V, error)
	saveChan  chan redisEntity[V]
	ctx       context.Context
}

type redisEntity[V any] struct {
	key   string
	value V
}

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every key of this client
	Prefix   string
	TTL      time.Duration
	ChanSize int
}

func NewClient[V any](ctx context.Context,
	opts Options,
	marshal func(V) (string, error),
	unmarshal func(string) (V, error),
) *Client[V] {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	client := &Client[V]{
		rdb:       rdb,
		prefix:    opts.Prefix,
		ttl:       opts.TTL,
		marshal:   marshal,
		unmarshal: unmarshal,
		saveChan:  make(chan redisEntity[V], opts.ChanSize),
		ctx:       ctx,
	}

	go client.runUpdater(ctx)

	return client
}

func (c *Client[V]) key(k string) string {
	return c.prefix + k
}

func (c *Client[V]) Set(ctx context.Context, key string, value V, expiration time.Duration) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(key), strValue, expiration).Err()
}

func (c *Client[V]) Get(ctx context.Context, key string) (V, error) {
	strValue, err := c.rdb.Get(ctx, c.key(key)).Result()
	if err != nil {
		var zero V
		return zero, err
	}
	return c.unmarshal(strValue)
}

// Update async save with the client ttl
func (c *Client[V]) Update(keys []string, values []V) {
	for i := range values {
		entity := redisEntity[V]{key: keys[i], value: values[i]}
		select {
		case c.saveChan <- entity:
		default:
			go func(e redisEntity[V]) {
				select {
				case c.saveChan <- e:
				case <-c.ctx.Done():
				}
			}(entity)
		}
	}
}

// BatchGet returns decoded values and keys that are missing or undecodable
func (c *Client[V]) BatchGet(ctx context.Context, keys []string) ([]V, []string, error) {
	if len(keys) == 0 {
		return []V{}, []string{}, nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, c.key(k))
	}

	results, err := c.rdb.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, nil, err
	}

	res := make([]V, 0, len(results))
	notFound := make([]string, 0)
	for i, r := range results {
		str, ok := r.(string)
		if !ok {
			notFound = append(notFound, keys[i])
			continue
		}
		val, err := c.unmarshal(str)
		if err != nil {
			log.Warn().Err(err).Str("key", keys[i]).Msg("couldn't decode cached value")
			notFound = append(notFound, keys[i])
			continue
		}
		res = append(res, val)
	}
	log.Debug().Int("hit", len(res)).Int("miss", len(notFound)).Msg("redis cache lookup")
	return res, notFound, nil
}

func (c *Client[V]) Close() error {
	return c.rdb.Close()
}

func (c *Client[V]) runUpdater(ctx context.Context) {
	for {
		select {
		case entity := <-c.saveChan:
			if err := c.Set(ctx, entity.key, entity.value, c.ttl); err != nil {
				log.Warn().Err(err).Str("key", entity.key).Msg("couldn't save to redis")
			}
		case <-ctx.Done():
			return
		}
	}
}
