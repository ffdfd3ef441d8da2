package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// Redis persists the best score as a string key and announces writes on a
// pub/sub channel, so every process sharing the server observes them
type Redis struct {
	client *redis.Client
	logger zerolog.Logger
}

// OpenRedis connects to the configured server and verifies it with a ping
func OpenRedis(cfg config.RedisConfig, logger zerolog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  parameter.RedisDialTimeout,
		ReadTimeout:  parameter.RedisIOTimeout,
		WriteTimeout: parameter.RedisIOTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), parameter.RedisDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("score store connected")

	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) current(ctx context.Context) (int, error) {
	raw, err := r.client.Get(ctx, parameter.BestScoreKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis: read best score: %w", err)
	}
	return parseScore(raw)
}

// ReadBestScore subscribes before reading so no write between the two is lost
func (r *Redis) ReadBestScore(ctx context.Context) (<-chan int, error) {
	sub := r.client.Subscribe(ctx, parameter.BestScoreChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis: subscribe: %w", err)
	}

	current, err := r.current(ctx)
	if err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan int, 1)
	out <- current
	msgs := sub.Channel()

	core.Go(func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				v, err := parseScore(msg.Payload)
				if err != nil {
					r.logger.Warn().Err(err).Msg("ignoring malformed best score notification")
					continue
				}
				offer(out, v)
			}
		}
	})
	return out, nil
}

func (r *Redis) WriteBestScore(ctx context.Context, score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	value := strconv.Itoa(score)
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, parameter.BestScoreKey, value, 0)
		pipe.Publish(ctx, parameter.BestScoreChannel, value)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: write best score: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
