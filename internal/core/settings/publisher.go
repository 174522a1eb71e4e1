// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// # Change Broadcasting

// Publisher is the subset of [redis.Client] used to broadcast settings.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher broadcasts every settings change as JSON on a pub/sub channel
// so other reading surfaces can restyle themselves.
type RedisPublisher struct {
	client  Publisher
	channel string
	logger  *slog.Logger
}

// NewRedisPublisher constructs a [RedisPublisher] for channel.
func NewRedisPublisher(client Publisher, channel string, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// Listen is a [Listener]. Publish failures are logged and never surface to
// the caller that changed the settings.
func (publisher *RedisPublisher) Listen(ctx context.Context, settings UserSettings) {
	payload, err := json.Marshal(settings)
	if err != nil {
		publisher.logger.Error("settings_publish_encode_failed", slog.Any("error", err))
		return
	}

	receivers, err := publisher.client.Publish(context.WithoutCancel(ctx), publisher.channel, payload).Result()
	if err != nil {
		publisher.logger.Warn("settings_publish_failed",
			slog.String("channel", publisher.channel),
			slog.Any("error", err),
		)
		return
	}

	publisher.logger.Debug("settings_published",
		slog.String("channel", publisher.channel),
		slog.Int64("receivers", receivers),
	)
}
