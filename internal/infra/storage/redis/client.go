// Package redis implements harvest.ResponseCache on top of a Redis server,
// so several machines running the harvester can share one response cache.
package redis

import (
	"context"

	"github.com/gabapcia/txharvest/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and checks the connection with PING,
// repeating the check through r while the server is unreachable.
//
// The connection is closed before returning an error.
func NewClient(ctx context.Context, addr, username, password string, db int, r retry.Retry) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	err := r.Execute(ctx, func() error {
		return conn.Ping(ctx).Err()
	})
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
