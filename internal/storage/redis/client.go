// Package storage wraps the redis connection backing the client selection
// store.
package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

type Client struct {
	*redis.Client
}

// NewClient builds the selection keyspace client. The connection is lazy;
// call HealthCheck to verify it.
func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
