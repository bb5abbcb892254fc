package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so a single node, cluster or miniredis-backed
// client can be handed to repositories
type Client interface {
	redis.UniversalClient
}
