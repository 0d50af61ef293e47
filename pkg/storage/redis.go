package storage

import (
	"fmt"

	"github.com/go-redis/redis"
)

// NewRedis connects to the redis instance backing the listing cache and
// verifies the connection before handing out the client.
func NewRedis(host string, port int) (*redis.Client, error) {
	address := fmt.Sprintf("%s:%d", host, port)
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %v", address, err)
	}

	return client, nil
}
