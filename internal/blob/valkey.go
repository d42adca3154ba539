// The Valkey (Redis-compatible) backend keeps the blob under a single key,
// mirroring the whole-value contract of the other backends.

package blob

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// blobKeyPrefix namespaces blob keys away from anything else sharing the
// Valkey instance.
const blobKeyPrefix = "blob:"

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// ValkeyStore stores the blob under a single Valkey key with no expiry.
type ValkeyStore struct {
	client *redis.Client
	key    string
}

// NewValkeyStore returns a blob store for the named blob on the given client.
func NewValkeyStore(client *redis.Client, name string) *ValkeyStore {
	return &ValkeyStore{client: client, key: blobKeyPrefix + name}
}

// Load fetches the blob value. A missing key reports ok=false, not an error.
func (s *ValkeyStore) Load(ctx context.Context) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("valkey get %s: %w", s.key, err)
	}
	return val, true, nil
}

// Save overwrites the blob value. The key never expires.
func (s *ValkeyStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("valkey set %s: %w", s.key, err)
	}
	return nil
}
