package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/dailyworkout/internal/storage/postgres"
	"github.com/julianstephens/dailyworkout/internal/storage/redis"
	"github.com/julianstephens/dailyworkout/internal/storage/sqlite"
	"github.com/julianstephens/dailyworkout/internal/utils"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendJSON     Backend = "json"
)

// Detect picks the backend for a --config value.
func Detect(config string) Backend {
	switch {
	case strings.HasPrefix(config, "redis://"), strings.HasPrefix(config, "rediss://"):
		return BackendRedis
	case strings.HasPrefix(config, "postgres://"), strings.HasPrefix(config, "postgresql://"):
		return BackendPostgres
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return BackendJSON
	case postgres.IsConnString(config) && strings.Contains(config, "="):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// Open returns the provider for config without connecting to it.
func Open(config string) (Provider, error) {
	switch Detect(config) {
	case BackendRedis:
		return redis.New(config), nil
	case BackendPostgres:
		return postgres.New(config), nil
	case BackendJSON:
		path, err := utils.ExpandPath(config)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		return NewJSONStore(path), nil
	default:
		path, err := utils.ExpandPath(config)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		return sqlite.NewStore(path), nil
	}
}

// HasEmbeddedCredentials reports whether a postgres or redis connection string
// carries a password. File paths never do.
func HasEmbeddedCredentials(config string) bool {
	switch Detect(config) {
	case BackendPostgres:
		return postgres.HasEmbeddedCredentials(config)
	case BackendRedis:
		u, err := url.Parse(config)
		if err != nil || u.User == nil {
			return false
		}
		_, isSet := u.User.Password()
		return isSet
	default:
		return false
	}
}
