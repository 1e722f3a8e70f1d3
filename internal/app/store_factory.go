package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shrimpsizemoose/frageverk/internal/session"
	"github.com/shrimpsizemoose/frageverk/internal/store"
	"github.com/shrimpsizemoose/frageverk/internal/store/postgres"
	"github.com/shrimpsizemoose/frageverk/internal/store/sqlite"
)

func NewStore(dsn string) (store.AccountStore, error) {
	if strings.HasPrefix(dsn, "postgres") {
		return postgres.NewPostgresStore(dsn)
	}
	return sqlite.NewSQLiteStore(dsn)
}

func NewSessionStore(config *Config) (session.Store, error) {
	ttl := time.Duration(config.Sessions.TTLMinutes) * time.Minute

	switch config.Sessions.Backend {
	case "redis":
		return session.NewRedisStore(config.Sessions.RedisURL, ttl)
	case "memory":
		return session.NewMemoryStore(ttl), nil
	default:
		return nil, fmt.Errorf("unknown session backend: %s", config.Sessions.Backend)
	}
}
