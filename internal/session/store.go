// Package session owns the interactive session: the identity decoded at
// login, the server-issued auth token, and the role driving navigation.
// A session is populated at login, read on every protected request, and
// cleared at logout; nothing about it survives past its TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/config"
	"github.com/providesk/helpdesk-gateway/internal/domain"
)

const keyPrefix = "session:"

// ErrNotFound reports a missing or expired session.
var ErrNotFound = errors.New("session not found")

// Session is the state carried across one signed-in interaction.
type Session struct {
	ID            string                `json:"id"`
	Profile       Profile               `json:"profile"`
	AuthToken     string                `json:"auth_token"`
	Role          domain.Role           `json:"role"`
	Organizations []domain.Organization `json:"organizations"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Authenticated reports whether the backend has issued an auth token; only
// authenticated sessions may reach the dashboard.
func (s *Session) Authenticated() bool {
	return s != nil && s.AuthToken != ""
}

// DefaultOrganization returns the profile's first organization, if any,
// used to seed a new draft's organization scope.
func (s *Session) DefaultOrganization() string {
	if s == nil || len(s.Organizations) == 0 {
		return ""
	}
	return s.Organizations[0].ID
}

// Store persists sessions in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis using the provided configuration.
func NewStore(cfg config.SessionConfig, logger *zap.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Store{client: client, ttl: cfg.TTL()}
}

// Save writes the session, assigning an id when absent.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sess.ID, raw, s.ttl).Err()
}

// Get loads a session by id.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete clears a session at logout.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

// Close closes the underlying client.
func (s *Store) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}

// Ping verifies Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("redis client not configured")
	}
	return s.client.Ping(ctx).Err()
}
