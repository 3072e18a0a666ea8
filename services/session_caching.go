package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"main/model"
)

// SessionCache is a Redis read-through cache in front of the session
// collection. Single sessions live until their own expiry; per-user
// session lists are cached briefly and invalidated on every write.
type SessionCache struct {
	client *redis.Client
}

var GlobalSessionCache *SessionCache

const userSessionsTTL = 5 * time.Minute

func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ctx := context.Background()
	return sc.client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err()
}

// GetSession returns (nil, nil) on a cache miss.
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	ctx := context.Background()
	data, err := sc.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.DeleteSession(sessionID)
		return nil, nil
	}
	return &session, nil
}

func (sc *SessionCache) DeleteSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	ctx := context.Background()
	return sc.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (sc *SessionCache) CacheUserSessions(userID string, sessions []*model.Session) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	ctx := context.Background()
	return sc.client.Set(ctx, userSessionsKey(userID), data, userSessionsTTL).Err()
}

// GetUserSessions returns (nil, nil) on a cache miss.
func (sc *SessionCache) GetUserSessions(userID string) ([]*model.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	ctx := context.Background()
	data, err := sc.client.Get(ctx, userSessionsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user sessions from cache: %w", err)
	}

	var sessions []*model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}
	return sessions, nil
}

// InvalidateUserSessions drops the cached list so the next read goes to
// the database.
func (sc *SessionCache) InvalidateUserSessions(userID string) {
	if userID == "" {
		return
	}
	ctx := context.Background()
	sc.client.Del(ctx, userSessionsKey(userID))
}

func (sc *SessionCache) IsConnected() bool {
	if sc == nil || sc.client == nil {
		return false
	}
	return sc.client.Ping(context.Background()).Err() == nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func userSessionsKey(userID string) string {
	return fmt.Sprintf("user_sessions:%s", userID)
}
