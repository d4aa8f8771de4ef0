package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adaptive-coach-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// WorkingRepository stores session-scoped conversation state in Redis with a
// TTL per (user, session) key. When Redis is unavailable it degrades to an
// in-process go-cache store with the same expiry, so a single-node deployment
// keeps working.
type WorkingRepository struct {
	rdb        *redis.Client
	fallback   *cache.Cache
	sessionTTL time.Duration
	maxTurns   int
	useRedis   bool
}

func NewWorkingRepository(rdb *redis.Client, sessionTTL time.Duration, maxTurns int) *WorkingRepository {
	r := &WorkingRepository{
		rdb:        rdb,
		fallback:   cache.New(sessionTTL, 10*time.Minute),
		sessionTTL: sessionTTL,
		maxTurns:   maxTurns,
		useRedis:   rdb != nil,
	}
	if r.useRedis {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			r.useRedis = false
		}
	}
	return r
}

func (r *WorkingRepository) key(userId, sessionId uuid.UUID) string {
	return fmt.Sprintf("working_memory:%s:%s", userId, sessionId)
}

// Get returns the session state, or nil if absent/expired.
func (r *WorkingRepository) Get(ctx context.Context, userId, sessionId uuid.UUID) (*entity.WorkingSession, error) {
	key := r.key(userId, sessionId)

	if !r.useRedis {
		if x, found := r.fallback.Get(key); found {
			session := x.(entity.WorkingSession)
			return &session, nil
		}
		return nil, nil
	}

	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session entity.WorkingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendTurn adds one conversation turn, creating the session if needed.
func (r *WorkingRepository) AppendTurn(ctx context.Context, userId, sessionId uuid.UUID, role, content string) error {
	session, err := r.Get(ctx, userId, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		session = &entity.WorkingSession{UserId: userId, SessionId: sessionId}
	}

	session.Conversation = append(session.Conversation, entity.ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})

	// Oldest turns roll off once the conversation exceeds the cap.
	if r.maxTurns > 0 && len(session.Conversation) > r.maxTurns {
		session.Conversation = session.Conversation[len(session.Conversation)-r.maxTurns:]
	}

	return r.save(ctx, session)
}

// RecentTurns returns up to count most recent turns, oldest first.
func (r *WorkingRepository) RecentTurns(ctx context.Context, userId, sessionId uuid.UUID, count int) ([]entity.ConversationTurn, error) {
	session, err := r.Get(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil || len(session.Conversation) == 0 {
		return nil, nil
	}

	turns := session.Conversation
	if count > 0 && len(turns) > count {
		turns = turns[len(turns)-count:]
	}
	return turns, nil
}

// SetActiveAgent records which responder is handling the session.
func (r *WorkingRepository) SetActiveAgent(ctx context.Context, userId, sessionId uuid.UUID, agent string) error {
	session, err := r.Get(ctx, userId, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		session = &entity.WorkingSession{UserId: userId, SessionId: sessionId}
	}

	session.CurrentAgent = agent
	return r.save(ctx, session)
}

// SetPendingContext stores free-form context (retrieved docs, tool results).
func (r *WorkingRepository) SetPendingContext(ctx context.Context, userId, sessionId uuid.UUID, pending map[string]interface{}) error {
	session, err := r.Get(ctx, userId, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		session = &entity.WorkingSession{UserId: userId, SessionId: sessionId}
	}

	session.PendingContext = pending
	return r.save(ctx, session)
}

// Clear drops the session state. Returns true if something was removed.
func (r *WorkingRepository) Clear(ctx context.Context, userId, sessionId uuid.UUID) (bool, error) {
	key := r.key(userId, sessionId)

	if !r.useRedis {
		if _, found := r.fallback.Get(key); found {
			r.fallback.Delete(key)
			return true, nil
		}
		return false, nil
	}

	deleted, err := r.rdb.Del(ctx, key).Result()
	return deleted > 0, err
}

// ExtendTTL resets the idle window after activity.
func (r *WorkingRepository) ExtendTTL(ctx context.Context, userId, sessionId uuid.UUID) (bool, error) {
	key := r.key(userId, sessionId)

	if !r.useRedis {
		_, found := r.fallback.Get(key)
		return found, nil
	}

	return r.rdb.Expire(ctx, key, r.sessionTTL).Result()
}

func (r *WorkingRepository) save(ctx context.Context, session *entity.WorkingSession) error {
	key := r.key(session.UserId, session.SessionId)

	if !r.useRedis {
		r.fallback.Set(key, *session, cache.DefaultExpiration)
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.SetEx(ctx, key, data, r.sessionTTL).Err()
}
