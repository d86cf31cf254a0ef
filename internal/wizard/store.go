// internal/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

// Store keeps sessions between wizard steps.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	// Consume returns a completed session and removes it; a second call fails.
	Consume(ctx context.Context, id string) (*Session, error)
}

const keyPrefix = "wizard:session:"

// RedisStore keeps sessions in Redis under a TTL.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration, log logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "wizard-store"}),
	}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.NewWizardSessionStoreFailedError("encode", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		r.logger.Error("session save failed", map[string]interface{}{"sessionId": s.ID, "error": err})
		return errors.NewWizardSessionStoreFailedError("save", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		return nil, r.readError(id, "load", err)
	}
	return decodeSession(data)
}

// deleteIfUnchanged removes KEYS[1] only while it still holds ARGV[1].
var deleteIfUnchanged = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const consumeAttempts = 3

// Consume deletes the session only if it is unchanged since it was read as
// complete, so a step resubmitted in between is never lost.
func (r *RedisStore) Consume(ctx context.Context, id string) (*Session, error) {
	key := sessionKey(id)
	for attempt := 1; attempt <= consumeAttempts; attempt++ {
		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			return nil, r.readError(id, "consume", err)
		}
		s, err := decodeSession([]byte(data))
		if err != nil {
			return nil, err
		}
		if !s.Completed() {
			_, err := s.Complete()
			return nil, err
		}

		deleted, err := deleteIfUnchanged.Run(ctx, r.client, []string{key}, data).Int()
		if err != nil {
			return nil, r.readError(id, "consume", err)
		}
		if deleted == 1 {
			metrics.WizardSessionEvents.WithLabelValues("consumed").Inc()
			return s, nil
		}
		r.logger.Debug("session changed during consume", map[string]interface{}{"sessionId": id, "attempt": attempt})
	}
	return nil, errors.NewWizardSessionStoreFailedError("consume", fmt.Errorf("session kept changing over %d attempts", consumeAttempts))
}

func (r *RedisStore) readError(id, op string, err error) error {
	if stderrors.Is(err, redis.Nil) {
		return errors.NewWizardSessionNotFoundError(id)
	}
	r.logger.Error("session read failed", map[string]interface{}{"sessionId": id, "operation": op, "error": err})
	return errors.NewWizardSessionStoreFailedError(op, err)
}

func decodeSession(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.NewWizardSessionStoreFailedError("decode", err)
	}
	return &s, nil
}
