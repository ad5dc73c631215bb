package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/services"
	redispkg "roomies-api/infrastructure/redis"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

const sessionKeyPrefix = "session:"

// SessionServiceImpl เก็บ session ใน Redis (TTL = session lifetime)
// ถ้าไม่ได้ config Redis จะ fallback เป็น in-memory map สำหรับรันเครื่องเดียว
type SessionServiceImpl struct {
	redis *redispkg.Client
	ttl   time.Duration

	mu  sync.RWMutex
	mem map[string]memSession
}

type memSession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

func NewSessionService(redis *redispkg.Client, ttl time.Duration) services.SessionService {
	if redis == nil {
		logger.Warn("Redis not configured, sessions are in-memory and lost on restart")
	}
	return &SessionServiceImpl{
		redis: redis,
		ttl:   ttl,
		mem:   make(map[string]memSession),
	}
}

func (s *SessionServiceImpl) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := utils.GenerateSessionToken()

	if s.redis != nil {
		if err := s.redis.Set(ctx, sessionKeyPrefix+token, userID.String(), s.ttl); err != nil {
			return "", apperrors.Storage(err)
		}
		return token, nil
	}

	s.mu.Lock()
	s.mem[token] = memSession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *SessionServiceImpl) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apperrors.Unauthorized("missing session")
	}

	if s.redis != nil {
		val, err := s.redis.Get(ctx, sessionKeyPrefix+token)
		if err != nil {
			if errors.Is(err, redispkg.ErrKeyNotFound) {
				return uuid.Nil, apperrors.Unauthorized("session expired or invalid")
			}
			return uuid.Nil, apperrors.Storage(err)
		}
		userID, err := uuid.Parse(val)
		if err != nil {
			return uuid.Nil, apperrors.Unauthorized("session expired or invalid")
		}
		return userID, nil
	}

	s.mu.RLock()
	sess, ok := s.mem[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(sess.expiresAt) {
		return uuid.Nil, apperrors.Unauthorized("session expired or invalid")
	}
	return sess.userID, nil
}

func (s *SessionServiceImpl) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if s.redis != nil {
		return s.redis.Del(ctx, sessionKeyPrefix+token)
	}

	s.mu.Lock()
	delete(s.mem, token)
	s.mu.Unlock()
	return nil
}
