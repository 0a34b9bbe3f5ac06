package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/redis/go-redis/v9"

	appauth "github.com/zyck/property-admin/internal/application/auth"
	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/domain/daterange"
)

var (
	_ appdaterange.Store       = (*MemoryDateRangeStore)(nil)
	_ appdaterange.Store       = (*RedisDateRangeStore)(nil)
	_ appauth.RevocationStore = (*MemoryRevocationStore)(nil)
	_ appauth.RevocationStore = (*RedisRevocationStore)(nil)
)

// storedRange forma persistida: solo las cadenas; los derivados se recalculan al leer.
type storedRange struct {
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s storedRange) toRange() (daterange.Range, error) {
	return daterange.Parse(s.StartDate, s.EndDate)
}

// ── Rango de fechas en memoria ────────────────────────────────────────────────

// MemoryDateRangeStore rango por sesión en un mapa concurrente del proceso.
type MemoryDateRangeStore struct {
	m   *xsync.MapOf[string, storedRange]
	now func() time.Time
}

// NewMemoryDateRangeStore construye el almacén en memoria.
func NewMemoryDateRangeStore() *MemoryDateRangeStore {
	return &MemoryDateRangeStore{m: xsync.NewMapOf[string, storedRange](), now: time.Now}
}

// Get rango de la sesión; ok=false si no hay o expiró.
func (s *MemoryDateRangeStore) Get(_ context.Context, sessionID string) (daterange.Range, bool, error) {
	v, ok := s.m.Load(sessionID)
	if !ok {
		return daterange.Range{}, false, nil
	}
	if s.now().After(v.ExpiresAt) {
		s.m.Delete(sessionID)
		return daterange.Range{}, false, nil
	}
	r, err := v.toRange()
	if err != nil {
		return daterange.Range{}, false, err
	}
	return r, true, nil
}

// Put reemplaza el rango de la sesión.
func (s *MemoryDateRangeStore) Put(_ context.Context, sessionID string, r daterange.Range, ttl time.Duration) error {
	s.m.Store(sessionID, storedRange{StartDate: r.StartDate, EndDate: r.EndDate, ExpiresAt: s.now().Add(ttl)})
	return nil
}

// Delete limpia el rango de la sesión.
func (s *MemoryDateRangeStore) Delete(_ context.Context, sessionID string) error {
	s.m.Delete(sessionID)
	return nil
}

// ── Rango de fechas en Redis ──────────────────────────────────────────────────

// RedisDateRangeStore rango por sesión compartido entre réplicas.
type RedisDateRangeStore struct {
	client *redis.Client
}

// NewRedisDateRangeStore construye el almacén sobre Redis.
func NewRedisDateRangeStore(client *redis.Client) *RedisDateRangeStore {
	return &RedisDateRangeStore{client: client}
}

func dateRangeKey(sessionID string) string { return keyPrefix + "daterange:" + sessionID }

// Get rango de la sesión; ok=false si no existe.
func (s *RedisDateRangeStore) Get(ctx context.Context, sessionID string) (daterange.Range, bool, error) {
	raw, err := s.client.Get(ctx, dateRangeKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return daterange.Range{}, false, nil
	}
	if err != nil {
		return daterange.Range{}, false, fmt.Errorf("cache: get daterange: %w", err)
	}
	var v storedRange
	if err := json.Unmarshal(raw, &v); err != nil {
		return daterange.Range{}, false, fmt.Errorf("cache: decode daterange: %w", err)
	}
	r, err := v.toRange()
	if err != nil {
		return daterange.Range{}, false, err
	}
	return r, true, nil
}

// Put guarda el rango con TTL.
func (s *RedisDateRangeStore) Put(ctx context.Context, sessionID string, r daterange.Range, ttl time.Duration) error {
	raw, err := json.Marshal(storedRange{StartDate: r.StartDate, EndDate: r.EndDate})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, dateRangeKey(sessionID), raw, ttl).Err()
}

// Delete limpia el rango de la sesión.
func (s *RedisDateRangeStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, dateRangeKey(sessionID)).Err()
}

// ── Sesiones revocadas ────────────────────────────────────────────────────────

// MemoryRevocationStore sesiones cerradas hasta su expiración natural.
type MemoryRevocationStore struct {
	m   *xsync.MapOf[string, time.Time]
	now func() time.Time
}

// NewMemoryRevocationStore construye el almacén en memoria.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{m: xsync.NewMapOf[string, time.Time](), now: time.Now}
}

// Revoke marca la sesión hasta until.
func (s *MemoryRevocationStore) Revoke(_ context.Context, sessionID string, until time.Time) error {
	s.m.Store(sessionID, until)
	s.sweep()
	return nil
}

// IsRevoked indica si la sesión fue cerrada.
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	until, ok := s.m.Load(sessionID)
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		s.m.Delete(sessionID)
		return false, nil
	}
	return true, nil
}

// sweep descarta entradas cuyo token ya expiró.
func (s *MemoryRevocationStore) sweep() {
	now := s.now()
	s.m.Range(func(k string, until time.Time) bool {
		if now.After(until) {
			s.m.Delete(k)
		}
		return true
	})
}

// RedisRevocationStore sesiones revocadas con TTL hasta la expiración del token.
type RedisRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRevocationStore construye el almacén sobre Redis.
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, now: time.Now}
}

func revokedKey(sessionID string) string { return keyPrefix + "revoked:" + sessionID }

// Revoke marca la sesión hasta until.
func (s *RedisRevocationStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(sessionID), 1, ttl).Err()
}

// IsRevoked indica si la sesión fue cerrada.
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("cache: exists revoked: %w", err)
	}
	return n > 0, nil
}
