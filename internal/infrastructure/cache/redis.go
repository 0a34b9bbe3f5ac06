// Package cache agrupa el cliente Redis, la caché versionada de reportes y los
// almacenes por sesión (rango de fechas, sesiones revocadas) en Redis o en memoria.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	keyPrefix  = "zyck:"
	versionKey = keyPrefix + "reports:version"
)

// New crea el cliente Redis y verifica la conexión.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}
	return client, nil
}

// ReportCache caché JSON de reportes con versión global: Bump invalida todo
// lo anterior sin borrar claves (expiran por TTL).
// Con client nil funciona como pass-through, manteniendo la deduplicación.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewReportCache construye la caché. client puede ser nil.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Version versión vigente, inicializada a 1 si falta.
func (c *ReportCache) Version(ctx context.Context) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// BuildKey compone la clave con prefijo y versión.
func (c *ReportCache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sreports:%s:v%d", keyPrefix, strings.Join(parts, ":"), ver), nil
}

// FetchJSON lee key o la puebla con loader. Las cargas concurrentes de la misma
// clave comparten una sola ejecución del loader.
func (c *ReportCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader requerido")
	}
	if c.client != nil {
		payload, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			return json.Unmarshal(payload, dest)
		}
		if !errors.Is(err, redis.Nil) {
			return fmt.Errorf("cache: get %s: %w", key, err)
		}
	}

	// La carga compartida no depende de la cancelación de quien la inició;
	// cada llamador sigue respetando su propio ctx en el select.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		value, err := loader(loadCtx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if c.client != nil {
			if err := c.client.Set(loadCtx, key, raw, c.ttl).Err(); err != nil {
				return nil, fmt.Errorf("cache: set %s: %w", key, err)
			}
		}
		return raw, nil
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return json.Unmarshal(res.Val.([]byte), dest)
	}
}

// Bump invalida la caché incrementando la versión.
func (c *ReportCache) Bump(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey).Err()
}
