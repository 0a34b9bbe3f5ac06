// Package reporting contiene los casos de uso de los reportes del dashboard:
// conteos por rango, totales globales y ubicaciones por provincia.
package reporting

import "context"

// ReportCache caché de respuestas JSON de reportes.
// Las cargas concurrentes de una misma clave se resuelven una sola vez.
type ReportCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
}

// noCache ejecuta siempre el loader.
type noCache struct{}

func (noCache) BuildKey(_ context.Context, parts ...string) (string, error) { return "", nil }

func (noCache) FetchJSON(ctx context.Context, _ string, dest any, loader func(context.Context) (any, error)) error {
	v, err := loader(ctx)
	if err != nil {
		return err
	}
	return assign(dest, v)
}
