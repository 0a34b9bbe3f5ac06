package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain/repository"
)

var _ appsales.SalesTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales abre una transacción con los repos de usuarios y ventas atados a ella.
// Commit si fn no falla; cualquier error hace Rollback (alta de usuario incluida).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
