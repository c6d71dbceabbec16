package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/styleverse/marketplace-api/internal/application/auth"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner and usecase.SettlementTxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ usecase.SettlementTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunIdentity inicia una transacción con los repos de identidad (registro de
// diseñador: user + merchant atómicos) y hace Commit o Rollback.
func (r *TxRunner) RunIdentity(ctx context.Context, fn func(
	users repository.UserRepository,
	merchants repository.MerchantRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewMerchantRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSettlement inicia una transacción con los repos de la liquidación de una
// propuesta aceptada (propuesta + solicitud + orden, todo o nada).
func (r *TxRunner) RunSettlement(ctx context.Context, fn func(
	requests repository.RequestRepository,
	proposals repository.ProposalRepository,
	orders repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRequestRepository(tx), NewProposalRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
