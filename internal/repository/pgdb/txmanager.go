package pgdb

import (
	"context"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// TxManager открывает транзакцию pgx и кладёт её в контекст,
// откуда репозитории достают её через pkg/tr.
type TxManager struct {
	pool transaction.Transactional
}

func NewTxManager(pool transaction.Transactional) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction выполняет fn в рамках одной транзакции.
// При ошибке fn транзакция откатывается целиком.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.pool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	txCtx := context.WithValue(ctx, "tx", tx.Transaction())
	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
