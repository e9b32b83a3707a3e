package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tovald/bossraid/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error. A rollback after
// commit is the normal deferred path and stays quiet.
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
