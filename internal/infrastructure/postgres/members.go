package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadMembers reads the user id set of one membership table for one item.
func loadMembers(ctx context.Context, q querier, table, itemCol string, itemID int64) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT user_id FROM %s WHERE %s=$1`, table, itemCol), itemID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()
	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// syncMembers reconciles a membership table with the wanted set inside
// the caller's transaction, so counters and membership commit together.
func syncMembers(ctx context.Context, tx pgx.Tx, table, itemCol string, itemID int64, want []uuid.UUID) error {
	current, err := loadMembers(ctx, tx, table, itemCol, itemID)
	if err != nil {
		return err
	}
	toAdd, toRemove := lo.Difference(want, current)
	for _, userID := range toRemove {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE %s=$1 AND user_id=$2`, table, itemCol),
			itemID, userID); err != nil {
			return fmt.Errorf("sync %s: %w", table, err)
		}
	}
	for _, userID := range toAdd {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (%s, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`, table, itemCol),
			itemID, userID); err != nil {
			return fmt.Errorf("sync %s: %w", table, err)
		}
	}
	return nil
}

// staleOrMissing disambiguates a zero-row optimistic update: the row is
// either gone (not found) or changed underneath us (conflict).
func staleOrMissing(ctx context.Context, tx pgx.Tx, table string, id int64) error {
	var exists bool
	err := tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id=$1)`, table), id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check %s: %w", table, err)
	}
	if !exists {
		return reaction.ErrNotFound
	}
	return reaction.ErrConflict
}
